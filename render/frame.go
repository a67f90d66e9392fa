// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "image"

// Frame is one rendered image: Width*Height*4 bytes of RGBA8, row-major,
// top row first. A Frame owns its buffer; the renderer never touches it
// again.
type Frame struct {
	Index int
	Pix   []byte
}

// Image wraps the frame's pixels without copying.
func (f Frame) Image(width, height int) *image.RGBA {
	return &image.RGBA{
		Pix:    f.Pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}
