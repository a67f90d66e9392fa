// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// MaxDimension is the largest accepted width or height.
const MaxDimension = 16384

// Vertex is a projected polygon corner: pixel coordinates (y down) and the
// reciprocal of the clip-space w. InvW is larger for nearer points.
type Vertex struct {
	X, Y float64
	InvW float64
}

// Surface is an offscreen render target with a depth buffer.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Format returns the native pixel format.
	Format() gputypes.TextureFormat

	// Clear fills every pixel with c and resets the depth buffer.
	Clear(c color.Color) error

	// FillPolygon fills a planar polygon with c using the non-zero rule.
	// contours[0] is the outline; further contours may cut holes. Only
	// pixels nearer than what is already drawn are written.
	FillPolygon(contours [][]Vertex, c color.Color) error

	// ReadPixels copies the surface into dst as RGBA8, row-major with no
	// padding. dst must hold Width*Height*4 bytes.
	ReadPixels(dst []byte) error

	// Close releases all resources. Close is idempotent.
	Close() error
}

// Options configures surface creation.
type Options struct {
	// Width and Height are the surface size in pixels.
	Width, Height int

	// Format forces the native pixel format. Zero means: the host device's
	// surface format if Device is set, otherwise RGBA8.
	Format gputypes.TextureFormat

	// Device is an optional host GPU context.
	Device gpucontext.DeviceProvider
}

// Validate checks the size and resolves the pixel format.
func (o Options) Validate() (gputypes.TextureFormat, error) {
	if o.Width <= 0 || o.Height <= 0 || o.Width > MaxDimension || o.Height > MaxDimension {
		return gputypes.TextureFormatUndefined,
			fmt.Errorf("%w: invalid size %dx%d", ErrSurface, o.Width, o.Height)
	}

	format := o.Format
	if format == gputypes.TextureFormatUndefined && o.Device != nil {
		format = o.Device.SurfaceFormat()
	}
	switch format {
	case gputypes.TextureFormatUndefined:
		return gputypes.TextureFormatRGBA8Unorm, nil
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return format, nil
	}
	return gputypes.TextureFormatUndefined,
		fmt.Errorf("%w: unsupported format %v", ErrSurface, format)
}

// toRGBA8 converts c to non-premultiplied 8-bit channels.
func toRGBA8(c color.Color) [4]byte {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return [4]byte{n.R, n.G, n.B, n.A}
}
