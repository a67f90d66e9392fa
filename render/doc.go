// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws the frames of a text animation.
//
// A FrameRenderer owns nothing: it borrows a surface.Surface and a
// scene.Scene for the life of a job and turns a frame index into a
// tightly packed RGBA8 buffer. Frame i shows the mesh rotated about the
// Y axis by (i+1) * 2π / frameCount, so the animation makes exactly one
// turn and any frame can be rendered independently.
//
// # Host devices
//
// DeviceHandle is the host GPU context a surface may be created against.
// The render package RECEIVES it from the host application and passes it
// on; it never creates a device itself.
//
//	s, err := surface.New(surface.Options{Width: 500, Height: 500, Device: handle})
//	fr, err := render.NewFrameRenderer(s, sc, 200)
//	for i := range fr.Frames() {
//	    frame, err := fr.RenderFrame(i)
//	    ...
//	}
package render
