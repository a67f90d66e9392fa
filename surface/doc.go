// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides offscreen, depth-tested render surfaces.
//
// A Surface accepts screen-space polygons carrying a perspective depth
// term and resolves visibility per pixel, so geometry can be submitted in
// any order. Pixels are read back as tightly packed RGBA8 regardless of
// the surface's native format.
//
// # Registry
//
// Backends register themselves with a priority; New picks the highest
// priority backend that is available:
//
//	surface.Register("vulkan", 100, vulkanFactory, vulkanAvailable)
//
//	s, err := surface.New(surface.Options{Width: 500, Height: 500})
//	// or a specific backend:
//	s, err := surface.NewByName("software", opts)
//
// The "software" backend is always registered.
//
// # Host devices
//
// When Options.Device is set, the surface adopts the host's preferred
// surface format (RGBA8 or BGRA8), so frames can be handed to a
// gpucontext-based application without conversion.
package surface
