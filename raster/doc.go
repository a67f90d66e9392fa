// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster scan-converts polygons into pixel spans.
//
// Contours are turned into an EdgeList, then a Scanner walks the edges with
// an active edge table, sampling at pixel centers and applying a fill rule
// to the accumulated winding number.
//
//	el := raster.NewEdgeList()
//	el.AddContour(square)
//	el.AddContour(hole)
//	raster.NewScanner(w, h).Fill(el, raster.NonZero, func(y, x0, x1 int) {
//	    // pixels [x0, x1) of row y are covered
//	})
package raster
