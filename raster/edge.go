// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"cmp"
	"math"
	"slices"
)

// Epsilon is a small value for floating point comparison.
const Epsilon = 1e-9

// Point is a position in device space (pixels, y down).
type Point struct {
	X, Y float64
}

// Edge represents a line segment for scanline conversion.
// Edges are stored with YMin <= YMax; Winding records the original
// direction: +1 when the segment ran downward, -1 when it ran upward.
type Edge struct {
	// YMin is the minimum Y coordinate (top of edge)
	YMin float64

	// YMax is the maximum Y coordinate (bottom of edge)
	YMax float64

	// XAtYMin is the X coordinate at YMin
	XAtYMin float64

	// DXDY is the inverse slope: change in X per unit Y
	DXDY float64

	// Winding indicates the direction: +1 for downward, -1 for upward
	Winding int8
}

// NewEdge creates an edge from (x0, y0) to (x1, y1).
// Returns false if the edge is horizontal (no Y extent).
func NewEdge(x0, y0, x1, y1 float64) (Edge, bool) {
	var winding int8 = 1
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		winding = -1
	}

	dy := y1 - y0
	if dy < Epsilon {
		return Edge{}, false
	}

	return Edge{
		YMin:    y0,
		YMax:    y1,
		XAtYMin: x0,
		DXDY:    (x1 - x0) / dy,
		Winding: winding,
	}, true
}

// XAtY calculates the X coordinate at a given Y value.
func (e *Edge) XAtY(y float64) float64 {
	return e.XAtYMin + (y-e.YMin)*e.DXDY
}

// IsActiveAt returns true if the edge is active at the given Y coordinate.
// An edge is active when YMin <= y < YMax.
func (e *Edge) IsActiveAt(y float64) bool {
	return y >= e.YMin && y < e.YMax
}

// EdgeList is a collection of edges with utility methods.
type EdgeList struct {
	edges []Edge
}

// NewEdgeList creates a new empty edge list.
func NewEdgeList() *EdgeList {
	return &EdgeList{
		edges: make([]Edge, 0, 64),
	}
}

// Reset clears the list, keeping its storage.
func (el *EdgeList) Reset() {
	el.edges = el.edges[:0]
}

// Len returns the number of edges.
func (el *EdgeList) Len() int {
	return len(el.edges)
}

// Edges returns the edges in their current order.
func (el *EdgeList) Edges() []Edge {
	return el.edges
}

// AddLine adds the segment (x0, y0)-(x1, y1). Horizontal segments are
// dropped.
func (el *EdgeList) AddLine(x0, y0, x1, y1 float64) {
	if e, ok := NewEdge(x0, y0, x1, y1); ok {
		el.edges = append(el.edges, e)
	}
}

// AddContour adds the closed polygon pts. The closing segment from the
// last point back to the first is implied.
func (el *EdgeList) AddContour(pts []Point) {
	if len(pts) < 2 {
		return
	}
	prev := pts[len(pts)-1]
	for _, p := range pts {
		el.AddLine(prev.X, prev.Y, p.X, p.Y)
		prev = p
	}
}

// SortByYMin orders edges by their top coordinate.
func (el *EdgeList) SortByYMin() {
	slices.SortFunc(el.edges, func(a, b Edge) int {
		return cmp.Compare(a.YMin, b.YMin)
	})
}

// Bounds returns the bounding box of all edges.
func (el *EdgeList) Bounds() (minX, minY, maxX, maxY float64) {
	if len(el.edges) == 0 {
		return 0, 0, 0, 0
	}

	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for i := range el.edges {
		e := &el.edges[i]
		xEnd := e.XAtY(e.YMax)
		minX = min(minX, e.XAtYMin, xEnd)
		maxX = max(maxX, e.XAtYMin, xEnd)
		minY = min(minY, e.YMin)
		maxY = max(maxY, e.YMax)
	}
	return minX, minY, maxX, maxY
}

// ActiveEdge is an edge crossing the current scanline.
type ActiveEdge struct {
	Edge *Edge
	X    float64
}

// SimpleAET is an active edge table: the edges crossing the current
// scanline, ordered by X.
type SimpleAET struct {
	edges []ActiveEdge
}

// NewSimpleAET creates an empty active edge table.
func NewSimpleAET() *SimpleAET {
	return &SimpleAET{
		edges: make([]ActiveEdge, 0, 16),
	}
}

// Reset empties the table.
func (aet *SimpleAET) Reset() {
	aet.edges = aet.edges[:0]
}

// InsertEdge adds e to the table at scanline y.
func (aet *SimpleAET) InsertEdge(e *Edge, y float64) {
	aet.edges = append(aet.edges, ActiveEdge{Edge: e, X: e.XAtY(y)})
}

// RemoveExpired drops edges that end at or above y.
func (aet *SimpleAET) RemoveExpired(y float64) {
	aet.edges = slices.DeleteFunc(aet.edges, func(ae ActiveEdge) bool {
		return y >= ae.Edge.YMax
	})
}

// UpdateX recomputes every edge's intersection with scanline y.
func (aet *SimpleAET) UpdateX(y float64) {
	for i := range aet.edges {
		aet.edges[i].X = aet.edges[i].Edge.XAtY(y)
	}
}

// SortByX orders the table left to right.
func (aet *SimpleAET) SortByX() {
	slices.SortFunc(aet.edges, func(a, b ActiveEdge) int {
		return cmp.Compare(a.X, b.X)
	})
}

// Active returns the current entries.
func (aet *SimpleAET) Active() []ActiveEdge {
	return aet.edges
}

// Len returns the number of active edges.
func (aet *SimpleAET) Len() int {
	return len(aet.edges)
}
