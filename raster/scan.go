// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "math"

// FillRule selects how winding numbers map to coverage.
type FillRule uint8

const (
	// NonZero fills where the winding number is not zero.
	NonZero FillRule = iota

	// EvenOdd fills where the winding number is odd.
	EvenOdd
)

func (r FillRule) inside(winding int) bool {
	if r == EvenOdd {
		return winding&1 != 0
	}
	return winding != 0
}

// SpanFunc receives one horizontal run of covered pixels [x0, x1) on row y.
type SpanFunc func(y, x0, x1 int)

// Scanner converts edge lists into pixel spans. A pixel is covered when its
// center lies inside the shape. The zero value is not usable; call
// NewScanner.
type Scanner struct {
	width, height int
	aet           *SimpleAET
}

// NewScanner creates a scanner clipping to a width x height grid.
func NewScanner(width, height int) *Scanner {
	return &Scanner{
		width:  width,
		height: height,
		aet:    NewSimpleAET(),
	}
}

// Fill walks el scanline by scanline and reports covered spans in top to
// bottom, left to right order. el is sorted in place.
func (s *Scanner) Fill(el *EdgeList, rule FillRule, span SpanFunc) {
	if el.Len() == 0 {
		return
	}
	el.SortByYMin()
	edges := el.Edges()

	_, minY, _, maxY := el.Bounds()
	y0 := max(0, int(math.Floor(minY)))
	y1 := min(s.height, int(math.Ceil(maxY)))

	s.aet.Reset()
	next := 0
	for y := y0; y < y1; y++ {
		yc := float64(y) + 0.5

		s.aet.RemoveExpired(yc)
		for next < len(edges) && edges[next].YMin <= yc {
			if edges[next].IsActiveAt(yc) {
				s.aet.InsertEdge(&edges[next], yc)
			}
			next++
		}
		if s.aet.Len() == 0 {
			continue
		}
		s.aet.UpdateX(yc)
		s.aet.SortByX()

		s.emitRow(y, rule, span)
	}
}

func (s *Scanner) emitRow(y int, rule FillRule, span SpanFunc) {
	winding := 0
	var start float64
	for _, ae := range s.aet.Active() {
		was := rule.inside(winding)
		winding += int(ae.Edge.Winding)
		now := rule.inside(winding)

		switch {
		case !was && now:
			start = ae.X
		case was && !now:
			s.emitSpan(y, start, ae.X, span)
		}
	}
}

// emitSpan covers pixels whose centers fall in [xs, xe).
func (s *Scanner) emitSpan(y int, xs, xe float64, span SpanFunc) {
	x0 := max(0, int(math.Ceil(xs-0.5)))
	x1 := min(s.width, int(math.Ceil(xe-0.5)))
	if x0 < x1 {
		span(y, x0, x1)
	}
}
