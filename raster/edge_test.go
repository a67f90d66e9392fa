// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"
	"testing"
)

func TestNewEdge(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		ok             bool
		winding        int8
		dxdy           float64
	}{
		{"down", 0, 0, 10, 10, true, 1, 1},
		{"up", 10, 10, 0, 0, true, -1, 1},
		{"vertical", 5, 0, 5, 8, true, 1, 0},
		{"horizontal", 0, 3, 10, 3, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := NewEdge(tt.x0, tt.y0, tt.x1, tt.y1)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if e.Winding != tt.winding {
				t.Errorf("Winding = %d, want %d", e.Winding, tt.winding)
			}
			if e.DXDY != tt.dxdy {
				t.Errorf("DXDY = %v, want %v", e.DXDY, tt.dxdy)
			}
			if e.YMin > e.YMax {
				t.Errorf("YMin %v > YMax %v", e.YMin, e.YMax)
			}
		})
	}
}

func TestEdgeXAtY(t *testing.T) {
	e, _ := NewEdge(0, 0, 10, 20)
	if got := e.XAtY(10); got != 5 {
		t.Errorf("XAtY(10) = %v, want 5", got)
	}
	if !e.IsActiveAt(0) || e.IsActiveAt(20) {
		t.Error("active range should be [YMin, YMax)")
	}
}

func TestEdgeListContour(t *testing.T) {
	el := NewEdgeList()
	el.AddContour([]Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}})

	// Two horizontal sides are dropped.
	if el.Len() != 2 {
		t.Fatalf("Len = %d, want 2", el.Len())
	}
	minX, minY, maxX, maxY := el.Bounds()
	if minX != 0 || minY != 0 || maxX != 10 || maxY != 10 {
		t.Errorf("Bounds = %v %v %v %v", minX, minY, maxX, maxY)
	}

	sum := 0
	for _, e := range el.Edges() {
		sum += int(e.Winding)
	}
	if sum != 0 {
		t.Errorf("closed contour winding sum = %d, want 0", sum)
	}

	el.Reset()
	if el.Len() != 0 {
		t.Errorf("Len after Reset = %d", el.Len())
	}
	if x0, y0, x1, y1 := el.Bounds(); x0 != 0 || y0 != 0 || x1 != 0 || y1 != 0 {
		t.Error("empty Bounds should be zero")
	}
}

func TestSimpleAET(t *testing.T) {
	a, _ := NewEdge(8, 0, 8, 4)
	b, _ := NewEdge(2, 0, 2, 10)

	aet := NewSimpleAET()
	aet.InsertEdge(&a, 0.5)
	aet.InsertEdge(&b, 0.5)
	aet.SortByX()

	if got := aet.Active()[0].X; got != 2 {
		t.Errorf("first X = %v, want 2", got)
	}

	aet.RemoveExpired(4)
	if aet.Len() != 1 {
		t.Fatalf("Len = %d, want 1", aet.Len())
	}
	aet.UpdateX(5)
	if aet.Active()[0].Edge != &b {
		t.Error("wrong edge survived")
	}
	if math.IsNaN(aet.Active()[0].X) {
		t.Error("X is NaN")
	}
}
