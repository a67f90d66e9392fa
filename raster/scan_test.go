// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "testing"

func square(x0, y0, x1, y1 float64) []Point {
	return []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func reversed(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// coverage rasterizes contours onto a w x h grid and returns a hit count
// per pixel.
func coverage(t *testing.T, w, h int, rule FillRule, contours ...[]Point) []int {
	t.Helper()

	el := NewEdgeList()
	for _, c := range contours {
		el.AddContour(c)
	}
	grid := make([]int, w*h)
	NewScanner(w, h).Fill(el, rule, func(y, x0, x1 int) {
		if x0 >= x1 || x0 < 0 || x1 > w || y < 0 || y >= h {
			t.Fatalf("bad span y=%d [%d,%d)", y, x0, x1)
		}
		for x := x0; x < x1; x++ {
			grid[y*w+x]++
		}
	})
	return grid
}

func count(grid []int) int {
	n := 0
	for _, v := range grid {
		if v > 1 {
			return -1
		}
		n += v
	}
	return n
}

func TestFillSquare(t *testing.T) {
	grid := coverage(t, 10, 10, NonZero, square(2, 2, 6, 5))
	if got := count(grid); got != 12 {
		t.Errorf("covered = %d, want 12", got)
	}
	if grid[2*10+2] != 1 || grid[4*10+5] != 1 {
		t.Error("corner pixels should be covered")
	}
	if grid[5*10+2] != 0 || grid[2*10+6] != 0 {
		t.Error("pixels past the far edges should not be covered")
	}
}

func TestFillHole(t *testing.T) {
	outer := square(0, 0, 8, 8)
	hole := reversed(square(2, 2, 6, 6))

	tests := []struct {
		name     string
		rule     FillRule
		contours [][]Point
		want     int
	}{
		{"nonzero opposite hole", NonZero, [][]Point{outer, hole}, 64 - 16},
		{"nonzero same direction", NonZero, [][]Point{outer, square(2, 2, 6, 6)}, 64},
		{"evenodd same direction", EvenOdd, [][]Point{outer, square(2, 2, 6, 6)}, 64 - 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := coverage(t, 8, 8, tt.rule, tt.contours...)
			if got := count(grid); got != tt.want {
				t.Errorf("covered = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFillClips(t *testing.T) {
	grid := coverage(t, 4, 4, NonZero, square(-10, -10, 10, 10))
	if got := count(grid); got != 16 {
		t.Errorf("covered = %d, want 16", got)
	}
}

func TestFillTriangle(t *testing.T) {
	// Right triangle with legs of 8: about half of 64 pixels.
	grid := coverage(t, 8, 8, NonZero, []Point{{0, 0}, {8, 8}, {0, 8}})
	got := count(grid)
	if got < 28 || got > 36 {
		t.Errorf("covered = %d, want about 32", got)
	}
}

func TestFillEmpty(t *testing.T) {
	called := false
	NewScanner(4, 4).Fill(NewEdgeList(), NonZero, func(int, int, int) { called = true })
	if called {
		t.Error("empty edge list produced spans")
	}
}
