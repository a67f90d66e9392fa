package text

import (
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func square(x0, y0, x1, y1 float64, ccw bool) []Point {
	pts := []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	if !ccw {
		pts[1], pts[3] = pts[3], pts[1]
	}
	return pts
}

func toContours(polys ...[]Point) []contour {
	out := make([]contour, len(polys))
	for i, p := range polys {
		out[i] = contour{points: p, area: signedArea(p)}
	}
	return out
}

func TestSignedArea(t *testing.T) {
	if a := signedArea(square(0, 0, 2, 3, true)); a != 6 {
		t.Errorf("ccw area = %v, want 6", a)
	}
	if a := signedArea(square(0, 0, 2, 3, false)); a != -6 {
		t.Errorf("cw area = %v, want -6", a)
	}
}

func TestResolveWinding(t *testing.T) {
	tests := []struct {
		name      string
		solidCCW  bool
		wantWind  Winding
		wantHoles int
	}{
		{"counter-clockwise solids", true, CounterClockwise, 1},
		{"clockwise solids", false, Clockwise, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outer := square(0, 0, 10, 10, tt.solidCCW)
			hole := square(3, 3, 7, 7, !tt.solidCCW)
			other := square(20, 0, 25, 5, tt.solidCCW)

			shapes := resolveWinding(toContours(outer, hole, other))
			if len(shapes) != 2 {
				t.Fatalf("got %d shapes, want 2", len(shapes))
			}
			if shapes[0].Winding != tt.wantWind {
				t.Errorf("Winding = %v, want %v", shapes[0].Winding, tt.wantWind)
			}
			if len(shapes[0].Holes) != tt.wantHoles || len(shapes[1].Holes) != 0 {
				t.Fatalf("holes = %d/%d, want %d/0", len(shapes[0].Holes), len(shapes[1].Holes), tt.wantHoles)
			}
			if signedArea(shapes[0].Outer) <= 0 {
				t.Error("outer not normalized to counter-clockwise")
			}
			if signedArea(shapes[0].Holes[0]) >= 0 {
				t.Error("hole not normalized to clockwise")
			}
		})
	}
}

func TestResolveWindingNestedHole(t *testing.T) {
	// A hole inside two solids belongs to the smaller one.
	big := square(0, 0, 100, 100, true)
	bigHole := square(10, 10, 90, 90, false)
	island := square(20, 20, 80, 80, true)
	islandHole := square(40, 40, 60, 60, false)

	shapes := resolveWinding(toContours(big, bigHole, island, islandHole))
	if len(shapes) != 2 {
		t.Fatalf("got %d shapes, want 2", len(shapes))
	}

	for _, s := range shapes {
		if len(s.Holes) != 1 {
			t.Fatalf("shape has %d holes, want 1", len(s.Holes))
		}
	}
	if math.Abs(signedArea(shapes[1].Holes[0])) != 400 {
		t.Errorf("island hole area = %v, want 400", signedArea(shapes[1].Holes[0]))
	}
}

func shapesBounds(shapes []Shape) Rect {
	b := Rect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, s := range shapes {
		for _, p := range s.Outer {
			b.MinX = math.Min(b.MinX, p.X)
			b.MinY = math.Min(b.MinY, p.Y)
			b.MaxX = math.Max(b.MaxX, p.X)
			b.MaxY = math.Max(b.MaxY, p.Y)
		}
	}
	return b
}

func TestTextToShapes(t *testing.T) {
	src := loadSource(t, goregular.TTF)

	tests := []struct {
		text       string
		wantShapes int
		wantHoles  int
	}{
		{"o", 1, 1},
		{"i", 2, 0},
		{"l", 1, 0},
		{"oo", 2, 2},
		{" ", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			shapes := TextToShapes(tt.text, src, 40, Point{})
			if len(shapes) != tt.wantShapes {
				t.Fatalf("got %d shapes, want %d", len(shapes), tt.wantShapes)
			}

			holes := 0
			for _, s := range shapes {
				holes += len(s.Holes)
				if signedArea(s.Outer) <= 0 {
					t.Error("outer contour is not counter-clockwise")
				}
			}
			if holes != tt.wantHoles {
				t.Errorf("got %d holes, want %d", holes, tt.wantHoles)
			}
		})
	}
}

func TestTextToShapesWindingAgreesAcrossGlyphs(t *testing.T) {
	src := loadSource(t, goregular.TTF)

	shapes := TextToShapes("Hello", src, 40, Point{})
	if len(shapes) == 0 {
		t.Fatal("no shapes")
	}
	for _, s := range shapes[1:] {
		if s.Winding != shapes[0].Winding {
			t.Errorf("winding %v differs from %v", s.Winding, shapes[0].Winding)
		}
	}
}

func TestTextToShapesOffsetAndOrientation(t *testing.T) {
	src := loadSource(t, goregular.TTF)

	base := shapesBounds(TextToShapes("H", src, 40, Point{}))
	moved := shapesBounds(TextToShapes("H", src, 40, Point{X: 100, Y: -50}))

	// y-up: capital letters rise above the baseline.
	if base.MaxY <= 0 || base.MinY < -0.5 {
		t.Errorf("H bounds = %+v, want glyph above baseline", base)
	}
	if math.Abs(moved.MinX-base.MinX-100) > 1e-9 || math.Abs(moved.MinY-base.MinY+50) > 1e-9 {
		t.Errorf("offset bounds = %+v, base %+v", moved, base)
	}
}

func TestLayoutLines(t *testing.T) {
	src := loadSource(t, goregular.TTF)

	lines := []Line{{Text: "HH", Index: 0}, {Text: "HH", Index: 1}}
	out := LayoutLines(lines, src, 40)
	if len(out) != 2 {
		t.Fatalf("got %d lines, want 2", len(out))
	}

	first := shapesBounds(out[0])
	second := shapesBounds(out[1])

	if d := first.MinY - second.MinY; math.Abs(d-40) > 1e-9 {
		t.Errorf("line spacing = %v, want 40", d)
	}
	// Baselines straddle y=0, shifted down by half the cap height.
	capHeight := src.Metrics(40).CapHeight
	if got := first.MinY + second.MinY; math.Abs(got+capHeight) > 1e-9 {
		t.Errorf("baselines sum to %v, want %v", got, -capHeight)
	}
	// Horizontally centered within the side bearings.
	if math.Abs(first.MinX+first.MaxX) > 6 {
		t.Errorf("line not centered: %v..%v", first.MinX, first.MaxX)
	}

	if LayoutLines(nil, src, 40) != nil {
		t.Error("LayoutLines(nil) != nil")
	}
}
