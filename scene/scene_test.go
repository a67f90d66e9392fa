package scene

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/wordart/text"
)

// square returns a counter-clockwise square of side s at the origin.
func square(x, y, s float64) []text.Point {
	return []text.Point{{X: x, Y: y}, {X: x + s, Y: y}, {X: x + s, Y: y + s}, {X: x, Y: y + s}}
}

func reversed(pts []text.Point) []text.Point {
	out := make([]text.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// faceNormal computes the boundary's orientation with Newell's method.
func faceNormal(f Face) Vec3 {
	var n Vec3
	c := f.Contours[0]
	for i, p := range c {
		q := c[(i+1)%len(c)]
		n.X += (p.Y - q.Y) * (p.Z + q.Z)
		n.Y += (p.Z - q.Z) * (p.X + q.X)
		n.Z += (p.X - q.X) * (p.Y + q.Y)
	}
	return n.Normalize()
}

func TestExtrudeSquare(t *testing.T) {
	m := Extrude([]text.Shape{{Outer: square(0, 0, 10)}}, 4)

	// 2 caps + 4 walls.
	if len(m.Faces) != 6 {
		t.Fatalf("faces = %d, want 6", len(m.Faces))
	}

	lo, hi := m.Bounds()
	if lo != (Vec3{0, 0, -2}) || hi != (Vec3{10, 10, 2}) {
		t.Errorf("Bounds = %v %v", lo, hi)
	}

	for i, f := range m.Faces {
		if got := faceNormal(f); !nearVec(got, f.Normal) {
			t.Errorf("face %d: winding normal %v, declared %v", i, got, f.Normal)
		}
		// Outward: normal points away from the solid's center.
		center := Vec3{5, 5, 0}
		if f.Centroid().Sub(center).Dot(f.Normal) <= 0 {
			t.Errorf("face %d normal %v points inward", i, f.Normal)
		}
	}
}

func TestExtrudeHole(t *testing.T) {
	shape := text.Shape{
		Outer: square(0, 0, 10),
		Holes: [][]text.Point{reversed(square(3, 3, 4))},
	}
	m := Extrude([]text.Shape{shape}, 2)

	// 2 caps + 4 outer walls + 4 hole walls.
	if len(m.Faces) != 10 {
		t.Fatalf("faces = %d, want 10", len(m.Faces))
	}
	if len(m.Faces[0].Contours) != 2 || len(m.Faces[1].Contours) != 2 {
		t.Error("caps should carry the hole")
	}

	// Hole walls face the hole's center.
	holeCenter := Vec3{5, 5, 0}
	for _, f := range m.Faces[6:] {
		if f.Centroid().Sub(holeCenter).Dot(f.Normal) >= 0 {
			t.Errorf("hole wall normal %v does not face into the hole", f.Normal)
		}
		if got := faceNormal(f); !nearVec(got, f.Normal) {
			t.Errorf("hole wall winding normal %v, declared %v", got, f.Normal)
		}
	}
}

func TestExtrudeDegenerate(t *testing.T) {
	pts := []text.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}}
	m := Extrude([]text.Shape{{Outer: pts}, {Outer: pts[:2]}}, 1)
	// Duplicate point skipped; the two-point shape dropped.
	if len(m.Faces) != 2+3 {
		t.Errorf("faces = %d, want 5", len(m.Faces))
	}
}

func TestCompose(t *testing.T) {
	fg := color.RGBA{R: 10, G: 200, B: 30, A: 255}
	bg := color.RGBA{B: 90, A: 255}
	lines := [][]text.Shape{{{Outer: square(0, 0, 10)}}, {{Outer: square(20, 0, 10)}}}

	sc, err := Compose(lines, Style{Foreground: fg, Background: bg, Aspect: 2})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if len(sc.Mesh.Faces) != 12 {
		t.Errorf("faces = %d, want 12", len(sc.Mesh.Faces))
	}
	if sc.Material.Color != fg {
		t.Errorf("material = %v, want foreground", sc.Material.Color)
	}
	if sc.Ambient.Color != bg || sc.Background != bg {
		t.Error("ambient light and background should use the background color")
	}
	if sc.Camera.Position.Z != CameraDistance || sc.Camera.FOV != FieldOfView || sc.Camera.Aspect != 2 {
		t.Errorf("camera = %+v", sc.Camera)
	}
	if !near(sc.Directional.Direction.Len(), 1) {
		t.Error("directional light direction is not unit length")
	}
	lo, hi := sc.Mesh.Bounds()
	if hi.Z-lo.Z != DefaultDepth {
		t.Errorf("depth = %v, want %v", hi.Z-lo.Z, DefaultDepth)
	}
}

func TestComposeEmpty(t *testing.T) {
	for _, lines := range [][][]text.Shape{nil, {{}}, {{}, {}}} {
		if _, err := Compose(lines, Style{}); !errors.Is(err, ErrEmptyScene) {
			t.Errorf("Compose(%v) err = %v, want ErrEmptyScene", lines, err)
		}
	}
}

func TestPointLightAttenuation(t *testing.T) {
	l := PointLight{Range: 100}
	tests := []struct {
		d, want float64
	}{
		{0, 1},
		{50, 0.5},
		{100, 0},
		{150, 0},
	}
	for _, tt := range tests {
		if got := l.Attenuation(tt.d); !near(got, tt.want) {
			t.Errorf("Attenuation(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
	if (PointLight{}).Attenuation(1e6) != 1 {
		t.Error("zero range should not attenuate")
	}
}
