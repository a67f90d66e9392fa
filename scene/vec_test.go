package scene

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func nearVec(a, b Vec3) bool { return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z) }

func TestVec3(t *testing.T) {
	x, y := Vec3{X: 1}, Vec3{Y: 1}
	if got := x.Cross(y); got != (Vec3{Z: 1}) {
		t.Errorf("X cross Y = %v, want +Z", got)
	}
	if got := (Vec3{3, 4, 0}).Len(); got != 5 {
		t.Errorf("Len = %v", got)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero Normalize = %v", got)
	}
	if got := (Vec3{0, 0, 7}).Normalize(); got != (Vec3{Z: 1}) {
		t.Errorf("Normalize = %v", got)
	}
}

func TestRotationY(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		in    Vec3
		want  Vec3
	}{
		{"identity", 0, Vec3{1, 2, 3}, Vec3{1, 2, 3}},
		{"quarter turn", math.Pi / 2, Vec3{Z: 1}, Vec3{X: 1}},
		{"half turn", math.Pi, Vec3{X: 1, Y: 5}, Vec3{X: -1, Y: 5}},
		{"full turn", 2 * math.Pi, Vec3{1, 2, 3}, Vec3{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := RotationY(tt.angle)
			if got := m.TransformDirection(tt.in); !nearVec(got, tt.want) {
				t.Errorf("direction = %v, want %v", got, tt.want)
			}
			p := m.TransformPoint(tt.in)
			if !nearVec(Vec3{p.X, p.Y, p.Z}, tt.want) || p.W != 1 {
				t.Errorf("point = %v, want %v", p, tt.want)
			}
		})
	}
}

func TestMultiply(t *testing.T) {
	m := Translation(1, 2, 3).Multiply(Translation(4, 5, 6))
	p := m.TransformPoint(Vec3{})
	if p != (Vec4{5, 7, 9, 1}) {
		t.Errorf("composed translation = %v", p)
	}
	if Identity4().Multiply(m) != m {
		t.Error("identity is not neutral")
	}
}

func TestPerspective(t *testing.T) {
	c := NewCamera(1)
	vp := c.ViewProjection()

	// The origin is at the center of the view, CameraDistance away.
	o := vp.TransformPoint(Vec3{})
	if !near(o.X, 0) || !near(o.Y, 0) || !near(o.W, CameraDistance) {
		t.Errorf("origin clip = %v", o)
	}

	// A point on the top edge of the frustum at the origin's depth maps to
	// NDC y = 1.
	top := CameraDistance * math.Tan(FieldOfView*math.Pi/360)
	p := vp.TransformPoint(Vec3{Y: top})
	if !near(p.Y/p.W, 1) {
		t.Errorf("top edge ndc y = %v, want 1", p.Y/p.W)
	}

	// Near and far planes map to NDC z = -1 and 1.
	n := vp.TransformPoint(Vec3{Z: CameraDistance - NearPlane})
	f := vp.TransformPoint(Vec3{Z: CameraDistance - FarPlane})
	if !near(n.Z/n.W, -1) || math.Abs(f.Z/f.W-1) > 1e-6 {
		t.Errorf("depth range = [%v, %v]", n.Z/n.W, f.Z/f.W)
	}

	if NewCamera(0).Aspect != 1 {
		t.Error("zero aspect should default to 1")
	}
}
