package scene

import (
	"math"

	"github.com/gogpu/wordart/text"
)

// minEdgeLength drops wall quads for coincident outline points.
const minEdgeLength = 1e-9

// Face is a planar polygon. Contours[0] is the boundary, counter-clockwise
// when seen from the side Normal points to; further contours are holes
// wound the other way.
type Face struct {
	Contours [][]Vec3
	Normal   Vec3
}

// Centroid returns the average of the boundary's vertices.
func (f *Face) Centroid() Vec3 {
	var c Vec3
	outer := f.Contours[0]
	for _, p := range outer {
		c = c.Add(p)
	}
	return c.Scale(1 / float64(len(outer)))
}

// Mesh is a closed polygon mesh.
type Mesh struct {
	Faces []Face
}

// IsEmpty reports whether the mesh has no faces.
func (m *Mesh) IsEmpty() bool {
	return m == nil || len(m.Faces) == 0
}

// Bounds returns the axis-aligned bounding box of all vertices.
func (m *Mesh) Bounds() (lo, hi Vec3) {
	if m.IsEmpty() {
		return Vec3{}, Vec3{}
	}
	inf := math.Inf(1)
	lo = Vec3{inf, inf, inf}
	hi = Vec3{-inf, -inf, -inf}
	for i := range m.Faces {
		for _, c := range m.Faces[i].Contours {
			for _, p := range c {
				lo = Vec3{min(lo.X, p.X), min(lo.Y, p.Y), min(lo.Z, p.Z)}
				hi = Vec3{max(hi.X, p.X), max(hi.Y, p.Y), max(hi.Z, p.Z)}
			}
		}
	}
	return lo, hi
}

// Extrude turns flat shapes (outer counter-clockwise, holes clockwise, in
// the z = 0 plane) into a solid of the given depth centered on z = 0: a
// front cap facing +Z, a back cap facing -Z, and one wall quad per
// contour edge facing outward.
func Extrude(shapes []text.Shape, depth float64) *Mesh {
	m := &Mesh{}
	front, back := depth/2, -depth/2

	for _, s := range shapes {
		if len(s.Outer) < 3 {
			continue
		}
		contours := make([][]text.Point, 0, 1+len(s.Holes))
		contours = append(contours, s.Outer)
		for _, h := range s.Holes {
			if len(h) >= 3 {
				contours = append(contours, h)
			}
		}

		frontCap := Face{Normal: Vec3{Z: 1}}
		backCap := Face{Normal: Vec3{Z: -1}}
		for _, c := range contours {
			frontCap.Contours = append(frontCap.Contours, lift(c, front, false))
			backCap.Contours = append(backCap.Contours, lift(c, back, true))
		}
		m.Faces = append(m.Faces, frontCap, backCap)

		for _, c := range contours {
			m.Faces = appendWalls(m.Faces, c, front, back)
		}
	}
	return m
}

func lift(pts []text.Point, z float64, reverse bool) []Vec3 {
	out := make([]Vec3, len(pts))
	for i, p := range pts {
		j := i
		if reverse {
			j = len(pts) - 1 - i
		}
		out[j] = Vec3{p.X, p.Y, z}
	}
	return out
}

// appendWalls adds a quad per edge of c. For a counter-clockwise outline
// the outward normal of edge p->q is (dy, -dx); holes are clockwise, so
// the same formula points into the hole, away from the solid.
func appendWalls(faces []Face, c []text.Point, front, back float64) []Face {
	for i, p := range c {
		q := c[(i+1)%len(c)]
		dx, dy := q.X-p.X, q.Y-p.Y
		l := math.Hypot(dx, dy)
		if l < minEdgeLength {
			continue
		}
		faces = append(faces, Face{
			Contours: [][]Vec3{{
				{p.X, p.Y, front},
				{p.X, p.Y, back},
				{q.X, q.Y, back},
				{q.X, q.Y, front},
			}},
			Normal: Vec3{dy / l, -dx / l, 0},
		})
	}
	return faces
}
