package text

import "math"

// FlattenTolerance is the maximum distance, in layout units, between a
// curve and the polyline that replaces it.
const FlattenTolerance = 0.1

// maxFlattenDepth bounds subdivision for degenerate control polygons.
const maxFlattenDepth = 16

// flattenQuad appends the polyline approximation of the quadratic curve
// p0-p1-p2 to dst, excluding p0.
func flattenQuad(dst []Point, p0, p1, p2 Point, tolerance float64) []Point {
	return flattenQuadRec(dst, p0, p1, p2, tolerance, 0)
}

func flattenQuadRec(dst []Point, p0, p1, p2 Point, tolerance float64, depth int) []Point {
	if depth >= maxFlattenDepth || distanceToSegment(p1, p0, p2) < tolerance {
		return append(dst, p2)
	}

	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	mid := q0.lerp(q1, 0.5)

	dst = flattenQuadRec(dst, p0, q0, mid, tolerance, depth+1)
	return flattenQuadRec(dst, mid, q1, p2, tolerance, depth+1)
}

// flattenCubic appends the polyline approximation of the cubic curve
// p0-p1-p2-p3 to dst, excluding p0.
func flattenCubic(dst []Point, p0, p1, p2, p3 Point, tolerance float64) []Point {
	return flattenCubicRec(dst, p0, p1, p2, p3, tolerance, 0)
}

func flattenCubicRec(dst []Point, p0, p1, p2, p3 Point, tolerance float64, depth int) []Point {
	d := math.Max(distanceToSegment(p1, p0, p3), distanceToSegment(p2, p0, p3))
	if depth >= maxFlattenDepth || d < tolerance {
		return append(dst, p3)
	}

	// de Casteljau split at t=0.5
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	mid := r0.lerp(r1, 0.5)

	dst = flattenCubicRec(dst, p0, q0, r0, mid, tolerance, depth+1)
	return flattenCubicRec(dst, mid, r1, q2, p3, tolerance, depth+1)
}

// distanceToSegment returns the distance from p to the segment a-b.
func distanceToSegment(p, a, b Point) float64 {
	ab := b.sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 < 1e-20 {
		return p.distance(a)
	}

	ap := p.sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / l2
	switch {
	case t < 0:
		return p.distance(a)
	case t > 1:
		return p.distance(b)
	}
	return p.distance(Point{X: a.X + ab.X*t, Y: a.Y + ab.Y*t})
}

func (p Point) lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

func (p Point) sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}
