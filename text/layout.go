package text

import (
	"math"
	"slices"
)

// minContourArea drops slivers left by flattening coincident points.
const minContourArea = 1e-9

// Shape is one filled region of a glyph: an outer contour plus the holes
// cut into it.
//
// Outer is always counter-clockwise and every hole clockwise (y-up),
// whatever orientation the font stores. Winding records the orientation
// the font used for its solid contours, as resolved from the signed area.
type Shape struct {
	Outer   []Point
	Holes   [][]Point
	Winding Winding
}

// ViewportWidth returns the width of the world-space region visible at
// distance from a perspective camera with the given vertical field of view
// (degrees) and aspect ratio. Callers usually keep a margin below it.
func ViewportWidth(fovDegrees, aspect, distance float64) float64 {
	return 2 * distance * math.Tan((fovDegrees*aspect/2)*math.Pi/180)
}

// TextToShapes converts one line of text into filled shapes in world units
// (y-up), with the pen origin at offset.
//
// Each glyph outline is flattened into closed contours while the signed
// area of every contour is summed. The sign of a glyph's total area tells
// which orientation its solid contours use; contours of the other sign are
// holes and go to the smallest solid that contains them. Glyphs without a
// vector outline are skipped.
func TextToShapes(line string, src *FontSource, size float64, offset Point) []Shape {
	if line == "" || src == nil || size <= 0 {
		return nil
	}

	scale := size / float64(src.UnitsPerEm())
	var shapes []Shape

	for _, g := range src.Glyphs(line, size) {
		outline, err := src.Outline(g.GID)
		if err != nil || outline.IsEmpty() {
			continue
		}

		origin := Point{X: offset.X + g.X, Y: offset.Y + g.Y}
		contours := flattenOutline(outline, func(p Point) Point {
			// design units, y-down -> world units, y-up
			return Point{X: origin.X + p.X*scale, Y: origin.Y - p.Y*scale}
		})

		shapes = append(shapes, resolveWinding(contours)...)
	}

	return shapes
}

// LayoutLines positions wrapped lines around the origin: each line is
// centered horizontally, line i sits one size below line i-1, and the
// whole block is centered vertically.
func LayoutLines(lines []Line, src *FontSource, size float64) [][]Shape {
	if len(lines) == 0 || src == nil {
		return nil
	}

	capHeight := src.Metrics(size).CapHeight
	top := float64(len(lines)-1) * size / 2

	out := make([][]Shape, len(lines))
	for i, l := range lines {
		offset := Point{
			X: -src.Advance(l.Text, size) / 2,
			Y: top - float64(l.Index)*size - capHeight/2,
		}
		out[i] = TextToShapes(l.Text, src, size, offset)
	}
	return out
}

type contour struct {
	points []Point
	area   float64
}

// flattenOutline turns outline commands into closed polylines. Each
// contour is closed against its own first point.
func flattenOutline(o *GlyphOutline, xf func(Point) Point) []contour {
	var (
		out     []contour
		pts     []Point
		current Point
	)

	closeContour := func() {
		if len(pts) > 1 && pts[len(pts)-1] == pts[0] {
			pts = pts[:len(pts)-1]
		}
		if len(pts) >= 3 {
			if a := signedArea(pts); math.Abs(a) > minContourArea {
				out = append(out, contour{points: pts, area: a})
			}
		}
		pts = nil
	}

	for _, seg := range o.Segments {
		switch seg.Op {
		case OutlineOpMoveTo:
			closeContour()
			current = xf(seg.Points[0])
			pts = append(pts, current)
		case OutlineOpLineTo:
			current = xf(seg.Points[0])
			pts = append(pts, current)
		case OutlineOpQuadTo:
			end := xf(seg.Points[1])
			pts = flattenQuad(pts, current, xf(seg.Points[0]), end, FlattenTolerance)
			current = end
		case OutlineOpCubicTo:
			end := xf(seg.Points[2])
			pts = flattenCubic(pts, current, xf(seg.Points[0]), xf(seg.Points[1]), end, FlattenTolerance)
			current = end
		case OutlineOpClose:
			closeContour()
		}
	}
	closeContour()

	return out
}

// resolveWinding splits contours into solids and holes by the sign of
// their area relative to the total.
func resolveWinding(contours []contour) []Shape {
	var total float64
	for _, c := range contours {
		total += c.area
	}
	solid := windingOf(total)

	var solids, holes []contour
	for _, c := range contours {
		if windingOf(c.area) == solid {
			solids = append(solids, c)
		} else {
			holes = append(holes, c)
		}
	}

	shapes := make([]Shape, len(solids))
	for i, c := range solids {
		shapes[i] = Shape{Outer: orient(c.points, CounterClockwise), Winding: solid}
	}

	for _, h := range holes {
		best := -1
		for i, s := range solids {
			if !pointInPolygon(h.points[0], s.points) {
				continue
			}
			if best < 0 || math.Abs(s.area) < math.Abs(solids[best].area) {
				best = i
			}
		}
		if best < 0 {
			continue
		}
		shapes[best].Holes = append(shapes[best].Holes, orient(h.points, Clockwise))
	}

	return shapes
}

// signedArea returns the shoelace area of a closed polygon; positive for
// counter-clockwise in y-up coordinates.
func signedArea(pts []Point) float64 {
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// orient returns pts in the requested orientation.
func orient(pts []Point, w Winding) []Point {
	if windingOf(signedArea(pts)) == w {
		return pts
	}
	r := slices.Clone(pts)
	slices.Reverse(r)
	return r
}

// pointInPolygon is the even-odd crossing test.
func pointInPolygon(p Point, poly []Point) bool {
	inside := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
