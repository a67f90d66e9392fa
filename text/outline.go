package text

import (
	"errors"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo starts a new contour.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo

	// OutlineOpClose closes the current contour back to its first point.
	OutlineOpClose
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	case OutlineOpClose:
		return "Close"
	default:
		return unknownStr
	}
}

// OutlineSegment is one command of a glyph outline.
type OutlineSegment struct {
	Op OutlineOp

	// Points holds the operands:
	//   - MoveTo, LineTo: Points[0] is the target
	//   - QuadTo: Points[0] is the control, Points[1] the target
	//   - CubicTo: Points[0], Points[1] are controls, Points[2] the target
	//   - Close: unused
	Points [3]Point
}

// GlyphOutline is the vector outline of a glyph in font design units,
// y-down as stored by sfnt. Every contour ends with an OutlineOpClose.
type GlyphOutline struct {
	GID      GlyphID
	Segments []OutlineSegment

	// Bounds covers every on- and off-curve point.
	Bounds Rect

	// Advance is the horizontal advance in design units.
	Advance float64
}

// IsEmpty reports whether the outline has no contours (e.g. space).
func (o *GlyphOutline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// Outline returns the outline of gid in font design units.
// Outlines are cached per source. Glyphs stored only as bitmaps or color
// layers fail with ErrNoOutline.
func (s *FontSource) Outline(gid GlyphID) (*GlyphOutline, error) {
	s.copyCheck()

	if o, ok := s.outlines.get(gid); ok {
		return o, nil
	}

	o, err := s.loadOutline(gid)
	if err != nil {
		return nil, &GlyphError{GID: gid, Err: err}
	}

	s.outlines.put(gid, o)
	return o, nil
}

func (s *FontSource) loadOutline(gid GlyphID) (*GlyphOutline, error) {
	buf := s.buffer()
	defer s.buffers.Put(buf)

	// Loading at ppem == unitsPerEm yields coordinates in design units.
	upem := fixed.Int26_6(int(s.font.UnitsPerEm()) << 6)

	segments, err := s.font.LoadGlyph(buf, sfnt.GlyphIndex(gid), upem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return nil, ErrNoOutline
		}
		return nil, err
	}

	adv, err := s.font.GlyphAdvance(buf, sfnt.GlyphIndex(gid), upem, 0)
	if err != nil {
		adv = 0
	}

	outline := &GlyphOutline{
		GID:      gid,
		Segments: make([]OutlineSegment, 0, len(segments)+4),
		Advance:  fromFixed(adv),
	}

	b := Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}

	open := false
	for _, seg := range segments {
		var out OutlineSegment
		n := 1

		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				outline.Segments = append(outline.Segments, OutlineSegment{Op: OutlineOpClose})
			}
			open = true
			out.Op = OutlineOpMoveTo
		case sfnt.SegmentOpLineTo:
			out.Op = OutlineOpLineTo
		case sfnt.SegmentOpQuadTo:
			out.Op = OutlineOpQuadTo
			n = 2
		case sfnt.SegmentOpCubeTo:
			out.Op = OutlineOpCubicTo
			n = 3
		}

		for i := 0; i < n; i++ {
			p := fixedToPoint(seg.Args[i])
			out.Points[i] = p
			b.MinX = math.Min(b.MinX, p.X)
			b.MinY = math.Min(b.MinY, p.Y)
			b.MaxX = math.Max(b.MaxX, p.X)
			b.MaxY = math.Max(b.MaxY, p.Y)
		}

		outline.Segments = append(outline.Segments, out)
	}

	if open {
		outline.Segments = append(outline.Segments, OutlineSegment{Op: OutlineOpClose})
		outline.Bounds = b
	}

	return outline, nil
}

func fixedToPoint(p fixed.Point26_6) Point {
	return Point{
		X: float64(p.X) / 64.0,
		Y: float64(p.Y) / 64.0,
	}
}
