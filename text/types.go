package text

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// GlyphID is a glyph index within a font.
type GlyphID uint16

// Point is a 2-D point in layout (world) units.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Metrics holds font metrics at a specific size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font,
	// stored as a positive value.
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// LineHeight returns ascent + descent + line gap.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Winding is the orientation of a closed contour in y-up coordinates.
type Winding int8

const (
	// CounterClockwise contours have positive signed area.
	CounterClockwise Winding = 1
	// Clockwise contours have negative signed area.
	Clockwise Winding = -1
)

// String returns the string representation of the winding.
func (w Winding) String() string {
	switch w {
	case CounterClockwise:
		return "CCW"
	case Clockwise:
		return "CW"
	default:
		return unknownStr
	}
}

// windingOf returns the winding matching the sign of area.
func windingOf(area float64) Winding {
	if area < 0 {
		return Clockwise
	}
	return CounterClockwise
}

// Line is one wrapped row of text.
type Line struct {
	// Text is the row content without trailing whitespace.
	Text string

	// Index is the vertical position of the row, starting at 0.
	Index int
}

// ShapedGlyph is a positioned glyph produced by a Shaper.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the source rune index in the shaped text.
	Cluster int

	// X is the pen position relative to the text origin.
	X float64

	// Y is the vertical offset relative to the baseline.
	Y float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64
}
