package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoOutline is returned for glyphs stored as bitmaps or color layers
	// rather than vector outlines.
	ErrNoOutline = errors.New("text: glyph has no vector outline")
)

// GlyphError reports a failure to extract one glyph's outline.
type GlyphError struct {
	GID GlyphID
	Err error
}

func (e *GlyphError) Error() string {
	return "text: glyph outline: " + e.Err.Error()
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}
