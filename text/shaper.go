package text

import "sync"

// Shaper converts text to positioned glyphs.
// Implementations provide different levels of shaping support:
//   - BuiltinShaper: per-glyph advances plus pair kerning from golang.org/x/image/font/sfnt
//   - GoTextShaper: HarfBuzz shaping from go-text/typesetting
type Shaper interface {
	// Shape converts text into positioned glyphs at size.
	Shape(src *FontSource, text string, size float64) []ShapedGlyph
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = &BuiltinShaper{}
)

// SetShaper sets the global shaper used by sources created without
// WithShaper. Pass nil to reset to the default BuiltinShaper.
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = &BuiltinShaper{}
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// MeasureGlyphs returns the advance width of a shaped run.
func MeasureGlyphs(glyphs []ShapedGlyph) float64 {
	var w float64
	for _, g := range glyphs {
		w += g.XAdvance
	}
	return w
}

// BuiltinShaper positions glyphs left to right using the font's advance
// widths and pair kerning. It does no substitution, so ligatures and
// complex scripts are not handled.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(src *FontSource, text string, size float64) []ShapedGlyph {
	if text == "" || src == nil {
		return nil
	}

	runes := []rune(text)
	result := make([]ShapedGlyph, 0, len(runes))

	var x float64
	prev := GlyphID(0)

	for cluster, r := range runes {
		gid := src.GlyphIndex(r)
		if cluster > 0 && prev != 0 && gid != 0 {
			// Pair kerning widens or narrows the previous glyph's advance.
			k := src.Kern(prev, gid, size)
			result[cluster-1].XAdvance += k
			x += k
		}

		advance := src.GlyphAdvance(gid, size)
		result = append(result, ShapedGlyph{
			GID:      gid,
			Cluster:  cluster,
			X:        x,
			XAdvance: advance,
		})

		x += advance
		prev = gid
	}

	return result
}
