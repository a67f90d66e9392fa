package text

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSource represents a parsed outline font file.
// One FontSource serves every size; sizes are passed per call.
//
// FontSource is safe for concurrent use: the underlying sfnt.Font is
// read-only and every operation borrows its own sfnt.Buffer from a pool.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	data []byte
	font *sfnt.Font
	desc Description

	buffers sync.Pool

	// outlines caches extracted glyph outlines in font units.
	outlines *outlineCache

	config sourceConfig

	released atomic.Bool
}

// NewFontSource parses font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := sfnt.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{
		data:     dataCopy,
		font:     f,
		outlines: newOutlineCache(config.cacheLimit),
		config:   config,
	}
	s.addr = s
	s.buffers.New = func() any { return new(sfnt.Buffer) }
	s.desc = describe(f, dataCopy)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- font paths come from the catalog scan
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Name returns the canonical family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.desc.Family
}

// Description returns the family, weight class and style read from the
// font's metadata tables.
func (s *FontSource) Description() Description {
	s.copyCheck()
	return s.desc
}

// Data returns the raw font bytes. Callers must not modify the slice.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	return s.data
}

// UnitsPerEm returns the font's design units per em.
func (s *FontSource) UnitsPerEm() int {
	s.copyCheck()
	return int(s.font.UnitsPerEm())
}

// NumGlyphs returns the number of glyphs in the font.
func (s *FontSource) NumGlyphs() int {
	s.copyCheck()
	return s.font.NumGlyphs()
}

// GlyphIndex returns the glyph index for r, or 0 (.notdef) when the font
// has no glyph for it.
func (s *FontSource) GlyphIndex(r rune) GlyphID {
	buf := s.buffer()
	defer s.buffers.Put(buf)

	idx, err := s.font.GlyphIndex(buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// HasGlyph reports whether the font maps r to a real glyph.
func (s *FontSource) HasGlyph(r rune) bool {
	return s.GlyphIndex(r) != 0
}

// GlyphAdvance returns the unhinted advance width of gid at size.
func (s *FontSource) GlyphAdvance(gid GlyphID, size float64) float64 {
	buf := s.buffer()
	defer s.buffers.Put(buf)

	adv, err := s.font.GlyphAdvance(buf, sfnt.GlyphIndex(gid), toFixed(size), font.HintingNone)
	if err != nil {
		return 0
	}
	return fromFixed(adv)
}

// Kern returns the kerning adjustment between two glyphs at size.
// Fonts without a kern table report zero.
func (s *FontSource) Kern(left, right GlyphID, size float64) float64 {
	buf := s.buffer()
	defer s.buffers.Put(buf)

	k, err := s.font.Kern(buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), toFixed(size), font.HintingNone)
	if err != nil {
		return 0
	}
	return fromFixed(k)
}

// Metrics returns the font metrics scaled to size.
func (s *FontSource) Metrics(size float64) Metrics {
	buf := s.buffer()
	defer s.buffers.Put(buf)

	m, err := s.font.Metrics(buf, toFixed(size), font.HintingNone)
	if err != nil {
		return Metrics{}
	}

	return Metrics{
		Ascent:    fromFixed(m.Ascent),
		Descent:   fromFixed(m.Descent),
		LineGap:   fromFixed(m.Height) - fromFixed(m.Ascent) - fromFixed(m.Descent),
		XHeight:   fromFixed(m.XHeight),
		CapHeight: fromFixed(m.CapHeight),
	}
}

// Advance returns the horizontal advance of text at size, as measured by
// the source's shaper. It implements Measurer.
func (s *FontSource) Advance(text string, size float64) float64 {
	s.copyCheck()
	if text == "" {
		return 0
	}
	return MeasureGlyphs(s.shaper().Shape(s, text, size))
}

// Glyphs shapes text at size and returns positioned glyphs.
func (s *FontSource) Glyphs(text string, size float64) []ShapedGlyph {
	s.copyCheck()
	if text == "" {
		return nil
	}
	return s.shaper().Shape(s, text, size)
}

// Forgetter is implemented by shapers that keep per-source state.
type Forgetter interface {
	Forget(src *FontSource)
}

// Release tells the source's shaper to drop any state it keeps for s and
// marks s so it is not cached again. The source stays usable; callers
// that still hold it pay for an uncached parse per call.
func (s *FontSource) Release() {
	s.released.Store(true)
	s.outlines.clear()
	if f, ok := s.shaper().(Forgetter); ok {
		f.Forget(s)
	}
}

// Released reports whether Release was called.
func (s *FontSource) Released() bool {
	return s.released.Load()
}

func (s *FontSource) shaper() Shaper {
	if s.config.shaper != nil {
		return s.config.shaper
	}
	return GetShaper()
}

func (s *FontSource) buffer() *sfnt.Buffer {
	return s.buffers.Get().(*sfnt.Buffer)
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
