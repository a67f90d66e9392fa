package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// GoTextShaper shapes text with the HarfBuzz port in go-text/typesetting.
// Unlike BuiltinShaper it applies GSUB/GPOS, so ligatures, mark positioning
// and contextual kerning show up in both measured advances and glyph output.
//
// GoTextShaper is opt-in:
//
//	text.SetShaper(text.NewGoTextShaper())
//	defer text.SetShaper(nil)
//
// It is safe for concurrent use. Parsed font.Font values are cached per
// FontSource; a fresh font.Face and a pooled HarfbuzzShaper serve each call.
type GoTextShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Shape implements the Shaper interface.
// Fonts that go-text cannot parse yield nil.
func (s *GoTextShaper) Shape(src *FontSource, text string, size float64) []ShapedGlyph {
	if text == "" || src == nil {
		return nil
	}

	f, err := s.fontFor(src)
	if err != nil {
		return nil
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f),
		Size:      toFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	return convertGlyphs(output.Glyphs)
}

// Forget drops the cached parse of src. FontSource.Release calls it when
// the registry evicts a font.
func (s *GoTextShaper) Forget(src *FontSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, src)
}

func (s *GoTextShaper) cached() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.fontCache)
}

func (s *GoTextShaper) fontFor(src *FontSource) (*font.Font, error) {
	s.mu.RLock()
	f, ok := s.fontCache[src]
	s.mu.RUnlock()
	if ok {
		return f, nil
	}

	if src.Released() {
		face, err := font.ParseTTF(bytes.NewReader(src.Data()))
		if err != nil {
			return nil, err
		}
		return face.Font, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[src]; ok {
		return f, nil
	}

	face, err := font.ParseTTF(bytes.NewReader(src.Data()))
	if err != nil {
		return nil, err
	}
	s.fontCache[src] = face.Font
	return face.Font, nil
}

// detectScript returns the script of the first non-space rune.
// Mixed-script lines are shaped as a single run.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, len(glyphs))

	var x float64
	for i, g := range glyphs {
		adv := fromFixed(g.XAdvance)
		result[i] = ShapedGlyph{
			GID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // sfnt glyph indices are 16-bit
			Cluster:  g.TextIndex(),
			X:        x + fromFixed(g.XOffset),
			Y:        fromFixed(g.YOffset),
			XAdvance: adv,
		}
		x += adv
	}

	return result
}
