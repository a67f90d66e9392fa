package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

func loadSource(t *testing.T, data []byte, opts ...SourceOption) *FontSource {
	t.Helper()

	src, err := NewFontSource(data, opts...)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	return src
}

func TestNewFontSource(t *testing.T) {
	src := loadSource(t, goregular.TTF)

	if got := src.Name(); got != "Go" {
		t.Errorf("Name() = %q, want %q", got, "Go")
	}
	if src.UnitsPerEm() <= 0 {
		t.Errorf("UnitsPerEm() = %d, want > 0", src.UnitsPerEm())
	}
	if src.NumGlyphs() == 0 {
		t.Error("NumGlyphs() = 0")
	}
	if !src.HasGlyph('A') {
		t.Error("HasGlyph('A') = false")
	}
}

func TestNewFontSourceErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"garbage", []byte("definitely not a font")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFontSource(tt.data); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSourceCopiesData(t *testing.T) {
	data := make([]byte, len(goregular.TTF))
	copy(data, goregular.TTF)

	src := loadSource(t, data)
	for i := range data {
		data[i] = 0
	}

	if src.Advance("Hello", 20) <= 0 {
		t.Error("source broke after caller reused its buffer")
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	src, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile: %v", err)
	}
	if src.Name() != "Go" {
		t.Errorf("Name() = %q", src.Name())
	}

	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDescription(t *testing.T) {
	regular := loadSource(t, goregular.TTF).Description()
	bold := loadSource(t, gobold.TTF).Description()
	italic := loadSource(t, goitalic.TTF).Description()

	if regular.Weight != 400 {
		t.Errorf("regular weight = %d, want 400", regular.Weight)
	}
	if regular.Italic {
		t.Error("regular reported italic")
	}
	if bold.Weight <= regular.Weight {
		t.Errorf("bold weight %d not heavier than regular %d", bold.Weight, regular.Weight)
	}
	if !italic.Italic {
		t.Error("italic not reported italic")
	}
}

func TestClampWeight(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 400},
		{50, 100},
		{100, 100},
		{450, 450},
		{900, 900},
		{1000, 900},
	}

	for _, tt := range tests {
		if got := ClampWeight(tt.in); got != tt.want {
			t.Errorf("ClampWeight(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}

	if got := normalizeWeightClass(7); got != 700 {
		t.Errorf("normalizeWeightClass(7) = %d, want 700", got)
	}
}

func TestAdvanceScalesWithSize(t *testing.T) {
	src := loadSource(t, goregular.TTF)

	if got := src.Advance("", 20); got != 0 {
		t.Errorf("Advance(\"\") = %v, want 0", got)
	}

	small := src.Advance("Hello", 20)
	large := src.Advance("Hello", 40)
	if small <= 0 {
		t.Fatalf("Advance = %v, want > 0", small)
	}
	if diff := large - 2*small; diff > 0.5 || diff < -0.5 {
		t.Errorf("Advance(40) = %v, want ~2*Advance(20) = %v", large, 2*small)
	}
	if longer := src.Advance("Hello world", 20); longer <= small {
		t.Errorf("Advance grew from %v to %v only", small, longer)
	}
}

func TestMetrics(t *testing.T) {
	m := loadSource(t, goregular.TTF).Metrics(40)

	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("Metrics = %+v, want positive ascent and descent", m)
	}
	if m.CapHeight <= 0 || m.CapHeight > m.Ascent {
		t.Errorf("CapHeight = %v, ascent %v", m.CapHeight, m.Ascent)
	}
	if m.LineHeight() < m.Ascent+m.Descent {
		t.Errorf("LineHeight() = %v < ascent+descent", m.LineHeight())
	}
}

func TestOutline(t *testing.T) {
	src := loadSource(t, goregular.TTF)

	gid := src.GlyphIndex('o')
	o, err := src.Outline(gid)
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}
	if o.IsEmpty() {
		t.Fatal("outline of 'o' is empty")
	}
	if o.Segments[0].Op != OutlineOpMoveTo {
		t.Errorf("first op = %v, want MoveTo", o.Segments[0].Op)
	}
	if last := o.Segments[len(o.Segments)-1].Op; last != OutlineOpClose {
		t.Errorf("last op = %v, want Close", last)
	}

	closes := 0
	for _, s := range o.Segments {
		if s.Op == OutlineOpClose {
			closes++
		}
	}
	if closes != 2 {
		t.Errorf("'o' has %d contours, want 2", closes)
	}

	// Design units, y-down: the bowl sits above the baseline.
	if o.Bounds.MinY >= 0 {
		t.Errorf("Bounds = %+v, want negative y above the baseline", o.Bounds)
	}
	if o.Advance <= 0 || o.Advance > float64(src.UnitsPerEm()) {
		t.Errorf("Advance = %v, want (0, %d]", o.Advance, src.UnitsPerEm())
	}

	again, err := src.Outline(gid)
	if err != nil || again != o {
		t.Error("second Outline call did not hit the cache")
	}

	space, err := src.Outline(src.GlyphIndex(' '))
	if err != nil {
		t.Fatalf("Outline(space): %v", err)
	}
	if !space.IsEmpty() {
		t.Error("space outline not empty")
	}
}

func TestCopyCheckPanics(t *testing.T) {
	src := loadSource(t, goregular.TTF)
	copied := *src //nolint:govet // intentional copy

	defer func() {
		if recover() == nil {
			t.Error("expected panic for copied FontSource")
		}
	}()
	_ = copied.Name()
}
