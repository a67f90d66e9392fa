package fontreg

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/gogpu/wordart/text"
)

// Style is the slant of a font.
type Style uint8

const (
	// Regular is the upright style.
	Regular Style = iota
	// Italic covers italic and oblique faces.
	Italic
)

// styles lists every Style in fallback order.
var styles = [...]Style{Regular, Italic}

// String returns the string representation of the style.
func (s Style) String() string {
	switch s {
	case Regular:
		return "regular"
	case Italic:
		return "italic"
	default:
		return "unknown"
	}
}

// ParseStyle parses a style name. Matching is case-insensitive; "normal"
// and "oblique" are accepted as aliases.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "regular", "normal":
		return Regular, nil
	case "italic", "oblique":
		return Italic, nil
	}
	return Regular, fmt.Errorf("fontreg: unknown style %q", s)
}

func styleOf(italic bool) Style {
	if italic {
		return Italic
	}
	return Regular
}

// NormalizeFamily returns the catalog key of a family name: case-folded
// with all whitespace removed, so "Open Sans" and "opensans" collide.
func NormalizeFamily(family string) string {
	// Casers are stateful; one per call keeps this safe for concurrent use.
	folded := cases.Fold().String(family)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, folded)
}

// parseVariant maps a Google Fonts variant name ("regular", "italic",
// "700", "700italic") to a weight and style.
func parseVariant(v string) (int, Style, bool) {
	switch v {
	case "regular":
		return text.DefaultWeight, Regular, true
	case "italic":
		return text.DefaultWeight, Italic, true
	}

	style := Regular
	if num, ok := strings.CutSuffix(v, "italic"); ok {
		v, style = num, Italic
	}

	w, err := strconv.Atoi(v)
	if err != nil || w < text.MinWeight || w > text.MaxWeight {
		return 0, Regular, false
	}
	return w, style, true
}
