package wordart

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/wordart/directive"
	"github.com/gogpu/wordart/fontreg"
	"github.com/gogpu/wordart/pipeline"
)

// Directive keys understood by OptionsFromDirectives.
const (
	KeyColor      = "color"
	KeyBackground = "bgcolor"
	KeyFont       = "font"
	KeyWeight     = "weight"
	KeyStyle      = "style"
)

// ErrInvalidDirective is returned for directive values that cannot be
// applied.
var ErrInvalidDirective = errors.New("wordart: invalid directive")

var weightNames = map[string]int{
	"thin":       100,
	"hairline":   100,
	"extralight": 200,
	"ultralight": 200,
	"light":      300,
	"normal":     400,
	"regular":    400,
	"medium":     500,
	"semibold":   600,
	"demibold":   600,
	"bold":       700,
	"extrabold":  800,
	"ultrabold":  800,
	"black":      900,
	"heavy":      900,
}

// ParseWeight reads a font weight: a number from 1 to 1000 or a CSS-like
// name such as "bold".
func ParseWeight(s string) (int, error) {
	v := strings.ToLower(strings.Trim(s, `"'`))
	if w, ok := weightNames[strings.NewReplacer("-", "", "_", "").Replace(v)]; ok {
		return w, nil
	}
	w, err := strconv.Atoi(v)
	if err != nil || w < 1 || w > 1000 {
		return 0, fmt.Errorf("%w: weight %q", ErrInvalidDirective, s)
	}
	return w, nil
}

// OptionsFromDirectives applies parsed directives on top of base. Unknown
// keys are ignored; a known key with a bad value is an error.
func OptionsFromDirectives(res directive.Result, base pipeline.Options) (pipeline.Options, error) {
	opts := base
	for key, value := range res.Options {
		switch key {
		case KeyColor, KeyBackground:
			c, err := ParseColor(value)
			if err != nil {
				return base, fmt.Errorf("%w: %s: %w", ErrInvalidDirective, key, err)
			}
			if key == KeyColor {
				opts.Foreground = c
			} else {
				opts.Background = c
			}
		case KeyFont:
			opts.FontFamily = strings.ReplaceAll(strings.Trim(value, `"'`), "_", " ")
		case KeyWeight:
			w, err := ParseWeight(value)
			if err != nil {
				return base, err
			}
			opts.FontWeight = w
		case KeyStyle:
			s, err := fontreg.ParseStyle(strings.Trim(value, `"'`))
			if err != nil {
				return base, fmt.Errorf("%w: %w", ErrInvalidDirective, err)
			}
			opts.FontStyle = s
		default:
			Logger().Debug("wordart: ignoring unknown directive", "key", key, "value", value)
		}
	}
	return opts, nil
}
