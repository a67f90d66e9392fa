package wordart

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	gcolor "github.com/gookit/color"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned for color strings ParseColor cannot read.
var ErrInvalidColor = errors.New("wordart: invalid color")

// ParseColor reads a CSS-style color: a name ("gold"), "#rgb", "#rrggbb"
// or "rgb(r,g,b)" where each component is 0-255 or a percentage. Names
// and hex digits are case-insensitive. The result is opaque.
func ParseColor(s string) (color.RGBA, error) {
	v := strings.ToLower(strings.Trim(strings.TrimSpace(s), `"'`))

	switch {
	case v == "":
	case strings.HasPrefix(v, "#"):
		if !isHexColor(v[1:]) {
			break
		}
		if rgb := gcolor.HexToRgb(v); len(rgb) == 3 {
			return color.RGBA{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2]), A: 0xff}, nil
		}
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		if c, ok := parseRGBFunc(v[len("rgb(") : len(v)-1]); ok {
			return c, nil
		}
	default:
		if c, ok := colornames.Map[v]; ok {
			return c, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseRGBFunc(args string) (color.RGBA, bool) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return color.RGBA{}, false
	}
	var ch [3]uint8
	for i, p := range parts {
		p = strings.TrimSpace(p)
		pct := strings.HasSuffix(p, "%")
		p = strings.TrimSuffix(p, "%")

		n, err := strconv.ParseFloat(p, 64)
		if err != nil || n < 0 {
			return color.RGBA{}, false
		}
		if pct {
			if n > 100 {
				return color.RGBA{}, false
			}
			n = n * 255 / 100
		} else if n > 255 {
			return color.RGBA{}, false
		}
		ch[i] = uint8(n + 0.5)
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 0xff}, true
}

func isHexColor(digits string) bool {
	if len(digits) != 3 && len(digits) != 6 {
		return false
	}
	return strings.Trim(digits, "0123456789abcdef") == ""
}
