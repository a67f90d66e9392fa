package wordart

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/wordart/directive"
	"github.com/gogpu/wordart/fontreg"
	"github.com/gogpu/wordart/pipeline"
)

func TestParseWeight(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"700", 700, false},
		{"1", 1, false},
		{"bold", 700, false},
		{"Semi-Bold", 600, false},
		{"extra_light", 200, false},
		{"0", 0, true},
		{"1001", 0, true},
		{"heavyish", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseWeight(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseWeight(%q) = %d, %v", tt.in, got, err)
		}
		if err != nil && !errors.Is(err, ErrInvalidDirective) {
			t.Errorf("ParseWeight(%q) error %v is not ErrInvalidDirective", tt.in, err)
		}
	}
}

func TestOptionsFromDirectives(t *testing.T) {
	res, err := directive.Parse("~color:gold ~bgcolor:#102030 ~font:Open_Sans ~weight:bold ~style:italic ~size:9 Hello")
	if err != nil {
		t.Fatal(err)
	}
	base := pipeline.Options{FontFamily: "Go", FontWeight: 400}

	got, err := OptionsFromDirectives(res, base)
	if err != nil {
		t.Fatalf("OptionsFromDirectives: %v", err)
	}
	if got.Foreground != (color.RGBA{0xff, 0xd7, 0x00, 0xff}) {
		t.Errorf("Foreground = %v", got.Foreground)
	}
	if got.Background != (color.RGBA{0x10, 0x20, 0x30, 0xff}) {
		t.Errorf("Background = %v", got.Background)
	}
	if got.FontFamily != "Open Sans" || got.FontWeight != 700 || got.FontStyle != fontreg.Italic {
		t.Errorf("font = %q %d %v", got.FontFamily, got.FontWeight, got.FontStyle)
	}
}

func TestOptionsFromDirectivesKeepsBase(t *testing.T) {
	res, err := directive.Parse("plain")
	if err != nil {
		t.Fatal(err)
	}
	base := pipeline.Options{Foreground: color.White, FontFamily: "Go", FontWeight: 300}
	got, err := OptionsFromDirectives(res, base)
	if err != nil {
		t.Fatal(err)
	}
	if got != base {
		t.Errorf("got %+v, want %+v", got, base)
	}
}

func TestOptionsFromDirectivesErrors(t *testing.T) {
	for _, in := range []string{
		"~color:blurple x",
		"~bgcolor:#12 x",
		"~weight:2000 x",
		"~style:slanted x",
	} {
		res, err := directive.Parse(in)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := OptionsFromDirectives(res, pipeline.Options{}); !errors.Is(err, ErrInvalidDirective) {
			t.Errorf("%q: error = %v, want ErrInvalidDirective", in, err)
		}
	}
}
