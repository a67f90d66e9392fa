package directive

import (
	"maps"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts map[string]string
		text string
	}{
		{"plain text", "Hello world", map[string]string{}, "Hello world"},
		{"empty", "", map[string]string{}, ""},
		{"one directive", "~color:red Hello", map[string]string{"color": "red"}, "Hello"},
		{
			"several",
			"~color:#ff0000 ~bgColor:rgb(0,0,255) ~font:Open_Sans ~weight:700 Big text",
			map[string]string{"color": "#ff0000", "bgcolor": "rgb(0,0,255)", "font": "Open_Sans", "weight": "700"},
			"Big text",
		},
		{"leading blanks", "  ~style:italic\ttabbed", map[string]string{"style": "italic"}, "tabbed"},
		{"only directives", "~color:red ~bgcolor:blue", map[string]string{"color": "red", "bgcolor": "blue"}, ""},
		{"last wins", "~color:red ~COLOR:blue x", map[string]string{"color": "blue"}, "x"},
		{"percent and quotes", `~color:rgb(100%,0%,0%) ~font:"Go" hi`, map[string]string{"color": "rgb(100%,0%,0%)", "font": `"Go"`}, "hi"},
		{"directive after text is text", "hi ~color:red", map[string]string{}, "hi ~color:red"},
		{"not a directive", "~nocolon text", map[string]string{}, "~nocolon text"},
		{"value stops at invalid char", "~color:red!bang", map[string]string{"color": "red"}, "!bang"},
		{"multiline text", "~color:red line one\nline two", map[string]string{"color": "red"}, "line one\nline two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if !maps.Equal(got.Options, tt.opts) {
				t.Errorf("Options = %v, want %v", got.Options, tt.opts)
			}
			if got.Text != tt.text {
				t.Errorf("Text = %q, want %q", got.Text, tt.text)
			}
		})
	}
}

func TestResultGet(t *testing.T) {
	r, err := Parse("~bgColor:navy x")
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := r.Get("BGCOLOR"); !ok || v != "navy" {
		t.Errorf("Get = %q, %v", v, ok)
	}
	if _, ok := r.Get("color"); ok {
		t.Error("Get(color) found a value")
	}
}
