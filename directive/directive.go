// Package directive parses the inline options users put in front of their
// text, such as
//
//	~color:gold ~bgcolor:#102030 ~font:Open_Sans Hello world
//
// Directives are ~key:value tokens separated by blanks. Keys are letters
// and are case-insensitive; values are limited to letters, digits and
// ( ) % , _ " ' # . - so they can never swallow the text. Everything after
// the last directive is the text.
package directive

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	directiveLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Directive", Pattern: `~[A-Za-z]+:[A-Za-z0-9()%,_"'#.\-]+`},
		{Name: "Blank", Pattern: `[ \t\r\n]+`},
		{Name: "Rest", Pattern: `(?s:.+)`},
	})

	inputParser = participle.MustBuild[input](
		participle.Lexer(directiveLexer),
	)
)

// input is the grammar root.
type input struct {
	Directives []*directiveToken `parser:"Blank? ( @@ Blank? )*"`
	Text       string            `parser:"@Rest?"`
}

type directiveToken struct {
	Pos lexer.Position
	Raw string `parser:"@Directive"`
}

// split returns the lower-cased key and the value of "~key:value".
func (d *directiveToken) split() (key, value string) {
	key, value, _ = strings.Cut(d.Raw[1:], ":")
	return strings.ToLower(key), value
}

// Result is a parsed input line.
type Result struct {
	// Options maps lower-cased keys to values. A repeated key keeps its
	// last value.
	Options map[string]string

	// Text is the input after the directives.
	Text string
}

// Get returns the value for key, ignoring case.
func (r Result) Get(key string) (string, bool) {
	v, ok := r.Options[strings.ToLower(key)]
	return v, ok
}

// Parse splits input into its leading directives and the remaining text.
func Parse(in string) (Result, error) {
	ast, err := inputParser.ParseString("", in)
	if err != nil {
		return Result{}, fmt.Errorf("directive: %w", err)
	}

	res := Result{
		Options: make(map[string]string, len(ast.Directives)),
		Text:    ast.Text,
	}
	for _, d := range ast.Directives {
		k, v := d.split()
		res.Options[k] = v
	}
	return res, nil
}
