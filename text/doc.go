// Package text turns strings into filled 2-D outlines for extrusion.
//
// The pipeline has three stages:
//
//   - FontSource: a parsed TTF/OTF font shared across sizes (golang.org/x/image/font/sfnt)
//   - WrapText: greedy word wrap driven by measured advance widths
//   - TextToShapes / LayoutLines: glyph outlines flattened into winding-resolved shapes
//
// # Example usage
//
//	src, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	maxWidth := text.ViewportWidth(45, 1, 300) * 0.9
//	lines := text.WrapText("Hello, world", src, 40, maxWidth)
//	shapes := text.LayoutLines(lines, src, 40)
//
// # Shaping
//
// Advances come from a Shaper. BuiltinShaper (the default) sums glyph
// advances and pair kerning. GoTextShaper runs HarfBuzz through
// github.com/go-text/typesetting and can be installed globally with
// SetShaper or per source with WithShaper.
package text
