package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Measurer reports the horizontal advance of a run of text at a size.
// *FontSource implements Measurer.
type Measurer interface {
	Advance(text string, size float64) float64
}

// WrapText breaks text into lines no wider than maxWidth.
//
// Wrapping is greedy and word based. Characters accumulate into a pending
// word; at each whitespace rune the word plus that whitespace is tried on
// the current line and kept there when the line still fits, otherwise the
// current line is emitted and the word starts the next one. A newline
// always ends the current line. Words are never split: a word wider than
// maxWidth overflows on a line of its own.
//
// Text is NFC-normalized first. Returned lines have trailing whitespace
// removed and are indexed from 0.
func WrapText(text string, m Measurer, size, maxWidth float64) []Line {
	text = norm.NFC.String(text)

	w := wrapper{m: m, size: size, maxWidth: maxWidth}
	var pending strings.Builder

	for _, r := range text {
		switch {
		case r == '\n':
			if pending.Len() > 0 {
				w.place(pending.String())
				pending.Reset()
			}
			w.emit(w.current)
			w.current = ""

		case unicode.IsSpace(r):
			pending.WriteRune(r)
			w.place(pending.String())
			pending.Reset()

		default:
			pending.WriteRune(r)
		}
	}

	if pending.Len() > 0 {
		w.place(pending.String())
	}
	if strings.TrimSpace(w.current) != "" {
		w.emit(w.current)
	}

	return w.lines
}

type wrapper struct {
	m        Measurer
	size     float64
	maxWidth float64

	current string
	lines   []Line
}

// place appends chunk to the current line if the result fits, otherwise
// flushes the current line and starts a new one with chunk.
func (w *wrapper) place(chunk string) {
	if strings.TrimSpace(w.current) == "" {
		w.current += chunk
		return
	}

	candidate := w.current + chunk
	if w.m.Advance(trimRight(candidate), w.size) <= w.maxWidth {
		w.current = candidate
		return
	}

	w.emit(w.current)
	w.current = strings.TrimLeftFunc(chunk, unicode.IsSpace)
}

func (w *wrapper) emit(s string) {
	w.lines = append(w.lines, Line{Text: trimRight(s), Index: len(w.lines)})
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
