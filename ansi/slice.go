package ansi

import (
	"strings"

	"github.com/hnimtadd/ansitext/ansi/width"
)

// VisibleLength returns the number of terminal cells text occupies when
// rendered: escape sequences count zero, glyph width comes from f.
func VisibleLength(text string, f width.Func) int {
	total := 0
	for _, tok := range Split(text) {
		if tok.Kind != KindText {
			continue
		}
		total += width.String(tok.Raw, f)
	}
	return total
}

// Slice returns the substring showing exactly the visible cells
// [start, start+length) of text. The most recently seen escape sequence is
// re-emitted before each contributing text run, whether or not it appeared
// inside the window, so the result renders standalone exactly like that
// region of the original. The re-emission may repeat the same sequence
// between adjacent runs; self-containment wins over minimal output.
//
// A window reaching past the visible end covers up to the end. A start past
// the visible end, or a non-positive length, yields an empty string.
func Slice(text string, start, length int, f width.Func) string {
	if length <= 0 {
		return ""
	}
	if start < 0 {
		start = 0
	}
	var b strings.Builder
	lastColor := ""
	pos := 0
	for _, tok := range Split(text) {
		if tok.Kind == KindEscape {
			lastColor = tok.Raw
			continue
		}
		oldPos := pos
		pos += width.String(tok.Raw, f)
		switch {
		case pos <= start:
			// Entirely before the window, keep seeking.
		case oldPos < start:
			b.WriteString(lastColor)
			cutCells(tok.Raw, start-oldPos, start-oldPos+length, f, &b)
		case pos > start+length:
			b.WriteString(lastColor)
			cutCells(tok.Raw, 0, start+length-oldPos, f, &b)
		default:
			b.WriteString(lastColor)
			b.WriteString(tok.Raw)
		}
		if pos-start >= length {
			break
		}
	}
	return b.String()
}

// cutCells appends the cell range [from, to) of a literal run to b.
// Indexing is by cell, not byte or rune. A wide glyph cut by a range
// boundary cannot be split, so its covered cells are padded with spaces to
// keep the emitted width exact.
func cutCells(text string, from, to int, f width.Func, b *strings.Builder) {
	pos := 0
	for _, r := range text {
		w := f(r)
		cellStart, cellEnd := pos, pos+w
		pos = cellEnd
		if cellEnd <= from {
			continue
		}
		if cellStart >= to {
			break
		}
		if cellStart >= from && cellEnd <= to {
			b.WriteRune(r)
			continue
		}
		for c := max(cellStart, from); c < min(cellEnd, to); c++ {
			b.WriteByte(' ')
		}
	}
}
