// Display-width lookup for terminal cells.
//
// Width is injected as a pure function so that callers can pin a specific
// width table and tests stay deterministic across platforms and locales.
package width

import (
	dw "github.com/mattn/go-runewidth"
	textwidth "golang.org/x/text/width"
)

// Func reports the number of terminal cells a rune occupies: 0 for
// combining and other zero-width runes, 2 for wide glyphs, 1 otherwise.
type Func func(r rune) int

// Rune is the default width function, backed by go-runewidth.
func Rune(r rune) int {
	return dw.RuneWidth(r)
}

// EastAsian resolves width from the Unicode East Asian Width property via
// golang.org/x/text. It has no notion of zero-width runes, so it is only a
// coarse alternative table; its value is that the underlying data is pinned
// to the x/text version in go.mod.
func EastAsian(r rune) int {
	switch textwidth.LookupRune(r).Kind() {
	case textwidth.EastAsianWide, textwidth.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// String sums f over every rune in s.
func String(s string, f Func) int {
	total := 0
	for _, r := range s {
		total += f(r)
	}
	return total
}
