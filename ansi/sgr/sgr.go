// SGR (Select Graphic Rendition) state tracking.
//
// Parameter semantics follow https://en.wikipedia.org/wiki/ANSI_escape_code.
// One escape sequence folds into the running state by its first parameter;
// the 38/48 extended color forms consume the remaining parameters as the
// color spec.
package sgr

import (
	"github.com/hnimtadd/ansitext/ansi/color"
)

// Attr is a bitmask of display attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrInvisible
)

// Has reports whether every bit of mask is set.
func (a Attr) Has(mask Attr) bool {
	return a&mask == mask
}

// State is the running color/attribute state while interpreting a string.
//
// FG and BG are color ids: color.Default (-1) for the terminal default,
// 0-7 standard, 8-15 high intensity, 16-255 indexed (including slots the
// truecolor registry hands out).
type State struct {
	FG   int
	BG   int
	Attr Attr
}

// DefaultState is the state at the start of interpreting any string:
// default colors, no attributes.
func DefaultState() State {
	return State{FG: color.Default, BG: color.Default}
}

// IsDefault reports whether s carries no color or attribute.
func (s State) IsDefault() bool {
	return s == DefaultState()
}

// Span pairs a literal text run with the state in effect where it appears.
type Span struct {
	Text  string
	State State
}
