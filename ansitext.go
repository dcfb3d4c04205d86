// Package ansitext interprets ANSI SGR escape sequences embedded in text
// and measures and slices such text by visible terminal cells.
//
// The package is a library for rendering layers: it models color/attribute
// state, it does not draw. Mapping a resolved (fg, bg) combination to a
// drawable handle and programming palette slots are delegated to the
// ansi/color registry hooks.
package ansitext

import (
	"github.com/hnimtadd/ansitext/ansi"
	"github.com/hnimtadd/ansitext/ansi/sgr"
	"github.com/hnimtadd/ansitext/ansi/width"
	"github.com/hnimtadd/ansitext/logger"
)

// Interpreter bundles a width table, a color registry and a logger behind
// the common operations. The zero options give a working interpreter with
// go-runewidth widths and no truecolor support.
type Interpreter struct {
	width    width.Func
	resolver *sgr.Resolver
	logger   logger.Logger
}

type Options struct {
	// Width overrides the display-width table. Defaults to width.Rune.
	Width width.Func

	// Colors registers truecolor values, usually a *color.Registry. Nil
	// means truecolor specs degrade to default colors.
	Colors sgr.ColorRegistry

	Logger logger.Logger
}

func New(opts Options) *Interpreter {
	if opts.Width == nil {
		opts.Width = width.Rune
	}
	if opts.Logger == nil {
		opts.Logger = logger.DefaultLogger
	}
	return &Interpreter{
		width: opts.Width,
		resolver: sgr.NewResolver(sgr.Options{
			Colors: opts.Colors,
			Logger: opts.Logger,
		}),
		logger: opts.Logger,
	}
}

// Tokenize splits text into its literal and escape tokens.
func (in *Interpreter) Tokenize(text string) []ansi.Token {
	return ansi.Split(text)
}

// VisibleLength returns the number of terminal cells text occupies.
func (in *Interpreter) VisibleLength(text string) int {
	return ansi.VisibleLength(text, in.width)
}

// Slice extracts the visible cell range [start, start+length) of text with
// escape sequences preserved across the cut boundaries.
func (in *Interpreter) Slice(text string, start, length int) string {
	return ansi.Slice(text, start, length, in.width)
}

// Spans resolves text into literal runs paired with the SGR state in effect
// at each run.
func (in *Interpreter) Spans(text string) []sgr.Span {
	return in.resolver.Spans(text)
}
