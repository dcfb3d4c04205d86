package sgr

import (
	"math"

	"github.com/hnimtadd/ansitext/ansi"
	"github.com/hnimtadd/ansitext/ansi/color"
	"github.com/hnimtadd/ansitext/logger"
)

// ColorRegistry registers a truecolor value on the terminal palette and
// returns its id, or color.Default when the palette is exhausted or fixed.
// color.Registry implements this.
type ColorRegistry interface {
	RegisterTruecolor(r, g, b uint8) int
}

// Resolver folds escape tokens into SGR state. Conditions that would lose
// fidelity (unknown color forms, palette exhaustion) degrade to default
// colors and surface as warnings, never as errors.
type Resolver struct {
	colors ColorRegistry
	logger logger.Logger
}

type Options struct {
	// Colors registers truecolor values. Nil means every truecolor spec
	// resolves to the default color.
	Colors ColorRegistry

	Logger logger.Logger
}

func NewResolver(opts Options) *Resolver {
	if opts.Logger == nil {
		opts.Logger = logger.DefaultLogger
	}
	return &Resolver{
		colors: opts.Colors,
		logger: opts.Logger,
	}
}

// Resolve folds one escape token into state. Only m-terminated sequences
// alter state; any other escape token passes state through unchanged.
func (r *Resolver) Resolve(tok ansi.Token, state State) State {
	if !tok.IsSGR() {
		return state
	}
	return r.Apply(state, tok.Params())
}

// Apply folds one parsed parameter list into state. An empty list resets,
// like code 0.
func (r *Resolver) Apply(state State, params []int) State {
	if len(params) == 0 {
		return DefaultState()
	}
	code := params[0]
	switch {
	case code == 0:
		return DefaultState()

	case code == 1:
		state.Attr |= AttrBold
	case code == 4:
		state.Attr |= AttrUnderline
	case code == 5:
		state.Attr |= AttrBlink
	case code == 7:
		state.Attr |= AttrReverse
	case code == 8:
		state.Attr |= AttrInvisible

	// Disabling clears exactly one bit; unrelated attributes stay set.
	case code == 22:
		state.Attr &^= AttrBold
	case code == 24:
		state.Attr &^= AttrUnderline
	case code == 25:
		state.Attr &^= AttrBlink
	case code == 27:
		state.Attr &^= AttrReverse
	case code == 28:
		state.Attr &^= AttrInvisible

	case code >= 30 && code <= 37:
		state.FG = code - 30
	case code == 38:
		state.FG = r.extendedColor(params[1:])
	case code == 39:
		state.FG = color.Default
	case code >= 40 && code <= 47:
		state.BG = code - 40
	case code == 48:
		state.BG = r.extendedColor(params[1:])
	case code == 49:
		state.BG = color.Default

	// aixterm high intensity colors (light but not bold).
	case code >= 90 && code <= 97:
		state.FG = code - 90 + 8
	case code == 99:
		state.FG = color.Default
	case code >= 100 && code <= 107:
		state.BG = code - 100 + 8
	case code == 109:
		state.BG = color.Default

	default:
		// Unsupported code (italics, strikethrough, unrecognized
		// extensions): state stays as is.
	}
	return state
}

// Spans resolves text into its literal runs paired with the state in effect
// where each run appears.
func (r *Resolver) Spans(text string) []Span {
	state := DefaultState()
	var spans []Span
	for _, tok := range ansi.Split(text) {
		switch tok.Kind {
		case ansi.KindEscape:
			state = r.Resolve(tok, state)
		case ansi.KindText:
			spans = append(spans, Span{Text: tok.Raw, State: state})
		}
	}
	return spans
}

// extendedColor resolves the parameters following a 38 or 48 into a color
// id: 5;N is the indexed form, 2;R;G;B the truecolor form. Anything else
// resolves to the default color with a warning.
func (r *Resolver) extendedColor(spec []int) int {
	if len(spec) == 0 {
		r.logger.Warn("empty extended color spec")
		return color.Default
	}
	switch spec[0] {
	case 5:
		if len(spec) >= 2 && spec[1] >= 0 && spec[1] <= math.MaxUint8 {
			return spec[1]
		}
		r.logger.Warn("malformed indexed color spec", "params", spec)
		return color.Default
	case 2:
		if len(spec) < 4 {
			r.logger.Warn("malformed truecolor spec", "params", spec)
			return color.Default
		}
		if r.colors == nil {
			r.logger.Warn("truecolor unsupported, using default color")
			return color.Default
		}
		id := r.colors.RegisterTruecolor(clamp8(spec[1]), clamp8(spec[2]), clamp8(spec[3]))
		if id == color.Default {
			r.logger.Warn("truecolor palette exhausted, using default color",
				"r", spec[1], "g", spec[2], "b", spec[3])
		}
		return id
	default:
		r.logger.Warn("unknown extended color form", "params", spec)
		return color.Default
	}
}

// clamp8 truncates out-of-range components; terminals treat SGR color
// components as unsigned bytes.
func clamp8(v int) uint8 {
	return uint8(max(0, min(math.MaxUint8, v)))
}
