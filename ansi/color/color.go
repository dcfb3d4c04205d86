// Color identity and palette bookkeeping for SGR rendering.
//
// The terminal itself is not touched here. Programming a palette slot and
// allocating a color pair are injected hooks so the rendering layer decides
// what those operations mean for its backend.
package color

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/hnimtadd/ansitext/ansi/utils"
	"github.com/hnimtadd/ansitext/logger"
)

// Default is the sentinel color id meaning "terminal default". It is both
// the initial fg/bg value and the fallback when registration fails.
const Default = -1

// RGB is a 24-bit color value.
type RGB struct {
	R, G, B uint8
}

// DefineFunc programs palette slot id with color c on the terminal.
// Returning an error means the slot could not be programmed.
type DefineFunc func(id int, c RGB) error

// Registry allocates palette ids for truecolor values on terminals with a
// bounded palette. Slots below Reserved are never reprogrammed; the rest are
// handed out in order and wrap around when exhausted, overwriting the oldest
// definitions the way ranger-style palettes do.
type Registry struct {
	colors   map[RGB]int
	reserved int
	limit    int
	next     int
	define   DefineFunc
	logger   logger.Logger
}

type RegistryOptions struct {
	// Reserved is the number of low palette slots that must not be
	// reprogrammed. Defaults to 16 (the named + bright colors).
	Reserved int

	// Limit is the total number of palette slots. Defaults to 256.
	Limit int

	// Define programs a palette slot. A nil Define means the terminal
	// cannot change colors, so every unseen RGB value fails to register.
	Define DefineFunc

	Logger logger.Logger
}

func NewRegistry(opts RegistryOptions) *Registry {
	if opts.Reserved == 0 {
		opts.Reserved = 16
	}
	if opts.Limit == 0 {
		opts.Limit = 256
	}
	if opts.Logger == nil {
		opts.Logger = logger.DefaultLogger
	}
	utils.Assert(opts.Reserved < opts.Limit, "reserved slots exceed palette limit")
	return &Registry{
		colors:   make(map[RGB]int),
		reserved: opts.Reserved,
		limit:    opts.Limit,
		define:   opts.Define,
		logger:   opts.Logger,
	}
}

// RegisterTruecolor returns the palette id for the given RGB value,
// programming a free slot on first sight. Returns Default when the palette
// is full or the terminal cannot be reprogrammed; the caller renders with
// default colors instead.
func (reg *Registry) RegisterTruecolor(r, g, b uint8) int {
	key := RGB{R: r, G: g, B: b}
	if id, ok := reg.colors[key]; ok {
		return id
	}
	if reg.define == nil {
		return Default
	}
	if len(reg.colors)+reg.reserved >= reg.limit {
		return Default
	}
	id := reg.next%(reg.limit-reg.reserved) + reg.reserved
	if err := reg.define(id, key); err != nil {
		reg.logger.Warn("failed to program palette slot", "id", id, "err", err)
		return Default
	}
	reg.colors[key] = id
	reg.next++
	return id
}

// Count returns the number of registered truecolor values.
func (reg *Registry) Count() int {
	return len(reg.colors)
}

// InitFunc allocates pair p as the (fg, bg) combination on the terminal.
type InitFunc func(p Pair, fg, bg int) error

// Pair is an opaque handle for an allocated fg/bg combination.
type Pair int

// PairTable resolves (fg, bg) combinations to stable pair handles,
// allocating a new one on first use. Terminals that reject Default (-1) as
// fg or bg get a second allocation attempt with the configured fallback
// colors.
type PairTable struct {
	pairs     map[uint64]Pair
	next      Pair
	init      InitFunc
	defaultFG int
	defaultBG int
	logger    logger.Logger
}

type PairTableOptions struct {
	// Init allocates a pair on the terminal. A nil Init records the handle
	// without terminal interaction.
	Init InitFunc

	// DefaultFG and DefaultBG substitute for Default when the terminal
	// rejects it. Zero values mean white on black.
	DefaultFG int
	DefaultBG int

	Logger logger.Logger
}

func NewPairTable(opts PairTableOptions) *PairTable {
	if opts.DefaultFG == 0 {
		opts.DefaultFG = 7
	}
	if opts.Logger == nil {
		opts.Logger = logger.DefaultLogger
	}
	return &PairTable{
		pairs: make(map[uint64]Pair),
		// Pair 0 is the terminal's immutable default pair.
		next:      1,
		init:      opts.Init,
		defaultFG: opts.DefaultFG,
		defaultBG: opts.DefaultBG,
		logger:    opts.Logger,
	}
}

// Handle returns the pair handle for the given fg/bg combination.
func (t *PairTable) Handle(fg, bg int) Pair {
	key := pairHash(fg, bg)
	if p, ok := t.pairs[key]; ok {
		return p
	}
	p := t.next
	if t.init != nil {
		if err := t.init(p, fg, bg); err != nil {
			ffg, fbg := fg, bg
			if ffg == Default {
				ffg = t.defaultFG
			}
			if fbg == Default {
				fbg = t.defaultBG
			}
			if err := t.init(p, ffg, fbg); err != nil {
				// Colors are probably not supported at all; hand out the
				// handle anyway so rendering degrades instead of failing.
				t.logger.Warn("failed to allocate color pair", "pair", p, "err", err)
			}
		}
	}
	t.pairs[key] = p
	t.next++
	return p
}

// Count returns the number of allocated pairs.
func (t *PairTable) Count() int {
	return len(t.pairs)
}

type pairKey struct {
	FG, BG int
}

func pairHash(fg, bg int) uint64 {
	hashed, err := hashstructure.Hash(pairKey{FG: fg, BG: bg}, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash color pair: %v", err))
	return hashed
}
