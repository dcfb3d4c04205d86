// Tokenizing of text interleaved with ANSI escape sequences.
//
// Only the CSI form ESC '[' <params> <letter> is recognized; anything else
// stays literal text. Splitting is lossless: concatenating the raw content
// of the tokens reproduces the input byte for byte.
package ansi

import (
	"strconv"
	"strings"
)

const esc = 0x1B

type Kind uint8

const (
	// Literal text run.
	KindText Kind = iota

	// One complete escape sequence, introducer and terminator included.
	KindEscape
)

type Token struct {
	Kind Kind
	Raw  string
}

// IsSGR reports whether the token is an escape sequence with the SGR
// terminator. Escape sequences with any other terminator are still
// recognized (and have zero visible width) but carry no color semantics.
func (t Token) IsSGR() bool {
	return t.Kind == KindEscape && t.Raw[len(t.Raw)-1] == 'm'
}

// Params parses the semicolon-delimited parameter list of an escape token.
// Empty parameters default to 0; an empty list yields nil. A parameter too
// large for int becomes -1, which no SGR case matches, so it is a no-op.
func (t Token) Params() []int {
	if t.Kind != KindEscape {
		return nil
	}
	body := t.Raw[2 : len(t.Raw)-1]
	if body == "" {
		return nil
	}
	parts := strings.Split(body, ";")
	params := make([]int, len(parts))
	for i, part := range parts {
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			n = -1
		}
		params[i] = n
	}
	return params
}

// Split tokenizes text into alternating literal and escape tokens. Empty
// literal runs are not emitted, so two adjacent escape sequences produce two
// consecutive escape tokens.
func Split(text string) []Token {
	var tokens []Token
	textStart := 0
	i := 0
	for i < len(text) {
		if text[i] != esc {
			i++
			continue
		}
		raw, ok := scanEscape(text, i)
		if !ok {
			// Unterminated or malformed introducer. The ESC byte stays
			// literal and scanning resumes right after it, so a later
			// well-formed sequence in the same span is still found.
			i++
			continue
		}
		if i > textStart {
			tokens = append(tokens, Token{Kind: KindText, Raw: text[textStart:i]})
		}
		tokens = append(tokens, Token{Kind: KindEscape, Raw: raw})
		i += len(raw)
		textStart = i
	}
	if textStart < len(text) {
		tokens = append(tokens, Token{Kind: KindText, Raw: text[textStart:]})
	}
	return tokens
}

// scanEscape tries to read one complete escape sequence starting at the ESC
// byte at start. It fails on anything that is not digits or ';' followed by
// a single terminating letter.
func scanEscape(text string, start int) (string, bool) {
	i := start + 1
	if i >= len(text) || text[i] != '[' {
		return "", false
	}
	for i++; i < len(text); i++ {
		c := text[i]
		if c >= '0' && c <= '9' || c == ';' {
			continue
		}
		if isLetter(c) {
			return text[start : i+1], true
		}
		return "", false
	}
	return "", false
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
