package ansi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
		{
			name:  "plain text",
			input: "hello",
			expected: []Token{
				{Kind: KindText, Raw: "hello"},
			},
		},
		{
			name:  "text and colors",
			input: "abcde\x1b[30mfoo\x1b[31mbar\x1b[0mnormal",
			expected: []Token{
				{Kind: KindText, Raw: "abcde"},
				{Kind: KindEscape, Raw: "\x1b[30m"},
				{Kind: KindText, Raw: "foo"},
				{Kind: KindEscape, Raw: "\x1b[31m"},
				{Kind: KindText, Raw: "bar"},
				{Kind: KindEscape, Raw: "\x1b[0m"},
				{Kind: KindText, Raw: "normal"},
			},
		},
		{
			name:  "adjacent escapes",
			input: "\x1b[1m\x1b[31mX",
			expected: []Token{
				{Kind: KindEscape, Raw: "\x1b[1m"},
				{Kind: KindEscape, Raw: "\x1b[31m"},
				{Kind: KindText, Raw: "X"},
			},
		},
		{
			name:  "empty parameter list",
			input: "\x1b[m",
			expected: []Token{
				{Kind: KindEscape, Raw: "\x1b[m"},
			},
		},
		{
			name:  "non-SGR terminator",
			input: "a\x1b[2Jb",
			expected: []Token{
				{Kind: KindText, Raw: "a"},
				{Kind: KindEscape, Raw: "\x1b[2J"},
				{Kind: KindText, Raw: "b"},
			},
		},
		{
			name:  "unterminated escape at end of string",
			input: "abc\x1b[12;3",
			expected: []Token{
				{Kind: KindText, Raw: "abc\x1b[12;3"},
			},
		},
		{
			name:  "bare introducer",
			input: "a\x1bb",
			expected: []Token{
				{Kind: KindText, Raw: "a\x1bb"},
			},
		},
		{
			name:  "invalid byte inside parameters",
			input: "\x1b[12 mX",
			expected: []Token{
				{Kind: KindText, Raw: "\x1b[12 mX"},
			},
		},
		{
			name:  "malformed introducer followed by valid escape",
			input: "\x1b[12\x1b[31mX",
			expected: []Token{
				{Kind: KindText, Raw: "\x1b[12"},
				{Kind: KindEscape, Raw: "\x1b[31m"},
				{Kind: KindText, Raw: "X"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Split(tc.input))
		})
	}
}

func TestSplitRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"abcde\x1b[30mfoo\x1b[31mbar\x1b[0mnormal",
		"\x1b[38;5;196mred\x1b[0m",
		"\x1b[38;2;255;0;0mred\x1b[0m",
		"broken \x1b[12; tail",
		"\x1b\x1b[31m\x1b",
		"wide 世界 chars",
		"\x1b[2Jcleared\x1b[H",
	}
	for _, input := range inputs {
		var b strings.Builder
		for _, tok := range Split(input) {
			b.WriteString(tok.Raw)
		}
		assert.Equal(t, input, b.String(), "round trip of %q", input)
	}
}

func TestTokenParams(t *testing.T) {
	tests := []struct {
		name     string
		token    Token
		expected []int
	}{
		{
			name:     "text token has no params",
			token:    Token{Kind: KindText, Raw: "abc"},
			expected: nil,
		},
		{
			name:     "empty list",
			token:    Token{Kind: KindEscape, Raw: "\x1b[m"},
			expected: nil,
		},
		{
			name:     "single",
			token:    Token{Kind: KindEscape, Raw: "\x1b[31m"},
			expected: []int{31},
		},
		{
			name:     "multiple",
			token:    Token{Kind: KindEscape, Raw: "\x1b[0;30;40m"},
			expected: []int{0, 30, 40},
		},
		{
			name:     "empty parameters default to zero",
			token:    Token{Kind: KindEscape, Raw: "\x1b[;31;m"},
			expected: []int{0, 31, 0},
		},
		{
			name:     "truecolor",
			token:    Token{Kind: KindEscape, Raw: "\x1b[38;2;255;0;0m"},
			expected: []int{38, 2, 255, 0, 0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.token.Params())
		})
	}
}

func TestTokenIsSGR(t *testing.T) {
	assert.True(t, Token{Kind: KindEscape, Raw: "\x1b[31m"}.IsSGR())
	assert.True(t, Token{Kind: KindEscape, Raw: "\x1b[m"}.IsSGR())
	assert.False(t, Token{Kind: KindEscape, Raw: "\x1b[2J"}.IsSGR())
	assert.False(t, Token{Kind: KindText, Raw: "m"}.IsSGR())
}
