package width

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRune(t *testing.T) {
	tests := []struct {
		name     string
		r        rune
		expected int
	}{
		{name: "ascii", r: 'a', expected: 1},
		{name: "cjk ideograph", r: '世', expected: 2},
		{name: "fullwidth form", r: 'Ａ', expected: 2},
		{name: "combining mark", r: '\u0301', expected: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Rune(tc.r))
		})
	}
}

func TestEastAsian(t *testing.T) {
	assert.Equal(t, 1, EastAsian('a'))
	assert.Equal(t, 2, EastAsian('世'))
	assert.Equal(t, 2, EastAsian('Ａ'))
}

func TestString(t *testing.T) {
	assert.Equal(t, 0, String("", Rune))
	assert.Equal(t, 5, String("hello", Rune))
	assert.Equal(t, 6, String("a世界b", Rune))

	// The injected function wins over any built-in table.
	everyRuneWide := func(r rune) int { return 2 }
	assert.Equal(t, 10, String("hello", everyRuneWide))
}
