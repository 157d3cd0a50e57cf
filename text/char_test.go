package text

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/pcomb/comb"
)

func TestCharDecodes(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  rune
	}{
		{"ascii", []byte{'A'}, 'A'},
		{"two bytes", []byte{0xC3, 0xB1}, 'ñ'},
		{"three bytes", []byte{0xE2, 0x82, 0xAC}, '€'},
		{"four bytes", []byte{0xF0, 0x9F, 0xA6, 0x80}, '🦀'},
		{"largest scalar", []byte{0xF4, 0x8F, 0xBF, 0xBF}, 0x10FFFF},
		{"before surrogates", []byte{0xED, 0x9F, 0xBF}, 0xD7FF},
		{"smallest two byte", []byte{0xC2, 0x80}, 0x80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := append(tt.input, 'z')
			r, next, err := Char().Parse(comb.NewByteCursor(src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, r)
			assert.Equal(t, len(tt.input), next.Position())
		})
	}
}

func TestCharRejects(t *testing.T) {
	tests := []struct {
		name   string
		input  []byte
		reason error
		pos    int
	}{
		{"overlong nul", []byte{0xC0, 0x80}, ErrOverlong, 0},
		{"overlong three bytes", []byte{0xE0, 0x80, 0xAF}, ErrOverlong, 0},
		{"overlong four bytes", []byte{0xF0, 0x8F, 0xBF, 0xBF}, ErrOverlong, 0},
		{"surrogate", []byte{0xED, 0xA0, 0x80}, ErrSurrogate, 0},
		{"beyond U+10FFFF", []byte{0xF4, 0x90, 0x80, 0x80}, ErrOutOfRange, 0},
		{"truncated", []byte{0xC2}, ErrIncomplete, 1},
		{"truncated four bytes", []byte{0xF0, 0x9F, 0xA6}, ErrIncomplete, 3},
		{"continuation as start", []byte{0x80}, ErrInvalidStart, 0},
		{"invalid lead", []byte{0xFF, 0x41}, ErrInvalidStart, 0},
		{"ascii continuation", []byte{0xE2, 0x82, 0x41}, ErrInvalidContinuation, 2},
		{"lead as continuation", []byte{0xC3, 0xC3}, ErrInvalidContinuation, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, next, err := Char().Parse(comb.NewByteCursor(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.reason)
			assert.Equal(t, tt.reason, ReasonOf(err))
			assert.Equal(t, 0, next.Position(), "a failed decode consumes nothing")
			assert.Equal(t, tt.pos, comb.Resolve(err).Position())
			assert.Contains(t, err.Error(), tt.reason.Error())
		})
	}
}

func TestCharAtEnd(t *testing.T) {
	_, _, err := Char().Parse(comb.NewByteCursor(nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, comb.ErrReadAtEOF))
	assert.Nil(t, ReasonOf(err))
}

func TestCharStream(t *testing.T) {
	src := []byte("añ€🦀")
	out, err := comb.RunAll(comb.All(Char()), src)
	require.NoError(t, err)
	assert.Equal(t, []rune("añ€🦀"), out)

	// Decoding stops at the first bad sequence and reports it.
	bad := append([]byte("ab"), 0xED, 0xA0, 0x80)
	_, err = comb.RunAll(comb.All(Char()), bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSurrogate)
	assert.Equal(t, 2, comb.Resolve(err).Position())
}
