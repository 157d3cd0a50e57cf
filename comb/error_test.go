package comb

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineOffset(t *testing.T) {
	src := []byte("ab\ncde\n\nf")
	tests := []struct {
		index  int
		line   int
		offset int
	}{
		{0, 1, 0},
		{2, 1, 2},
		{3, 2, 0},
		{5, 2, 2},
		{7, 3, 0},
		{8, 4, 0},
		{9, 4, 1},
	}
	for _, tt := range tests {
		line, offset := NewCodeLoc(src, tt.index, Bytes).LineOffset()
		assert.Equal(t, tt.line, line, "line of index %d", tt.index)
		assert.Equal(t, tt.offset, offset, "offset of index %d", tt.index)
	}
}

func TestReportContext(t *testing.T) {
	src := []byte("one\ntwo\nthree\nfour\nfive\nsix\n")
	c := NewByteCursor(src).Seek(16) // 'u' in "four"

	report := Errorf(c, "bad letter").Report()
	want := strings.Join([]string{
		"Syntax error at line 4, byte offset 2: bad letter",
		"",
		"    2 | two",
		"    3 | three",
		"  > 4 | four",
		"          ^--- here",
		"    5 | five",
		"    6 | six",
		"",
	}, "\n")
	assert.Equal(t, want, report)
}

func TestReportAtEndAfterNewline(t *testing.T) {
	src := []byte("x\n")
	c := NewByteCursor(src).Seek(2)
	_, err := c.Value()
	require.Error(t, err)

	report := Report(err)
	assert.True(t, strings.HasPrefix(report, "Cannot read value at end of file at line 2, byte offset 0"))
	assert.Contains(t, report, "  > 2 | \n        ^--- here")
}

func TestReportPointerCountsRunes(t *testing.T) {
	src := []byte("ñx!")
	c := NewByteCursor(src).Seek(3) // '!'
	report := Errorf(c, "boom").Report()
	assert.Contains(t, report, "  > 1 | ñx!\n          ^--- here")
}

func TestResolveForeignError(t *testing.T) {
	err := errors.New("plain")
	leaf := Resolve(err)
	require.NotNil(t, leaf)
	assert.Equal(t, 0, leaf.Position())
	assert.Equal(t, "plain\n", leaf.Report())
	assert.Nil(t, Resolve(nil))
	assert.Equal(t, "", Report(nil))
}

func TestErrorsIsThroughTree(t *testing.T) {
	c := NewByteCursor([]byte("a"))
	p := Or(Recognize(And(IsByte('a'), IsByte('b'))), Recognize(IsByte('c')))

	_, _, err := p.Parse(c)
	require.Error(t, err)

	var orErr *OrError
	require.True(t, errors.As(err, &orErr))
	// The first alternative stopped at end of input.
	assert.True(t, errors.Is(err, ErrReadAtEOF))
	assert.Equal(t, 1, Resolve(err).Position())
}
