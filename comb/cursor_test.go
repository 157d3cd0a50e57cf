package comb

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorBasicOperations(t *testing.T) {
	c := NewByteCursor([]byte("hello\nworld"))

	v, err := c.Value()
	require.NoError(t, err)
	assert.Equal(t, byte('h'), v)

	c = c.Next()
	v, err = c.Value()
	require.NoError(t, err)
	assert.Equal(t, byte('e'), v)
	assert.Equal(t, 1, c.Position())
}

func TestCursorEndOfSequence(t *testing.T) {
	c := NewByteCursor([]byte("ab"))
	c = c.Next().Next()

	assert.True(t, c.EOS())
	assert.Equal(t, 2, c.Position())

	_, err := c.Value()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReadAtEOF))

	// Next clamps at the end.
	assert.Equal(t, 2, c.Next().Position())
	assert.True(t, c.Next().EOS())
}

func TestCursorEmptyInput(t *testing.T) {
	c := NewByteCursor(nil)
	assert.True(t, c.EOS())
	assert.Equal(t, 0, c.Position())
	_, err := c.Value()
	assert.Error(t, err)
}

func TestCursorTryNext(t *testing.T) {
	c := NewByteCursor([]byte("abc"))

	c, err := c.TryNext()
	require.NoError(t, err)
	v, _ := c.Value()
	assert.Equal(t, byte('b'), v)

	c, err = c.TryNext()
	require.NoError(t, err)
	v, _ = c.Value()
	assert.Equal(t, byte('c'), v)

	_, err = c.TryNext()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedEOF))
	assert.Contains(t, Report(err), "Unexpected end of file")

	_, err = c.Next().TryNext()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyAtEOF))
}

func TestCursorCopyIndependence(t *testing.T) {
	c := NewByteCursor([]byte("abcd"))
	atA := c

	c = c.Next()
	atB := c
	c = c.Next()

	for _, tt := range []struct {
		cursor ByteCursor
		want   byte
	}{
		{atA, 'a'},
		{atB, 'b'},
		{c, 'c'},
		{atA.Next(), 'b'},
		{atB.Next(), 'c'},
	} {
		v, err := tt.cursor.Value()
		require.NoError(t, err)
		assert.Equal(t, tt.want, v)
	}
}

type words struct{}

func (words) Newline() uint32 { return 0 }

func (words) Format(elems []uint32) string { return fmt.Sprint(elems) }

func TestCursorGenericElements(t *testing.T) {
	data := []uint32{1, 2, 3}
	c := NewCursor[uint32](data, words{})

	assert.Equal(t, 0, c.Position())
	assert.Equal(t, data, c.Source())

	c = c.Next().Next()
	v, err := c.Value()
	require.NoError(t, err)
	assert.Equal(t, uint32(3), v)

	c = c.Next()
	assert.True(t, c.EOS())
	assert.Equal(t, 3, c.Position())

	out, next, err := Some(InRange[uint32](1, 2)).Parse(NewCursor[uint32](data, words{}))
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2}, out)
	assert.Equal(t, 2, next.Position())
}

func TestCursorSeek(t *testing.T) {
	c := NewByteCursor([]byte("abc"))
	assert.Equal(t, 2, c.Seek(2).Position())
	assert.Equal(t, 3, c.Seek(10).Position())
	assert.Equal(t, 0, c.Seek(-1).Position())
	assert.Equal(t, []byte("c"), c.Seek(2).Rest())
}
