package comb

// Cursor is an immutable position in a source sequence. Advancing returns a
// new Cursor; the backing slice is never modified, so copies can be kept
// around for backtracking.
//
// A cursor whose position equals len(source) is at end of sequence.
type Cursor[T comparable] struct {
	data  []T
	pos   int
	atoms Atomic[T]
}

// ByteCursor is a Cursor over raw bytes.
type ByteCursor = Cursor[byte]

// NewCursor returns a cursor at the first element of data. An empty slice
// yields a cursor that is already at end of sequence.
func NewCursor[T comparable](data []T, atoms Atomic[T]) Cursor[T] {
	return Cursor[T]{data: data, atoms: atoms}
}

// NewByteCursor returns a cursor over data using the Bytes element contract.
func NewByteCursor(data []byte) ByteCursor {
	return NewCursor(data, Bytes)
}

// Value returns the element at the current position.
func (c Cursor[T]) Value() (T, error) {
	if c.pos >= len(c.data) {
		var zero T
		return zero, newEOFError(KindReadAtEOF, c.Loc())
	}
	return c.data[c.pos], nil
}

// Next advances by one element. At end of sequence it returns c unchanged.
func (c Cursor[T]) Next() Cursor[T] {
	if c.pos < len(c.data) {
		c.pos++
	}
	return c
}

// TryNext advances by one element and fails when there is no element to
// move onto: KindAlreadyAtEOF when c is at end, KindUnexpectedEOF when c is on the
// last element.
func (c Cursor[T]) TryNext() (Cursor[T], error) {
	if c.pos >= len(c.data) {
		return c, newEOFError(KindAlreadyAtEOF, c.Loc())
	}
	next := c.Next()
	if next.EOS() {
		return c, newEOFError(KindUnexpectedEOF, next.Loc())
	}
	return next, nil
}

// Position returns the absolute index, len(Source()) at end of sequence.
func (c Cursor[T]) Position() int { return c.pos }

// Source returns the full backing sequence.
func (c Cursor[T]) Source() []T { return c.data }

// EOS reports whether the cursor is at end of sequence.
func (c Cursor[T]) EOS() bool { return c.pos >= len(c.data) }

// Atoms returns the element contract the cursor was created with.
func (c Cursor[T]) Atoms() Atomic[T] { return c.atoms }

// Loc returns the location of the current position.
func (c Cursor[T]) Loc() CodeLoc[T] {
	return CodeLoc[T]{source: c.data, index: c.pos, atoms: c.atoms}
}

// Rest returns the elements from the current position to the end.
func (c Cursor[T]) Rest() []T { return c.data[c.pos:] }

// Seek returns a cursor over the same source at pos, clamped to the end.
func (c Cursor[T]) Seek(pos int) Cursor[T] {
	switch {
	case pos < 0:
		pos = 0
	case pos > len(c.data):
		pos = len(c.data)
	}
	c.pos = pos
	return c
}
