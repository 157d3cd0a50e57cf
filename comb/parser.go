package comb

// Parser is implemented by every combinator. Parse consumes input starting
// at c and returns the output together with the cursor after it.
//
// On failure Parse returns the zero output, the cursor it was given and a
// non-nil error implementing Node. A failed parse never hands a partially
// advanced cursor to its caller, which is what makes backtracking safe.
type Parser[T comparable, O any] interface {
	Parse(c Cursor[T]) (O, Cursor[T], error)
}

// Func adapts an ordinary function to the Parser interface.
type Func[T comparable, O any] func(c Cursor[T]) (O, Cursor[T], error)

func (f Func[T, O]) Parse(c Cursor[T]) (O, Cursor[T], error) { return f(c) }

// Pair is the output of sequencing two parsers.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Option is the output of a parser that may not match.
type Option[O any] struct {
	Value O
	Valid bool
}

// Run parses src from its first byte and returns the output and the cursor
// where p stopped.
func Run[O any](p Parser[byte, O], src []byte) (O, ByteCursor, error) {
	return p.Parse(NewByteCursor(src))
}

// RunAll parses src and fails unless p consumed all of it.
func RunAll[O any](p Parser[byte, O], src []byte) (O, error) {
	out, _, err := Terminated(p, Eof[byte]()).Parse(NewByteCursor(src))
	return out, err
}

func fail[T comparable, O any](c Cursor[T], err error) (O, Cursor[T], error) {
	var zero O
	return zero, c, err
}
