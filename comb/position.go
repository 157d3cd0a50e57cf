package comb

// Span is the half-open range [Start, End) of a source sequence.
type Span[T comparable] struct {
	source []T
	atoms  Atomic[T]
	Start  int
	End    int
}

// NewSpan returns the span [start, end) of source.
func NewSpan[T comparable](source []T, start, end int, atoms Atomic[T]) Span[T] {
	return Span[T]{source: source, atoms: atoms, Start: start, End: end}
}

// Len returns the number of elements in the span.
func (s Span[T]) Len() int { return s.End - s.Start }

// IsEmpty reports whether the span covers no elements.
func (s Span[T]) IsEmpty() bool { return s.Start == s.End }

// Slice returns the covered elements. It shares memory with the source.
func (s Span[T]) Slice() []T { return s.source[s.Start:s.End] }

// String renders the covered elements.
func (s Span[T]) String() string {
	if s.atoms == nil {
		return ""
	}
	return s.atoms.Format(s.Slice())
}

// StartLoc returns the location of the first element of the span.
func (s Span[T]) StartLoc() CodeLoc[T] { return NewCodeLoc(s.source, s.Start, s.atoms) }

// EndLoc returns the location just past the span.
func (s Span[T]) EndLoc() CodeLoc[T] { return NewCodeLoc(s.source, s.End, s.atoms) }

// Spanned pairs an output with the span of input that produced it.
type Spanned[T comparable, O any] struct {
	Value O
	Span  Span[T]
}

// Position runs p and records the span it consumed.
func Position[T comparable, O any](p Parser[T, O]) Parser[T, Spanned[T, O]] {
	return Func[T, Spanned[T, O]](func(c Cursor[T]) (Spanned[T, O], Cursor[T], error) {
		v, next, err := p.Parse(c)
		if err != nil {
			return fail[T, Spanned[T, O]](c, err)
		}
		return Spanned[T, O]{
			Value: v,
			Span:  NewSpan(c.Source(), c.Position(), next.Position(), c.Atoms()),
		}, next, nil
	})
}

// Recognize runs p and returns the slice of input it consumed instead of
// its output.
func Recognize[T comparable, O any](p Parser[T, O]) Parser[T, []T] {
	return Map(Position(p), func(s Spanned[T, O]) []T { return s.Span.Slice() })
}
