package comb

// And runs p1 and then p2 on the cursor p1 returned.
func And[T comparable, A, B any](p1 Parser[T, A], p2 Parser[T, B]) Parser[T, Pair[A, B]] {
	return Func[T, Pair[A, B]](func(c Cursor[T]) (Pair[A, B], Cursor[T], error) {
		a, next, err := p1.Parse(c)
		if err != nil {
			return fail[T, Pair[A, B]](c, &AndError{Side: PartFirst, Err: err})
		}
		b, next, err := p2.Parse(next)
		if err != nil {
			return fail[T, Pair[A, B]](c, &AndError{Side: PartSecond, Err: err})
		}
		return Pair[A, B]{First: a, Second: b}, next, nil
	})
}

// Preceded runs prefix and then p, keeping only the output of p.
func Preceded[T comparable, A, O any](prefix Parser[T, A], p Parser[T, O]) Parser[T, O] {
	return Map(And(prefix, p), func(v Pair[A, O]) O { return v.Second })
}

// Terminated runs p and then suffix, keeping only the output of p.
func Terminated[T comparable, O, B any](p Parser[T, O], suffix Parser[T, B]) Parser[T, O] {
	return Map(And(p, suffix), func(v Pair[O, B]) O { return v.First })
}
