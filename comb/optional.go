package comb

// Optional runs p and reports whether it matched. It never fails; when p
// fails the cursor is not advanced.
func Optional[T comparable, O any](p Parser[T, O]) Parser[T, Option[O]] {
	return Func[T, Option[O]](func(c Cursor[T]) (Option[O], Cursor[T], error) {
		v, next, err := p.Parse(c)
		if err != nil {
			return Option[O]{}, c, nil
		}
		return Option[O]{Value: v, Valid: true}, next, nil
	})
}

// ThenOptionally runs p1, which must succeed, followed by p2, which may
// fail without failing the whole parse.
func ThenOptionally[T comparable, A, B any](p1 Parser[T, A], p2 Parser[T, B]) Parser[T, Pair[A, Option[B]]] {
	return Func[T, Pair[A, Option[B]]](func(c Cursor[T]) (Pair[A, Option[B]], Cursor[T], error) {
		a, next, err := p1.Parse(c)
		if err != nil {
			return fail[T, Pair[A, Option[B]]](c, &ThenOptionallyError{Err: err})
		}
		b, next, _ := Optional(p2).Parse(next)
		return Pair[A, Option[B]]{First: a, Second: b}, next, nil
	})
}
