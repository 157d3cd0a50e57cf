package comb

// Map transforms the output of p with f.
func Map[T comparable, A, B any](p Parser[T, A], f func(A) B) Parser[T, B] {
	return Func[T, B](func(c Cursor[T]) (B, Cursor[T], error) {
		v, next, err := p.Parse(c)
		if err != nil {
			return fail[T, B](c, err)
		}
		return f(v), next, nil
	})
}

// MapErr transforms the error of p with f. The cursor and a successful
// output pass through untouched. f should return an error implementing
// Node so the result still resolves to a leaf.
func MapErr[T comparable, O any](p Parser[T, O], f func(error) error) Parser[T, O] {
	return Func[T, O](func(c Cursor[T]) (O, Cursor[T], error) {
		v, next, err := p.Parse(c)
		if err != nil {
			return fail[T, O](c, f(err))
		}
		return v, next, nil
	})
}

// Value replaces the output of p with v.
func Value[T comparable, O, V any](p Parser[T, O], v V) Parser[T, V] {
	return Map(p, func(O) V { return v })
}

// Furthest collapses the error tree of p into its most informative leaf.
func Furthest[T comparable, O any](p Parser[T, O]) Parser[T, O] {
	return MapErr(p, func(err error) error { return Resolve(err) })
}
