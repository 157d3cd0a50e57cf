package comb

// Or tries p1 and, if it fails, p2 against the same cursor. When both fail
// the error resolves to whichever alternative got further; the first wins
// ties.
func Or[T comparable, O any](p1, p2 Parser[T, O]) Parser[T, O] {
	return Func[T, O](func(c Cursor[T]) (O, Cursor[T], error) {
		out, next, err1 := p1.Parse(c)
		if err1 == nil {
			return out, next, nil
		}
		out, next, err2 := p2.Parse(c)
		if err2 == nil {
			return out, next, nil
		}
		return fail[T, O](c, &OrError{First: err1, Second: err2})
	})
}

// Choice folds alternatives into nested Or parsers, tried left to right.
// It panics when called without alternatives, which is a construction
// error in the grammar rather than a parse failure.
func Choice[T comparable, O any](alts ...Parser[T, O]) Parser[T, O] {
	if len(alts) == 0 {
		panic("comb: Choice needs at least one alternative")
	}
	p := alts[len(alts)-1]
	for i := len(alts) - 2; i >= 0; i-- {
		p = Or(alts[i], p)
	}
	return p
}
