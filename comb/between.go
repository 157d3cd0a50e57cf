package comb

// Between parses open, content and close in order and returns the content.
// It does not skip whitespace; compose that in explicitly so error
// locations stay exact.
func Between[T comparable, A, O, B any](open Parser[T, A], content Parser[T, O], close Parser[T, B]) Parser[T, O] {
	return Func[T, O](func(c Cursor[T]) (O, Cursor[T], error) {
		_, next, err := open.Parse(c)
		if err != nil {
			return fail[T, O](c, &BetweenError{Part: PartOpen, Err: err})
		}
		v, next, err := content.Parse(next)
		if err != nil {
			return fail[T, O](c, &BetweenError{Part: PartContent, Err: err})
		}
		_, next, err = close.Parse(next)
		if err != nil {
			return fail[T, O](c, &BetweenError{Part: PartClose, Err: err})
		}
		return v, next, nil
	})
}
