package comb

// Filter runs p and accepts its output only when pred holds. A rejection is
// reported at the position where p started, with message as the text.
func Filter[T comparable, O any](p Parser[T, O], pred func(O) bool, message string) Parser[T, O] {
	return Func[T, O](func(c Cursor[T]) (O, Cursor[T], error) {
		v, next, err := p.Parse(c)
		if err != nil {
			return fail[T, O](c, &FilterError{Err: err})
		}
		if !pred(v) {
			return fail[T, O](c, &FilterError{Rejected: true, Err: Errorf(c, "%s", message)})
		}
		return v, next, nil
	})
}
