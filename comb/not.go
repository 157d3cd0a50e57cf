package comb

// Not succeeds, without consuming input, when p fails at the cursor. When p
// matches, Not fails at the original position. Either way the cursor is
// left where it was.
func Not[T comparable, O any](p Parser[T, O]) Parser[T, struct{}] {
	return Func[T, struct{}](func(c Cursor[T]) (struct{}, Cursor[T], error) {
		if _, _, err := p.Parse(c); err == nil {
			return struct{}{}, c, Errorf(c, "negative lookahead failed: unexpected match")
		}
		return struct{}{}, c, nil
	})
}

// Peek runs p without consuming input.
func Peek[T comparable, O any](p Parser[T, O]) Parser[T, O] {
	return Func[T, O](func(c Cursor[T]) (O, Cursor[T], error) {
		v, _, err := p.Parse(c)
		if err != nil {
			return fail[T, O](c, err)
		}
		return v, c, nil
	})
}

// Eof succeeds only at end of sequence.
func Eof[T comparable]() Parser[T, struct{}] {
	return Func[T, struct{}](func(c Cursor[T]) (struct{}, Cursor[T], error) {
		if !c.EOS() {
			return struct{}{}, c, Errorf(c, "expected end of input")
		}
		return struct{}{}, c, nil
	})
}
