package comb

// Many applies p until it fails and collects the outputs. It never fails;
// the returned cursor is the one before the failing attempt. An iteration
// that succeeds without consuming input ends the repetition.
func Many[T comparable, O any](p Parser[T, O]) Parser[T, []O] {
	return Func[T, []O](func(c Cursor[T]) ([]O, Cursor[T], error) {
		out, next := repeat(p, c, nil)
		return out, next, nil
	})
}

// Some is Many that requires at least one match.
func Some[T comparable, O any](p Parser[T, O]) Parser[T, []O] {
	return Func[T, []O](func(c Cursor[T]) ([]O, Cursor[T], error) {
		first, next, err := p.Parse(c)
		if err != nil {
			return fail[T, []O](c, err)
		}
		out := []O{first}
		if next.Position() == c.Position() {
			return out, next, nil
		}
		out, next = repeat(p, next, out)
		return out, next, nil
	})
}

func repeat[T comparable, O any](p Parser[T, O], c Cursor[T], out []O) ([]O, Cursor[T]) {
	for {
		v, next, err := p.Parse(c)
		if err != nil {
			return out, c
		}
		out = append(out, v)
		if next.Position() == c.Position() {
			return out, next
		}
		c = next
	}
}
