package comb

// All applies p until end of sequence and collects the outputs. Unlike
// Many, a failure before the end is returned: it means the input could not
// be consumed completely by p. Empty input yields an empty slice.
func All[T comparable, O any](p Parser[T, O]) Parser[T, []O] {
	return Func[T, []O](func(c Cursor[T]) ([]O, Cursor[T], error) {
		out := []O{}
		cur := c
		for !cur.EOS() {
			v, next, err := p.Parse(cur)
			if err != nil {
				return fail[T, []O](c, err)
			}
			if next.Position() == cur.Position() {
				return fail[T, []O](c, Errorf(cur, "parser made no progress"))
			}
			out = append(out, v)
			cur = next
		}
		return out, cur, nil
	})
}
