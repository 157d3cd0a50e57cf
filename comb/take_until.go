package comb

// TakeUntil applies p repeatedly and collects its outputs until an output
// satisfies stop. The element that satisfied stop is not consumed. Reaching
// end of input ends the scan; a failure of p is returned.
func TakeUntil[T comparable, O any](p Parser[T, O], stop func(O) bool) Parser[T, []O] {
	return Func[T, []O](func(c Cursor[T]) ([]O, Cursor[T], error) {
		var out []O
		cur := c
		for !cur.EOS() {
			v, next, err := p.Parse(cur)
			if err != nil {
				return fail[T, []O](c, err)
			}
			if stop(v) {
				return out, cur, nil
			}
			out = append(out, v)
			if next.Position() == cur.Position() {
				return fail[T, []O](c, Errorf(cur, "parser made no progress"))
			}
			cur = next
		}
		return out, cur, nil
	})
}
