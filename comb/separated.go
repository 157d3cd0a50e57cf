package comb

// SeparatedList parses one or more items separated by sep. Once a separator
// matched, another item is required: a trailing separator is an error.
// The list ends when a separator and item together consume nothing.
func SeparatedList[T comparable, O, S any](item Parser[T, O], sep Parser[T, S]) Parser[T, []O] {
	return Func[T, []O](func(c Cursor[T]) ([]O, Cursor[T], error) {
		first, cur, err := item.Parse(c)
		if err != nil {
			return fail[T, []O](c, &SeparatedListError{Index: 0, Err: err})
		}
		out := []O{first}
		for {
			_, afterSep, err := sep.Parse(cur)
			if err != nil {
				return out, cur, nil
			}
			v, next, err := item.Parse(afterSep)
			if err != nil {
				return fail[T, []O](c, &SeparatedListError{Index: len(out), Err: err})
			}
			if next.Position() == cur.Position() {
				return out, cur, nil
			}
			out = append(out, v)
			cur = next
		}
	})
}

// SeparatedPair parses left, sep and right and returns left and right.
func SeparatedPair[T comparable, A, S, B any](left Parser[T, A], sep Parser[T, S], right Parser[T, B]) Parser[T, Pair[A, B]] {
	return Func[T, Pair[A, B]](func(c Cursor[T]) (Pair[A, B], Cursor[T], error) {
		a, next, err := left.Parse(c)
		if err != nil {
			return fail[T, Pair[A, B]](c, &SeparatedPairError{Part: PartLeft, Err: err})
		}
		_, next, err = sep.Parse(next)
		if err != nil {
			return fail[T, Pair[A, B]](c, &SeparatedPairError{Part: PartSeparator, Err: err})
		}
		b, next, err := right.Parse(next)
		if err != nil {
			return fail[T, Pair[A, B]](c, &SeparatedPairError{Part: PartRight, Err: err})
		}
		return Pair[A, B]{First: a, Second: b}, next, nil
	})
}
