package comb

// Lazy defers building a parser until parse time. It lets a grammar rule
// refer to itself, or to a rule defined after it, without recursing forever
// while the grammar is being constructed. factory runs on every Parse call.
func Lazy[T comparable, O any](factory func() Parser[T, O]) Parser[T, O] {
	return Func[T, O](func(c Cursor[T]) (O, Cursor[T], error) {
		return factory().Parse(c)
	})
}

// Ref returns a parser that forwards to *target at parse time. It is the
// usual way to tie a recursive grammar together:
//
//	var expr comb.Parser[byte, int]
//	atom := comb.Or(number, comb.Between(open, comb.Ref(&expr), close))
//	expr = ...
func Ref[T comparable, O any](target *Parser[T, O]) Parser[T, O] {
	return Lazy(func() Parser[T, O] { return *target })
}
