package text

import "github.com/dhamidi/pcomb/comb"

// Space skips zero or more Unicode white space characters.
func Space() comb.Parser[byte, []rune] {
	return comb.Many(Whitespace())
}

// Spaced runs p and then skips trailing white space.
func Spaced[O any](p comb.Parser[byte, O]) comb.Parser[byte, O] {
	return comb.Terminated(p, Space())
}

// SpacedBetween is comb.Between with optional white space after open and
// before close.
func SpacedBetween[A, O, B any](open comb.Parser[byte, A], content comb.Parser[byte, O], close comb.Parser[byte, B]) comb.Parser[byte, O] {
	return comb.Between(
		comb.Terminated(open, Space()),
		content,
		comb.Preceded(Space(), close),
	)
}

// SpacedList is comb.SeparatedList where the separator is the literal sep,
// optionally surrounded by white space. A trailing separator is an error.
func SpacedList[O any](item comb.Parser[byte, O], sep string) comb.Parser[byte, []O] {
	return comb.SeparatedList(item, comb.Preceded(Space(), Spaced(String(sep))))
}

// SpacedPair is comb.SeparatedPair with optional white space around sep.
func SpacedPair[A, S, B any](left comb.Parser[byte, A], sep comb.Parser[byte, S], right comb.Parser[byte, B]) comb.Parser[byte, comb.Pair[A, B]] {
	return comb.SeparatedPair(left, comb.Preceded(Space(), Spaced(sep)), right)
}
