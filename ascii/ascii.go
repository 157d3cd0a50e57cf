// Package ascii provides leaf parsers for ASCII digits, white space and
// numbers. They are built only from the public comb API.
package ascii

import "github.com/dhamidi/pcomb/comb"

// Digit matches one of '0' through '9'.
func Digit() comb.Parser[byte, byte] {
	return comb.ByteRange('0', '9')
}

// Whitespace matches a space, tab, line feed or carriage return.
func Whitespace() comb.Parser[byte, byte] {
	return comb.Choice(
		comb.IsByte(' '),
		comb.IsByte('\t'),
		comb.IsByte('\n'),
		comb.IsByte('\r'),
	)
}

// Space skips zero or more white space bytes.
func Space() comb.Parser[byte, []byte] {
	return comb.Many(Whitespace())
}

// Token runs p and skips the white space after it.
func Token[O any](p comb.Parser[byte, O]) comb.Parser[byte, O] {
	return comb.Terminated(p, Space())
}
