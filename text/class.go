package text

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/dhamidi/pcomb/comb"
)

// IsChar matches the character want.
func IsChar(want rune) comb.Parser[byte, rune] {
	return comb.Func[byte, rune](func(c comb.ByteCursor) (rune, comb.ByteCursor, error) {
		r, next, err := decode(c)
		if err != nil {
			return 0, c, err
		}
		if r != want {
			return 0, c, comb.Errorf(c, "expected %q, found %q", want, r)
		}
		return r, next, nil
	})
}

// String matches s character by character. A mismatch is reported at the
// first character that differs.
func String(s string) comb.Parser[byte, string] {
	return comb.Func[byte, string](func(c comb.ByteCursor) (string, comb.ByteCursor, error) {
		cur := c
		for _, want := range s {
			r, next, err := decode(cur)
			switch {
			case errors.Is(err, comb.ErrReadAtEOF):
				return "", c, comb.Errorf(cur, "expected %q, but reached end of input while matching %q", want, s)
			case err != nil:
				return "", c, err
			case r != want:
				return "", c, comb.Errorf(cur, "expected %q, found %q while matching %q", want, r, s)
			}
			cur = next
		}
		return s, cur, nil
	})
}

// Letter matches a Unicode letter.
func Letter() comb.Parser[byte, rune] {
	return comb.Filter(Char(), unicode.IsLetter, "expected Unicode letter")
}

// Digit matches any Unicode number, not only ASCII digits.
func Digit() comb.Parser[byte, rune] {
	return comb.Filter(Char(), unicode.IsNumber, "expected Unicode digit")
}

// Alphanumeric matches a Unicode letter or number.
func Alphanumeric() comb.Parser[byte, rune] {
	return comb.Filter(Char(), func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r)
	}, "expected Unicode letter or digit")
}

// Whitespace matches one Unicode white space character.
func Whitespace() comb.Parser[byte, rune] {
	return comb.Filter(Char(), unicode.IsSpace, "expected Unicode whitespace")
}

// Class matches a character in any of the given range tables, for example
// Class("Greek letter", unicode.Greek).
func Class(name string, tables ...*unicode.RangeTable) comb.Parser[byte, rune] {
	return comb.Filter(Char(), func(r rune) bool {
		return unicode.IsOneOf(tables, r)
	}, fmt.Sprintf("expected %s", name))
}

// Range matches a character in [lo, hi].
func Range(lo, hi rune) comb.Parser[byte, rune] {
	return comb.Func[byte, rune](func(c comb.ByteCursor) (rune, comb.ByteCursor, error) {
		r, next, err := decode(c)
		if err != nil {
			return 0, c, err
		}
		if r < lo || r > hi {
			return 0, c, comb.Errorf(c, "expected character in range %q-%q, found %q", lo, hi, r)
		}
		return r, next, nil
	})
}
