// Package text decodes UTF-8 from a byte cursor and provides character
// level parsers built on the decoder.
package text

import (
	"errors"

	"github.com/dhamidi/pcomb/comb"
)

// Reasons a byte sequence is rejected by Char. Errors returned by Char wrap
// exactly one of them.
var (
	ErrInvalidStart        = errors.New("invalid UTF-8 start byte")
	ErrIncomplete          = errors.New("incomplete UTF-8 sequence")
	ErrInvalidContinuation = errors.New("invalid UTF-8 continuation byte")
	ErrOverlong            = errors.New("overlong UTF-8 encoding")
	ErrSurrogate           = errors.New("UTF-16 surrogate in UTF-8")
	ErrOutOfRange          = errors.New("codepoint beyond Unicode range")
)

var reasons = []error{
	ErrInvalidStart,
	ErrIncomplete,
	ErrInvalidContinuation,
	ErrOverlong,
	ErrSurrogate,
	ErrOutOfRange,
}

// ReasonOf returns the decoding reason wrapped by err, or nil if err is not
// a decoding failure.
func ReasonOf(err error) error {
	for _, r := range reasons {
		if errors.Is(err, r) {
			return r
		}
	}
	return nil
}

// Char decodes one Unicode scalar value.
//
// Invalid start bytes, overlong encodings, surrogates and codepoints above
// U+10FFFF are reported at the lead byte. A missing byte is reported where
// it was expected and a bad continuation byte where it was read.
func Char() comb.Parser[byte, rune] {
	return comb.Func[byte, rune](decode)
}

func decode(c comb.ByteCursor) (rune, comb.ByteCursor, error) {
	lead, err := c.Value()
	if err != nil {
		return 0, c, err
	}

	var (
		size  int
		cp    rune
		least rune
	)
	switch {
	case lead < 0x80:
		return rune(lead), c.Next(), nil
	case lead < 0xC0:
		return reject(c, c, ErrInvalidStart)
	case lead < 0xE0:
		size, cp, least = 2, rune(lead&0x1F), 0x80
	case lead < 0xF0:
		size, cp, least = 3, rune(lead&0x0F), 0x800
	case lead < 0xF8:
		size, cp, least = 4, rune(lead&0x07), 0x10000
	default:
		return reject(c, c, ErrInvalidStart)
	}

	cur := c.Next()
	for i := 1; i < size; i++ {
		b, err := cur.Value()
		if err != nil {
			return reject(c, cur, ErrIncomplete)
		}
		if b&0xC0 != 0x80 {
			return reject(c, cur, ErrInvalidContinuation)
		}
		cp = cp<<6 | rune(b&0x3F)
		cur = cur.Next()
	}

	switch {
	case cp < least:
		return reject(c, c, ErrOverlong)
	case cp >= 0xD800 && cp <= 0xDFFF:
		return reject(c, c, ErrSurrogate)
	case cp > 0x10FFFF:
		return reject(c, c, ErrOutOfRange)
	}
	return cp, cur, nil
}

// reject fails a decode that started at start with reason reported at at.
func reject(start, at comb.ByteCursor, reason error) (rune, comb.ByteCursor, error) {
	return 0, start, comb.Fail(at, reason)
}
