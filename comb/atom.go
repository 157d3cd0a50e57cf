package comb

import (
	"cmp"
	"fmt"
)

// Any consumes and returns one element.
func Any[T comparable]() Parser[T, T] {
	return Func[T, T](func(c Cursor[T]) (T, Cursor[T], error) {
		v, err := c.Value()
		if err != nil {
			return fail[T, T](c, err)
		}
		return v, c.Next(), nil
	})
}

// Satisfy consumes one element for which pred holds. message describes what
// was expected.
func Satisfy[T comparable](pred func(T) bool, message string) Parser[T, T] {
	return Func[T, T](func(c Cursor[T]) (T, Cursor[T], error) {
		v, err := c.Value()
		if err != nil {
			return fail[T, T](c, err)
		}
		if !pred(v) {
			return fail[T, T](c, Errorf(c, "%s, found %s", message, describe(c, v)))
		}
		return v, c.Next(), nil
	})
}

// Is consumes one element equal to want.
func Is[T comparable](want T) Parser[T, T] {
	return Func[T, T](func(c Cursor[T]) (T, Cursor[T], error) {
		v, err := c.Value()
		if err != nil {
			return fail[T, T](c, err)
		}
		if v != want {
			return fail[T, T](c, Errorf(c, "expected %s, found %s", describe(c, want), describe(c, v)))
		}
		return v, c.Next(), nil
	})
}

// InRange consumes one element in the inclusive range [lo, hi].
func InRange[T cmp.Ordered](lo, hi T) Parser[T, T] {
	return Func[T, T](func(c Cursor[T]) (T, Cursor[T], error) {
		v, err := c.Value()
		if err != nil {
			return fail[T, T](c, err)
		}
		if v < lo || v > hi {
			return fail[T, T](c, Errorf(c, "expected element in range %s-%s, found %s",
				describe(c, lo), describe(c, hi), describe(c, v)))
		}
		return v, c.Next(), nil
	})
}

// Seq consumes the elements of want in order and returns the matched slice
// of the source. A mismatch is reported at the first differing element.
func Seq[T comparable](want []T) Parser[T, []T] {
	return Func[T, []T](func(c Cursor[T]) ([]T, Cursor[T], error) {
		cur := c
		for _, w := range want {
			v, err := cur.Value()
			if err != nil {
				return fail[T, []T](c, Errorf(cur, "expected %s, but reached end of input while matching %s",
					describe(c, w), describeSlice(c, want)))
			}
			if v != w {
				return fail[T, []T](c, Errorf(cur, "expected %s, found %s while matching %s",
					describe(c, w), describe(c, v), describeSlice(c, want)))
			}
			cur = cur.Next()
		}
		return c.Source()[c.Position():cur.Position()], cur, nil
	})
}

// Byte consumes any single byte.
func Byte() Parser[byte, byte] { return Any[byte]() }

// IsByte consumes the byte b.
func IsByte(b byte) Parser[byte, byte] { return Is(b) }

// ByteRange consumes a byte in [lo, hi].
func ByteRange(lo, hi byte) Parser[byte, byte] { return InRange(lo, hi) }

// Tag consumes the literal bytes of s.
func Tag(s string) Parser[byte, []byte] { return Seq([]byte(s)) }

func describe[T comparable](c Cursor[T], v T) string {
	switch x := any(v).(type) {
	case byte:
		if x >= 0x20 && x < 0x7f {
			return fmt.Sprintf("byte 0x%02X ('%c')", x, x)
		}
		return fmt.Sprintf("byte 0x%02X", x)
	case rune:
		return fmt.Sprintf("%q", x)
	}
	if atoms := c.Atoms(); atoms != nil {
		return fmt.Sprintf("%q", atoms.Format([]T{v}))
	}
	return fmt.Sprintf("%v", v)
}

func describeSlice[T comparable](c Cursor[T], v []T) string {
	if atoms := c.Atoms(); atoms != nil {
		return fmt.Sprintf("%q", atoms.Format(v))
	}
	return fmt.Sprintf("%v", v)
}
