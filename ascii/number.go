package ascii

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dhamidi/pcomb/comb"
)

// MaxFractionDigits bounds the digits after the decimal point accepted by F64.
const MaxFractionDigits = 15


// U64 parses one or more decimal digits. Values that do not fit are
// reported at the end of the digits.
func U64() comb.Parser[byte, uint64] {
	digits := comb.Recognize(comb.Some(Digit()))
	return comb.Func[byte, uint64](func(c comb.ByteCursor) (uint64, comb.ByteCursor, error) {
		raw, next, err := digits.Parse(c)
		if err != nil {
			return 0, c, err
		}
		v, err := strconv.ParseUint(string(raw), 10, 64)
		if err != nil {
			return 0, c, comb.Errorf(next, "number too large: %s", raw)
		}
		return v, next, nil
	})
}

// I64 parses an optionally signed decimal integer.
func I64() comb.Parser[byte, int64] {
	sign := comb.Optional(comb.Or(comb.IsByte('-'), comb.IsByte('+')))
	magnitude := U64()
	return comb.Func[byte, int64](func(c comb.ByteCursor) (int64, comb.ByteCursor, error) {
		s, cur, _ := sign.Parse(c)
		v, next, err := magnitude.Parse(cur)
		if err != nil {
			return 0, c, err
		}
		negative := s.Valid && s.Value == '-'
		switch {
		case negative && v > math.MaxInt64+1:
			return 0, c, comb.Errorf(next, "negative number too large: -%d", v)
		case negative:
			return int64(-v), next, nil
		case v > math.MaxInt64:
			return 0, c, comb.Errorf(next, "positive number too large: %d", v)
		}
		return int64(v), next, nil
	})
}

// F64 parses a decimal number of the form int '.' digits, such as "-2.50".
// No exponent is accepted and the fraction has at most MaxFractionDigits
// digits.
func F64() comb.Parser[byte, float64] {
	p := comb.And(comb.Terminated(I64(), comb.IsByte('.')), comb.Recognize(comb.Some(Digit())))
	return comb.Func[byte, float64](func(c comb.ByteCursor) (float64, comb.ByteCursor, error) {
		parts, next, err := p.Parse(c)
		if err != nil {
			return 0, c, err
		}
		if n := len(parts.Second); n > MaxFractionDigits {
			return 0, c, comb.Errorf(next, "too many fractional digits: %d (max %d)", n, MaxFractionDigits)
		}
		if i := parts.First; int64(float64(i)) != i {
			return 0, c, comb.Errorf(next, "integer part too large for f64 precision: %d", i)
		}
		raw := c.Source()[c.Position():next.Position()]
		v, err := strconv.ParseFloat(string(raw), 64)
		if err != nil || math.IsInf(v, 0) {
			return 0, c, comb.Errorf(next, "floating point overflow")
		}
		return v, next, nil
	})
}

// NumberKind tells which field of a Value is set.
type NumberKind int

const (
	Int NumberKind = iota
	Float
)

// Value is the output of the Number parser.
type Value struct {
	Kind  NumberKind
	Int   int64
	Float float64
}

// Float64 returns n as a float64 regardless of its kind.
func (n Value) Float64() float64 {
	if n.Kind == Float {
		return n.Float
	}
	return float64(n.Int)
}

func (n Value) String() string {
	if n.Kind == Float {
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	}
	return fmt.Sprint(n.Int)
}

// Number parses a float if one is present and an integer otherwise. Its
// error is already resolved to the furthest failure.
func Number() comb.Parser[byte, Value] {
	return comb.Furthest(comb.Or(
		comb.Map(F64(), func(f float64) Value { return Value{Kind: Float, Float: f} }),
		comb.Map(I64(), func(i int64) Value { return Value{Kind: Int, Int: i} }),
	))
}
