package calc

import (
	"strings"

	"github.com/dhamidi/pcomb/ascii"
	"github.com/dhamidi/pcomb/comb"
)

// Parser returns the expression grammar:
//
//	expr   = term { ("+" | "-") term } .
//	term   = factor { ("*" | "/") factor } .
//	factor = number | "(" expr ")" | "-" factor .
//
// White space is allowed between tokens.
func Parser() comb.Parser[byte, Expr] {
	var expr, factor comb.Parser[byte, Expr]

	number := ascii.Token(comb.Map(comb.Position(ascii.Number()), func(n comb.Spanned[byte, ascii.Value]) Expr {
		return &Num{Value: n.Value.Float64(), Span: n.Span}
	}))
	group := comb.Between(
		ascii.Token(comb.IsByte('(')),
		comb.Ref(&expr),
		ascii.Token(comb.IsByte(')')),
	)
	negate := comb.Map(
		comb.Preceded(ascii.Token(comb.IsByte('-')), comb.Lazy(func() comb.Parser[byte, Expr] { return factor })),
		func(x Expr) Expr { return &Neg{X: x} },
	)

	factor = comb.Choice(number, group, negate)
	term := chain(factor, "*/")
	expr = chain(term, "+-")
	return comb.Preceded(ascii.Space(), expr)
}

// chain parses operand { op operand } and folds it to the left. Once an
// operator matched the following operand is required.
func chain(operand comb.Parser[byte, Expr], ops string) comb.Parser[byte, Expr] {
	op := ascii.Token(comb.Position(comb.Satisfy(func(b byte) bool {
		return strings.IndexByte(ops, b) >= 0
	}, "expected one of "+strings.Join(strings.Split(ops, ""), " "))))

	return comb.Func[byte, Expr](func(c comb.ByteCursor) (Expr, comb.ByteCursor, error) {
		left, cur, err := operand.Parse(c)
		if err != nil {
			return nil, c, err
		}
		for {
			o, afterOp, err := op.Parse(cur)
			if err != nil {
				return left, cur, nil
			}
			right, next, err := operand.Parse(afterOp)
			if err != nil {
				return nil, c, err
			}
			left = &Binary{Op: o.Value, Left: left, Right: right, At: o.Span.StartLoc()}
			cur = next
		}
	})
}

// Parse parses src, which must hold exactly one expression.
func Parse(src []byte) (Expr, error) {
	return comb.RunAll(Parser(), src)
}

// Eval parses and evaluates src.
func Eval(src []byte) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}
