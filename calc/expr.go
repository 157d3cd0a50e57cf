// Package calc parses and evaluates arithmetic expressions. It is a small
// grammar written against the comb and ascii packages.
package calc

import (
	"fmt"
	"strconv"

	"github.com/dhamidi/pcomb/comb"
)

// Expr is a parsed expression.
type Expr interface {
	Eval() (float64, error)
	String() string
}

// Num is a numeric literal.
type Num struct {
	Value float64
	Span  comb.Span[byte]
}

func (n *Num) Eval() (float64, error) { return n.Value, nil }

func (n *Num) String() string { return strconv.FormatFloat(n.Value, 'g', -1, 64) }

// Neg is unary minus applied to a parenthesised or negated operand.
type Neg struct {
	X Expr
}

func (n *Neg) Eval() (float64, error) {
	v, err := n.X.Eval()
	if err != nil {
		return 0, err
	}
	return -v, nil
}

func (n *Neg) String() string { return fmt.Sprintf("(- %s)", n.X) }

// Binary is a binary operation. At is the location of the operator and is
// where evaluation errors are reported.
type Binary struct {
	Op          byte
	Left, Right Expr
	At          comb.CodeLoc[byte]
}

func (b *Binary) Eval() (float64, error) {
	l, err := b.Left.Eval()
	if err != nil {
		return 0, err
	}
	r, err := b.Right.Eval()
	if err != nil {
		return 0, err
	}
	switch b.Op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	case '/':
		if r == 0 {
			return 0, &comb.Error[byte]{Kind: comb.KindSyntax, Message: "division by zero", Loc: b.At}
		}
		return l / r, nil
	}
	return 0, &comb.Error[byte]{Kind: comb.KindSyntax, Message: fmt.Sprintf("unknown operator %q", b.Op), Loc: b.At}
}

func (b *Binary) String() string { return fmt.Sprintf("(%c %s %s)", b.Op, b.Left, b.Right) }
