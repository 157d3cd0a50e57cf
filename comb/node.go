package comb

import (
	"errors"
	"fmt"
)

// Leaf is an innermost error: it knows where in the input it happened and
// how to render itself for a user.
type Leaf interface {
	error
	Position() int
	Report() string
}

// Node is implemented by every error a Parser returns. Combinator errors
// wrap the errors of their children; Likely descends through them and
// returns the single leaf judged most informative.
type Node interface {
	error
	Likely() Leaf
}

// Resolve returns the most informative leaf of err. Errors that are not
// part of a parse error tree resolve to a leaf at position 0.
// Resolve(nil) returns nil.
func Resolve(err error) Leaf {
	if err == nil {
		return nil
	}
	if n, ok := err.(Node); ok {
		return n.Likely()
	}
	var n Node
	if errors.As(err, &n) {
		return n.Likely()
	}
	var l Leaf
	if errors.As(err, &l) {
		return l
	}
	return foreignLeaf{err}
}

// Report renders the most informative leaf of err, or "" for a nil error.
func Report(err error) string {
	leaf := Resolve(err)
	if leaf == nil {
		return ""
	}
	return leaf.Report()
}

// Further returns whichever of a and b sits at the larger position; a wins
// ties.
func Further(a, b Leaf) Leaf {
	if b.Position() > a.Position() {
		return b
	}
	return a
}

type foreignLeaf struct{ err error }

func (f foreignLeaf) Error() string  { return f.err.Error() }
func (f foreignLeaf) Unwrap() error  { return f.err }
func (f foreignLeaf) Position() int  { return 0 }
func (f foreignLeaf) Report() string { return f.err.Error() + "\n" }

// Part names the child of a combinator that failed.
type Part int

const (
	PartFirst Part = iota
	PartSecond
	PartOpen
	PartContent
	PartClose
	PartLeft
	PartSeparator
	PartRight
)

func (p Part) String() string {
	switch p {
	case PartFirst:
		return "first parser"
	case PartSecond:
		return "second parser"
	case PartOpen:
		return "open delimiter"
	case PartContent:
		return "content"
	case PartClose:
		return "close delimiter"
	case PartLeft:
		return "left parser"
	case PartSeparator:
		return "separator"
	case PartRight:
		return "right parser"
	default:
		return fmt.Sprintf("Part(%d)", int(p))
	}
}

// AndError reports which side of a sequence failed.
type AndError struct {
	Side Part
	Err  error
}

func (e *AndError) Error() string { return fmt.Sprintf("%s failed: %v", e.Side, e.Err) }
func (e *AndError) Unwrap() error { return e.Err }
func (e *AndError) Likely() Leaf  { return Resolve(e.Err) }

// OrError holds the failures of both alternatives. It resolves to the
// alternative that got further into the input.
type OrError struct {
	First  error
	Second error
}

func (e *OrError) Error() string {
	return fmt.Sprintf("no alternative matched: %v", e.Likely())
}

func (e *OrError) Unwrap() []error { return []error{e.First, e.Second} }

func (e *OrError) Likely() Leaf {
	return Further(Resolve(e.First), Resolve(e.Second))
}

// FilterError wraps either the failure of the filtered parser or, when
// Rejected is set, the predicate rejection.
type FilterError struct {
	Rejected bool
	Err      error
}

func (e *FilterError) Error() string {
	if e.Rejected {
		return fmt.Sprintf("filter rejected: %v", e.Err)
	}
	return e.Err.Error()
}

func (e *FilterError) Unwrap() error { return e.Err }
func (e *FilterError) Likely() Leaf  { return Resolve(e.Err) }

// BetweenError reports which part of a delimited construct failed.
type BetweenError struct {
	Part Part
	Err  error
}

func (e *BetweenError) Error() string { return fmt.Sprintf("%s failed: %v", e.Part, e.Err) }
func (e *BetweenError) Unwrap() error { return e.Err }
func (e *BetweenError) Likely() Leaf  { return Resolve(e.Err) }

// SeparatedListError reports the failure of the item at Index.
type SeparatedListError struct {
	Index int
	Err   error
}

func (e *SeparatedListError) Error() string {
	return fmt.Sprintf("list item %d failed: %v", e.Index, e.Err)
}

func (e *SeparatedListError) Unwrap() error { return e.Err }
func (e *SeparatedListError) Likely() Leaf  { return Resolve(e.Err) }

// SeparatedPairError reports which slot of a pair failed.
type SeparatedPairError struct {
	Part Part
	Err  error
}

func (e *SeparatedPairError) Error() string { return fmt.Sprintf("%s failed: %v", e.Part, e.Err) }
func (e *SeparatedPairError) Unwrap() error { return e.Err }
func (e *SeparatedPairError) Likely() Leaf  { return Resolve(e.Err) }

// ThenOptionallyError wraps the failure of the required first parser.
type ThenOptionallyError struct {
	Err error
}

func (e *ThenOptionallyError) Error() string { return fmt.Sprintf("required parser failed: %v", e.Err) }
func (e *ThenOptionallyError) Unwrap() error { return e.Err }
func (e *ThenOptionallyError) Likely() Leaf  { return Resolve(e.Err) }
