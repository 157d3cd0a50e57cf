package comb

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a leaf error.
type Kind int

const (
	// KindSyntax is a parse failure produced by a parser.
	KindSyntax Kind = iota
	// KindUnexpectedEOF is reported by Cursor.TryNext when stepping off the
	// last element.
	KindUnexpectedEOF
	// KindAlreadyAtEOF is reported by Cursor.TryNext at end of sequence.
	KindAlreadyAtEOF
	// KindReadAtEOF is reported by Cursor.Value at end of sequence.
	KindReadAtEOF
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax error"
	case KindUnexpectedEOF:
		return "unexpected end of file"
	case KindAlreadyAtEOF:
		return "already at end of file"
	case KindReadAtEOF:
		return "cannot read value at end of file"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinel causes of the end-of-sequence kinds, matched with errors.Is.
var (
	ErrUnexpectedEOF = errors.New("unexpected end of file")
	ErrAlreadyAtEOF  = errors.New("already at end of file")
	ErrReadAtEOF     = errors.New("cannot read value at end of file")
)

// Error is the leaf error of the package: a message anchored at a location.
type Error[T comparable] struct {
	Kind    Kind
	Message string
	Loc     CodeLoc[T]
	// Err is an optional cause, exposed through Unwrap.
	Err error
}

// Errorf returns a syntax error at the position of c.
func Errorf[T comparable](c Cursor[T], format string, args ...any) *Error[T] {
	return &Error[T]{Kind: KindSyntax, Message: fmt.Sprintf(format, args...), Loc: c.Loc()}
}

// Fail returns a syntax error at the position of c whose message and cause
// is err. Use it with sentinel errors so callers can match with errors.Is.
func Fail[T comparable](c Cursor[T], err error) *Error[T] {
	return &Error[T]{Kind: KindSyntax, Message: err.Error(), Loc: c.Loc(), Err: err}
}

func newEOFError[T comparable](kind Kind, loc CodeLoc[T]) *Error[T] {
	e := &Error[T]{Kind: kind, Message: kind.String(), Loc: loc}
	switch kind {
	case KindUnexpectedEOF:
		e.Err = ErrUnexpectedEOF
	case KindAlreadyAtEOF:
		e.Err = ErrAlreadyAtEOF
	case KindReadAtEOF:
		e.Err = ErrReadAtEOF
	}
	return e
}

func (e *Error[T]) Error() string {
	if e.Kind == KindSyntax {
		return fmt.Sprintf("syntax error at %s: %s", e.Loc, e.Message)
	}
	return fmt.Sprintf("%s at %s", e.Kind, e.Loc)
}

func (e *Error[T]) Unwrap() error { return e.Err }

// Position returns the absolute index the error is anchored at.
func (e *Error[T]) Position() int { return e.Loc.Position() }

// Likely returns e; a leaf resolves to itself.
func (e *Error[T]) Likely() Leaf { return e }

// Report renders the error as a multi-line diagnostic with source context.
func (e *Error[T]) Report() string {
	line, offset := e.Loc.LineOffset()

	var b strings.Builder
	switch e.Kind {
	case KindSyntax:
		fmt.Fprintf(&b, "Syntax error at line %d, byte offset %d: %s\n", line, offset, e.Message)
	case KindUnexpectedEOF:
		fmt.Fprintf(&b, "Unexpected end of file at line %d, byte offset %d (absolute position: %d)\n",
			line, offset, e.Loc.Position())
	case KindAlreadyAtEOF:
		fmt.Fprintf(&b, "Already at end of file at line %d, byte offset %d\n", line, offset)
	default:
		fmt.Fprintf(&b, "Cannot read value at end of file at line %d, byte offset %d\n", line, offset)
	}
	b.WriteString("\n")
	for _, l := range e.Loc.Context() {
		b.WriteString(l)
		b.WriteString("\n")
	}
	return b.String()
}
