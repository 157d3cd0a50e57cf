package comb

import "strings"

// Atomic describes an element type a Cursor can walk over. Diagnostics use
// it to count lines and to render a slice of elements as text.
type Atomic[T comparable] interface {
	// Newline returns the element that terminates a line.
	Newline() T
	// Format renders a slice of elements for error reports.
	Format(elems []T) string
}

// Bytes is the Atomic implementation for raw bytes.
var Bytes Atomic[byte] = byteAtoms{}

// Runes is the Atomic implementation for decoded runes.
var Runes Atomic[rune] = runeAtoms{}

type byteAtoms struct{}

func (byteAtoms) Newline() byte { return '\n' }

func (byteAtoms) Format(elems []byte) string {
	return strings.ToValidUTF8(string(elems), "�")
}

type runeAtoms struct{}

func (runeAtoms) Newline() rune { return '\n' }

func (runeAtoms) Format(elems []rune) string { return string(elems) }
