package comb

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// contextRadius is the number of lines shown before and after the failing
// line in a report.
const contextRadius = 2

// CodeLoc is a location in a source sequence. It borrows the source; nothing
// is copied.
type CodeLoc[T comparable] struct {
	source []T
	index  int
	atoms  Atomic[T]
}

// NewCodeLoc returns the location index within source.
func NewCodeLoc[T comparable](source []T, index int, atoms Atomic[T]) CodeLoc[T] {
	return CodeLoc[T]{source: source, index: index, atoms: atoms}
}

// Position returns the absolute index of the location.
func (l CodeLoc[T]) Position() int { return l.index }

// Source returns the sequence the location points into.
func (l CodeLoc[T]) Source() []T { return l.source }

// LineOffset returns the 1-based line number and the 0-based element offset
// within that line. The offset counts elements, not display columns.
func (l CodeLoc[T]) LineOffset() (line, offset int) {
	nl := l.newline()
	line = 1
	lineStart := 0
	for i := 0; i < l.index && i < len(l.source); i++ {
		if l.source[i] == nl {
			line++
			lineStart = i + 1
		}
	}
	return line, l.index - lineStart
}

// Context renders up to two lines before and after the location's line.
// The failing line is marked with '>' and followed by a pointer line.
func (l CodeLoc[T]) Context() []string {
	errLine, errOffset := l.LineOffset()
	nl := l.newline()

	var out []string
	emit := func(number int, elems []T) {
		if number < errLine-contextRadius || number > errLine+contextRadius {
			return
		}
		text := strings.TrimSuffix(l.format(elems), "\r")
		if number != errLine {
			out = append(out, fmt.Sprintf("    %d | %s", number, text))
			return
		}
		prefix := fmt.Sprintf("  > %d | ", number)
		out = append(out, prefix+text)
		col := errOffset
		if col > len(elems) {
			col = len(elems)
		}
		width := utf8.RuneCountInString(l.format(elems[:col])) + errOffset - col
		out = append(out, strings.Repeat(" ", len(prefix)+width)+"^--- here")
	}

	number := 1
	start := 0
	for i, e := range l.source {
		if e == nl {
			emit(number, l.source[start:i])
			number++
			start = i + 1
		}
	}
	if start < len(l.source) || number == errLine {
		emit(number, l.source[start:])
	}
	return out
}

func (l CodeLoc[T]) String() string {
	line, offset := l.LineOffset()
	return fmt.Sprintf("line %d, byte offset %d", line, offset)
}

func (l CodeLoc[T]) newline() T {
	if l.atoms == nil {
		var zero T
		return zero
	}
	return l.atoms.Newline()
}

func (l CodeLoc[T]) format(elems []T) string {
	if l.atoms == nil {
		return fmt.Sprint(elems)
	}
	return l.atoms.Format(elems)
}
