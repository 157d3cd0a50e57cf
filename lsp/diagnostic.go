package lsp

import (
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/pcomb/comb"
	"github.com/dhamidi/pcomb/grammar"
)

// Diagnose parses src with g and returns the diagnostics to publish: none
// on success, otherwise exactly one for the furthest failure.
func Diagnose(g *grammar.Grammar, src []byte) []protocol.Diagnostic {
	_, err := g.Parse(src)
	if err != nil {
		return []protocol.Diagnostic{diagnostic(src, err)}
	}
	return []protocol.Diagnostic{}
}

func diagnostic(src []byte, err error) protocol.Diagnostic {
	leaf := comb.Resolve(err)
	message := leaf.Error()
	if e, ok := leaf.(*comb.Error[byte]); ok {
		message = e.Message
	}

	pos := leaf.Position()
	start := Position(src, pos)
	end := start
	if pos < len(src) && src[pos] != '\n' {
		_, size := utf8.DecodeRune(src[pos:])
		end = Position(src, pos+size)
	}

	severity := protocol.DiagnosticSeverityError
	source := lsName
	return protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: end},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}

// Position converts a byte offset into an LSP position: a 0-based line and
// a character offset counted in UTF-16 code units.
func Position(src []byte, offset int) protocol.Position {
	if offset > len(src) {
		offset = len(src)
	}
	line, lineStart := 0, 0
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	character := 0
	for prefix := src[lineStart:offset]; len(prefix) > 0; {
		r, size := utf8.DecodeRune(prefix)
		if n := utf16.RuneLen(r); n > 0 {
			character += n
		} else {
			character++
		}
		prefix = prefix[size:]
	}
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(character),
	}
}
