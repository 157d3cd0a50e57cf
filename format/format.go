// Package format renders syntax trees produced by the grammar package.
package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/pcomb/grammar"
)

// Encoder writes a syntax tree to an underlying writer.
type Encoder interface {
	Encode(n *grammar.Node) error
}

// Names lists the formats accepted by New.
var Names = []string{"sexpr", "tree", "json", "yaml"}

// New returns the encoder for the named format.
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "sexpr":
		return &textEncoder{w: w, render: (*grammar.Node).String}, nil
	case "tree":
		return &textEncoder{w: w, render: (*grammar.Node).Dump}, nil
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s", name)
}

type textEncoder struct {
	w      io.Writer
	render func(*grammar.Node) string
}

func (e *textEncoder) Encode(n *grammar.Node) error {
	text := e.render(n)
	if len(text) == 0 || text[len(text)-1] != '\n' {
		text += "\n"
	}
	_, err := io.WriteString(e.w, text)
	return err
}
