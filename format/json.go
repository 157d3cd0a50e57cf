package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/pcomb/grammar"
)

type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(node *grammar.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText(node *grammar.Node) ([]byte, error) {
	return json.MarshalIndent(toTree(node), "", "  ")
}

// tree is the document shape shared by the JSON and YAML encoders.
type tree struct {
	Kind     string  `json:"kind" yaml:"kind"`
	Span     span    `json:"span" yaml:"span"`
	Text     string  `json:"text,omitempty" yaml:"text,omitempty"`
	Children []*tree `json:"children,omitempty" yaml:"children,omitempty"`
}

type span struct {
	Start position `json:"start" yaml:"start"`
	End   position `json:"end" yaml:"end"`
}

// position is 1-based in lines and 0-based in bytes within the line.
type position struct {
	Offset int `json:"offset" yaml:"offset"`
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

func toTree(n *grammar.Node) *tree {
	t := &tree{
		Kind: n.Kind,
		Span: span{
			Start: toPosition(n.Span.Start, n.Span.StartLoc().LineOffset),
			End:   toPosition(n.Span.End, n.Span.EndLoc().LineOffset),
		},
	}
	if n.IsTerminal() {
		t.Text = n.Text
	}
	for _, c := range n.Children {
		t.Children = append(t.Children, toTree(c))
	}
	return t
}

func toPosition(offset int, lineOffset func() (int, int)) position {
	line, column := lineOffset()
	return position{Offset: offset, Line: line, Column: column}
}
