package format

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/pcomb/grammar"
)

type YAMLEncoder struct {
	w io.Writer
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(node *grammar.Node) error {
	enc := yaml.NewEncoder(e.w)
	enc.SetIndent(2)
	if err := enc.Encode(toTree(node)); err != nil {
		return err
	}
	return enc.Close()
}
