// Package config loads the .pcomb.yaml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/pcomb/ascii"
	"github.com/dhamidi/pcomb/grammar"
	"github.com/dhamidi/pcomb/text"
)

// FileName is the name of the project file looked up by Find.
const FileName = ".pcomb.yaml"

// Skip modes.
const (
	SkipNone    = "none"
	SkipASCII   = "ascii"
	SkipUnicode = "unicode"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the root YAML structure of a project file.
type Config struct {
	Grammar string    `yaml:"grammar"` // path to the EBNF grammar, relative to the file
	Start   string    `yaml:"start"`   // start production
	Skip    string    `yaml:"skip,omitempty"`
	Color   string    `yaml:"color,omitempty"`
	Log     LogConfig `yaml:"log,omitempty"`

	dir string
}

// LogConfig configures commonlog.
type LogConfig struct {
	Verbosity int    `yaml:"verbosity,omitempty"`
	File      string `yaml:"file,omitempty"` // empty logs to stderr
}

// Default returns the configuration used when no project file exists.
func Default() *Config {
	return &Config{
		Skip:  SkipUnicode,
		Color: ColorAuto,
	}
}

// Parse decodes a project file. Relative paths are resolved against dir.
func Parse(data []byte, dir string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	cfg.dir = dir
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and validates the project file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find looks for FileName in dir and its parents.
func Find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Skip {
	case SkipNone, SkipASCII, SkipUnicode:
	default:
		return fmt.Errorf("invalid skip %q: must be one of none, ascii, unicode", c.Skip)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q: must be one of auto, always, never", c.Color)
	}
	if c.Log.Verbosity < -1 {
		return fmt.Errorf("invalid log verbosity %d", c.Log.Verbosity)
	}
	return nil
}

// GrammarPath returns the grammar path resolved against the directory of
// the project file.
func (c *Config) GrammarPath() string {
	if c.Grammar == "" || filepath.IsAbs(c.Grammar) || c.dir == "" {
		return c.Grammar
	}
	return filepath.Join(c.dir, c.Grammar)
}

// SkipOption returns the grammar option for the configured skip mode, or
// nil for SkipNone.
func (c *Config) SkipOption() grammar.Option {
	switch c.Skip {
	case SkipASCII:
		return grammar.WithSkip(ascii.Space())
	case SkipUnicode:
		return grammar.WithSkip(text.Space())
	}
	return nil
}

// Compile loads and compiles the configured grammar.
func (c *Config) Compile(opts ...grammar.Option) (*grammar.Grammar, error) {
	if c.Grammar == "" {
		return nil, errors.New("no grammar configured")
	}
	if c.Start == "" {
		return nil, errors.New("no start production configured")
	}
	g, err := grammar.Load(c.GrammarPath())
	if err != nil {
		return nil, err
	}
	if skip := c.SkipOption(); skip != nil {
		opts = append([]grammar.Option{skip}, opts...)
	}
	return grammar.Compile(g, c.Start, opts...)
}
