package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"golang.org/x/term"

	"github.com/dhamidi/pcomb/config"
)

type globalOptions struct {
	verbose    int
	logFile    string
	color      string
	configPath string

	cfg *config.Config
}

// setup loads the project file and configures logging and colors. Flags
// take precedence over the project file.
func (o *globalOptions) setup() error {
	cfg, err := o.project()
	if err != nil {
		return err
	}

	if o.color != "" {
		cfg.Color = o.color
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	verbosity := cfg.Log.Verbosity + o.verbose
	logFile := cfg.Log.File
	if o.logFile != "" {
		logFile = o.logFile
	}
	if logFile != "" {
		commonlog.Configure(verbosity, &logFile)
	} else {
		commonlog.Configure(verbosity, nil)
	}

	color.NoColor = !colorEnabled(cfg.Color, os.Stderr)
	return nil
}

// project returns the project configuration: the file named by --config,
// else the nearest .pcomb.yaml above the working directory, else defaults.
func (o *globalOptions) project() (*config.Config, error) {
	if o.cfg != nil {
		return o.cfg, nil
	}

	path := o.configPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		found, ok := config.Find(wd)
		if !ok {
			o.cfg = config.Default()
			return o.cfg, nil
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	commonlog.GetLogger("pcomb").Debugf("using project file %s", path)
	o.cfg = cfg
	return cfg, nil
}

// grammarFlags are shared by commands that compile a grammar.
type grammarFlags struct {
	grammar string
	start   string
	skip    string
}

func (f *grammarFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.grammar, "grammar", "g", "", "EBNF grammar file (default: from project file)")
	cmd.Flags().StringVarP(&f.start, "start", "s", "", "start production (default: from project file)")
	cmd.Flags().StringVar(&f.skip, "skip", "", "white space skipped between tokens: none, ascii, unicode")
}

// apply overrides cfg with the flags that were given.
func (f *grammarFlags) apply(cfg *config.Config) error {
	if f.grammar != "" {
		abs, err := filepath.Abs(f.grammar)
		if err != nil {
			return err
		}
		cfg.Grammar = abs
	}
	if f.start != "" {
		cfg.Start = f.start
	}
	if f.skip != "" {
		cfg.Skip = f.skip
	}
	return cfg.Validate()
}

func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
