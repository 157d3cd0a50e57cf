package main

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/fatih/color"

	"github.com/dhamidi/pcomb/comb"
)

// errReported is returned by commands that already printed their failure.
var errReported = errors.New("failure reported")

type styles struct {
	file    *color.Color
	header  *color.Color
	marker  *color.Color
	pointer *color.Color
}

func newStyles() *styles {
	return &styles{
		file:    color.New(color.Bold),
		header:  color.New(color.Bold, color.FgRed),
		marker:  color.New(color.FgHiWhite),
		pointer: color.New(color.FgYellow),
	}
}

// printReport writes the report of a parse error for the input called
// name. Colors follow color.NoColor.
func printReport(w io.Writer, name string, err error) {
	s := newStyles()
	if name != "" {
		s.file.Fprintf(w, "%s:\n", name)
	}
	for i, line := range strings.Split(strings.TrimSuffix(comb.Report(err), "\n"), "\n") {
		switch {
		case i == 0:
			s.header.Fprintln(w, line)
		case strings.HasPrefix(line, "  > "):
			s.marker.Fprintln(w, line)
		case strings.HasSuffix(line, "^--- here"):
			s.pointer.Fprintln(w, line)
		default:
			fmt.Fprintln(w, line)
		}
	}
}

// printErrors prints each error of an error list on its own line.
func printErrors(w io.Writer, err error) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		v := reflect.ValueOf(e)
		if v.Kind() == reflect.Slice {
			for i := 0; i < v.Len(); i++ {
				fmt.Fprintln(w, v.Index(i).Interface())
			}
			return
		}
	}
	fmt.Fprintln(w, err)
}
