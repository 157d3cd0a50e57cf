// Package grammar compiles EBNF grammars into comb parsers that build a
// concrete syntax tree.
//
// Grammars use the notation of golang.org/x/exp/ebnf. Productions whose
// name starts with a lowercase letter are lexical: nothing is skipped
// inside them and a reference from a syntactic production produces a single
// terminal node. Alternatives are tried in order and the first match wins.
package grammar

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

// Load loads an EBNF grammar from a file.
func Load(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return Parse(filename, f)
}

// Parse reads an EBNF grammar from r. name is used in error positions.
func Parse(name string, r io.Reader) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// Check verifies g for the start production: every production is defined
// and reachable, lexical productions refer only to lexical productions and
// no production is left recursive.
func Check(g ebnf.Grammar, start string) error {
	if err := ebnf.Verify(g, start); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	if cycle := leftRecursion(g); cycle != nil {
		return fmt.Errorf("verify grammar: left recursion: %s", strings.Join(cycle, " -> "))
	}
	return nil
}

// IsLexical reports whether name denotes a lexical production.
func IsLexical(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(r)
}

// leftRecursion returns a cycle of productions that can call themselves
// without consuming input, or nil.
func leftRecursion(g ebnf.Grammar) []string {
	nullable := nullables(g)

	edges := make(map[string][]string, len(g))
	for name, prod := range g {
		seen := make(map[string]bool)
		leftNames(prod.Expr, nullable, func(n string) {
			if !seen[n] {
				seen[n] = true
				edges[name] = append(edges[name], n)
			}
		})
		sort.Strings(edges[name])
	}

	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)

	const (
		unvisited = iota
		active
		done
	)
	state := make(map[string]int, len(g))
	var path []string
	var visit func(string) []string
	visit = func(n string) []string {
		switch state[n] {
		case active:
			for i, p := range path {
				if p == n {
					return append(append([]string{}, path[i:]...), n)
				}
			}
		case done:
			return nil
		}
		state[n] = active
		path = append(path, n)
		for _, next := range edges[n] {
			if _, ok := g[next]; !ok {
				continue
			}
			if cycle := visit(next); cycle != nil {
				return cycle
			}
		}
		path = path[:len(path)-1]
		state[n] = done
		return nil
	}
	for _, n := range names {
		if cycle := visit(n); cycle != nil {
			return cycle
		}
	}
	return nil
}

// nullables computes which productions can match the empty string.
func nullables(g ebnf.Grammar) map[string]bool {
	nullable := make(map[string]bool)
	for changed := true; changed; {
		changed = false
		for name, prod := range g {
			if !nullable[name] && canBeEmpty(prod.Expr, nullable) {
				nullable[name] = true
				changed = true
			}
		}
	}
	return nullable
}

func canBeEmpty(expr ebnf.Expression, nullable map[string]bool) bool {
	switch e := expr.(type) {
	case nil:
		return true
	case *ebnf.Token:
		return e.String == ""
	case *ebnf.Range:
		return false
	case ebnf.Sequence:
		for _, item := range e {
			if !canBeEmpty(item, nullable) {
				return false
			}
		}
		return true
	case ebnf.Alternative:
		for _, alt := range e {
			if canBeEmpty(alt, nullable) {
				return true
			}
		}
		return false
	case *ebnf.Option, *ebnf.Repetition:
		return true
	case *ebnf.Group:
		return canBeEmpty(e.Body, nullable)
	case *ebnf.Name:
		return nullable[e.String]
	}
	return false
}

// leftNames calls fn for every production name that expr may invoke before
// consuming any input.
func leftNames(expr ebnf.Expression, nullable map[string]bool, fn func(string)) {
	switch e := expr.(type) {
	case ebnf.Sequence:
		for _, item := range e {
			leftNames(item, nullable, fn)
			if !canBeEmpty(item, nullable) {
				return
			}
		}
	case ebnf.Alternative:
		for _, alt := range e {
			leftNames(alt, nullable, fn)
		}
	case *ebnf.Option:
		leftNames(e.Body, nullable, fn)
	case *ebnf.Repetition:
		leftNames(e.Body, nullable, fn)
	case *ebnf.Group:
		leftNames(e.Body, nullable, fn)
	case *ebnf.Name:
		fn(e.String)
	}
}
