package grammar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/pcomb/ascii"
	"github.com/dhamidi/pcomb/comb"
	"github.com/dhamidi/pcomb/text"
)

const arithmetic = `
Expr   = Term { ( "+" | "-" ) Term } .
Term   = Factor { ( "*" | "/" ) Factor } .
Factor = number | "(" Expr ")" .
number = digit { digit } .
digit  = "0" … "9" .
`

func compile(t *testing.T, src, start string, opts ...Option) *Grammar {
	t.Helper()
	g, err := Parse("test", strings.NewReader(src))
	require.NoError(t, err)
	compiled, err := Compile(g, start, opts...)
	require.NoError(t, err)
	return compiled
}

func TestCompileArithmetic(t *testing.T) {
	g := compile(t, arithmetic, "Expr", WithSkip(text.Space()))
	assert.Equal(t, "Expr", g.Start())

	tree, err := g.Parse([]byte("1 + 2*(3 - 4)"))
	require.NoError(t, err)
	want := `(Expr (Term (Factor (number "1"))) "+" ` +
		`(Term (Factor (number "2")) "*" ` +
		`(Factor "(" (Expr (Term (Factor (number "3"))) "-" (Term (Factor (number "4")))) ")")))`
	assert.Equal(t, want, tree.String())

	assert.Equal(t, 0, tree.Span.Start)
	assert.Equal(t, 13, tree.Span.End)

	numbers := tree.Find("number")
	require.Len(t, numbers, 4)
	var texts []string
	for _, n := range numbers {
		assert.True(t, n.IsTerminal())
		texts = append(texts, n.Text)
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, texts)
	assert.Equal(t, 4, numbers[1].Span.Start)
}

func TestLexicalProductionsDoNotSkip(t *testing.T) {
	g := compile(t, arithmetic, "Expr", WithSkip(ascii.Space()))

	tree, err := g.Parse([]byte("  12 "))
	require.NoError(t, err)
	numbers := tree.Find("number")
	require.Len(t, numbers, 1)
	assert.Equal(t, "12", numbers[0].Text)
	assert.Equal(t, 2, tree.Span.Start)
	assert.Equal(t, 4, tree.Span.End)

	// Skipping happens between tokens, never inside a lexical production.
	_, err = g.Parse([]byte("1 2"))
	require.Error(t, err)
	assert.Equal(t, 2, comb.Resolve(err).Position())
}

func TestWithoutSkip(t *testing.T) {
	g := compile(t, arithmetic, "Expr")

	_, err := g.Parse([]byte("1+2"))
	require.NoError(t, err)

	_, err = g.Parse([]byte("1 + 2"))
	require.Error(t, err)
	assert.Equal(t, 1, comb.Resolve(err).Position())
}

func TestParseErrors(t *testing.T) {
	g := compile(t, arithmetic, "Expr", WithSkip(text.Space()))

	tests := []struct {
		input string
		pos   int
	}{
		{"(1 + 2", 6},
		{"", 0},
		{"()", 1},
		{"1 +", 3},
		{"1 + (2 * )", 9},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := g.Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Equal(t, tt.pos, comb.Resolve(err).Position())
			assert.NotEmpty(t, comb.Report(err))
		})
	}
}

func TestRepetitionReportsAbandonedFailure(t *testing.T) {
	g := compile(t, arithmetic, "Expr", WithSkip(text.Space()))

	// The repetition stops before "+ (2 * )" but the failure inside it got
	// further than "expected end of input" at the "+".
	_, err := g.Parse([]byte("1 + (2 * )"))
	require.Error(t, err)
	leaf := comb.Resolve(err)
	assert.Equal(t, 9, leaf.Position())
	assert.Contains(t, leaf.Error(), "expected character in range '0'-'9', found ')'")

	_, err = g.Parse([]byte("1 2"))
	require.Error(t, err)
	assert.Contains(t, comb.Resolve(err).Error(), "expected end of input")
}

func TestParserLeavesRest(t *testing.T) {
	g := compile(t, arithmetic, "Expr", WithSkip(text.Space()))

	tree, rest, err := comb.Run(g.Parser(), []byte("1 + 2 rest"))
	require.NoError(t, err)
	assert.Equal(t, "Expr", tree.Kind)
	assert.Equal(t, 5, rest.Position())
}

func TestLexicalStart(t *testing.T) {
	g := compile(t, `
ident  = letter { letter | digit } .
letter = "a" … "z" .
digit  = "0" … "9" .
`, "ident")

	tree, err := g.Parse([]byte("abc1"))
	require.NoError(t, err)
	assert.True(t, tree.IsTerminal())
	assert.Equal(t, "ident", tree.Kind)
	assert.Equal(t, "abc1", tree.Text)

	_, err = g.Parse([]byte("1abc"))
	require.Error(t, err)
	assert.Contains(t, comb.Resolve(err).Error(), "expected character in range 'a'-'z'")
}

func TestOrderedAlternatives(t *testing.T) {
	g := compile(t, `S = "a" | "ab" .`, "S")
	_, err := g.Parse([]byte("ab"))
	require.Error(t, err, "the first matching alternative wins")

	g = compile(t, `S = "ab" | "a" .`, "S")
	tree, err := g.Parse([]byte("ab"))
	require.NoError(t, err)
	assert.Equal(t, `(S "ab")`, tree.String())
}

func TestEmptyProduction(t *testing.T) {
	g := compile(t, `
List  = "[" Items "]" .
Items = [ Item { "," Item } ] .
Item  = "x" .
`, "List")

	tree, err := g.Parse([]byte("[]"))
	require.NoError(t, err)
	assert.Equal(t, `(List "[" (Items) "]")`, tree.String())

	tree, err = g.Parse([]byte("[x,x]"))
	require.NoError(t, err)
	assert.Equal(t, `(List "[" (Items (Item "x") "," (Item "x")) "]")`, tree.String())
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		start   string
		message string
	}{
		{"direct left recursion", `A = A "x" | "y" .`, "A", "left recursion: A -> A"},
		{"hidden left recursion", `A = [ "x" ] B . B = A "y" .`, "A", "left recursion: A -> B -> A"},
		{"missing production", `A = B .`, "A", "missing production B"},
		{"unreachable production", `A = "a" . C = "c" .`, "A", "unreachable"},
		{"missing start", `A = "a" .`, "Z", "Z"},
		{"lexical refers to syntactic", `A = b . b = C . C = "c" .`, "A", "non-lexical"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse("test", strings.NewReader(tt.src))
			require.NoError(t, err)
			err = Check(g, tt.start)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)

			_, err = Compile(g, tt.start)
			assert.Error(t, err)
		})
	}

	g, err := Parse("test", strings.NewReader(`A = "x" { A } .`))
	require.NoError(t, err)
	assert.NoError(t, Check(g, "A"), "recursion after consuming input is fine")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arith.ebnf")
	require.NoError(t, os.WriteFile(path, []byte(arithmetic), 0o644))

	g, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, g, 5)

	_, err = Load(filepath.Join(t.TempDir(), "missing.ebnf"))
	assert.ErrorContains(t, err, "open grammar")

	_, err = Parse("broken", strings.NewReader(`A = "a"`))
	assert.ErrorContains(t, err, "parse grammar")
}

func TestTraceAndDump(t *testing.T) {
	g := compile(t, arithmetic, "Expr", WithSkip(text.Space()), WithTrace())
	tree, err := g.Parse([]byte("7"))
	require.NoError(t, err)

	dump := tree.Dump()
	assert.Equal(t, strings.Join([]string{
		"Expr @ line 1, byte offset 0",
		"  Term @ line 1, byte offset 0",
		"    Factor @ line 1, byte offset 0",
		`      number "7" @ line 1, byte offset 0`,
		"",
	}, "\n"), dump)

	var depths []int
	tree.Walk(func(_ *Node, depth int) bool {
		depths = append(depths, depth)
		return depth < 1
	})
	assert.Equal(t, []int{0, 1}, depths)
}
