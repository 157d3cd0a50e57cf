package grammar

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/tliron/commonlog"
	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/pcomb/comb"
	"github.com/dhamidi/pcomb/text"
)

// Grammar is a compiled grammar.
type Grammar struct {
	start string
	rules map[string]rule
	root  rule
	skip  comb.Parser[byte, struct{}]
}

// Option configures Compile.
type Option func(*compiler)

// WithSkip skips input matched by p before every terminal of a syntactic
// production and before the end of input. Typically p consumes white space
// and comments.
func WithSkip[O any](p comb.Parser[byte, O]) Option {
	return func(c *compiler) {
		c.skip = comb.Value(p, struct{}{})
	}
}

// WithTrace logs every production attempt through comb.Trace.
func WithTrace() Option {
	return func(c *compiler) {
		c.trace = true
	}
}

// match is the output of a compiled expression: the nodes it produced and
// the furthest failure among the attempts it abandoned along the way, such
// as the last iteration of a repetition. When a later part of the parse
// fails, the abandoned failure is reported instead if it got further.
type match struct {
	nodes   []*Node
	dropped comb.Leaf
}

type rule = comb.Parser[byte, match]

type compiler struct {
	g     ebnf.Grammar
	skip  comb.Parser[byte, struct{}]
	trace bool
	rules map[string]rule
}

// Compile checks g and turns it into a parser for the start production.
func Compile(g ebnf.Grammar, start string, opts ...Option) (*Grammar, error) {
	if err := Check(g, start); err != nil {
		return nil, err
	}

	c := &compiler{
		g:     g,
		rules: make(map[string]rule, len(g)),
	}
	for _, opt := range opts {
		opt(c)
	}

	for name, prod := range g {
		p, err := c.production(name, prod)
		if err != nil {
			return nil, err
		}
		c.rules[name] = p
	}

	commonlog.GetLogger("pcomb.grammar").Debugf("compiled %d productions, start %q", len(c.rules), start)
	return &Grammar{start: start, rules: c.rules, root: c.ref(start, false), skip: c.skip}, nil
}

// Start returns the name of the start production.
func (g *Grammar) Start() string { return g.start }

// Parser returns a parser for the start production. Unlike Parse it does
// not require the input to be consumed completely.
func (g *Grammar) Parser() comb.Parser[byte, *Node] {
	return comb.Map(g.root, func(m match) *Node { return m.nodes[0] })
}

// Parse parses all of src with the start production.
func (g *Grammar) Parse(src []byte) (*Node, error) {
	start := comb.NewByteCursor(src)
	m, cur, err := g.root.Parse(start)
	if err != nil {
		return nil, err
	}
	if g.skip != nil {
		_, cur, _ = g.skip.Parse(cur)
	}
	if _, _, err := comb.Eof[byte]().Parse(cur); err != nil {
		return nil, explain(err, m.dropped)
	}
	return m.nodes[0], nil
}

// explain combines the failure err with an earlier abandoned failure. The
// result resolves to whichever got further; err wins ties.
func explain(err error, dropped comb.Leaf) error {
	if dropped == nil {
		return err
	}
	return &comb.OrError{First: err, Second: dropped}
}

func further(a, b comb.Leaf) comb.Leaf {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return comb.Further(a, b)
}

func (c *compiler) production(name string, prod *ebnf.Production) (rule, error) {
	lexical := IsLexical(name)
	body, err := c.expr(prod.Expr, lexical)
	if err != nil {
		return nil, fmt.Errorf("production %s: %w", name, err)
	}

	p := body
	if !lexical {
		p = comb.Map(comb.Position(body), func(s comb.Spanned[byte, match]) match {
			n := NewNonTerminal(name, s.Span)
			for _, child := range s.Value.nodes {
				n.AddChild(child)
			}
			return match{nodes: []*Node{n}, dropped: s.Value.dropped}
		})
	}
	if c.trace {
		p = comb.Trace(name, p)
	}
	return p, nil
}

func (c *compiler) expr(expr ebnf.Expression, lexical bool) (rule, error) {
	switch e := expr.(type) {
	case nil:
		return empty(), nil

	case *ebnf.Token:
		return terminal(c, strconv.Quote(e.String), text.String(e.String), lexical), nil

	case *ebnf.Range:
		lo, _ := utf8.DecodeRuneInString(e.Begin.String)
		hi, _ := utf8.DecodeRuneInString(e.End.String)
		kind := fmt.Sprintf("%q … %q", e.Begin.String, e.End.String)
		return terminal(c, kind, text.Range(lo, hi), lexical), nil

	case ebnf.Sequence:
		items, err := c.exprs(e, lexical)
		if err != nil {
			return nil, err
		}
		return sequence(items), nil

	case ebnf.Alternative:
		alts, err := c.exprs(e, lexical)
		if err != nil {
			return nil, err
		}
		return alternative(alts), nil

	case *ebnf.Option:
		body, err := c.expr(e.Body, lexical)
		if err != nil {
			return nil, err
		}
		return repeat(body, 1), nil

	case *ebnf.Repetition:
		body, err := c.expr(e.Body, lexical)
		if err != nil {
			return nil, err
		}
		return repeat(body, -1), nil

	case *ebnf.Group:
		return c.expr(e.Body, lexical)

	case *ebnf.Name:
		if _, ok := c.g[e.String]; !ok {
			return nil, fmt.Errorf("missing production %s", e.String)
		}
		if lexical && !IsLexical(e.String) {
			return nil, fmt.Errorf("reference to non-lexical production %s", e.String)
		}
		return c.ref(e.String, lexical), nil
	}
	return nil, fmt.Errorf("unsupported expression %T", expr)
}

func (c *compiler) exprs(list []ebnf.Expression, lexical bool) ([]rule, error) {
	out := make([]rule, 0, len(list))
	for _, e := range list {
		p, err := c.expr(e, lexical)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// ref refers to the named production. It is resolved at parse time so
// productions can be recursive.
func (c *compiler) ref(name string, lexical bool) rule {
	p := comb.Lazy(func() rule { return c.rules[name] })
	if IsLexical(name) && !lexical {
		return terminal(c, name, p, false)
	}
	return p
}

// terminal matches p as a token. Inside lexical productions it only
// consumes input; elsewhere it skips first and yields one terminal node.
func terminal[O any](c *compiler, kind string, p comb.Parser[byte, O], lexical bool) rule {
	if lexical {
		return comb.Map(p, func(O) match { return match{} })
	}
	tok := comb.Map(comb.Position(p), func(s comb.Spanned[byte, O]) match {
		m := match{nodes: []*Node{NewTerminal(kind, s.Span)}}
		if inner, ok := any(s.Value).(match); ok {
			m.dropped = inner.dropped
		}
		return m
	})
	if c.skip != nil {
		tok = comb.Preceded(c.skip, tok)
	}
	return tok
}

// sequence runs items in order. A failing item is reported together with
// what earlier items abandoned.
func sequence(items []rule) rule {
	if len(items) == 1 {
		return items[0]
	}
	return comb.Func[byte, match](func(c comb.ByteCursor) (match, comb.ByteCursor, error) {
		var out match
		cur := c
		for i, item := range items {
			m, next, err := item.Parse(cur)
			if err != nil {
				side := comb.PartSecond
				if i == 0 {
					side = comb.PartFirst
				}
				return match{}, c, explain(&comb.AndError{Side: side, Err: err}, out.dropped)
			}
			out.nodes = append(out.nodes, m.nodes...)
			out.dropped = further(out.dropped, m.dropped)
			cur = next
		}
		return out, cur, nil
	})
}

// alternative tries alts in order and keeps the first match. Failed
// alternatives before it count as abandoned.
func alternative(alts []rule) rule {
	if len(alts) == 1 {
		return alts[0]
	}
	return comb.Func[byte, match](func(c comb.ByteCursor) (match, comb.ByteCursor, error) {
		var failed error
		var dropped comb.Leaf
		for _, alt := range alts {
			m, next, err := alt.Parse(c)
			if err == nil {
				m.dropped = further(m.dropped, dropped)
				return m, next, nil
			}
			if failed == nil {
				failed = err
			} else {
				failed = &comb.OrError{First: failed, Second: err}
			}
			dropped = further(dropped, comb.Resolve(err))
		}
		return match{}, c, failed
	})
}

// repeat applies body up to limit times, or without limit when limit is
// negative. It never fails; the failure that ended it is kept as abandoned.
// An iteration that consumes nothing ends the repetition.
func repeat(body rule, limit int) rule {
	return comb.Func[byte, match](func(c comb.ByteCursor) (match, comb.ByteCursor, error) {
		var out match
		cur := c
		for n := 0; limit < 0 || n < limit; n++ {
			m, next, err := body.Parse(cur)
			if err != nil {
				out.dropped = further(out.dropped, comb.Resolve(err))
				break
			}
			out.nodes = append(out.nodes, m.nodes...)
			out.dropped = further(out.dropped, m.dropped)
			if next.Position() == cur.Position() {
				cur = next
				break
			}
			cur = next
		}
		return out, cur, nil
	})
}

func empty() rule {
	return comb.Func[byte, match](func(c comb.ByteCursor) (match, comb.ByteCursor, error) {
		return match{}, c, nil
	})
}
