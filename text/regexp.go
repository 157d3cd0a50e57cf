package text

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/dhamidi/pcomb/comb"
)

// MatchTimeout bounds a single regular expression match.
var MatchTimeout = 5 * time.Second

// Regexp matches pattern at the cursor and returns the matched text.
//
// The pattern is anchored at the cursor. RE2 syntax is tried first; patterns
// that need backtracking features fall back to the default regexp2 syntax.
//
// Every attempt converts the rest of the input to a string, since regexp2
// only matches strings and rune slices. Repeating a Regexp over a long input
// is therefore quadratic; prefer it for short inputs or single tokens.
func Regexp(pattern string) (comb.Parser[byte, string], error) {
	anchored := `\A(?:` + pattern + `)`
	re, err := regexp2.Compile(anchored, regexp2.RE2)
	if err != nil {
		re, err = regexp2.Compile(anchored, regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %q: %w", pattern, err)
		}
	}
	re.MatchTimeout = MatchTimeout

	return comb.Func[byte, string](func(c comb.ByteCursor) (string, comb.ByteCursor, error) {
		rest := string(c.Rest())
		m, err := re.FindStringMatch(rest)
		if err != nil {
			return "", c, comb.Errorf(c, "pattern %q: %v", pattern, err)
		}
		if m == nil || m.Index != 0 {
			return "", c, comb.Errorf(c, "expected match of pattern %q", pattern)
		}
		n := byteLen(rest, m.Length)
		return rest[:n], c.Seek(c.Position() + n), nil
	}), nil
}

// MustRegexp is Regexp that panics on an invalid pattern.
func MustRegexp(pattern string) comb.Parser[byte, string] {
	p, err := Regexp(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// byteLen returns the number of bytes taken by the first runes runes of s.
// regexp2 reports match positions in runes; every invalid byte counts as
// one rune.
func byteLen(s string, runes int) int {
	n := 0
	for i := 0; i < runes && n < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[n:])
		n += size
	}
	return n
}
