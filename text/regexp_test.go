package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/pcomb/comb"
)

func TestRegexp(t *testing.T) {
	ident := MustRegexp(`[a-z_][a-z0-9_]*`)

	out, next, err := ident.Parse(comb.NewByteCursor([]byte("foo_1 bar")))
	require.NoError(t, err)
	assert.Equal(t, "foo_1", out)
	assert.Equal(t, 5, next.Position())

	// Matches are anchored at the cursor.
	_, next, err = ident.Parse(comb.NewByteCursor([]byte("  foo")))
	require.Error(t, err)
	assert.Equal(t, 0, next.Position())
	assert.Contains(t, err.Error(), "expected match of pattern")

	out, next, err = ident.Parse(comb.NewByteCursor([]byte("  foo")).Seek(2))
	require.NoError(t, err)
	assert.Equal(t, "foo", out)
	assert.True(t, next.EOS())
}

func TestRegexpMultibyte(t *testing.T) {
	p := MustRegexp(`\p{L}+`)
	out, next, err := p.Parse(comb.NewByteCursor([]byte("ñandú!")))
	require.NoError(t, err)
	assert.Equal(t, "ñandú", out)
	assert.Equal(t, len("ñandú"), next.Position())
}

func TestRegexpBacktrackingFallback(t *testing.T) {
	p, err := Regexp(`(?<word>a+)(?=b)`)
	require.NoError(t, err)
	out, _, err := p.Parse(comb.NewByteCursor([]byte("aab")))
	require.NoError(t, err)
	assert.Equal(t, "aa", out)

	_, err = Regexp(`(`)
	assert.Error(t, err)
}

func TestRegexpRepeated(t *testing.T) {
	word := MustRegexp(`[a-zé]+ ?`)
	out, next, err := comb.Many(word).Parse(comb.NewByteCursor([]byte("ab é cd!")))
	require.NoError(t, err)
	assert.Equal(t, []string{"ab ", "é ", "cd"}, out)
	assert.Equal(t, 8, next.Position())
}
