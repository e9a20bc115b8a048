package pathmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeNodeLineEmpty(t *testing.T) {
	t.Parallel()

	n, err := decodeNodeLine("")
	require.NoError(t, err)
	require.True(t, n.Self.IsAbsent())
	require.Empty(t, n.Children)
}

func TestNodeLineCodecRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []nodeLine{
		{Self: Ref{}, Children: map[string]Ref{}},
		{Self: inlineRef(), Children: map[string]Ref{}},
		{Self: offsetRef(0), Children: map[string]Ref{}},
		{Self: offsetRef(4096), Children: map[string]Ref{"foo": offsetRef(0)}},
		{Self: Ref{}, Children: map[string]Ref{"bar": inlineRef(), "foo": offsetRef(12)}},
		{Self: inlineRef(), Children: map[string]Ref{"fancy/paths": offsetRef(7), "with:colon": inlineRef()}},
	}

	for i, n := range cases {
		n := n
		t.Run(string(rune('a'+i)), func(t *testing.T) {
			t.Parallel()
			text := encodeNodeLine(n)
			decoded, err := decodeNodeLine(text)
			require.NoError(t, err)
			require.Equal(t, n.Self, decoded.Self)
			require.Equal(t, n.Children, decoded.Children)
		})
	}
}

func TestDecodeNodeLineMalformed(t *testing.T) {
	t.Parallel()

	cases := []string{
		"x",         // unknown starter byte
		"/foo",      // segment with no value marker
		`/foo\`,     // unterminated escape
		"/foo:xyz!", // non-hex byte after a ':' offset marker
		":1/",       // trailing child field with no segment or marker
	}

	for _, c := range cases {
		c := c
		t.Run(c, func(t *testing.T) {
			t.Parallel()
			_, err := decodeNodeLine(c)
			require.ErrorIs(t, err, ErrMalformedLine)
		})
	}
}

func TestEncodeNodeLineOrdersChildrenLexicographically(t *testing.T) {
	t.Parallel()

	n := nodeLine{Children: map[string]Ref{
		"zeta":  offsetRef(1),
		"alpha": offsetRef(2),
		"mid":   inlineRef(),
	}}
	require.Equal(t, "/alpha:2/mid!/zeta:1", encodeNodeLine(n))
}

func TestEncodeNodeLineSelfReferenceFirst(t *testing.T) {
	t.Parallel()

	n := nodeLine{Self: offsetRef(0), Children: map[string]Ref{"foo": inlineRef()}}
	require.Equal(t, ":/foo!", encodeNodeLine(n))
}
