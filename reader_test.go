package pathmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildAndRead(t *testing.T, pairs map[string]Payload) *Reader {
	t.Helper()
	w := NewWriter()
	require.NoError(t, w.BulkInsert(pairs))
	data, err := w.Stringify()
	require.NoError(t, err)
	r, err := NewReader(data)
	require.NoError(t, err)
	return r
}

func TestReaderRoundTrip(t *testing.T) {
	t.Parallel()

	pairs := map[string]Payload{
		"/foo":           "f",
		"/foo/bar":       "b",
		"/a/b/c":         map[string]any{"x": 1.0},
		"/a/b/d":         []any{1.0, 2.0, 3.0},
		"/poems/ελληνικά": "greek",
		"/nullish":       nil,
		"/num":           42.0,
	}

	r := buildAndRead(t, pairs)
	for path, want := range pairs {
		got, ok, err := r.Find(path)
		require.NoError(t, err)
		require.True(t, ok, "expected %q present", path)
		require.Equal(t, want, got)
	}
}

func TestReaderAbsence(t *testing.T) {
	t.Parallel()

	r := buildAndRead(t, map[string]Payload{"/foo": "f"})

	_, ok, err := r.Find("/")
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = r.Find("/foo/anything")
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = r.Find("/bar")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestReaderSentinelTrue(t *testing.T) {
	t.Parallel()

	r := buildAndRead(t, map[string]Payload{"/foo/bar": true})

	v, ok, err := r.Find("/foo/bar")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, true, v)

	_, ok, err = r.Find("/foo")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestReaderRejectsPathShape(t *testing.T) {
	t.Parallel()

	r := buildAndRead(t, map[string]Payload{"/foo": "f"})
	_, _, err := r.Find("foo")
	require.ErrorIs(t, err, ErrPathShape)
}

func TestReaderRejectsLeafAtRoot(t *testing.T) {
	t.Parallel()

	r, err := NewReaderString("\"leaf-only-file\"\n")
	require.NoError(t, err)

	_, _, err = r.Find("/foo")
	require.ErrorIs(t, err, ErrUnexpectedPayload)
}

func TestReaderUnexpectedEOF(t *testing.T) {
	t.Parallel()

	_, err := NewReader(nil)
	require.ErrorIs(t, err, ErrUnexpectedEOF)

	_, err = NewReaderString("\n\n\n")
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestReaderCachesDecodedLines(t *testing.T) {
	t.Parallel()

	r := buildAndRead(t, map[string]Payload{"/a/b": "x", "/a/c": "y"})

	_, ok, err := r.Find("/a/b")
	require.NoError(t, err)
	require.True(t, ok)

	// The root line's offset must already be cached from the first Find.
	_, cached := r.cache.get(r.rootOffset)
	require.True(t, cached)

	_, ok, err = r.Find("/a/c")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestReaderByteOffsetsSurviveMultibyteSegments(t *testing.T) {
	t.Parallel()

	r := buildAndRead(t, map[string]Payload{
		"/poems/ελληνικά": "greek poem",
		"/poems/english":  "english poem",
	})

	v, ok, err := r.Find("/poems/ελληνικά")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "greek poem", v)

	v, ok, err = r.Find("/poems/english")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "english poem", v)
}
