package pmstore

import (
	"context"
	"testing"

	"github.com/charmbracelet/pathmap"
	"github.com/stretchr/testify/require"
)

func TestBuildAndOpenRoundTrip(t *testing.T) {
	t.Parallel()

	pairs := map[string]pathmap.Payload{
		"/a":     1.0,
		"/a/b":   "hello",
		"/a/b/c": true,
	}

	result, err := Build(context.Background(), pairs, DefaultConfig(len(pairs)), nil)
	require.NoError(t, err)
	require.NotNil(t, result.Filter)

	store, err := Open(result.TrieFile, result.Filter, nil)
	require.NoError(t, err)

	for path, want := range pairs {
		got, ok, err := store.Find(path)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	_, ok, err := store.Find("/never-inserted")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBuildSkipBloom(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig(1)
	cfg.SkipBloom = true

	result, err := Build(context.Background(), map[string]pathmap.Payload{"/x": 1.0}, cfg, nil)
	require.NoError(t, err)
	require.Nil(t, result.Filter)

	store, err := Open(result.TrieFile, nil, nil)
	require.NoError(t, err)

	v, ok, err := store.Find("/x")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1.0, v)
}
