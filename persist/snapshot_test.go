package persist_test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/noahlevenson/trust/core"
	"github.com/noahlevenson/trust/persist"
)

func mustParseUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

func TestSaveLoadRoundTrip(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("seed", "a", 1))
	require.NoError(t, g.AddEdge("seed", "b", 1))
	require.NoError(t, g.AddEdge("a", "c", 1))

	dir := t.TempDir()
	id, path, err := persist.Save(dir, g)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, id.String()+".graph"), path)

	loaded, loadedID, err := persist.Load(path)
	require.NoError(t, err)
	require.Equal(t, id, loadedID)
	require.ElementsMatch(t, g.Vertices(), loaded.Vertices())
	require.Equal(t, g.EdgeCount(), loaded.EdgeCount())
	require.True(t, loaded.HasEdge("seed", "a"))
	require.True(t, loaded.HasEdge("a", "c"))
}

func TestSaveWithExplicitGraphID(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddVertex("seed")

	want := mustParseUUID(t, "11111111-1111-1111-1111-111111111111")
	dir := t.TempDir()
	id, _, err := persist.Save(dir, g, persist.WithGraphID(want))
	require.NoError(t, err)
	require.Equal(t, want, id)
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := persist.Load(filepath.Join(t.TempDir(), "nonexistent.graph"))
	require.ErrorIs(t, err, persist.ErrNotFound)
}
