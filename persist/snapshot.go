package persist

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/noahlevenson/trust/core"
)

// edgeRecord is one gob-serializable edge; core.Edge itself is not
// exported field-for-field in a gob-friendly way (it also carries
// Flow/HasVertexID/VertexID bookkeeping that belongs to a live
// computation, not a saved certification graph).
type edgeRecord struct {
	From, To string
	Capacity int64
}

// snapshot is the gob-encoded on-disk representation of a certification
// graph, stamped with a graph ID the way graphgen.py stamps its pickled
// output with uuid.uuid4().
type snapshot struct {
	ID       uuid.UUID
	Vertices []string
	Edges    []edgeRecord
}

// Save gob-encodes g to a file named "<id>.graph" inside dir, creating
// dir if necessary. id defaults to a fresh uuid.New() unless overridden
// with WithGraphID. Returns the ID used and the full path written.
func Save(dir string, g *core.Graph[string], opts ...Option) (uuid.UUID, string, error) {
	cfg := &saveConfig{id: uuid.New()}
	for _, opt := range opts {
		opt(cfg)
	}

	snap := snapshot{ID: cfg.id, Vertices: g.Vertices()}
	for _, v := range snap.Vertices {
		for _, e := range g.OutEdges(v) {
			snap.Edges = append(snap.Edges, edgeRecord{From: v, To: e.Target, Capacity: e.Capacity})
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return uuid.Nil, "", fmt.Errorf("persist: save: %w", err)
	}
	path := filepath.Join(dir, snap.ID.String()+".graph")

	f, err := os.Create(path)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("persist: save: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(snap); err != nil {
		return uuid.Nil, "", fmt.Errorf("persist: save: %w", err)
	}
	return snap.ID, path, nil
}

// Load decodes the certification graph stored at path. Returns
// ErrNotFound if path does not exist, ErrDecodeFailed if it exists but
// is not a valid snapshot.
func Load(path string) (*core.Graph[string], uuid.UUID, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, uuid.Nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, uuid.Nil, fmt.Errorf("persist: load: %w", err)
	}
	defer f.Close()

	var snap snapshot
	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		return nil, uuid.Nil, fmt.Errorf("%w: %s: %v", ErrDecodeFailed, path, err)
	}

	g := core.NewGraph[string]()
	for _, v := range snap.Vertices {
		g.AddVertex(v)
	}
	for _, e := range snap.Edges {
		if err := g.AddEdge(e.From, e.To, e.Capacity); err != nil {
			return nil, uuid.Nil, fmt.Errorf("persist: load: %w", err)
		}
	}
	return g, snap.ID, nil
}
