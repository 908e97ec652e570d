package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noahlevenson/trust/core"
	"github.com/noahlevenson/trust/flow"
)

// TestTransformSplitsAndDrains covers a single seed with two leaf
// children, and checks the structural shape of the
// transform: every non-auxiliary vertex gets a tagged capacity edge of
// size vcaps[v]-1 and a unit drain, and original edges are transposed
// out_u -> in_v with infinite capacity.
func TestTransformSplitsAndDrains(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("seed", "a", 1))
	require.NoError(t, g.AddEdge("seed", "b", 1))

	vcaps := map[string]int64{"seed": 3, "a": 2, "b": 2}
	gf, src, err := flow.Transform(g, vcaps, "seed", "supersink")
	require.NoError(t, err)
	require.Equal(t, flow.In("seed"), src)

	capEdge, ok := gf.GetEdge(flow.In("seed"), flow.Out("seed"))
	require.True(t, ok)
	require.Equal(t, int64(2), capEdge.Capacity)
	require.True(t, capEdge.HasVertexID)
	require.Equal(t, "seed", capEdge.VertexID.Peer)

	drain, ok := gf.GetEdge(flow.In("seed"), flow.Supersink())
	require.True(t, ok)
	require.Equal(t, int64(1), drain.Capacity)

	capA, ok := gf.GetEdge(flow.In("a"), flow.Out("a"))
	require.True(t, ok)
	require.Equal(t, int64(1), capA.Capacity)

	transpose, ok := gf.GetEdge(flow.Out("seed"), flow.In("a"))
	require.True(t, ok)
	require.Equal(t, flow.InfiniteCapacity, transpose.Capacity)
}

// TestTransformUnreachableVertexGetsZeroCapacity exercises the case
// where a vertex absent from vcaps is treated as capacity 0, not an error.
func TestTransformUnreachableVertexGetsZeroCapacity(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("seed", "a", 1))
	g.AddVertex("orphan")
	require.True(t, g.HasVertex("orphan"))

	vcaps := map[string]int64{"seed": 3, "a": 2}
	gf, _, err := flow.Transform(g, vcaps, "seed", "supersink")
	require.NoError(t, err)

	capOrphan, ok := gf.GetEdge(flow.In("orphan"), flow.Out("orphan"))
	require.True(t, ok)
	require.Equal(t, int64(0), capOrphan.Capacity)
}

func TestTransformSourceNotFound(t *testing.T) {
	g := core.NewGraph[string]()
	_, _, err := flow.Transform(g, map[string]int64{}, "seed", "supersink")
	require.ErrorIs(t, err, flow.ErrSourceNotFound)
}

func TestTransformSinkCollision(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("seed", "supersink", 1))
	_, _, err := flow.Transform(g, map[string]int64{"seed": 3}, "seed", "supersink")
	require.ErrorIs(t, err, flow.ErrSinkCollision)
}

func TestTransformNegativeCapacity(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddVertex("seed")
	require.True(t, g.HasVertex("seed"))
	_, _, err := flow.Transform(g, map[string]int64{"seed": -1}, "seed", "supersink")
	require.ErrorIs(t, err, flow.ErrNegativeCapacity)
}

// TestTransformFixesAntiparallelPair covers an antiparallel pair
// a->b / b->a, which must be rerouted through a fresh auxiliary vertex
// that gets no VertexID tag and no supersink drain.
func TestTransformFixesAntiparallelPair(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("seed", "a", 1))
	require.NoError(t, g.AddEdge("seed", "b", 1))
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "a", 1))

	vcaps := map[string]int64{"seed": 10, "a": 5, "b": 5}
	gf, _, err := flow.Transform(g, vcaps, "seed", "supersink")
	require.NoError(t, err)

	require.False(t, g.HasEdge("a", "b"), "antiparallel edge a->b must be rerouted")
	require.True(t, g.HasEdge("b", "a"), "the other direction of the pair survives untouched")

	var auxVertex string
	for _, v := range g.Vertices() {
		if v != "seed" && v != "a" && v != "b" {
			auxVertex = v
		}
	}
	require.NotEmpty(t, auxVertex, "fixAntiparallel must create an auxiliary vertex")

	auxCap, ok := gf.GetEdge(flow.In(auxVertex), flow.Out(auxVertex))
	require.True(t, ok)
	require.False(t, auxCap.HasVertexID, "auxiliary vertices are not tagged as peers")

	_, hasDrain := gf.GetEdge(flow.In(auxVertex), flow.Supersink())
	require.False(t, hasDrain, "auxiliary vertices get no supersink drain")
}
