package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noahlevenson/trust/core"
	"github.com/noahlevenson/trust/flow"
)

func runTrust(t *testing.T, g *core.Graph[string], vcaps map[string]int64, seed string) []flow.PeerScore {
	t.Helper()
	gf, src, err := flow.Transform(g, vcaps, seed, "supersink")
	require.NoError(t, err)
	flow.EdmondsKarp(gf, src, flow.Supersink())
	return flow.ExtractScores(gf)
}

// TestEdmondsKarpTinyTrustTree covers a single seed with two leaf
// children, cap_table {0:3, 1:2}. Each leaf has no
// downstream of its own, so its entire trust comes from its own unit
// drain: 1 each.
func TestEdmondsKarpTinyTrustTree(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("seed", "a", 1))
	require.NoError(t, g.AddEdge("seed", "b", 1))

	scores := runTrust(t, g, map[string]int64{"seed": 3, "a": 2, "b": 2}, "seed")

	byPeer := map[string]int64{}
	for _, s := range scores {
		byPeer[s.Peer] = s.Trust
	}
	require.Equal(t, int64(1), byPeer["a"])
	require.Equal(t, int64(1), byPeer["b"])
}

// TestEdmondsKarpLinearChain covers seed -> a -> b -> c, cap_table
// {0:10, 1:5, 2:3, 3:1}. Trust accumulates down the chain
// (3, 2, 1) since each node's own drain plus however much of its
// capacity edge its descendants' drains consume.
func TestEdmondsKarpLinearChain(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("seed", "a", 1))
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "c", 1))

	vcaps := map[string]int64{"seed": 10, "a": 5, "b": 3, "c": 1}
	scores := runTrust(t, g, vcaps, "seed")

	byPeer := map[string]int64{}
	for _, s := range scores {
		byPeer[s.Peer] = s.Trust
	}
	require.Equal(t, int64(3), byPeer["a"])
	require.Equal(t, int64(2), byPeer["b"])
	require.Equal(t, int64(1), byPeer["c"])
}

// TestEdmondsKarpAntiparallelPair covers seed trusting both a and b,
// with a/b mutually trusting each other. After the transformer fixes
// the antiparallel pair, both peers must still receive finite, nonzero
// trust (their own unit drains).
func TestEdmondsKarpAntiparallelPair(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("seed", "a", 1))
	require.NoError(t, g.AddEdge("seed", "b", 1))
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "a", 1))

	vcaps := map[string]int64{"seed": 10, "a": 5, "b": 5}
	scores := runTrust(t, g, vcaps, "seed")

	byPeer := map[string]int64{}
	for _, s := range scores {
		byPeer[s.Peer] = s.Trust
	}
	require.Equal(t, int64(1), byPeer["a"])
	require.Equal(t, int64(1), byPeer["b"])
}

// TestEdmondsKarpConservation checks that at every split vertex v_in,
// total inflow equals total outflow (capacity edge + drain).
func TestEdmondsKarpConservation(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("seed", "a", 1))
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "c", 1))

	vcaps := map[string]int64{"seed": 10, "a": 5, "b": 3, "c": 1}
	gf, src, err := flow.Transform(g, vcaps, "seed", "supersink")
	require.NoError(t, err)
	flow.EdmondsKarp(gf, src, flow.Supersink())

	for _, v := range gf.Vertices() {
		var out, in int64
		for _, e := range gf.OutEdges(v) {
			out += e.Flow
		}
		for _, u := range gf.Vertices() {
			for _, e := range gf.OutEdges(u) {
				if e.Target == v {
					in += e.Flow
				}
			}
		}
		if v == src || v == flow.Supersink() {
			continue
		}
		require.Equal(t, in, out, "flow conservation must hold at %s", v)
	}
}
