package flow

import (
	"github.com/noahlevenson/trust/bfs"
	"github.com/noahlevenson/trust/core"
)

// EdmondsKarp runs Ford–Fulkerson with BFS augmenting-path selection
// over gf in place, mutating its edge flows until no augmenting path
// from source to sink remains in the residual view.
//
// Determinism: BFS ties-break by gf's deterministic outedge insertion
// order, so two runs over the same gf (same edge-insertion history)
// produce a bit-exact flow assignment.
//
// Complexity: O(V·E) augmentations (Edmonds–Karp phase bound), each
// O(V+E) for the BFS — O(V²E) overall.
func EdmondsKarp(gf *core.Graph[VertexID], source, sink VertexID) {
	r := BuildResidual(gf)
	skip := func(u, v VertexID) bool { return ResCap(gf, u, v) == 0 }

	for {
		pg := bfs.BFS(r.Graph(), source, skip)
		path, reached := pg.PathTo(sink)
		if !reached {
			break
		}

		bottleneck := int64(1<<62 - 1)
		for i := 0; i < len(path)-1; i++ {
			if c := r.ResCap(path[i], path[i+1]); c < bottleneck {
				bottleneck = c
			}
		}
		if bottleneck <= 0 {
			break
		}

		for i := 0; i < len(path)-1; i++ {
			r.augment(gf, path[i], path[i+1], bottleneck)
		}
	}
}

// ResCap is the residual-capacity function evaluated directly against
// the flow network gf (not G′): c−f if gf has u→v, else the flow of the
// mirror edge if gf has v→u, else 0. It is the skip predicate BFS uses
// when searching G′ for augmenting paths.
func ResCap(gf *core.Graph[VertexID], u, v VertexID) int64 {
	if e, ok := gf.GetEdge(u, v); ok {
		return e.Capacity - e.Flow
	}
	if e, ok := gf.GetEdge(v, u); ok {
		return e.Flow
	}
	return 0
}
