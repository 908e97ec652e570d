package flow

import (
	"fmt"

	"github.com/noahlevenson/trust/core"
)

// Transform converts a vertex-capacitated certification graph g into an
// edge-capacitated flow network via the standard vertex-splitting
// construction. vcaps maps a vertex to its capacity; a vertex absent
// from vcaps is treated as capacity 0 rather than an error, since a
// peer the caller never assigned a capacity simply cannot pass flow.
//
// Transform mutates g in place while fixing antiparallel edges (a
// documented side effect) and mutates vcaps by adding entries for the
// auxiliary vertices it creates.
//
// sink names the supersink in the caller's string-keyed world purely so
// a collision with an existing peer can be rejected; the flow network
// itself never stores that string, since VertexID's KindSupersink case
// needs no payload to stay unique.
//
// Returns the flow network and the relabeled VertexID for source.
// Returns ErrSourceNotFound if source is not a vertex of g,
// ErrSinkCollision if sink already names a vertex of g, and
// ErrNegativeCapacity if any vcaps entry is negative.
func Transform(g *core.Graph[string], vcaps map[string]int64, source, sink string) (*core.Graph[VertexID], VertexID, error) {
	if !g.HasVertex(source) {
		return nil, VertexID{}, ErrSourceNotFound
	}
	if g.HasVertex(sink) {
		return nil, VertexID{}, ErrSinkCollision
	}
	for v, c := range vcaps {
		if c < 0 {
			return nil, VertexID{}, fmt.Errorf("%w: vcaps[%q]=%d", ErrNegativeCapacity, v, c)
		}
	}

	apSet := fixAntiparallel(g, vcaps)

	gf := core.NewGraph[VertexID]()

	// Step 2: split every vertex into v_in / v_out, with a capacity edge
	// tagged vertex_id only for original (non-auxiliary) peers. The tag
	// scopes to each original peer; auxiliary vertices are pure
	// edge-substitutes and must not surface as phantom peers in score
	// extraction.
	for _, v := range g.Vertices() {
		vIn, vOut := In(v), Out(v)
		cap := int64(0)
		if c, ok := vcaps[v]; ok {
			cap = c - 1
			if cap < 0 {
				cap = 0
			}
		}
		if apSet[v] {
			if err := gf.AddEdge(vIn, vOut, cap); err != nil {
				return nil, VertexID{}, err
			}
		} else {
			if err := gf.AddCapacityEdge(vIn, vOut, cap, VertexID{Kind: KindIn, Peer: v}); err != nil {
				return nil, VertexID{}, err
			}
		}

		// Step 3: supersink drain, non-auxiliary vertices only.
		if !apSet[v] {
			if err := gf.AddEdge(vIn, Supersink(), 1); err != nil {
				return nil, VertexID{}, err
			}
		}
	}

	// Step 4: transpose original edges (post antiparallel-fix).
	for _, u := range g.Vertices() {
		for _, e := range g.OutEdges(u) {
			if err := gf.AddEdge(Out(u), In(e.Target), InfiniteCapacity); err != nil {
				return nil, VertexID{}, err
			}
		}
	}

	return gf, In(source), nil
}

// fixAntiparallel rewrites every antiparallel pair u→v / v→u in g as
// u→p→v through a fresh auxiliary vertex p, the standard CLRS p.711
// antiparallel-edge fix. It mutates g and vcaps, and returns the set of
// created auxiliary vertex labels.
//
// Complexity: O(V+E) — each vertex's outedges are snapshotted once and
// a pair is fixed (and can no longer be rediscovered) the first time
// either of its two directed edges is visited.
func fixAntiparallel(g *core.Graph[string], vcaps map[string]int64) map[string]bool {
	ap := make(map[string]bool)
	n := 0
	for _, u := range g.Vertices() {
		for _, e := range g.OutEdges(u) {
			v := e.Target
			if u == v || !g.HasEdge(u, v) {
				continue // already rerouted by an earlier iteration
			}
			if !g.HasEdge(v, u) {
				continue // not antiparallel
			}
			p := fmt.Sprintf("__ap_%d_%s->%s__", n, u, v)
			n++
			_ = g.AddEdge(u, p, 0)
			_ = g.AddEdge(p, v, 0)
			_ = g.DelEdge(u, v)
			vcaps[p] = InfiniteCapacity
			ap[p] = true
		}
	}
	return ap
}
