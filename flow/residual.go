package flow

import "github.com/noahlevenson/trust/core"

// Residual is the fused forward+reverse adjacency ("G′") built once
// from a flow network and mutated in place during augmentation, rather
// than rebuilt every iteration. For every edge u→v(c,f) of the flow
// network it holds both a forward arc u→v (capacity c) and a reverse
// arc v→u (capacity f).
type Residual struct {
	g *core.Graph[VertexID]
}

// BuildResidual constructs G′ from a freshly-transformed flow network
// (flow==0 everywhere), giving every edge's reverse arc capacity 0.
// Complexity: O(V+E).
func BuildResidual(gf *core.Graph[VertexID]) *Residual {
	r := &Residual{g: core.NewGraph[VertexID]()}
	for _, u := range gf.Vertices() {
		r.g.AddVertex(u)
		for _, e := range gf.OutEdges(u) {
			_ = r.g.AddEdge(u, e.Target, e.Capacity)
			if !r.g.HasEdge(e.Target, u) {
				_ = r.g.AddEdge(e.Target, u, e.Flow)
			}
		}
	}
	return r
}

// ResCap returns the residual capacity of u→v in G′: O(1) via the
// fused representation's capacity−flow on that arc (0 if the arc
// doesn't exist).
func (r *Residual) ResCap(u, v VertexID) int64 {
	e, ok := r.g.GetEdge(u, v)
	if !ok {
		return 0
	}
	return e.Capacity - e.Flow
}

// Graph exposes the underlying fused graph for traversal (bfs.BFS).
func (r *Residual) Graph() *core.Graph[VertexID] { return r.g }

// augment pushes bottleneck units of flow along u→v, updating both G′
// (keeping its forward/reverse pairing in sync) and the source flow
// network gf.
func (r *Residual) augment(gf *core.Graph[VertexID], u, v VertexID, bottleneck int64) {
	if fe, ok := gf.GetEdge(u, v); ok {
		// forward step
		fe.Flow += bottleneck
		rEdge, _ := r.g.GetEdge(u, v)
		rEdge.Flow += bottleneck
		revEdge, ok := r.g.GetEdge(v, u)
		if !ok {
			_ = r.g.AddEdge(v, u, rEdge.Flow)
			revEdge, _ = r.g.GetEdge(v, u)
		}
		revEdge.Capacity = rEdge.Flow
		return
	}
	// reverse step: gf has v→u.
	be, _ := gf.GetEdge(v, u)
	be.Flow -= bottleneck
	rEdge, _ := r.g.GetEdge(v, u)
	rEdge.Flow -= bottleneck
	fwdEdge, _ := r.g.GetEdge(u, v)
	fwdEdge.Capacity = rEdge.Flow
}
