package flow

import "github.com/noahlevenson/trust/core"

// FordFulkerson computes max flow on a plain edge-capacitated
// core.Graph[string] (no vertex splitting) using DFS augmenting-path
// search. It is not part of the trust-metric hard core — the engine's
// own transform always produces a vertex-capacitated network run
// through EdmondsKarp — but is exposed as a vanilla CLRS max-flow
// side-channel for exercising the max-flow primitive in isolation, on
// a plain textbook network rather than a transformed trust graph.
//
// Returns the total flow value; g's edges are mutated in place with
// their resulting Flow.
func FordFulkerson(g *core.Graph[string], source, sink string) int64 {
	var total int64
	for {
		visited := make(map[string]bool)
		path, bottleneck := dfsAugmentingPath(g, source, sink, visited, 1<<62)
		if path == nil || bottleneck <= 0 {
			break
		}
		for i := 0; i < len(path)-1; i++ {
			if e, ok := g.GetEdge(path[i], path[i+1]); ok && e.Capacity > e.Flow {
				e.Flow += bottleneck
			} else {
				e, _ = g.GetEdge(path[i+1], path[i]) // reverse step: cancel flow
				e.Flow -= bottleneck
			}
		}
		total += bottleneck
	}
	return total
}

func dfsAugmentingPath(g *core.Graph[string], u, sink string, visited map[string]bool, available int64) ([]string, int64) {
	if u == sink {
		return []string{sink}, available
	}
	visited[u] = true
	for _, e := range g.OutEdges(u) {
		if visited[e.Target] {
			continue
		}
		residual := e.Capacity - e.Flow
		if residual <= 0 {
			continue
		}
		b := available
		if residual < b {
			b = residual
		}
		path, flow := dfsAugmentingPath(g, e.Target, sink, visited, b)
		if path != nil {
			return append([]string{u}, path...), flow
		}
	}
	for _, w := range g.Vertices() { // reverse residual arcs: cancel flow on w→u
		if be, ok := g.GetEdge(w, u); ok && !visited[w] && be.Flow > 0 {
			if path, flow := dfsAugmentingPath(g, w, sink, visited, min(available, be.Flow)); path != nil {
				return append([]string{u}, path...), flow
			}
		}
	}
	return nil, 0
}
