// Package bfs computes a predecessor subgraph over a core.Graph[K] via
// breadth-first search, with a pluggable per-edge skip predicate. It is
// the shared engine behind both Edmonds–Karp's augmenting-path search
// (package flow) and trust.ComputeTrust's depth labeling.
package bfs

import "github.com/noahlevenson/trust/core"

// SkipFunc reports whether the edge u→v should be excluded from
// traversal. Called at most once per directed edge.
type SkipFunc[K comparable] func(u, v K) bool

// Node is one entry of a Result: the distance from the source in edges,
// and the predecessor on the shortest path found (the zero value of
// Predecessor together with HasPredecessor==false marks the source).
type Node[K comparable] struct {
	Distance       int
	Predecessor    K
	HasPredecessor bool
}

// Result is the predecessor subgraph produced by BFS: reachable
// vertices map to a Node; unreachable vertices are absent, so the
// caller tests reachability by membership.
type Result[K comparable] struct {
	Nodes map[K]Node[K]
}

// Reachable reports whether v was reached.
func (r *Result[K]) Reachable(v K) bool {
	_, ok := r.Nodes[v]
	return ok
}

// PathTo reconstructs the source→dest path. ok is false if dest was not reached.
func (r *Result[K]) PathTo(dest K) (path []K, ok bool) {
	node, reached := r.Nodes[dest]
	if !reached {
		return nil, false
	}
	path = []K{dest}
	for node.HasPredecessor {
		path = append(path, node.Predecessor)
		node = r.Nodes[node.Predecessor]
	}
	// reverse to source→dest order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// BFS runs breadth-first search on g starting from source. skip, if
// non-nil, is consulted for every candidate edge u→v and suppresses
// traversal when it returns true (used by flow to hide zero-residual
// arcs from the augmenting-path search). Edge exploration order follows
// g's deterministic outedge insertion order, which is what makes the
// resulting augmenting path — and therefore the whole max-flow
// computation — reproducible.
//
// Complexity: O(V+E).
func BFS[K comparable](g *core.Graph[K], source K, skip SkipFunc[K]) *Result[K] {
	res := &Result[K]{Nodes: map[K]Node[K]{source: {}}}
	if !g.HasVertex(source) {
		return res
	}
	queue := []K{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		depth := res.Nodes[u].Distance
		for _, e := range g.OutEdges(u) {
			v := e.Target
			if _, seen := res.Nodes[v]; seen {
				continue
			}
			if skip != nil && skip(u, v) {
				continue
			}
			res.Nodes[v] = Node[K]{Distance: depth + 1, Predecessor: u, HasPredecessor: true}
			queue = append(queue, v)
		}
	}
	return res
}
