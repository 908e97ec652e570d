// Package core provides the directed graph container shared by every
// layer of the trust-metric engine: the caller-owned certification
// graph (peers as string keys) and the transformer-owned flow network
// (flow.VertexID keys). One generic Graph[K] backs both, so the BFS
// engine and the flow driver need not know which layer they're
// operating on.
//
//	g := core.NewGraph[string]()
//	g.AddEdge("seed", "alice", 0)
//	g.AddEdge("alice", "bob", 0)
//
// Outedges iterate in insertion order, which is what makes Edmonds–Karp
// deterministic: the BFS engine in package bfs ties-break by that same
// order.
package core
