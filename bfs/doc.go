// Package bfs implements textbook breadth-first search with a FIFO
// discovery queue, generalized over any core.Graph[K] and parameterized
// by an edge-skip predicate.
//
// Distances are exact shortest-path-in-edges from the source restricted
// to non-skipped edges; ties in discovery order follow the graph's
// outedge insertion order. This is what the flow package relies on for
// Edmonds–Karp's augmenting-path selection to be bit-exact.
package bfs
