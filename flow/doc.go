// Package flow is the hard core of the trust-metric engine: the
// vertex-capacity→edge-capacity transformer, the fused residual-network
// representation, the Edmonds–Karp driver, and score extraction.
//
//	gf, src, err := flow.Transform(certGraph, vcaps, "seed", "supersink")
//	flow.EdmondsKarp(gf, src, flow.Supersink())
//	scores := flow.ExtractScores(gf)
//
// Transform mutates certGraph in place to fix antiparallel edges
// (a documented side effect); EdmondsKarp mutates gf in place until no
// augmenting path remains. A vanilla DFS-based Ford–Fulkerson over
// plain edge-capacitated graphs is also exposed — not used by the trust
// computation itself, but kept as a textbook CLRS max-flow side-channel
// over plain string-keyed, edge-capacitated graphs.
package flow
