// Package trust is the external-facing surface of the engine: the four
// operations a caller needs (ComputeTrust, TopPeers, VertexInfo,
// Config) built on core+bfs+flow. Callers never see a flow.VertexID or
// a core.Graph[flow.VertexID] directly — FlowedGraph is an opaque
// handle, and every accessor resolves back to the caller's own peer
// keys.
//
//	flowed, err := trust.ComputeTrust(certGraph, trust.NewConfig("seed"))
//	top := trust.TopPeers(flowed, 10)
//	info, err := trust.VertexInfo(flowed, "alice")
package trust

import (
	"errors"
	"fmt"

	"github.com/noahlevenson/trust/bfs"
	"github.com/noahlevenson/trust/core"
	"github.com/noahlevenson/trust/flow"
)

// ErrUnknownPeer is returned by VertexInfo when the peer never appeared
// in the flowed graph (absent from the certification graph at the time
// ComputeTrust ran).
var ErrUnknownPeer = errors.New("trust: unknown peer")

// FlowedGraph is the opaque result of ComputeTrust: a flow network with
// augmentation already run to completion.
type FlowedGraph struct {
	gf     *core.Graph[flow.VertexID]
	source flow.VertexID
	sink   flow.VertexID
}

// ComputeTrust runs the full pipeline: BFS-label depth from the seed,
// assign vertex capacities from cfg.CapTable, transform to an
// edge-capacitated network, and run Edmonds–Karp to completion.
//
// g is mutated in place while fixing antiparallel edges — the same
// documented side effect as flow.Transform. Callers who need the
// original graph untouched should pass in a clone.
func ComputeTrust(g *core.Graph[string], cfg Config) (*FlowedGraph, error) {
	pg := bfs.BFS(g, cfg.SourceKey, nil)
	vcaps := make(map[string]int64, len(pg.Nodes))
	for v, node := range pg.Nodes {
		vcaps[v] = capAt(cfg.CapTable, node.Distance)
	}

	gf, source, err := flow.Transform(g, vcaps, cfg.SourceKey, cfg.SupersinkKey)
	if err != nil {
		return nil, fmt.Errorf("trust: compute trust: %w", err)
	}

	sink := flow.Supersink()
	flow.EdmondsKarp(gf, source, sink)

	return &FlowedGraph{gf: gf, source: source, sink: sink}, nil
}

// PeerScore is one (peer, trust) result, re-exported from flow for
// callers who only import trust.
type PeerScore = flow.PeerScore

// TopPeers returns the n highest-trust peers of flowed, sorted by trust
// descending then peer ascending on ties. n <= 0 returns all peers.
func TopPeers(flowed *FlowedGraph, n int) []PeerScore {
	scores := flow.ExtractScores(flowed.gf)
	if n <= 0 || n >= len(scores) {
		return scores
	}
	return scores[:n]
}

// EdgeFlow is one (peer, flow) pair reported by VertexInfo.
type EdgeFlow struct {
	Peer string
	Flow int64
}

// VertexReport is VertexInfo's diagnostic result: the peers that
// certified peer and that peer certified, each with the flow actually
// realized on that certification, plus the peer's own total trust
// (SelfFlow). A certification that ComputeTrust rerouted to fix an
// antiparallel pair is reported under the generated key of its auxiliary
// vertex, not under the peer at the far end of the rerouted path.
type VertexReport struct {
	InEdges  []EdgeFlow
	OutEdges []EdgeFlow
	SelfFlow int64
}

// VertexInfo resolves peer's split-vertex pair in flowed and reports
// its in-edges, out-edges, and self (trust) flow. Callers MUST go
// through this accessor rather than parsing any internal label —
// VertexID's tagged-sum representation gives no string to parse in the
// first place.
func VertexInfo(flowed *FlowedGraph, peer string) (VertexReport, error) {
	vIn, vOut := flow.In(peer), flow.Out(peer)
	if !flowed.gf.HasVertex(vIn) {
		return VertexReport{}, fmt.Errorf("%w: %q", ErrUnknownPeer, peer)
	}

	report := VertexReport{SelfFlow: selfFlow(flowed.gf, peer)}

	for _, e := range flowed.gf.OutEdges(vOut) {
		if e.Target.Kind != flow.KindIn {
			continue
		}
		report.OutEdges = append(report.OutEdges, EdgeFlow{Peer: e.Target.Peer, Flow: e.Flow})
	}

	for _, u := range flowed.gf.Vertices() {
		if u.Kind != flow.KindOut {
			continue
		}
		for _, e := range flowed.gf.OutEdges(u) {
			if e.Target == vIn {
				report.InEdges = append(report.InEdges, EdgeFlow{Peer: u.Peer, Flow: e.Flow})
			}
		}
	}

	return report, nil
}

// selfFlow computes peer's total trust the same way flow.ExtractScores
// does: capacity-edge flow plus the peer's own unit drain.
func selfFlow(gf *core.Graph[flow.VertexID], peer string) int64 {
	var total int64
	if e, ok := gf.GetEdge(flow.In(peer), flow.Out(peer)); ok {
		total += e.Flow
	}
	if e, ok := gf.GetEdge(flow.In(peer), flow.Supersink()); ok {
		total += e.Flow
	}
	return total
}
