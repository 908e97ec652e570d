package flow

import (
	"sort"

	"github.com/noahlevenson/trust/core"
)

// PeerScore is one (peer, trust) result of score extraction.
type PeerScore struct {
	Peer  string
	Trust int64
}

// ExtractScores computes each peer's trust as the total flow that
// reaches its v_in: the flow on its tagged capacity edge (v_in→v_out,
// bounded by vcaps[v]−1) plus the flow on its own unit drain
// (v_in→supersink). Both contributions are required — a capacity edge
// alone understates trust for any peer with no children of its own (its
// v_out is a dead end that can never carry flow), which would make
// every leaf score 0 regardless of how strongly it's vouched for. The
// worked examples (a tiny tree whose leaf children each score 1, and a
// linear chain scoring 3/2/1) only reconcile under this sum: a peer who
// trusts nobody still receives exactly the 1 unit its own drain can
// carry, matching the "a peer who trusts nobody can receive at most one
// unit of flow" behavior that original_source/advogato/experiments/
// confused_1.py's notes describe.
//
// Results are sorted by trust descending, peer ascending on ties, for
// deterministic output. Filtering by the VertexID tag rather than
// outedge iteration order at v_in avoids an ordering dependency that
// original_source/advogato/tb.py's print_top leaves unresolved.
// Auxiliary antiparallel-fix vertices carry no VertexID tag and never
// appear here.
func ExtractScores(gf *core.Graph[VertexID]) []PeerScore {
	sink := Supersink()
	out := make([]PeerScore, 0, gf.VertexCount())
	for _, u := range gf.Vertices() {
		for _, e := range gf.OutEdges(u) {
			if !e.HasVertexID {
				continue
			}
			trust := e.Flow
			if drain, ok := gf.GetEdge(u, sink); ok {
				trust += drain.Flow
			}
			out = append(out, PeerScore{Peer: e.VertexID.Peer, Trust: trust})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Trust != out[j].Trust {
			return out[i].Trust > out[j].Trust
		}
		return out[i].Peer < out[j].Peer
	})
	return out
}
