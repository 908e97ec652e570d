package gen

import (
	"gonum.org/v1/gonum/stat"

	"github.com/noahlevenson/trust/core"
)

// Stats is a generated graph's summary, restoring the "Mean outdegree
// (not including leaf nodes)" line graphgen.py's driver prints, plus
// the outdegree variance as a companion measure of how lopsided the
// tree's branching is — both computed with gonum/stat rather than
// hand-rolled arithmetic.
type Stats struct {
	core.Stats
	MeanOutdegree     float64
	OutdegreeVariance float64
}

// ComputeStats summarizes g. Vertices with zero outdegree (leaves) are
// excluded from the mean/variance, matching graphgen.py's
// "n_outdegree / n_vertices" computation over non-leaf vertices only.
func ComputeStats(g *core.Graph[string]) Stats {
	var outdegrees []float64
	for _, v := range g.Vertices() {
		n := len(g.OutEdges(v))
		if n > 0 {
			outdegrees = append(outdegrees, float64(n))
		}
	}

	s := Stats{Stats: g.Stats()}
	if len(outdegrees) == 0 {
		return s
	}
	s.MeanOutdegree = stat.Mean(outdegrees, nil)
	s.OutdegreeVariance = stat.Variance(outdegrees, nil)
	return s
}
