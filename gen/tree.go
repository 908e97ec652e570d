package gen

import "github.com/noahlevenson/trust/core"

// RandomTree builds a random certification tree rooted at seed: seed
// recursively grows 1..MaxChildren children per vertex down to
// MaxDepth, mirroring graphgen.py's add_children. The certification
// graph produced has no backedges or cycles — every vertex but seed has
// exactly one parent, matching the original's "purely hierarchical"
// trust graph.
//
// Edge capacity in the returned graph is nominal (1): the certification
// graph is vertex-capacitated, not edge-capacitated — the edges here
// exist only to describe who-trusts-whom, and trust.ComputeTrust
// assigns the real (depth-derived) vertex capacities during
// flow.Transform.
//
// Returns ErrTooFewLevels, ErrTooFewChildren, or ErrNeedRandSource on
// invalid configuration.
func RandomTree(seed string, opts ...Option) (*core.Graph[string], error) {
	cfg := newConfig(opts...)
	if cfg.maxDepth < 1 {
		return nil, ErrTooFewLevels
	}
	if cfg.maxChildren < 1 {
		return nil, ErrTooFewChildren
	}
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}

	g := core.NewGraph[string]()
	g.AddVertex(seed)
	addChildren(g, cfg, seed, 1)
	return g, nil
}

func addChildren(g *core.Graph[string], cfg *config, parent string, depth int) {
	if depth > cfg.maxDepth {
		return
	}
	n := 1 + cfg.rng.Intn(cfg.maxChildren)
	for i := 0; i < n; i++ {
		child := cfg.namer(depth)
		_ = g.AddEdge(parent, child, 1)
		addChildren(g, cfg, child, depth+1)
	}
}
