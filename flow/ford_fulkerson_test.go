package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noahlevenson/trust/core"
	"github.com/noahlevenson/trust/flow"
)

// TestFordFulkersonCLRS reproduces the CLRS textbook max-flow example,
// expected max flow 23.
func TestFordFulkersonCLRS(t *testing.T) {
	g := core.NewGraph[string]()
	edges := []struct {
		u, v string
		c    int64
	}{
		{"s", "v1", 16}, {"s", "v2", 13},
		{"v1", "v3", 12}, {"v2", "v1", 4}, {"v2", "v4", 14},
		{"v3", "v2", 9}, {"v3", "t", 20},
		{"v4", "v3", 7}, {"v4", "t", 4},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.c))
	}

	total := flow.FordFulkerson(g, "s", "t")
	require.Equal(t, int64(23), total)
}
