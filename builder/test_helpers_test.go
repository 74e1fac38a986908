package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quantakit/qdag/circuit"
	"github.com/quantakit/qdag/depgraph"
)

// mustOp unwraps an operation constructor; fixtures are valid by
// construction, so a failure panics rather than asserts.
func mustOp(op *circuit.Operation, err error) *circuit.Operation {
	if err != nil {
		panic(err)
	}

	return op
}

// edgeSet collects every (from, to) pair present in the graph.
func edgeSet(t *testing.T, g *depgraph.Graph) map[[2]int]struct{} {
	t.Helper()
	out := make(map[[2]int]struct{})
	for i := 0; i < g.Len(); i++ {
		succs, err := g.Successors(i)
		require.NoError(t, err)
		for _, s := range succs {
			out[[2]int{i, s.Index()}] = struct{}{}
		}
	}

	return out
}

// orderIndices runs the deterministic linearization and projects indices.
func orderIndices(t *testing.T, g *depgraph.Graph) []int {
	t.Helper()
	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	out := make([]int, len(order))
	for i, n := range order {
		out[i] = n.Index()
	}

	return out
}
