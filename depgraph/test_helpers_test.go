package depgraph_test

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

// chainGraph appends n single-qubit gates on qubit 0 and links each to the
// next, the smallest dependency chain shape.
func chainGraph(t *testing.T, n int) *depgraph.Graph {
	t.Helper()
	g := depgraph.New()
	for i := 0; i < n; i++ {
		_, err := g.Append(mustOp(circuit.X(0)))
		require.NoError(t, err)
		if i > 0 {
			require.NoError(t, g.AddEdge(i-1, i))
		}
	}

	return g
}

// indicesOf projects nodes to their insertion indices.
func indicesOf(nodes []*depgraph.Node) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.Index()
	}

	return out
}
