package depgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantakit/qdag/circuit"
	"github.com/quantakit/qdag/depgraph"
)

// diamondGraph builds 0→1, 0→2, 1→3, 2→3.
func diamondGraph(t *testing.T) *depgraph.Graph {
	t.Helper()
	g := depgraph.New()
	for i := 0; i < 4; i++ {
		_, err := g.Append(mustOp(circuit.X(0)))
		require.NoError(t, err)
	}
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// TestAncestors covers transitive reachability backwards.
func TestAncestors(t *testing.T) {
	g := diamondGraph(t)

	anc, err := g.Ancestors(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, indicesOf(anc))

	anc, err = g.Ancestors(0)
	require.NoError(t, err)
	assert.Empty(t, anc)

	_, err = g.Ancestors(11)
	assert.ErrorIs(t, err, depgraph.ErrNodeNotFound)
}

// TestDescendants covers transitive reachability forwards.
func TestDescendants(t *testing.T) {
	g := diamondGraph(t)

	desc, err := g.Descendants(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, indicesOf(desc))

	desc, err = g.Descendants(1)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, indicesOf(desc))
}

// TestDepth_Chain verifies a k-node chain has depth k-1.
func TestDepth_Chain(t *testing.T) {
	assert.Equal(t, 3, chainGraph(t, 4).Depth())
}

// TestDepth_Parallel verifies unconstrained nodes add no depth.
func TestDepth_Parallel(t *testing.T) {
	g := depgraph.New()
	for i := 0; i < 4; i++ {
		_, err := g.Append(mustOp(circuit.H(i)))
		require.NoError(t, err)
	}
	assert.Zero(t, g.Depth())
}

// TestDepth_Diamond verifies the longest path wins.
func TestDepth_Diamond(t *testing.T) {
	assert.Equal(t, 2, diamondGraph(t).Depth())
}

// TestDepth_Empty covers the degenerate case.
func TestDepth_Empty(t *testing.T) {
	assert.Zero(t, depgraph.New().Depth())
}
