package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantakit/qdag/builder"
	"github.com/quantakit/qdag/circuit"
	"github.com/quantakit/qdag/commute"
)

// TestBuild_Empty verifies that an empty sequence yields an empty graph.
func TestBuild_Empty(t *testing.T) {
	g, err := builder.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 0, g.EdgeCount())
}

// TestBuild_AllCommuting verifies that mutually commuting operations
// produce no edges and linearize back to program order.
func TestBuild_AllCommuting(t *testing.T) {
	seq := []*circuit.Operation{
		mustOp(circuit.Z(0)),
		mustOp(circuit.Z(1)),
		mustOp(circuit.CZ(0, 1)),
		mustOp(circuit.Z(2)),
	}

	g, err := builder.Build(seq)
	require.NoError(t, err)
	require.Equal(t, len(seq), g.Len())
	assert.Equal(t, 0, g.EdgeCount())

	order := orderIndices(t, g)
	assert.Equal(t, []int{0, 1, 2, 3}, order)
}

// TestBuild_SingleConflict verifies that one non-commuting pair on the
// same qubit produces exactly one edge, while an operation on a
// disjoint qubit stays unconstrained.
func TestBuild_SingleConflict(t *testing.T) {
	seq := []*circuit.Operation{
		mustOp(circuit.X(0)),
		mustOp(circuit.Z(0)),
		mustOp(circuit.H(1)),
	}

	g, err := builder.Build(seq)
	require.NoError(t, err)
	require.Equal(t, 3, g.Len())

	edges := edgeSet(t, g)
	assert.Len(t, edges, 1)
	assert.Contains(t, edges, [2]int{0, 1})
}

// TestBuild_TransitiveReduction verifies that a chain of pairwise
// non-commuting operations keeps only adjacent edges.
func TestBuild_TransitiveReduction(t *testing.T) {
	seq := []*circuit.Operation{
		mustOp(circuit.X(0)),
		mustOp(circuit.Z(0)),
		mustOp(circuit.Y(0)),
	}

	g, err := builder.Build(seq)
	require.NoError(t, err)
	require.Equal(t, 3, g.Len())

	edges := edgeSet(t, g)
	assert.Contains(t, edges, [2]int{0, 1})
	assert.Contains(t, edges, [2]int{1, 2})
	assert.NotContains(t, edges, [2]int{0, 2}, "implied through the chain")
	assert.Len(t, edges, 2)
}

// TestBuild_UnchainedConflictKeepsEdge verifies that an earlier
// non-commuting operation still gets its own edge when the later
// blocker on the same qubit has no path back to it.
func TestBuild_UnchainedConflictKeepsEdge(t *testing.T) {
	// S(0) and CZ(0,1) commute (both diagonal), so there is no edge
	// between them; H(0) commutes with neither. The edge to CZ must not
	// hide S, or a schedule could hoist H before S.
	seq := []*circuit.Operation{
		mustOp(circuit.S(0)),
		mustOp(circuit.CZ(0, 1)),
		mustOp(circuit.H(0)),
	}

	g, err := builder.Build(seq)
	require.NoError(t, err)

	edges := edgeSet(t, g)
	assert.Contains(t, edges, [2]int{1, 2})
	assert.Contains(t, edges, [2]int{0, 2})
	assert.NotContains(t, edges, [2]int{0, 1})
	assert.Len(t, edges, 2)
}

// TestBuild_ChainedConflictSkipped verifies that a candidate already
// reaching the new node through recorded edges is elided without a
// redundant edge.
func TestBuild_ChainedConflictSkipped(t *testing.T) {
	// CX(0,1) conflicts with both X(0) and Y(0), but X already reaches
	// it through the X→Y edge.
	seq := []*circuit.Operation{
		mustOp(circuit.X(0)),
		mustOp(circuit.Y(0)),
		mustOp(circuit.CX(0, 1)),
	}

	g, err := builder.Build(seq)
	require.NoError(t, err)

	edges := edgeSet(t, g)
	assert.Contains(t, edges, [2]int{0, 1})
	assert.Contains(t, edges, [2]int{1, 2})
	assert.NotContains(t, edges, [2]int{0, 2})
	assert.Len(t, edges, 2)
}

// TestBuild_SeparateWiresBothScanned verifies that candidates on
// distinct wires each receive their own edge to a two-qubit gate.
func TestBuild_SeparateWiresBothScanned(t *testing.T) {
	seq := []*circuit.Operation{
		mustOp(circuit.H(0)),
		mustOp(circuit.Z(1)),
		mustOp(circuit.CX(0, 1)),
	}

	g, err := builder.Build(seq)
	require.NoError(t, err)

	edges := edgeSet(t, g)
	assert.Contains(t, edges, [2]int{1, 2})
	assert.Contains(t, edges, [2]int{0, 2})
}

// TestBuild_Barrier verifies that a barrier fences every operation on
// its qubits, on both sides.
func TestBuild_Barrier(t *testing.T) {
	seq := []*circuit.Operation{
		mustOp(circuit.H(0)),
		mustOp(circuit.H(1)),
		mustOp(circuit.Barrier(0, 1)),
		mustOp(circuit.X(0)),
	}

	g, err := builder.Build(seq)
	require.NoError(t, err)

	edges := edgeSet(t, g)
	assert.Contains(t, edges, [2]int{0, 2})
	assert.Contains(t, edges, [2]int{1, 2})
	assert.Contains(t, edges, [2]int{2, 3})
	assert.NotContains(t, edges, [2]int{0, 3}, "ordered through the barrier already")
}

// TestBuild_MeasurementChain verifies that repeated measurements on one
// qubit are kept strictly ordered.
func TestBuild_MeasurementChain(t *testing.T) {
	seq := []*circuit.Operation{
		mustOp(circuit.Measure(0, 0)),
		mustOp(circuit.Measure(0, 1)),
		mustOp(circuit.Measure(0, 2)),
	}

	g, err := builder.Build(seq)
	require.NoError(t, err)

	edges := edgeSet(t, g)
	assert.Contains(t, edges, [2]int{0, 1})
	assert.Contains(t, edges, [2]int{1, 2})
	assert.Len(t, edges, 2)
}

// TestBuild_ClbitDependency verifies that a conditional operation
// depends on the measurement writing its classical bit even when their
// qubit supports are disjoint.
func TestBuild_ClbitDependency(t *testing.T) {
	cond, err := circuit.Conditional(mustOp(circuit.X(1)), 0)
	require.NoError(t, err)

	seq := []*circuit.Operation{
		mustOp(circuit.Measure(0, 0)),
		cond,
	}

	g, err := builder.Build(seq)
	require.NoError(t, err)

	edges := edgeSet(t, g)
	assert.Contains(t, edges, [2]int{0, 1})
}

// TestBuild_ResetBlocks verifies that a reset neither commutes with a
// preceding nor a following gate on its qubit.
func TestBuild_ResetBlocks(t *testing.T) {
	seq := []*circuit.Operation{
		mustOp(circuit.H(0)),
		mustOp(circuit.Reset(0)),
		mustOp(circuit.H(0)),
	}

	g, err := builder.Build(seq)
	require.NoError(t, err)

	edges := edgeSet(t, g)
	assert.Contains(t, edges, [2]int{0, 1})
	assert.Contains(t, edges, [2]int{1, 2})
}

// TestBuild_ForwardEdgesOnly verifies that every produced edge points
// from a lower to a higher index.
func TestBuild_ForwardEdgesOnly(t *testing.T) {
	seq := []*circuit.Operation{
		mustOp(circuit.H(0)),
		mustOp(circuit.CX(0, 1)),
		mustOp(circuit.Measure(1, 0)),
		mustOp(circuit.X(0)),
		mustOp(circuit.CX(1, 0)),
	}

	g, err := builder.Build(seq)
	require.NoError(t, err)

	for e := range edgeSet(t, g) {
		assert.Less(t, e[0], e[1])
	}
}

// TestBuild_NilOperation verifies that a nil entry aborts the build.
func TestBuild_NilOperation(t *testing.T) {
	seq := []*circuit.Operation{mustOp(circuit.H(0)), nil}

	_, err := builder.Build(seq)
	require.Error(t, err)
	assert.ErrorIs(t, err, builder.ErrNilOperation)
}

// TestBuild_UniverseViolation verifies that WithUniverse rejects
// out-of-range qubit and clbit references.
func TestBuild_UniverseViolation(t *testing.T) {
	seq := []*circuit.Operation{mustOp(circuit.H(3))}

	_, err := builder.Build(seq, builder.WithUniverse(2, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, builder.ErrInvalidSequence)

	// Clbits are checked as well.
	seq = []*circuit.Operation{mustOp(circuit.Measure(0, 5))}
	_, err = builder.Build(seq, builder.WithUniverse(2, 2))
	assert.ErrorIs(t, err, builder.ErrInvalidSequence)
}

// TestBuild_UniverseAccepts verifies that in-range sequences pass the
// universe check unchanged.
func TestBuild_UniverseAccepts(t *testing.T) {
	seq := []*circuit.Operation{
		mustOp(circuit.H(0)),
		mustOp(circuit.Measure(1, 1)),
	}

	g, err := builder.Build(seq, builder.WithUniverse(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())
}

// TestBuild_WithOracle verifies that a custom oracle overrides the
// default commutation analysis.
func TestBuild_WithOracle(t *testing.T) {
	never := func(a, b *circuit.Operation) (bool, error) { return false, nil }

	seq := []*circuit.Operation{
		mustOp(circuit.Z(0)),
		mustOp(circuit.Z(0)), // commutes under the default oracle
	}

	g, err := builder.Build(seq, builder.WithOracle(never))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestBuild_OracleError verifies that an oracle failure aborts the
// build and surfaces the cause.
func TestBuild_OracleError(t *testing.T) {
	boom := errors.New("oracle down")
	fail := func(a, b *circuit.Operation) (bool, error) { return false, boom }

	seq := []*circuit.Operation{
		mustOp(circuit.X(0)),
		mustOp(circuit.Z(0)),
	}

	_, err := builder.Build(seq, builder.WithOracle(fail))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

// TestBuild_WithCache verifies that the cached oracle produces the
// same graph as the plain one.
func TestBuild_WithCache(t *testing.T) {
	seq := []*circuit.Operation{
		mustOp(circuit.H(0)),
		mustOp(circuit.CX(0, 1)),
		mustOp(circuit.H(0)),
		mustOp(circuit.CX(0, 1)),
		mustOp(circuit.Measure(1, 0)),
	}

	plain, err := builder.Build(seq)
	require.NoError(t, err)

	cached, err := builder.Build(seq, builder.WithCache())
	require.NoError(t, err)

	assert.Equal(t, plain.Len(), cached.Len())
	assert.Equal(t, edgeSet(t, plain), edgeSet(t, cached))
}

// TestBuild_WithTolerance verifies that the tolerance knob reaches the
// default oracle.
func TestBuild_WithTolerance(t *testing.T) {
	seq := []*circuit.Operation{
		mustOp(circuit.RX(1e-9, 0)),
		mustOp(circuit.Z(0)),
	}

	strict, err := builder.Build(seq, builder.WithTolerance(1e-12))
	require.NoError(t, err)
	assert.Equal(t, 1, strict.EdgeCount())

	loose, err := builder.Build(seq, builder.WithTolerance(1e-6))
	require.NoError(t, err)
	assert.Equal(t, 0, loose.EdgeCount())
}

// TestBuild_SharedCacheAcrossBuilds verifies that one Cache can serve
// several builds through WithOracle.
func TestBuild_SharedCacheAcrossBuilds(t *testing.T) {
	cache := commute.NewCache()

	seq := []*circuit.Operation{
		mustOp(circuit.X(0)),
		mustOp(circuit.Z(0)),
	}

	_, err := builder.Build(seq, builder.WithOracle(cache.Commutes))
	require.NoError(t, err)

	_, err = builder.Build(seq, builder.WithOracle(cache.Commutes))
	require.NoError(t, err)
	assert.NotZero(t, cache.Hits())
}
