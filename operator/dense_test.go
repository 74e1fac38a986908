package operator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantakit/qdag/operator"
)

// TestNew_BadDimension verifies that non-power-of-two dimensions are rejected.
func TestNew_BadDimension(t *testing.T) {
	for _, n := range []int{0, -1, 3, 6, 12} {
		m, err := operator.New(n)
		assert.Nil(t, m, "New(%d)", n)
		assert.ErrorIs(t, err, operator.ErrBadDimension, "New(%d)", n)
	}
}

// TestNew_ZeroInit verifies a fresh matrix is all zeros.
func TestNew_ZeroInit(t *testing.T) {
	m, err := operator.New(4)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Dim())
	assert.Equal(t, 2, m.Qubits())
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, atErr := m.At(i, j)
			require.NoError(t, atErr)
			assert.Zero(t, v)
		}
	}
}

// TestIdentity puts ones exactly on the diagonal.
func TestIdentity(t *testing.T) {
	m, err := operator.Identity(2)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, atErr := m.At(i, j)
			require.NoError(t, atErr)
			if i == j {
				assert.Equal(t, complex128(1), v)
			} else {
				assert.Zero(t, v)
			}
		}
	}
}

// TestFromRows_RaggedRows rejects rows of mismatched length.
func TestFromRows_RaggedRows(t *testing.T) {
	_, err := operator.FromRows([][]complex128{{1, 0}, {0}})
	assert.ErrorIs(t, err, operator.ErrDimensionMismatch)
}

// TestFromRows_BadCount rejects a non-power-of-two row count.
func TestFromRows_BadCount(t *testing.T) {
	_, err := operator.FromRows([][]complex128{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	assert.ErrorIs(t, err, operator.ErrBadDimension)
}

// TestFromRows_CopiesInput verifies the matrix does not alias caller memory.
func TestFromRows_CopiesInput(t *testing.T) {
	src := [][]complex128{{1, 2}, {3, 4}}
	m, err := operator.FromRows(src)
	require.NoError(t, err)
	src[0][0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), v)
}

// TestAtSet_OutOfRange verifies bounds are errors, not panics.
func TestAtSet_OutOfRange(t *testing.T) {
	m, err := operator.New(2)
	require.NoError(t, err)
	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, operator.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, operator.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(-1, 0, 1), operator.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 2, 1), operator.ErrOutOfRange)
}

// TestClone_Independence verifies Clone yields an independent copy.
func TestClone_Independence(t *testing.T) {
	m, err := operator.Identity(2)
	require.NoError(t, err)
	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 5))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Zero(t, v, "mutating the clone must not touch the original")
}
