// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gnnlab/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustDense builds a Dense from rows and fails the test on error.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// assertMatrixEqual compares every entry of got against want.
func assertMatrixEqual(t *testing.T, want [][]float64, got matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "row count")
	require.Equal(t, len(want[0]), got.Cols(), "column count")
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, want[i][j], v, 1e-12, "entry (%d,%d)", i, j)
		}
	}
}

// TestAddSub verifies elementwise addition and subtraction plus their
// dimension-mismatch guards.
func TestAddSub(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{11, 22}, {33, 44}}, sum)

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{9, 18}, {27, 36}}, diff)

	bad := mustDense(t, [][]float64{{1, 2, 3}})
	_, err = matrix.Add(a, bad)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Add(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul verifies matrix multiplication against a hand-computed product.
func TestMul(t *testing.T) {
	a := mustDense(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	b := mustDense(t, [][]float64{
		{7, 8},
		{9, 10},
		{11, 12},
	})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{
		{58, 64},
		{139, 154},
	}, c)

	// Inner-dimension mismatch must surface the sentinel.
	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMulIdentity checks that I acts as the multiplicative identity.
func TestMulIdentity(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	id, err := matrix.Identity(2)
	require.NoError(t, err)

	left, err := matrix.Mul(id, a)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{1, 2}, {3, 4}}, left)

	right, err := matrix.Mul(a, id)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{1, 2}, {3, 4}}, right)
}

// TestTranspose verifies shape flip and entry mapping.
func TestTranspose(t *testing.T) {
	a := mustDense(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{
		{1, 4},
		{2, 5},
		{3, 6},
	}, at)
}

// TestScaleHadamard verifies scalar scaling and the elementwise product.
func TestScaleHadamard(t *testing.T) {
	a := mustDense(t, [][]float64{{1, -2}, {3, 0}})

	scaled, err := matrix.Scale(a, 2.5)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{2.5, -5}, {7.5, 0}}, scaled)

	b := mustDense(t, [][]float64{{2, 2}, {2, 2}})
	had, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{2, -4}, {6, 0}}, had)
}

// TestMatVec verifies the matrix-vector product and its length guard.
func TestMatVec(t *testing.T) {
	a := mustDense(t, [][]float64{
		{1, 2},
		{3, 4},
	})

	y, err := matrix.MatVec(a, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, y)

	_, err = matrix.MatVec(a, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MatVec(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestRowSums verifies per-row sums, the degree-vector ingredient of
// adjacency normalization.
func TestRowSums(t *testing.T) {
	a := mustDense(t, [][]float64{
		{0, 1, 1},
		{1, 0, 0},
		{0, 0, 0},
	})

	sums, err := matrix.RowSums(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1, 0}, sums)
}

// TestApply verifies elementwise mapping (here: ReLU-style clamping).
func TestApply(t *testing.T) {
	a := mustDense(t, [][]float64{{-1, 2}, {0, -3}})

	relu, err := matrix.Apply(a, func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return v
	})
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{0, 2}, {0, 0}}, relu)
}
