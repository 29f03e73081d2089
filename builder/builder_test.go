package builder_test

import (
	"testing"

	"github.com/katalvlaran/gnnlab/builder"
	"github.com/katalvlaran/gnnlab/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertUndirectedSimple checks the invariants shared by every adjacency
// constructor: square, symmetric, {0,1} entries, zero diagonal.
func assertUndirectedSimple(t *testing.T, a *matrix.Dense) {
	t.Helper()
	require.Equal(t, a.Rows(), a.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			v, err := a.At(i, j)
			require.NoError(t, err)
			assert.Contains(t, []float64{0, 1}, v, "entry (%d,%d)", i, j)
			w, err := a.At(j, i)
			require.NoError(t, err)
			assert.Equal(t, v, w, "asymmetry at (%d,%d)", i, j)
			if i == j {
				assert.Equal(t, 0.0, v, "self-loop at %d", i)
			}
		}
	}
}

// edgeCount returns the number of undirected edges in a.
func edgeCount(t *testing.T, a *matrix.Dense) int {
	t.Helper()
	var total int
	for i := 0; i < a.Rows(); i++ {
		for j := i + 1; j < a.Cols(); j++ {
			v, err := a.At(i, j)
			require.NoError(t, err)
			if v == 1 {
				total++
			}
		}
	}

	return total
}

func TestChain(t *testing.T) {
	a, err := builder.Chain(5)
	require.NoError(t, err)
	assertUndirectedSimple(t, a)
	assert.Equal(t, 4, edgeCount(t, a))

	v, err := a.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	v, err = a.At(0, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	_, err = builder.Chain(1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycle(t *testing.T) {
	a, err := builder.Cycle(5)
	require.NoError(t, err)
	assertUndirectedSimple(t, a)
	assert.Equal(t, 5, edgeCount(t, a))

	// The closing edge distinguishes the cycle from the chain.
	v, err := a.At(4, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = builder.Cycle(2)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestStar(t *testing.T) {
	a, err := builder.Star(6)
	require.NoError(t, err)
	assertUndirectedSimple(t, a)
	assert.Equal(t, 5, edgeCount(t, a))

	// Only hub edges exist.
	for i := 1; i < 6; i++ {
		v, errAt := a.At(0, i)
		require.NoError(t, errAt)
		assert.Equal(t, 1.0, v, "hub edge to %d", i)
		for j := i + 1; j < 6; j++ {
			v, errAt = a.At(i, j)
			require.NoError(t, errAt)
			assert.Equal(t, 0.0, v, "spurious leaf edge (%d,%d)", i, j)
		}
	}

	_, err = builder.Star(1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestComplete(t *testing.T) {
	a, err := builder.Complete(4)
	require.NoError(t, err)
	assertUndirectedSimple(t, a)
	assert.Equal(t, 6, edgeCount(t, a))

	_, err = builder.Complete(1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestDisconnected(t *testing.T) {
	a, err := builder.Disconnected(3)
	require.NoError(t, err)
	assertUndirectedSimple(t, a)
	assert.Equal(t, 0, edgeCount(t, a))

	_, err = builder.Disconnected(0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestBlockFeatures(t *testing.T) {
	const n, d, classes = 10, 4, 2
	x, labels, err := builder.BlockFeatures(n, d, classes, 42)
	require.NoError(t, err)
	require.Equal(t, n, x.Rows())
	require.Equal(t, d, x.Cols())
	require.Len(t, labels, n)

	// Contiguous near-equal blocks: first half class 0, second half class 1.
	assert.Equal(t, []int{0, 0, 0, 0, 0, 1, 1, 1, 1, 1}, labels)

	// The signal dimension dominates each row.
	for i := 0; i < n; i++ {
		signal, errAt := x.At(i, labels[i]%d)
		require.NoError(t, errAt)
		assert.Greater(t, signal, 0.5, "weak signal in row %d", i)
	}
}

func TestBlockFeaturesDeterminism(t *testing.T) {
	xa, la, err := builder.BlockFeatures(6, 3, 2, 7)
	require.NoError(t, err)
	xb, lb, err := builder.BlockFeatures(6, 3, 2, 7)
	require.NoError(t, err)

	assert.Equal(t, la, lb)
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			va, errAt := xa.At(i, j)
			require.NoError(t, errAt)
			vb, errAt := xb.At(i, j)
			require.NoError(t, errAt)
			assert.Equal(t, va, vb, "seed divergence at (%d,%d)", i, j)
		}
	}
}

func TestBlockFeaturesErrors(t *testing.T) {
	_, _, err := builder.BlockFeatures(0, 2, 2, 1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, _, err = builder.BlockFeatures(4, 0, 2, 1)
	assert.ErrorIs(t, err, builder.ErrBadParam)
	_, _, err = builder.BlockFeatures(4, 2, 0, 1)
	assert.ErrorIs(t, err, builder.ErrBadParam)
	_, _, err = builder.BlockFeatures(4, 2, 5, 1)
	assert.ErrorIs(t, err, builder.ErrBadParam)
}
