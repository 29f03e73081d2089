// Package gcn — adjacency preparation: self-loop injection and symmetric
// degree normalization.
//
// Contract:
//   - AddSelfLoops produces Ã = A + I and is the caller's single chance to
//     include each node's own features in aggregation.
//   - Normalize consumes an adjacency that already carries whatever loops
//     the caller wants; it never injects structure on its own.
//
// Determinism:
//   - Fixed i→j loop orders; output depends only on input values.

package gcn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gnnlab/matrix"
)

// zeroDegreeScale is the substitute for d^(-1/2) on rows with no edges.
// Zero removes all aggregation weight for isolated nodes instead of
// propagating Inf/NaN through every downstream product.
const zeroDegreeScale = 0.0

// AddSelfLoops returns Ã = A + I for a square adjacency matrix A.
//
// Behavior highlights:
//   - A is never mutated; a fresh Dense is returned.
//   - Entries already on the diagonal are incremented, not replaced, so
//     calling this twice produces weights of 2 on the diagonal — add self
//     loops exactly once per forward pass.
//
// Errors:
//   - ErrNilInput (nil matrix), ErrNonSquare (Rows != Cols).
//
// Complexity:
//   - Time O(N²), Space O(N²).
func AddSelfLoops(a matrix.Matrix) (*matrix.Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("AddSelfLoops: %w", ErrNilInput)
	}
	if a.Rows() != a.Cols() {
		return nil, fmt.Errorf("AddSelfLoops: %dx%d: %w", a.Rows(), a.Cols(), ErrNonSquare)
	}

	id, err := matrix.Identity(a.Rows())
	if err != nil {
		return nil, fmt.Errorf("AddSelfLoops: %w", err)
	}
	out, err := matrix.Add(a, id)
	if err != nil {
		return nil, fmt.Errorf("AddSelfLoops: %w", err)
	}

	return out, nil
}

// Normalize computes the symmetrically degree-normalized adjacency
//
//	Â[i,j] = d[i]^(-1/2) · A[i,j] · d[j]^(-1/2),  d[i] = Σ_j A[i,j]
//
// used for one round of neighbor aggregation.
//
// Implementation:
//   - Stage 1: validate square non-nil input; ingest the degree vector as
//     row sums.
//   - Stage 2: build d^(-1/2) with the zero-degree policy — any d[i] ≤ 0
//     maps to 0.0 so isolated nodes aggregate nothing instead of producing
//     non-finite values.
//   - Stage 3: elementwise outer scaling (NOT a matrix product at this
//     stage): out[i,j] = dInvSqrt[i] * a[i,j] * dInvSqrt[j].
//
// Behavior highlights:
//   - Pure derived value; safe to recompute on every call. The two-layer
//     model computes it once and shares it, which is equivalent because
//     the graph does not change between layers.
//   - Symmetric input yields symmetric output (scaling factors commute).
//
// Errors:
//   - ErrNilInput, ErrNonSquare; matrix sentinels from the kernels propagate.
//
// Complexity:
//   - Time O(N²), Space O(N²) for the result plus O(N) for the degree vector.
func Normalize(a matrix.Matrix) (*matrix.Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("Normalize: %w", ErrNilInput)
	}
	if a.Rows() != a.Cols() {
		return nil, fmt.Errorf("Normalize: %dx%d: %w", a.Rows(), a.Cols(), ErrNonSquare)
	}

	// Degree vector: d[i] = Σ_j A[i,j].
	deg, err := matrix.RowSums(a)
	if err != nil {
		return nil, fmt.Errorf("Normalize: %w", err)
	}

	// Inverse square roots under the zero-degree policy.
	n := a.Rows()
	dInvSqrt := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		if deg[i] > 0 {
			dInvSqrt[i] = 1.0 / math.Sqrt(deg[i])
		} else {
			dInvSqrt[i] = zeroDegreeScale // isolated node: no aggregation weight
		}
	}

	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Normalize: %w", err)
	}

	// Outer scaling with fixed i→j order.
	var j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err = a.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("Normalize: At(%d,%d): %w", i, j, err)
			}
			if err = out.Set(i, j, dInvSqrt[i]*v*dInvSqrt[j]); err != nil {
				return nil, fmt.Errorf("Normalize: Set(%d,%d): %w", i, j, err)
			}
		}
	}

	return out, nil
}
