// Package builder — Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); node 0 is the hub.
//   - Edges: (0, i) for i=1..n-1, both directions.
//
// Complexity: Time/Space O(n²).
// Determinism: pure function of n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gnnlab/matrix"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns the adjacency of the star S_n with node 0 as the hub.
func Star(n int) (*matrix.Dense, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
	}

	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodStar, err)
	}
	for i := 1; i < n; i++ {
		if err = setUndirected(a, 0, i); err != nil {
			return nil, fmt.Errorf("%s: %w", methodStar, err)
		}
	}

	return a, nil
}
