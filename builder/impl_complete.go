// Package builder — Complete(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Edges: every unordered pair {i,j}, i≠j; zero diagonal.
//
// Complexity: Time/Space O(n²).
// Determinism: pure function of n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gnnlab/matrix"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns the adjacency of the complete graph K_n.
func Complete(n int) (*matrix.Dense, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}

	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = setUndirected(a, i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", methodComplete, err)
			}
		}
	}

	return a, nil
}
