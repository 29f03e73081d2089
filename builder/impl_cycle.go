// Package builder — Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices): the smallest simple cycle is a triangle.
//   - Edges: the chain edges plus the closing edge (n-1, 0).
//
// Complexity: Time/Space O(n²).
// Determinism: pure function of n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gnnlab/matrix"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns the adjacency of the ring 0-1-…-(n-1)-0.
func Cycle(n int) (*matrix.Dense, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}

	a, err := Chain(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCycle, err)
	}
	if err = setUndirected(a, n-1, 0); err != nil {
		return nil, fmt.Errorf("%s: %w", methodCycle, err)
	}

	return a, nil
}
