// Package builder — Chain(n) and Disconnected(n) constructors.
//
// Contract:
//   - Chain: n ≥ 2 (else ErrTooFewVertices); edges (i-1,i) for i=1..n-1,
//     both directions set together; zero diagonal.
//   - Disconnected: n ≥ 1; the all-zero n×n matrix.
//
// Complexity:
//   - Time O(n²) dominated by allocation, Space O(n²).
//
// Determinism:
//   - Pure functions of n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gnnlab/matrix"
)

const (
	methodChain        = "Chain"
	methodDisconnected = "Disconnected"

	minChainNodes        = 2
	minDisconnectedNodes = 1
)

// Chain returns the adjacency of the simple path 0-1-…-(n-1).
func Chain(n int) (*matrix.Dense, error) {
	if n < minChainNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewVertices)
	}

	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodChain, err)
	}
	for i := 1; i < n; i++ {
		if err = setUndirected(a, i-1, i); err != nil {
			return nil, fmt.Errorf("%s: %w", methodChain, err)
		}
	}

	return a, nil
}

// Disconnected returns the edgeless graph on n nodes: the all-zero matrix.
// With self-loops added and normalized, it reduces every model pass to an
// independent per-node computation.
func Disconnected(n int) (*matrix.Dense, error) {
	if n < minDisconnectedNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodDisconnected, n, minDisconnectedNodes, ErrTooFewVertices)
	}

	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDisconnected, err)
	}

	return a, nil
}

// setUndirected writes both directions of edge (u,v).
func setUndirected(a *matrix.Dense, u, v int) error {
	if err := a.Set(u, v, 1); err != nil {
		return err
	}

	return a.Set(v, u, 1)
}
