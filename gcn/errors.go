// Package gcn: sentinel error set.
// All operations return these sentinels (optionally wrapped with context
// via %w) and tests match them with errors.Is. No function panics on
// user-triggered error conditions.

package gcn

import "errors"

var (
	// ErrNilInput indicates a nil feature or adjacency matrix argument.
	ErrNilInput = errors.New("gcn: nil input matrix")

	// ErrNonSquare indicates the adjacency matrix is not N×N.
	ErrNonSquare = errors.New("gcn: adjacency matrix is not square")

	// ErrShapeMismatch indicates the feature matrix row count does not match
	// the adjacency dimension, or a layer received features of the wrong width.
	ErrShapeMismatch = errors.New("gcn: shape mismatch")

	// ErrBadDimension indicates a non-positive layer dimension
	// (input, hidden or output).
	ErrBadDimension = errors.New("gcn: dimensions must be > 0")

	// ErrBadInitScheme indicates an unknown weight initialization scheme.
	ErrBadInitScheme = errors.New("gcn: unknown init scheme")
)
