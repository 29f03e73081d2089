// Package train: sentinel errors shared by the loss, optimizer and loop.
//
// All errors are plain sentinels so callers can branch with errors.Is;
// call sites wrap them with an operation tag via fmt.Errorf("%s: %w", ...).

package train

import "errors"

var (
	// ErrNilInput is returned when a required model or matrix argument is nil.
	ErrNilInput = errors.New("train: nil input")

	// ErrBadLabels is returned when the label slice is empty, does not match
	// the number of rows, or contains an out-of-range class index.
	ErrBadLabels = errors.New("train: bad labels")

	// ErrBadConfig is returned when Config carries a non-positive epoch
	// count or learning rate.
	ErrBadConfig = errors.New("train: bad config")

	// ErrGradMismatch is returned when the gradients handed to Adam.Step do
	// not match the registered parameters in count or shape.
	ErrGradMismatch = errors.New("train: gradient/parameter mismatch")
)
