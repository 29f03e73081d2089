// Package builder: sentinel error set.

package builder

import "errors"

var (
	// ErrTooFewVertices is returned when n is below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrBadParam is returned when a non-size parameter (feature width,
	// class count) is outside its domain.
	ErrBadParam = errors.New("builder: bad parameter")
)
