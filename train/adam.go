// Package train — the Adam optimizer over a fixed set of weight matrices.

package train

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gnnlab/matrix"
)

// Adam hyperparameter defaults, the standard published values.
const (
	defaultBeta1 = 0.9
	defaultBeta2 = 0.999
	defaultEps   = 1e-8
)

// opAdamStep tags errors raised by Adam.Step.
const opAdamStep = "Adam.Step"

// Adam maintains exponential moving averages of gradients (first moment)
// and squared gradients (second moment) per parameter matrix, and applies
// bias-corrected updates in place. Parameters are registered once at
// construction; Step expects gradients in the same order.
type Adam struct {
	params []*matrix.Dense
	m, v   []*matrix.Dense // first/second moment estimates, same shapes as params
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	step   int
}

// NewAdam registers params and allocates zeroed moment buffers.
//
// Inputs:
//   - params: the live weight matrices to update (mutated in place).
//   - lr: positive learning rate.
//
// Errors:
//   - ErrNilInput (empty set or nil entry), ErrBadConfig (lr ≤ 0 or NaN).
//
// Complexity:
//   - Time/Space O(Σ size(param)).
func NewAdam(params []*matrix.Dense, lr float64) (*Adam, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("NewAdam: %w", ErrNilInput)
	}
	if lr <= 0 || math.IsNaN(lr) {
		return nil, fmt.Errorf("NewAdam: lr=%v: %w", lr, ErrBadConfig)
	}

	m := make([]*matrix.Dense, len(params))
	v := make([]*matrix.Dense, len(params))
	for i, p := range params {
		if p == nil {
			return nil, fmt.Errorf("NewAdam: param %d: %w", i, ErrNilInput)
		}
		var err error
		if m[i], err = matrix.NewDense(p.Rows(), p.Cols()); err != nil {
			return nil, fmt.Errorf("NewAdam: %w", err)
		}
		if v[i], err = matrix.NewDense(p.Rows(), p.Cols()); err != nil {
			return nil, fmt.Errorf("NewAdam: %w", err)
		}
	}

	return &Adam{
		params: params,
		m:      m,
		v:      v,
		lr:     lr,
		beta1:  defaultBeta1,
		beta2:  defaultBeta2,
		eps:    defaultEps,
	}, nil
}

// Step applies one bias-corrected Adam update per registered parameter.
//
// Implementation stages:
//  1. Validate gradient count and per-matrix shapes against the params.
//  2. Advance the step counter, derive bias corrections bc1/bc2.
//  3. Per element: m ← β1·m + (1−β1)·g, v ← β2·v + (1−β2)·g²,
//     w ← w − lr·(m/bc1)/(sqrt(v/bc2)+ε).
//
// Errors:
//   - ErrGradMismatch.
//
// Complexity:
//   - Time O(Σ size(param)).
func (a *Adam) Step(grads []*matrix.Dense) error {
	if len(grads) != len(a.params) {
		return fmt.Errorf("%s: %d grads vs %d params: %w", opAdamStep, len(grads), len(a.params), ErrGradMismatch)
	}
	for i, g := range grads {
		p := a.params[i]
		if g == nil || g.Rows() != p.Rows() || g.Cols() != p.Cols() {
			return fmt.Errorf("%s: grad %d shape: %w", opAdamStep, i, ErrGradMismatch)
		}
	}

	a.step++
	bc1 := 1 - math.Pow(a.beta1, float64(a.step))
	bc2 := 1 - math.Pow(a.beta2, float64(a.step))

	for i, g := range grads {
		p, mi, vi := a.params[i], a.m[i], a.v[i]
		for r := 0; r < p.Rows(); r++ {
			for c := 0; c < p.Cols(); c++ {
				gv, err := g.At(r, c)
				if err != nil {
					return fmt.Errorf("%s: %w", opAdamStep, err)
				}
				mv, _ := mi.At(r, c)
				vv, _ := vi.At(r, c)

				mv = a.beta1*mv + (1-a.beta1)*gv
				vv = a.beta2*vv + (1-a.beta2)*gv*gv
				if err = mi.Set(r, c, mv); err != nil {
					return fmt.Errorf("%s: %w", opAdamStep, err)
				}
				if err = vi.Set(r, c, vv); err != nil {
					return fmt.Errorf("%s: %w", opAdamStep, err)
				}

				w, _ := p.At(r, c)
				w -= a.lr * (mv / bc1) / (math.Sqrt(vv/bc2) + a.eps)
				if err = p.Set(r, c, w); err != nil {
					return fmt.Errorf("%s: %w", opAdamStep, err)
				}
			}
		}
	}

	return nil
}

// StepCount reports how many updates have been applied. Complexity: O(1).
func (a *Adam) StepCount() int { return a.step }
