// Package gcn — the single graph-convolution layer: aggregate, then project.

package gcn

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/gnnlab/matrix"
)

// glorotGain is the numerator of the Glorot-uniform limit sqrt(6/(fanIn+fanOut)).
const glorotGain = 6.0

// heGain is the numerator of the He-normal variance 2/fanIn.
const heGain = 2.0

// Layer is one message-passing round: X_agg = Â·X, then a learnable linear
// projection X_agg·W with no bias term. The weight matrix W (inDim×outDim)
// is the layer's sole parameter; no nonlinearity is applied inside the
// layer — the composing model decides what happens between layers.
type Layer struct {
	w      *matrix.Dense // learnable weights, inDim×outDim
	inDim  int
	outDim int
}

// NewLayer allocates a layer with variance-scaled random weights drawn
// from rng according to scheme.
//
// Inputs:
//   - inDim, outDim: positive feature dimensions (fan-in, fan-out).
//   - rng: deterministic source; callers own the seed policy.
//   - scheme: GlorotUniform or HeNormal.
//
// Errors:
//   - ErrBadDimension (non-positive dims), ErrBadInitScheme.
//
// Complexity:
//   - Time O(inDim·outDim), Space O(inDim·outDim).
func NewLayer(inDim, outDim int, rng *rand.Rand, scheme InitScheme) (*Layer, error) {
	if inDim <= 0 || outDim <= 0 {
		return nil, fmt.Errorf("NewLayer: %dx%d: %w", inDim, outDim, ErrBadDimension)
	}
	if rng == nil {
		rng = rngFromSeed(0) // fall back to the deterministic default stream
	}

	w, err := matrix.NewDense(inDim, outDim)
	if err != nil {
		return nil, fmt.Errorf("NewLayer: %w", err)
	}

	// Draw weights in fixed i→j order so a given seed always produces the
	// same parameter matrix.
	var i, j int
	var v float64
	switch scheme {
	case GlorotUniform:
		limit := math.Sqrt(glorotGain / float64(inDim+outDim))
		for i = 0; i < inDim; i++ {
			for j = 0; j < outDim; j++ {
				v = (rng.Float64()*2 - 1) * limit // U(-limit, +limit)
				if err = w.Set(i, j, v); err != nil {
					return nil, fmt.Errorf("NewLayer: Set(%d,%d): %w", i, j, err)
				}
			}
		}
	case HeNormal:
		std := math.Sqrt(heGain / float64(inDim))
		for i = 0; i < inDim; i++ {
			for j = 0; j < outDim; j++ {
				v = rng.NormFloat64() * std
				if err = w.Set(i, j, v); err != nil {
					return nil, fmt.Errorf("NewLayer: Set(%d,%d): %w", i, j, err)
				}
			}
		}
	default:
		return nil, fmt.Errorf("NewLayer: scheme=%d: %w", scheme, ErrBadInitScheme)
	}

	return &Layer{w: w, inDim: inDim, outDim: outDim}, nil
}

// InDim returns the layer's fan-in. Complexity: O(1).
func (l *Layer) InDim() int { return l.inDim }

// OutDim returns the layer's fan-out. Complexity: O(1).
func (l *Layer) OutDim() int { return l.outDim }

// Weights exposes the live weight matrix. The optimizer mutates it in
// place between forward passes; treat it as read-only everywhere else.
// Complexity: O(1).
func (l *Layer) Weights() *matrix.Dense { return l.w }

// Apply runs one convolution round: out = (aNorm · x) · W.
//
// Inputs:
//   - aNorm: precomputed normalized adjacency Â (N×N, see Normalize).
//   - x: node features (N×inDim).
//
// Errors:
//   - ErrNilInput, ErrShapeMismatch; matrix sentinels propagate.
//
// Complexity:
//   - Time O(N²·inDim + N·inDim·outDim), Space O(N·outDim).
func (l *Layer) Apply(aNorm, x matrix.Matrix) (*matrix.Dense, error) {
	agg, err := l.aggregate(aNorm, x)
	if err != nil {
		return nil, err
	}

	return l.project(agg)
}

// aggregate computes Â·X, each node's normalized neighbor sum.
func (l *Layer) aggregate(aNorm, x matrix.Matrix) (*matrix.Dense, error) {
	if aNorm == nil || x == nil {
		return nil, fmt.Errorf("Layer.Apply: %w", ErrNilInput)
	}
	if x.Cols() != l.inDim {
		return nil, fmt.Errorf("Layer.Apply: features %dx%d vs fan-in %d: %w",
			x.Rows(), x.Cols(), l.inDim, ErrShapeMismatch)
	}
	if aNorm.Rows() != x.Rows() {
		return nil, fmt.Errorf("Layer.Apply: adjacency %d vs features %d rows: %w",
			aNorm.Rows(), x.Rows(), ErrShapeMismatch)
	}

	agg, err := matrix.Mul(aNorm, x)
	if err != nil {
		return nil, fmt.Errorf("Layer.Apply: aggregate: %w", err)
	}

	return agg, nil
}

// project applies the learnable linear map to aggregated features.
func (l *Layer) project(agg *matrix.Dense) (*matrix.Dense, error) {
	out, err := matrix.Mul(agg, l.w)
	if err != nil {
		return nil, fmt.Errorf("Layer.Apply: project: %w", err)
	}

	return out, nil
}

// ReLU returns the elementwise rectification max(0, v) of m.
// Applied by the model between layers, never inside a layer.
//
// Errors: ErrNilInput.
// Complexity: Time O(r·c), Space O(r·c).
func ReLU(m matrix.Matrix) (*matrix.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("ReLU: %w", ErrNilInput)
	}
	out, err := matrix.Apply(m, func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return v
	})
	if err != nil {
		return nil, fmt.Errorf("ReLU: %w", err)
	}

	return out, nil
}
