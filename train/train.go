// Package train — the full-batch training loop over a static graph.

package train

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gnnlab/gcn"
	"github.com/katalvlaran/gnnlab/matrix"
)

// Default loop hyperparameters.
const (
	defaultEpochs    = 200
	defaultLearnRate = 0.01
)

// opTrain tags errors raised by Train.
const opTrain = "Train"

// Config sets the loop hyperparameters. The model carries its own seed;
// given the same model options, data and Config, the loss trajectory is
// bit-for-bit reproducible.
type Config struct {
	// Epochs is the number of full-batch passes. Must be positive.
	Epochs int

	// LearnRate is the Adam step size. Must be positive and finite.
	LearnRate float64
}

// DefaultConfig returns the canonical demo hyperparameters: 200 epochs at
// learning rate 0.01. Complexity: O(1).
func DefaultConfig() Config {
	return Config{
		Epochs:    defaultEpochs,
		LearnRate: defaultLearnRate,
	}
}

// Result is the record of one training run.
type Result struct {
	// Losses holds the loss of each epoch, measured on the forward pass
	// before that epoch's parameter update. len(Losses) == Config.Epochs.
	Losses []float64
}

// InitialLoss returns the first recorded loss. Complexity: O(1).
func (r *Result) InitialLoss() float64 { return r.Losses[0] }

// FinalLoss returns the last recorded loss. Complexity: O(1).
func (r *Result) FinalLoss() float64 { return r.Losses[len(r.Losses)-1] }

// Train runs the illustrative full-batch loop: softmax cross-entropy on
// the logits, analytic backward through the fixed two-layer architecture,
// Adam updates in place. The graph is static, so Â is computed once up
// front and reused every epoch.
//
// Implementation stages:
//  1. Validate model, config, shapes and label range.
//  2. Precompute Â = Normalize(A + I).
//  3. Per epoch: traced forward pass → loss/gradient → backward:
//     dW2 = Agg2ᵀ·G2
//     dAct1 = Âᵀ·(G2·W2ᵀ)
//     dPre1 = dAct1 ⊙ 1[Pre1 > 0]
//     dW1 = Agg1ᵀ·dPre1
//     → one Adam step over (W1, W2); record the loss.
//
// Errors:
//   - ErrNilInput, ErrBadConfig, ErrBadLabels; gcn and matrix sentinels
//     propagate wrapped.
//
// Determinism: pure function of (model weights, x, a, labels, cfg).
// Complexity: Time O(Epochs·N²·(inDim+hiddenDim)), Space O(N·hiddenDim).
func Train(model *gcn.Model, x, a matrix.Matrix, labels []int, cfg Config) (*Result, error) {
	if model == nil || x == nil || a == nil {
		return nil, fmt.Errorf("%s: %w", opTrain, ErrNilInput)
	}
	if cfg.Epochs <= 0 || cfg.LearnRate <= 0 || math.IsNaN(cfg.LearnRate) {
		return nil, fmt.Errorf("%s: epochs=%d lr=%v: %w", opTrain, cfg.Epochs, cfg.LearnRate, ErrBadConfig)
	}
	if len(labels) != x.Rows() {
		return nil, fmt.Errorf("%s: %d labels vs %d nodes: %w", opTrain, len(labels), x.Rows(), ErrBadLabels)
	}
	for i, y := range labels {
		if y < 0 || y >= model.OutputDim() {
			return nil, fmt.Errorf("%s: label[%d]=%d outside [0,%d): %w",
				opTrain, i, y, model.OutputDim(), ErrBadLabels)
		}
	}

	// Stage 2: the graph never changes, so normalize once.
	loops, err := gcn.AddSelfLoops(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTrain, err)
	}
	aNorm, err := gcn.Normalize(loops)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTrain, err)
	}

	opt, err := NewAdam(model.Parameters(), cfg.LearnRate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTrain, err)
	}

	res := &Result{Losses: make([]float64, 0, cfg.Epochs)}
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		trace, errEpoch := model.TraceNormalized(x, aNorm)
		if errEpoch != nil {
			return nil, fmt.Errorf("%s: epoch %d: %w", opTrain, epoch, errEpoch)
		}

		loss, g2, errEpoch := SoftmaxCrossEntropy(trace.Logits, labels)
		if errEpoch != nil {
			return nil, fmt.Errorf("%s: epoch %d: %w", opTrain, epoch, errEpoch)
		}
		res.Losses = append(res.Losses, loss)

		dW1, dW2, errEpoch := backward(model, trace, g2)
		if errEpoch != nil {
			return nil, fmt.Errorf("%s: epoch %d: %w", opTrain, epoch, errEpoch)
		}

		if errEpoch = opt.Step([]*matrix.Dense{dW1, dW2}); errEpoch != nil {
			return nil, fmt.Errorf("%s: epoch %d: %w", opTrain, epoch, errEpoch)
		}
	}

	return res, nil
}

// backward propagates the logit gradient g2 through the cached trace and
// returns the weight gradients (dW1, dW2).
//
// The chain follows logits = Â·relu(Â·X·W1)·W2 exactly:
// W2 sees its input Agg2; the hidden path re-applies Âᵀ (aggregation is
// linear), masks by the ReLU derivative, and lands on W1's input Agg1.
func backward(model *gcn.Model, trace *gcn.Trace, g2 *matrix.Dense) (*matrix.Dense, *matrix.Dense, error) {
	agg2T, err := matrix.Transpose(trace.Agg2)
	if err != nil {
		return nil, nil, fmt.Errorf("backward: %w", err)
	}
	dW2, err := matrix.Mul(agg2T, g2)
	if err != nil {
		return nil, nil, fmt.Errorf("backward: %w", err)
	}

	w2T, err := matrix.Transpose(model.Layer2().Weights())
	if err != nil {
		return nil, nil, fmt.Errorf("backward: %w", err)
	}
	dAgg2, err := matrix.Mul(g2, w2T)
	if err != nil {
		return nil, nil, fmt.Errorf("backward: %w", err)
	}
	aT, err := matrix.Transpose(trace.ANorm)
	if err != nil {
		return nil, nil, fmt.Errorf("backward: %w", err)
	}
	dAct1, err := matrix.Mul(aT, dAgg2)
	if err != nil {
		return nil, nil, fmt.Errorf("backward: %w", err)
	}

	// ReLU derivative: pass where the pre-activation was strictly positive.
	mask, err := matrix.Apply(trace.Pre1, func(v float64) float64 {
		if v > 0 {
			return 1
		}
		return 0
	})
	if err != nil {
		return nil, nil, fmt.Errorf("backward: %w", err)
	}
	dPre1, err := matrix.Hadamard(dAct1, mask)
	if err != nil {
		return nil, nil, fmt.Errorf("backward: %w", err)
	}

	agg1T, err := matrix.Transpose(trace.Agg1)
	if err != nil {
		return nil, nil, fmt.Errorf("backward: %w", err)
	}
	dW1, err := matrix.Mul(agg1T, dPre1)
	if err != nil {
		return nil, nil, fmt.Errorf("backward: %w", err)
	}

	return dW1, dW2, nil
}
