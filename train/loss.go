// Package train — softmax cross-entropy over integer class labels, plus
// argmax decoding helpers.

package train

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gnnlab/matrix"
)

// probFloor clamps softmax probabilities away from zero before the log,
// so a fully confident wrong prediction cannot produce -Inf loss.
const probFloor = 1e-10

// opSoftmaxCE tags errors raised by SoftmaxCrossEntropy.
const opSoftmaxCE = "SoftmaxCrossEntropy"

// SoftmaxCrossEntropy computes the mean cross-entropy of row-softmaxed
// logits against integer labels and the matching gradient.
//
// Implementation stages:
//  1. Validate logits and labels (length and class range).
//  2. Per row: shift by the row max, exponentiate, normalize — the shift
//     keeps exp() in range for any finite logits.
//  3. Loss = −(1/N)·Σ log(P[i, labels[i]]), probabilities floored at 1e-10.
//  4. Gradient = (P − onehot(labels))/N, the exact derivative of the mean
//     loss with respect to the logits.
//
// Errors:
//   - ErrNilInput (nil logits), ErrBadLabels (length/range).
//
// Determinism: pure function of its inputs.
// Complexity: Time O(N·C), Space O(N·C) for the gradient.
func SoftmaxCrossEntropy(logits *matrix.Dense, labels []int) (float64, *matrix.Dense, error) {
	if logits == nil {
		return 0, nil, fmt.Errorf("%s: %w", opSoftmaxCE, ErrNilInput)
	}
	n, c := logits.Rows(), logits.Cols()
	if len(labels) != n || n == 0 {
		return 0, nil, fmt.Errorf("%s: %d labels vs %d rows: %w", opSoftmaxCE, len(labels), n, ErrBadLabels)
	}
	for i, y := range labels {
		if y < 0 || y >= c {
			return 0, nil, fmt.Errorf("%s: label[%d]=%d outside [0,%d): %w", opSoftmaxCE, i, y, c, ErrBadLabels)
		}
	}

	grad, err := matrix.NewDense(n, c)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", opSoftmaxCE, err)
	}

	var loss float64
	invN := 1.0 / float64(n)
	probs := make([]float64, c)
	for i := 0; i < n; i++ {
		// Row max shift for numerical stability.
		rowMax := math.Inf(-1)
		for j := 0; j < c; j++ {
			v, errAt := logits.At(i, j)
			if errAt != nil {
				return 0, nil, fmt.Errorf("%s: %w", opSoftmaxCE, errAt)
			}
			if v > rowMax {
				rowMax = v
			}
		}

		var sum float64
		for j := 0; j < c; j++ {
			v, _ := logits.At(i, j)
			probs[j] = math.Exp(v - rowMax)
			sum += probs[j]
		}

		for j := 0; j < c; j++ {
			p := probs[j] / sum
			g := p * invN
			if j == labels[i] {
				if p < probFloor {
					p = probFloor
				}
				loss -= math.Log(p) * invN
				g -= invN
			}
			if err = grad.Set(i, j, g); err != nil {
				return 0, nil, fmt.Errorf("%s: %w", opSoftmaxCE, err)
			}
		}
	}

	return loss, grad, nil
}

// Predict returns the argmax class per row of logits. Ties resolve to the
// lowest class index, keeping the output deterministic.
//
// Errors: ErrNilInput.
// Complexity: Time O(N·C), Space O(N).
func Predict(logits *matrix.Dense) ([]int, error) {
	if logits == nil {
		return nil, fmt.Errorf("Predict: %w", ErrNilInput)
	}

	out := make([]int, logits.Rows())
	for i := 0; i < logits.Rows(); i++ {
		best, bestVal := 0, math.Inf(-1)
		for j := 0; j < logits.Cols(); j++ {
			v, err := logits.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("Predict: %w", err)
			}
			if v > bestVal {
				best, bestVal = j, v
			}
		}
		out[i] = best
	}

	return out, nil
}

// Accuracy returns the fraction of rows whose argmax matches labels.
//
// Errors: ErrNilInput, ErrBadLabels (length mismatch).
// Complexity: Time O(N·C).
func Accuracy(logits *matrix.Dense, labels []int) (float64, error) {
	pred, err := Predict(logits)
	if err != nil {
		return 0, fmt.Errorf("Accuracy: %w", err)
	}
	if len(labels) != len(pred) || len(pred) == 0 {
		return 0, fmt.Errorf("Accuracy: %d labels vs %d rows: %w", len(labels), len(pred), ErrBadLabels)
	}

	var hits int
	for i, p := range pred {
		if p == labels[i] {
			hits++
		}
	}

	return float64(hits) / float64(len(pred)), nil
}
