// Package builder — BlockFeatures: synthetic class-aligned node features.
//
// Contract:
//   - n ≥ 1, d ≥ 1, 1 ≤ classes ≤ n (else ErrBadParam / ErrTooFewVertices).
//   - Node i gets label i·classes/n (contiguous, near-equal class blocks).
//   - Feature row i is a noisy indicator of its class: dimension
//     (label mod d) carries signal 1.0, every dimension adds N(0, 0.1) noise.
//
// Determinism:
//   - Fixed seed ⇒ identical output; seed 0 maps to the default stream,
//     matching the model's seed policy.
//
// Complexity: Time/Space O(n·d).

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gnnlab/matrix"
)

const (
	methodBlockFeatures = "BlockFeatures"

	signalStrength = 1.0
	noiseStd       = 0.1

	// defaultFeatureSeed mirrors the model's zero-seed policy.
	defaultFeatureSeed int64 = 1
)

// BlockFeatures generates an n×d feature matrix and n labels over the
// given number of classes. Nodes are split into contiguous label blocks,
// and each row's signal dimension identifies its class through the noise.
func BlockFeatures(n, d, classes int, seed int64) (*matrix.Dense, []int, error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("%s: n=%d: %w", methodBlockFeatures, n, ErrTooFewVertices)
	}
	if d < 1 || classes < 1 || classes > n {
		return nil, nil, fmt.Errorf("%s: d=%d classes=%d n=%d: %w", methodBlockFeatures, d, classes, n, ErrBadParam)
	}

	if seed == 0 {
		seed = defaultFeatureSeed
	}
	rng := rand.New(rand.NewSource(seed))

	x, err := matrix.NewDense(n, d)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodBlockFeatures, err)
	}

	labels := make([]int, n)
	for i := 0; i < n; i++ {
		labels[i] = i * classes / n
		signalDim := labels[i] % d
		for j := 0; j < d; j++ {
			v := rng.NormFloat64() * noiseStd
			if j == signalDim {
				v += signalStrength
			}
			if err = x.Set(i, j, v); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", methodBlockFeatures, err)
			}
		}
	}

	return x, labels, nil
}
