// Package gcn — the two-layer stack composing normalization, convolution
// and rectification into a node classifier.

package gcn

import (
	"fmt"

	"github.com/katalvlaran/gnnlab/matrix"
)

// Model stacks two graph-convolution layers into a node classifier:
//
//	logits = Â · relu(Â · X · W1) · W2,  Â = Normalize(A + I)
//
// The forward pass is a pure function of (X, A, W1, W2): no hidden state,
// no caching across calls. Self-loops are added exactly once per call and
// the normalized adjacency is shared by both layers.
type Model struct {
	l1, l2    *Layer
	inDim     int
	hiddenDim int
	outDim    int
}

// Trace captures the intermediates of one forward pass. Training code
// consumes it to backpropagate through the fixed two-layer architecture
// without recomputing any product.
type Trace struct {
	ANorm  *matrix.Dense // Â, shared by both layers
	Agg1   *matrix.Dense // Â·X
	Pre1   *matrix.Dense // Â·X·W1, pre-activation
	Act1   *matrix.Dense // relu(Pre1)
	Agg2   *matrix.Dense // Â·Act1
	Logits *matrix.Dense // Â·Act1·W2, N×outDim raw class scores
}

// NewModel constructs a two-layer classifier with dimensions
// inDim → hiddenDim → outDim and seeded random weights.
//
// Implementation:
//   - Stage 1: validate all three dimensions are positive.
//   - Stage 2: derive one deterministic RNG from opts.Seed and initialize
//     both weight matrices from it in layer order (W1 first, then W2), so
//     a given seed always yields the same model.
//
// Errors:
//   - ErrBadDimension, ErrBadInitScheme.
//
// Complexity:
//   - Time O(inDim·hiddenDim + hiddenDim·outDim).
func NewModel(inDim, hiddenDim, outDim int, opts Options) (*Model, error) {
	if inDim <= 0 || hiddenDim <= 0 || outDim <= 0 {
		return nil, fmt.Errorf("NewModel: %d→%d→%d: %w", inDim, hiddenDim, outDim, ErrBadDimension)
	}

	rng := rngFromSeed(opts.Seed)

	l1, err := NewLayer(inDim, hiddenDim, rng, opts.Init)
	if err != nil {
		return nil, fmt.Errorf("NewModel: layer 1: %w", err)
	}
	l2, err := NewLayer(hiddenDim, outDim, rng, opts.Init)
	if err != nil {
		return nil, fmt.Errorf("NewModel: layer 2: %w", err)
	}

	return &Model{
		l1:        l1,
		l2:        l2,
		inDim:     inDim,
		hiddenDim: hiddenDim,
		outDim:    outDim,
	}, nil
}

// InputDim returns the expected feature width. Complexity: O(1).
func (m *Model) InputDim() int { return m.inDim }

// HiddenDim returns the intermediate representation width. Complexity: O(1).
func (m *Model) HiddenDim() int { return m.hiddenDim }

// OutputDim returns the number of output classes. Complexity: O(1).
func (m *Model) OutputDim() int { return m.outDim }

// Layer1 returns the first convolution layer. Complexity: O(1).
func (m *Model) Layer1() *Layer { return m.l1 }

// Layer2 returns the second convolution layer. Complexity: O(1).
func (m *Model) Layer2() *Layer { return m.l2 }

// Parameters returns the model's learnable weight matrices in layer order.
// The optimizer mutates them in place. Complexity: O(1).
func (m *Model) Parameters() []*matrix.Dense {
	return []*matrix.Dense{m.l1.Weights(), m.l2.Weights()}
}

// Forward runs the full two-layer pass on raw inputs: adds self-loops once
// (Ã = A + I), normalizes once, and returns the N×outDim logits.
//
// Inputs:
//   - x: node features (N×inDim).
//   - a: raw adjacency (N×N, self-loops NOT yet added, entries in {0,1}).
//
// Errors:
//   - ErrNilInput, ErrNonSquare, ErrShapeMismatch.
//
// Complexity:
//   - Time O(N²·(inDim+hiddenDim)), Space O(N·(hiddenDim+outDim)).
func (m *Model) Forward(x, a matrix.Matrix) (*matrix.Dense, error) {
	trace, err := m.ForwardTrace(x, a)
	if err != nil {
		return nil, err
	}

	return trace.Logits, nil
}

// ForwardNormalized runs the two-layer pass against a precomputed Â,
// skipping self-loop addition and normalization. Useful when many passes
// share one static graph (e.g. every training epoch).
//
// Errors: ErrNilInput, ErrShapeMismatch.
func (m *Model) ForwardNormalized(x, aNorm matrix.Matrix) (*matrix.Dense, error) {
	h1, err := m.l1.Apply(aNorm, x)
	if err != nil {
		return nil, fmt.Errorf("Forward: layer 1: %w", err)
	}
	z1, err := ReLU(h1)
	if err != nil {
		return nil, fmt.Errorf("Forward: %w", err)
	}
	logits, err := m.l2.Apply(aNorm, z1)
	if err != nil {
		return nil, fmt.Errorf("Forward: layer 2: %w", err)
	}

	return logits, nil
}

// ForwardTrace runs Forward while recording every intermediate product.
//
// Implementation:
//   - Stage 1: validate inputs, build Ã = A + I, Â = Normalize(Ã).
//   - Stage 2: layer 1 — Agg1 = Â·X, Pre1 = Agg1·W1, Act1 = relu(Pre1).
//   - Stage 3: layer 2 — Agg2 = Â·Act1, Logits = Agg2·W2.
//
// Errors:
//   - ErrNilInput, ErrNonSquare, ErrShapeMismatch.
func (m *Model) ForwardTrace(x, a matrix.Matrix) (*Trace, error) {
	if x == nil || a == nil {
		return nil, fmt.Errorf("Forward: %w", ErrNilInput)
	}
	if a.Rows() != a.Cols() {
		return nil, fmt.Errorf("Forward: adjacency %dx%d: %w", a.Rows(), a.Cols(), ErrNonSquare)
	}
	if x.Rows() != a.Rows() {
		return nil, fmt.Errorf("Forward: features %d vs adjacency %d rows: %w",
			x.Rows(), a.Rows(), ErrShapeMismatch)
	}
	if x.Cols() != m.inDim {
		return nil, fmt.Errorf("Forward: feature width %d vs input dim %d: %w",
			x.Cols(), m.inDim, ErrShapeMismatch)
	}

	// Graph preparation happens exactly once per pass.
	loops, err := AddSelfLoops(a)
	if err != nil {
		return nil, fmt.Errorf("Forward: %w", err)
	}
	aNorm, err := Normalize(loops)
	if err != nil {
		return nil, fmt.Errorf("Forward: %w", err)
	}

	return m.forwardTraceNormalized(x, aNorm)
}

// forwardTraceNormalized records the layer-by-layer products against a
// ready Â. Shared by ForwardTrace and the training loop.
func (m *Model) forwardTraceNormalized(x matrix.Matrix, aNorm *matrix.Dense) (*Trace, error) {
	agg1, err := m.l1.aggregate(aNorm, x)
	if err != nil {
		return nil, err
	}
	pre1, err := m.l1.project(agg1)
	if err != nil {
		return nil, err
	}
	act1, err := ReLU(pre1)
	if err != nil {
		return nil, err
	}
	agg2, err := m.l2.aggregate(aNorm, act1)
	if err != nil {
		return nil, err
	}
	logits, err := m.l2.project(agg2)
	if err != nil {
		return nil, err
	}

	return &Trace{
		ANorm:  aNorm,
		Agg1:   agg1,
		Pre1:   pre1,
		Act1:   act1,
		Agg2:   agg2,
		Logits: logits,
	}, nil
}

// TraceNormalized is ForwardTrace against a precomputed Â; it validates
// only feature shape and delegates the layer products.
//
// Errors: ErrNilInput, ErrShapeMismatch.
func (m *Model) TraceNormalized(x matrix.Matrix, aNorm *matrix.Dense) (*Trace, error) {
	if x == nil || aNorm == nil {
		return nil, fmt.Errorf("Forward: %w", ErrNilInput)
	}
	if x.Cols() != m.inDim {
		return nil, fmt.Errorf("Forward: feature width %d vs input dim %d: %w",
			x.Cols(), m.inDim, ErrShapeMismatch)
	}

	return m.forwardTraceNormalized(x, aNorm)
}
