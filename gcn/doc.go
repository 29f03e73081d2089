// Package gcn implements the Graph Convolutional Network building blocks:
// symmetric adjacency normalization, the aggregate-then-project convolution
// layer, and a deterministic two-layer node classifier.
//
// 🚀 What is a graph convolution?
//
//	One round of message passing over a graph: every node's new
//	representation is a degree-normalized weighted sum of its neighbors'
//	(and, via a self-loop, its own) previous representation, followed by
//	a learnable linear projection:
//
//	  H' = Â · H · W,   Â = D^(-1/2) · Ã · D^(-1/2),   Ã = A + I
//
// ✨ Key features:
//   - AddSelfLoops — Ã = A + I, applied once per forward pass
//   - Normalize — symmetric degree scaling with a safe zero-degree policy:
//     an isolated node gets zero aggregation weight, never NaN/Inf
//   - Layer — linear projection (no bias) over aggregated features
//   - Model — Normalize → Conv → ReLU → Conv → logits, a pure function of
//     (X, A, W1, W2); the normalized adjacency is shared by both layers
//   - seeded, variance-scaled weight initialization (Glorot / He)
//
// ⚙️ Usage:
//
//	opts := gcn.DefaultOptions()
//	opts.Seed = 42
//
//	model, err := gcn.NewModel(4, 8, 2, opts)
//	if err != nil { ... }
//
//	logits, err := model.Forward(features, adjacency) // N×2 raw scores
//
// Contract notes:
//   - Normalize does NOT add self-loops; its input is expected to carry
//     them already (Ã). Model.Forward adds them exactly once and reuses
//     one Â for both layers, which is identical to per-layer recomputation
//     because the graph is static across layers.
//   - All operations are deterministic: fixed loop orders, seeded RNG.
//
// Performance:
//   - Normalize: O(N²) time; Forward: O(N²·d) time for d feature columns.
//
// See example_test.go for a full 5-node chain walkthrough.
package gcn
