// Package train — 🚀 the illustrative training loop for the two-layer
// graph-convolution classifier.
//
// # ✨ What lives here?
//
//   - SoftmaxCrossEntropy — numerically stable row-softmax + cross-entropy
//     over integer class labels, returning both the scalar loss and the
//     ready-to-backpropagate gradient (P − onehot)/N.
//   - Adam — the adaptive-moment optimizer updating weight matrices in
//     place (first/second moment estimates with bias correction).
//   - Train — the full-batch loop: one Â computed up front, then per epoch
//     a traced forward pass, analytic backward through the fixed two-layer
//     architecture, and one optimizer step. Per-epoch losses are recorded
//     in the returned Result.
//   - Predict / Accuracy — argmax decoding and label agreement, handy for
//     demos and smoke tests.
//
// # ⚙️ Usage
//
//	model, _ := gcn.NewModel(4, 8, 2, gcn.DefaultOptions())
//	res, err := train.Train(model, x, a, labels, train.DefaultConfig())
//	if err != nil { ... }
//	fmt.Println(res.Losses[0], res.Losses[len(res.Losses)-1])
//
// # Design rules
//
//   - Determinism: no hidden randomness; the model's seed is the only
//     stochastic input, so a fixed (seed, data, config) triple reproduces
//     the exact loss trajectory.
//   - Full batch: every epoch consumes the whole graph; there is no
//     mini-batching or sampling over nodes.
//   - The backward pass never recomputes a forward product — it consumes
//     the intermediates cached in gcn.Trace.
package train
