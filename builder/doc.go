// Package builder — 🚀 deterministic toy-graph and dataset constructors
// for demos, tests and benchmarks.
//
// # ✨ What lives here?
//
// Adjacency constructors, each returning an n×n symmetric {0,1} matrix
// with a zero diagonal (self-loops belong to the model, never to the raw
// graph):
//
//   - Chain(n)        — the path 0-1-…-(n-1).
//   - Cycle(n)        — the ring, Chain plus the closing edge.
//   - Star(n)         — hub 0 connected to every other node.
//   - Complete(n)     — every pair connected.
//   - Disconnected(n) — n isolated nodes, the all-zero matrix.
//
// And one dataset helper:
//
//   - BlockFeatures(n, d, classes, seed) — class-aligned node features
//     plus integer labels, suitable for the training loop.
//
// # ⚙️ Usage
//
//	a, _ := builder.Chain(5)
//	x, labels, _ := builder.BlockFeatures(5, 4, 2, 42)
//	model, _ := gcn.NewModel(4, 8, 2, gcn.DefaultOptions())
//	logits, _ := model.Forward(x, a)
//
// # Design rules
//
//   - Determinism: constructors are pure functions of their parameters;
//     BlockFeatures draws from a seeded source with a fixed visit order.
//   - Sentinel errors only (ErrTooFewVertices, ErrBadParam); no panics.
//   - Every adjacency is symmetric by construction — both directions of
//     an edge are set in the same statement.
package builder
