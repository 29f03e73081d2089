// Package matrix provides dense, row-major float64 matrices and the
// deterministic linear-algebra kernels the gcn packages are built on.
//
// 🚀 What is gnnlab/matrix?
//
//	A compact numeric core with a minimal Matrix interface and a single
//	concrete implementation, *Dense:
//	  • safe accessors: At/Set return sentinel errors, never panic
//	  • kernels: Add, Sub, Mul, Transpose, Scale, Hadamard, MatVec, Apply
//	  • graph helpers: Identity, RowSums (degree vectors for normalization)
//	  • numeric policy: finite-only Set (NaN/±Inf rejected by default)
//
// ✨ Design rules:
//
//   - Determinism – fixed loop orders everywhere; no map iteration,
//     no hidden randomness; identical inputs give identical outputs.
//   - Fast-path / fallback split – every kernel operates directly on the
//     flat *Dense buffer when it can, and falls back to At/Set for any
//     other Matrix implementation.
//   - Central validators – shape and nil checks live in validators.go and
//     return plain sentinels; kernels wrap them with an operation tag.
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 0}})
//	i, _ := matrix.Identity(2)
//	at, _ := matrix.Add(a, i)      // Ã = A + I
//	deg, _ := matrix.RowSums(at)   // degree vector
//
// Complexity quicksheet:
//   - NewDense/Clone: O(r·c); At/Set: O(1)
//   - Add/Sub/Hadamard/Scale/Transpose/Apply: O(r·c)
//   - Mul: O(r·n·c); MatVec/RowSums: O(r·c)
//
// See example_test.go for runnable snippets.
package matrix
