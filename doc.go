// Package gnnlab is your in-memory playground for graph convolutional
// networks — message passing, symmetric adjacency normalization and a
// compact two-layer node classifier, all in pure Go.
//
// 🚀 What is gnnlab?
//
//	A small, deterministic library that brings together:
//		• Dense matrices: row-major float64 storage with safe accessors
//		• Adjacency normalization: D^(-1/2)·Ã·D^(-1/2) with self-loop control
//		• Graph convolution: aggregate-then-project layers (no hidden state)
//		• Two-layer stack: Normalize → Conv → ReLU → Conv → logits
//		• Training: softmax cross-entropy + Adam, seeded and reproducible
//		• Builders: chain, cycle, star, complete & disconnected toy graphs
//
// ✨ Why choose gnnlab?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed loop orders, seeded RNG, reproducible runs
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/  — Dense float64 matrices, validators & linear-algebra kernels
//	gcn/     — normalizer, convolution layer and the two-layer model
//	train/   — cross-entropy loss, Adam optimizer and the epoch loop
//	builder/ — deterministic toy adjacency matrices & synthetic features
//
// Quick ASCII example:
//
//	0───1───2───3───4
//
//	a five-node chain; after self-loops and normalization each node
//	aggregates itself and its neighbors with degree-scaled weights.
//
// Dive into examples/ for a full forward-and-train walkthrough.
//
//	go get github.com/katalvlaran/gnnlab
package gnnlab
