package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gnnlab/matrix"
)

// newFilledDense builds an n×n Dense with predictable increasing values.
func newFilledDense(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = m.Set(i, j, float64(i*n+j)); err != nil {
				b.Fatalf("Set failed: %v", err)
			}
		}
	}

	return m
}

// benchmarkMul runs Mul on two n×n matrices.
func benchmarkMul(b *testing.B, n int) {
	x := newFilledDense(b, n)
	y := newFilledDense(b, n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(x, y); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}

// BenchmarkMul_Small benchmarks multiplication of small 16×16 matrices,
// the regime graph-convolution toy models operate in.
func BenchmarkMul_Small(b *testing.B) { benchmarkMul(b, 16) }

// BenchmarkMul_Medium benchmarks multiplication of 128×128 matrices.
func BenchmarkMul_Medium(b *testing.B) { benchmarkMul(b, 128) }

// BenchmarkHadamard_Medium benchmarks the elementwise product on 128×128 inputs.
func BenchmarkHadamard_Medium(b *testing.B) {
	x := newFilledDense(b, 128)
	y := newFilledDense(b, 128)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Hadamard(x, y); err != nil {
			b.Fatalf("Hadamard failed: %v", err)
		}
	}
}

// BenchmarkRowSums_Medium benchmarks degree-vector extraction on 128×128 inputs.
func BenchmarkRowSums_Medium(b *testing.B) {
	x := newFilledDense(b, 128)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.RowSums(x); err != nil {
			b.Fatalf("RowSums failed: %v", err)
		}
	}
}
