package train_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gnnlab/gcn"
	"github.com/katalvlaran/gnnlab/matrix"
	"github.com/katalvlaran/gnnlab/train"
)

// newBenchTask builds an n-node ring with random features and alternating
// labels, all from a fixed seed.
func newBenchTask(b *testing.B, n, d int) (*matrix.Dense, *matrix.Dense, []int) {
	b.Helper()

	a, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		if err = a.Set(i, next, 1); err != nil {
			b.Fatal(err)
		}
		if err = a.Set(next, i, 1); err != nil {
			b.Fatal(err)
		}
	}

	rng := rand.New(rand.NewSource(5))
	x, err := matrix.NewDense(n, d)
	if err != nil {
		b.Fatal(err)
	}
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		labels[i] = i % 2
		for j := 0; j < d; j++ {
			if err = x.Set(i, j, rng.NormFloat64()); err != nil {
				b.Fatal(err)
			}
		}
	}

	return a, x, labels
}

func benchmarkTrain(b *testing.B, n, d, hidden, epochs int) {
	a, x, labels := newBenchTask(b, n, d)
	cfg := train.Config{Epochs: epochs, LearnRate: 0.01}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		model, err := gcn.NewModel(d, hidden, 2, gcn.DefaultOptions())
		if err != nil {
			b.Fatal(err)
		}
		if _, err = train.Train(model, x, a, labels, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTrain_Small(b *testing.B)  { benchmarkTrain(b, 16, 4, 8, 10) }
func BenchmarkTrain_Medium(b *testing.B) { benchmarkTrain(b, 64, 8, 16, 10) }
