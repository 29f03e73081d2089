package gcn_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gnnlab/gcn"
	"github.com/katalvlaran/gnnlab/matrix"
)

//////////////////////////////////////////////////////////////////////////////
// Scenario 1: normalize a tiny triangle graph.
//
// Ã = A + I over the 3-node triangle gives every node degree 3, so every
// retained entry of Â equals 1/3.
//////////////////////////////////////////////////////////////////////////////

func ExampleNormalize() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	})

	loops, _ := gcn.AddSelfLoops(a)
	aNorm, _ := gcn.Normalize(loops)

	v, _ := aNorm.At(0, 1)
	fmt.Printf("Â[0,1] = %.4f\n", v)
	v, _ = aNorm.At(2, 2)
	fmt.Printf("Â[2,2] = %.4f\n", v)

	// Output:
	// Â[0,1] = 0.3333
	// Â[2,2] = 0.3333
}

//////////////////////////////////////////////////////////////////////////////
// Scenario 2: full two-layer forward pass on a 5-node chain.
//
// The logits are seed-dependent, so the example reports their shape and
// finiteness rather than raw values.
//////////////////////////////////////////////////////////////////////////////

func ExampleModel_Forward() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1, 0, 0, 0},
		{1, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 1},
		{0, 0, 0, 1, 0},
	})
	x, _ := matrix.NewDenseFromRows([][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{1, 1, 0, 0},
	})

	model, _ := gcn.NewModel(4, 8, 2, gcn.DefaultOptions())
	logits, _ := model.Forward(x, a)

	finite := true
	for i := 0; i < logits.Rows(); i++ {
		for j := 0; j < logits.Cols(); j++ {
			v, _ := logits.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				finite = false
			}
		}
	}
	fmt.Printf("logits: %dx%d, finite: %v\n", logits.Rows(), logits.Cols(), finite)

	// Output:
	// logits: 5x2, finite: true
}
