package modelspace_test

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/topoloss/autodiff"
	"github.com/katalvlaran/topoloss/loss"
	"github.com/katalvlaran/topoloss/modelspace"
	"gonum.org/v1/gonum/mat"
)

// ExampleModule_Evaluate grows a small square toward a larger one by following the
// gradient of a total-persistence loss.
func ExampleModule_Evaluate() {
	// 1. A small source square and a target square four times larger.
	source := mat.NewDense(4, 2, []float64{0, 0, 0.5, 0, 0.5, 0.5, 0, 0.5})
	target := mat.NewDense(4, 2, []float64{0, 0, 2, 0, 2, 2, 0, 2})

	m, err := modelspace.New(source, target, loss.NewSummaryStatistic(),
		modelspace.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2. A few plain gradient steps; the module itself never moves the points.
	first, _ := m.Evaluate()
	start := first.Value
	last := start
	for step := 0; step < 5; step++ {
		l, err := m.Evaluate()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		last = l.Value
		m.Points().ZeroGrad()
		autodiff.Backward(l)
		_ = m.Points().Update(func(_, _ int, v, g float64) float64 { return v - 0.02*g })
	}

	fmt.Println("target rows:", m.Target()[0].Len(), m.Target()[1].Len())
	fmt.Println("loss decreased:", last < start)
	// Output:
	// target rows: 3 1
	// loss decreased: true
}
