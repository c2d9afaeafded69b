package loss_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/topoloss/autodiff"
	"github.com/katalvlaran/topoloss/diagram"
	"github.com/katalvlaran/topoloss/loss"
	"github.com/katalvlaran/topoloss/rips"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trainableDiagram returns a diagram whose coordinates are parameters.
func trainableDiagram(dim int, rows ...[2]float64) diagram.Diagram {
	pts := make([]diagram.Point, len(rows))
	for i, r := range rows {
		pts[i] = diagram.Point{Birth: autodiff.NewParam(r[0]), Death: autodiff.NewParam(r[1])}
	}

	return diagram.Diagram{Dim: dim, Points: pts}
}

func target() loss.Target {
	return loss.Target{Diagrams: []diagram.Diagram{
		diagram.FromPairs(0, []rips.Pair{{Birth: 0, Death: 1}, {Birth: 0, Death: 2}}),
		diagram.FromPairs(1, []rips.Pair{{Birth: 1, Death: 1.5}}),
	}}
}

// TestSummaryStatistic_ValueAndGradient: |S(src) − S(tgt)| with p = 2 and its derivative.
func TestSummaryStatistic_ValueAndGradient(t *testing.T) {
	ev, err := loss.NewSummaryStatistic(loss.WithDimensions(0))(target())
	require.NoError(t, err)

	src := []diagram.Diagram{trainableDiagram(0, [2]float64{0, 3}), trainableDiagram(1)}
	l, err := ev.Loss(src)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, l.Value, 1e-12) // 9 − (1 + 4)

	autodiff.Backward(l)
	assert.InDelta(t, 6.0, src[0].Points[0].Death.Grad, 1e-12)
	assert.InDelta(t, -6.0, src[0].Points[0].Birth.Grad, 1e-12)
}

// TestSummaryStatistic_AllDimensions sums every dimension by default.
func TestSummaryStatistic_AllDimensions(t *testing.T) {
	ev, err := loss.NewSummaryStatistic(loss.WithExponent(1))(target())
	require.NoError(t, err)

	// S(tgt) = 1 + 2 + 0.5 = 3.5; S(src) = 1 + 0.25 = 1.25.
	src := []diagram.Diagram{
		trainableDiagram(0, [2]float64{0, 1}),
		trainableDiagram(1, [2]float64{2, 2.25}),
	}
	l, err := ev.Loss(src)
	require.NoError(t, err)
	assert.InDelta(t, 2.25, l.Value, 1e-12)

	autodiff.Backward(l)
	assert.InDelta(t, -1.0, src[1].Points[0].Death.Grad, 1e-12)
}

// TestSummaryStatistic_NoFeatures: empty diagrams on both sides give 0, not an error.
func TestSummaryStatistic_NoFeatures(t *testing.T) {
	empty := loss.Target{Diagrams: []diagram.Diagram{{Dim: 0}, {Dim: 1}}}
	ev, err := loss.NewSummaryStatistic()(empty)
	require.NoError(t, err)

	l, err := ev.Loss([]diagram.Diagram{{Dim: 0}, {Dim: 1}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, l.Value)
	assert.Empty(t, autodiff.Params(l))
}

// TestSummaryStatistic_SkipsInfinite ignores essential rows.
func TestSummaryStatistic_SkipsInfinite(t *testing.T) {
	tgt := loss.Target{Diagrams: []diagram.Diagram{
		diagram.FromPairs(0, []rips.Pair{{Birth: 0, Death: 2}, {Birth: 0, Death: math.Inf(1)}}),
	}}
	ev, err := loss.NewSummaryStatistic()(tgt)
	require.NoError(t, err)

	l, err := ev.Loss([]diagram.Diagram{trainableDiagram(0, [2]float64{0, 2})})
	require.NoError(t, err)
	assert.Equal(t, 0.0, l.Value)
}

func TestSummaryStatistic_Errors(t *testing.T) {
	_, err := loss.NewSummaryStatistic()(loss.Target{})
	assert.ErrorIs(t, err, loss.ErrNilTarget)

	assert.Panics(t, func() { loss.WithExponent(0) })
	assert.Panics(t, func() { loss.WithExponent(math.NaN()) })
	assert.Panics(t, func() { loss.WithExponent(math.Inf(1)) })
	assert.Panics(t, func() { loss.WithDimensions(-1) })
	assert.NotPanics(t, func() { loss.WithDimensions() })
}

func TestEvaluatorFunc(t *testing.T) {
	var ev loss.Evaluator = loss.EvaluatorFunc(func(src []diagram.Diagram) (*autodiff.Var, error) {
		return autodiff.Const(float64(len(src))), nil
	})
	l, err := ev.Loss(make([]diagram.Diagram, 2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, l.Value)
}
