package autodiff_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/topoloss/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// numericGrad estimates ∂f/∂x by central differences.
func numericGrad(f func(x float64) float64, x float64) float64 {
	const h = 1e-6

	return (f(x+h) - f(x-h)) / (2 * h)
}

// TestBackward_Polynomial checks a mixed expression against its closed-form gradient.
func TestBackward_Polynomial(t *testing.T) {
	// f(x, y) = (x*y + 3x) - y²  at (2, 5)
	x := autodiff.NewParam(2)
	y := autodiff.NewParam(5)
	f := autodiff.Sub(autodiff.Add(autodiff.Mul(x, y), autodiff.Scale(x, 3)), autodiff.Pow(y, 2))

	autodiff.Backward(f)

	assert.InDelta(t, 2*5+6-25, f.Value, 1e-12)
	assert.InDelta(t, 5+3, x.Grad, 1e-12)   // ∂f/∂x = y + 3
	assert.InDelta(t, 2-2*5, y.Grad, 1e-12) // ∂f/∂y = x - 2y
}

// TestBackward_SharedNode ensures fan-out nodes receive the sum of all paths.
func TestBackward_SharedNode(t *testing.T) {
	x := autodiff.NewParam(3)
	sq := autodiff.Mul(x, x)
	f := autodiff.Add(sq, sq) // 2x²

	autodiff.Backward(f)
	assert.InDelta(t, 12.0, x.Grad, 1e-12)
}

// TestBackward_Sqrt compares the Euclidean-norm gradient to finite differences.
func TestBackward_Sqrt(t *testing.T) {
	norm := func(a float64) float64 { return math.Sqrt(a*a + 16) }

	a := autodiff.NewParam(3)
	b := autodiff.Const(4)
	f := autodiff.Sqrt(autodiff.Add(autodiff.Mul(a, a), autodiff.Mul(b, b)))
	autodiff.Backward(f)

	assert.InDelta(t, 5.0, f.Value, 1e-12)
	assert.InDelta(t, numericGrad(norm, 3), a.Grad, 1e-6)
}

// TestNonSmoothPoints verifies the zero-subgradient convention at 0.
func TestNonSmoothPoints(t *testing.T) {
	x := autodiff.NewParam(0)
	autodiff.Backward(autodiff.Sqrt(x))
	assert.Zero(t, x.Grad)
	assert.False(t, math.IsNaN(x.Grad))

	y := autodiff.NewParam(0)
	autodiff.Backward(autodiff.Abs(y))
	assert.Zero(t, y.Grad)

	z := autodiff.NewParam(0)
	autodiff.Backward(autodiff.Pow(z, 0.5))
	assert.Zero(t, z.Grad)

	w := autodiff.NewParam(-2)
	autodiff.Backward(autodiff.Abs(w))
	assert.Equal(t, -1.0, w.Grad)
}

// TestBackward_Accumulates checks that leaves accumulate across passes until ZeroGrad.
func TestBackward_Accumulates(t *testing.T) {
	x := autodiff.NewParam(1)
	f := autodiff.Scale(x, 4)

	autodiff.Backward(f)
	autodiff.Backward(f)
	assert.Equal(t, 8.0, x.Grad)

	x.ZeroGrad()
	autodiff.Backward(f)
	assert.Equal(t, 4.0, x.Grad)
}

// TestSum_EmptyAndParams covers Sum edge cases and Params discovery.
func TestSum_EmptyAndParams(t *testing.T) {
	empty := autodiff.Sum()
	require.NotNil(t, empty)
	assert.Zero(t, empty.Value)
	assert.Empty(t, autodiff.Params(empty))

	a, b := autodiff.NewParam(1), autodiff.NewParam(2)
	c := autodiff.Const(10)
	s := autodiff.Sum(a, b, c, a)
	assert.Equal(t, 14.0, s.Value)

	params := autodiff.Params(s)
	assert.ElementsMatch(t, []*autodiff.Var{a, b}, params)

	autodiff.Backward(s)
	assert.Equal(t, 2.0, a.Grad)
	assert.Equal(t, 1.0, b.Grad)
}

// TestBackward_DeepChain guards the iterative walk against deep graphs.
func TestBackward_DeepChain(t *testing.T) {
	x := autodiff.NewParam(1)
	v := x
	for i := 0; i < 200000; i++ {
		v = autodiff.AddConst(v, 1)
	}
	autodiff.Backward(v)
	assert.Equal(t, 1.0, x.Grad)
	assert.Equal(t, 200001.0, v.Value)
}

// TestDetach returns a constant without history.
func TestDetach(t *testing.T) {
	x := autodiff.NewParam(2)
	y := autodiff.Mul(x, x).Detach()
	assert.True(t, y.IsLeaf())
	assert.False(t, y.IsParam())
	assert.Equal(t, 4.0, y.Value)

	autodiff.Backward(autodiff.Mul(y, x))
	assert.Equal(t, 4.0, x.Grad)
}
