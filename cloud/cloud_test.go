package cloud_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/topoloss/cloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// square returns the unit square as a 4×2 matrix.
func square() *mat.Dense {
	return mat.NewDense(4, 2, []float64{0, 0, 1, 0, 1, 1, 0, 1})
}

// TestValidate covers every guard in the fixed order nil → shape → finite.
func TestValidate(t *testing.T) {
	var typedNil *mat.Dense

	assert.ErrorIs(t, cloud.Validate(nil), cloud.ErrNilPoints)
	assert.ErrorIs(t, cloud.Validate(typedNil), cloud.ErrNilPoints)
	assert.ErrorIs(t, cloud.Validate(&mat.Dense{}), cloud.ErrEmpty)
	assert.ErrorIs(t, cloud.Validate(mat.NewDense(1, 2, []float64{0, math.NaN()})), cloud.ErrNaNInf)
	assert.ErrorIs(t, cloud.Validate(mat.NewDense(1, 1, []float64{math.Inf(-1)})), cloud.ErrNaNInf)
	assert.NoError(t, cloud.Validate(square()))

	assert.ErrorIs(t, cloud.SameDimension(square(), mat.NewDense(2, 3, nil)), cloud.ErrDimensionMismatch)
	assert.NoError(t, cloud.SameDimension(square(), mat.NewDense(7, 2, nil)))
}

// TestTrainable_DetachRoundTrip checks that the conversion boundary copies values both ways.
func TestTrainable_DetachRoundTrip(t *testing.T) {
	src := square()
	tr, err := cloud.NewTrainable(src)
	require.NoError(t, err)
	assert.Equal(t, 4, tr.Len())
	assert.Equal(t, 2, tr.Dim())

	// Mutating the source after construction must not leak into the trainable cloud.
	src.Set(0, 0, 42)
	det := tr.Detach()
	assert.Equal(t, 0.0, det.At(0, 0))
	assert.True(t, mat.Equal(square(), det))

	// Mutating the detached copy must not leak back either.
	det.Set(1, 1, -7)
	v, err := tr.Coord(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v.Value)
	assert.True(t, v.IsParam())
}

// TestTrainable_Indexing verifies bounds checks on Coord and Row.
func TestTrainable_Indexing(t *testing.T) {
	tr, err := cloud.NewTrainable(square())
	require.NoError(t, err)

	_, err = tr.Coord(4, 0)
	assert.ErrorIs(t, err, cloud.ErrOutOfRange)
	_, err = tr.Coord(0, -1)
	assert.ErrorIs(t, err, cloud.ErrOutOfRange)
	_, err = tr.Row(-1)
	assert.ErrorIs(t, err, cloud.ErrOutOfRange)

	row, err := tr.Row(2)
	require.NoError(t, err)
	require.Len(t, row, 2)
	assert.Equal(t, 1.0, row[0].Value)
	assert.Equal(t, 1.0, row[1].Value)
	assert.Len(t, tr.Params(), 8)
}

// TestTrainable_SetAndUpdate exercises in-place mutation used by external optimisers.
func TestTrainable_SetAndUpdate(t *testing.T) {
	tr, err := cloud.NewTrainable(square())
	require.NoError(t, err)
	leaf, _ := tr.Coord(3, 1)

	next := mat.NewDense(4, 2, []float64{1, 1, 2, 1, 2, 2, 1, 2})
	require.NoError(t, tr.Set(next))
	assert.Equal(t, 2.0, leaf.Value, "Set must write into the existing leaves")
	assert.ErrorIs(t, tr.Set(mat.NewDense(3, 2, nil)), cloud.ErrDimensionMismatch)

	leaf.Grad = 0.5
	require.NoError(t, tr.Update(func(_, _ int, value, grad float64) float64 {
		return value - 2*grad
	}))
	assert.Equal(t, 1.0, leaf.Value)

	err = tr.Update(func(i, k int, value, _ float64) float64 {
		if i == 0 && k == 0 {
			return math.NaN()
		}
		return value + 100
	})
	assert.ErrorIs(t, err, cloud.ErrNaNInf)
	assert.Equal(t, 1.0, leaf.Value, "a failed Update writes nothing")

	g := tr.Grad()
	assert.Equal(t, 0.5, g.At(3, 1))
	tr.ZeroGrad()
	assert.Equal(t, 0.0, tr.Grad().At(3, 1))
}

// TestReadCSV covers the happy path, comments and malformed input.
func TestReadCSV(t *testing.T) {
	in := "# unit square\n0, 0\n1,0\n1, 1\n0,1\n"
	m, err := cloud.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.True(t, mat.Equal(square(), m))

	_, err = cloud.ReadCSV(strings.NewReader("1,2\n3\n"))
	assert.ErrorIs(t, err, cloud.ErrParse)

	_, err = cloud.ReadCSV(strings.NewReader("1,x\n"))
	assert.ErrorIs(t, err, cloud.ErrParse)

	_, err = cloud.ReadCSV(strings.NewReader("# nothing\n"))
	assert.ErrorIs(t, err, cloud.ErrEmpty)

	_, err = cloud.ReadCSV(strings.NewReader("1,NaN\n"))
	assert.ErrorIs(t, err, cloud.ErrNaNInf)
}
