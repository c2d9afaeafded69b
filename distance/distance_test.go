package distance_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/topoloss/autodiff"
	"github.com/katalvlaran/topoloss/cloud"
	"github.com/katalvlaran/topoloss/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// randomCloud draws n points in R^d from a fixed seed.
func randomCloud(n, d int, seed int64) *mat.Dense {
	r := rand.New(rand.NewSource(seed))
	data := make([]float64, n*d)
	for i := range data {
		data[i] = r.NormFloat64()
	}

	return mat.NewDense(n, d, data)
}

// TestFromTrainable_Invariants checks symmetry, zero diagonal and agreement with Pairwise.
func TestFromTrainable_Invariants(t *testing.T) {
	pts := randomCloud(9, 3, 7)
	tr, err := cloud.NewTrainable(pts)
	require.NoError(t, err)

	dm, err := distance.FromTrainable(tr)
	require.NoError(t, err)
	require.Equal(t, 9, dm.Len())

	plain, err := distance.Pairwise(pts)
	require.NoError(t, err)

	for i := 0; i < 9; i++ {
		dii, err := dm.At(i, i)
		require.NoError(t, err)
		assert.Equal(t, 0.0, dii.Value)
		for j := 0; j < 9; j++ {
			dij, _ := dm.At(i, j)
			dji, _ := dm.At(j, i)
			assert.Same(t, dij, dji)
			// Both paths accumulate in the same order, so values agree exactly.
			assert.Equal(t, plain.At(i, j), dij.Value)
		}
	}
	assert.True(t, mat.Equal(plain, dm.Values()))
}

// TestFromTrainable_Gradient compares ∂d(0,1)/∂x_0 with the analytic (x0−x1)/d.
func TestFromTrainable_Gradient(t *testing.T) {
	pts := mat.NewDense(2, 2, []float64{0, 0, 3, 4})
	tr, err := cloud.NewTrainable(pts)
	require.NoError(t, err)

	dm, err := distance.FromTrainable(tr)
	require.NoError(t, err)
	d01, _ := dm.At(0, 1)
	assert.InDelta(t, 5.0, d01.Value, 1e-12)

	autodiff.Backward(d01)
	g := tr.Grad()
	assert.InDelta(t, -3.0/5, g.At(0, 0), 1e-12)
	assert.InDelta(t, -4.0/5, g.At(0, 1), 1e-12)
	assert.InDelta(t, 3.0/5, g.At(1, 0), 1e-12)
	assert.InDelta(t, 4.0/5, g.At(1, 1), 1e-12)
}

// TestFromTrainable_Fresh verifies that a mutated cloud yields fresh distances.
func TestFromTrainable_Fresh(t *testing.T) {
	tr, err := cloud.NewTrainable(mat.NewDense(2, 1, []float64{0, 1}))
	require.NoError(t, err)

	first, err := distance.FromTrainable(tr)
	require.NoError(t, err)
	require.NoError(t, tr.Set(mat.NewDense(2, 1, []float64{0, 2})))
	second, err := distance.FromTrainable(tr)
	require.NoError(t, err)

	a, _ := first.At(0, 1)
	b, _ := second.At(0, 1)
	assert.Equal(t, 1.0, a.Value)
	assert.Equal(t, 2.0, b.Value)
}

// TestDuplicatePoints checks the zero-distance case produces a finite zero gradient.
func TestDuplicatePoints(t *testing.T) {
	tr, err := cloud.NewTrainable(mat.NewDense(2, 2, []float64{1, 1, 1, 1}))
	require.NoError(t, err)
	dm, err := distance.FromTrainable(tr)
	require.NoError(t, err)

	d01, _ := dm.At(0, 1)
	autodiff.Backward(d01)
	for _, v := range tr.Grad().RawMatrix().Data {
		assert.False(t, math.IsNaN(v))
		assert.Zero(t, v)
	}
}

// TestErrors covers nil inputs, bad indices and non-finite distances.
func TestErrors(t *testing.T) {
	single, err := cloud.NewTrainable(mat.NewDense(1, 1, []float64{0}))
	require.NoError(t, err)
	huge := mat.NewDense(2, 1, []float64{-1e300, 1e300})
	trHuge, err := cloud.NewTrainable(huge)
	require.NoError(t, err)

	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{"FromTrainable nil", func() error {
			_, err := distance.FromTrainable(nil)
			return err
		}, distance.ErrNilPoints},
		{"Pairwise nil", func() error {
			_, err := distance.Pairwise(nil)
			return err
		}, distance.ErrNilPoints},
		{"At out of range", func() error {
			dm, err := distance.FromTrainable(single)
			if err != nil {
				return err
			}
			_, err = dm.At(0, 1)
			return err
		}, distance.ErrOutOfRange},
		{"Pairwise overflow", func() error {
			_, err := distance.Pairwise(huge)
			return err
		}, distance.ErrNaNInf},
		{"FromTrainable overflow", func() error {
			_, err := distance.FromTrainable(trHuge)
			return err
		}, distance.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.run(), tc.wantErr)
		})
	}
}
