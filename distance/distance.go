// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/topoloss/autodiff"
	"github.com/katalvlaran/topoloss/cloud"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilPoints indicates a nil point cloud.
	ErrNilPoints = errors.New("distance: nil point cloud")

	// ErrOutOfRange indicates a row or column index outside [0, n).
	ErrOutOfRange = errors.New("distance: index out of range")

	// ErrNaNInf signals a non-finite distance.
	ErrNaNInf = errors.New("distance: NaN or Inf distance")
)

// Matrix is a gradient-tracked, symmetric distance matrix with zero diagonal.
// cells[i*n+j] and cells[j*n+i] point at the same *autodiff.Var.
type Matrix struct {
	n     int
	cells []*autodiff.Var
}

// FromTrainable builds the distance matrix of the current coordinates of t.
//
// Stage 1 (Validate): t non-nil.
// Stage 2 (Execute):  for i<j build √Σ(x_i−x_j)² from t's leaves; diagonal is Const(0).
// Stage 3 (Check):    any NaN/Inf value → ErrNaNInf wrapped with the pair.
//
// Complexity: O(n²·d).
func FromTrainable(t *cloud.Trainable) (*Matrix, error) {
	if t == nil {
		return nil, ErrNilPoints
	}
	n, d := t.Len(), t.Dim()
	coords := t.Params()
	cells := make([]*autodiff.Var, n*n)
	zero := autodiff.Const(0)

	for i := 0; i < n; i++ {
		cells[i*n+i] = zero
		for j := i + 1; j < n; j++ {
			terms := make([]*autodiff.Var, d)
			for k := 0; k < d; k++ {
				diff := autodiff.Sub(coords[i*d+k], coords[j*d+k])
				terms[k] = autodiff.Mul(diff, diff)
			}
			dist := autodiff.Sqrt(autodiff.Sum(terms...))
			if !finite(dist.Value) {
				return nil, fmt.Errorf("FromTrainable(%d,%d): %w", i, j, ErrNaNInf)
			}
			cells[i*n+j] = dist
			cells[j*n+i] = dist
		}
	}

	return &Matrix{n: n, cells: cells}, nil
}

// Len returns n.
func (m *Matrix) Len() int {
	return m.n
}

// At returns the gradient-tracked distance between points i and j.
func (m *Matrix) At(i, j int) (*autodiff.Var, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return nil, fmt.Errorf("Matrix.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.cells[i*m.n+j], nil
}

// Values returns a detached copy of the distances.
func (m *Matrix) Values() *mat.SymDense {
	out := mat.NewSymDense(m.n, nil)
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			out.SetSym(i, j, m.cells[i*m.n+j].Value)
		}
	}

	return out
}

// Pairwise computes detached Euclidean distances between the rows of points.
// The result is symmetric with an exact zero diagonal.
//
// Complexity: O(n²·d).
func Pairwise(points mat.Matrix) (*mat.SymDense, error) {
	if err := cloud.Validate(points); err != nil {
		if errors.Is(err, cloud.ErrNilPoints) {
			return nil, ErrNilPoints
		}
		return nil, err
	}
	n, _ := points.Dims()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = mat.Row(nil, i, points)
	}

	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := euclidean(rows[i], rows[j])
			if !finite(v) {
				return nil, fmt.Errorf("Pairwise(%d,%d): %w", i, j, ErrNaNInf)
			}
			out.SetSym(i, j, v)
		}
	}

	return out, nil
}

// euclidean is the detached metric kernel. It accumulates squared differences
// from 0 in coordinate order, the order autodiff.Sum applies to FromTrainable's
// terms, so both paths produce bit-identical distances.
func euclidean(a, b []float64) float64 {
	s := 0.0
	for k := range a {
		diff := a[k] - b[k]
		s += diff * diff
	}

	return math.Sqrt(s)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
