// SPDX-License-Identifier: MIT

package cloud

import (
	"fmt"
	"math"

	"github.com/katalvlaran/topoloss/autodiff"
	"gonum.org/v1/gonum/mat"
)

// Trainable is an instance-owned, mutable point cloud whose coordinates are
// trainable autodiff leaves. Coordinates are stored row-major: coords[i*d+k] is
// coordinate k of point i.
//
// The leaves are allocated once; Set and Update overwrite their values in place so
// any graph built afterwards sees the new coordinates.
type Trainable struct {
	n, d   int
	coords []*autodiff.Var
}

// NewTrainable copies points into a fresh set of trainable leaves.
//
// Stage 1 (Validate): Validate(points).
// Stage 2 (Allocate): one autodiff.NewParam per coordinate.
//
// Complexity: O(n·d).
func NewTrainable(points mat.Matrix) (*Trainable, error) {
	if err := Validate(points); err != nil {
		return nil, err
	}
	n, d := points.Dims()
	coords := make([]*autodiff.Var, n*d)
	for i := 0; i < n; i++ {
		for k := 0; k < d; k++ {
			coords[i*d+k] = autodiff.NewParam(points.At(i, k))
		}
	}

	return &Trainable{n: n, d: d, coords: coords}, nil
}

// Len returns the number of points n.
func (t *Trainable) Len() int { return t.n }

// Dim returns the ambient dimension d.
func (t *Trainable) Dim() int { return t.d }

// Coord returns the leaf holding coordinate k of point i.
func (t *Trainable) Coord(i, k int) (*autodiff.Var, error) {
	if i < 0 || i >= t.n || k < 0 || k >= t.d {
		return nil, fmt.Errorf("Trainable.Coord(%d,%d): %w", i, k, ErrOutOfRange)
	}

	return t.coords[i*t.d+k], nil
}

// Row returns the d leaves of point i. The returned slice is a copy; the leaves are shared.
func (t *Trainable) Row(i int) ([]*autodiff.Var, error) {
	if i < 0 || i >= t.n {
		return nil, fmt.Errorf("Trainable.Row(%d): %w", i, ErrOutOfRange)
	}
	row := make([]*autodiff.Var, t.d)
	copy(row, t.coords[i*t.d:(i+1)*t.d])

	return row, nil
}

// Params returns every leaf in row-major order.
func (t *Trainable) Params() []*autodiff.Var {
	out := make([]*autodiff.Var, len(t.coords))
	copy(out, t.coords)

	return out
}

// Detach returns a plain numeric copy of the current coordinates.
// This is the conversion boundary towards combinatorial code.
func (t *Trainable) Detach() *mat.Dense {
	data := make([]float64, len(t.coords))
	for idx, v := range t.coords {
		data[idx] = v.Value
	}

	return mat.NewDense(t.n, t.d, data)
}

// Grad returns the accumulated gradient as an n×d matrix.
func (t *Trainable) Grad() *mat.Dense {
	data := make([]float64, len(t.coords))
	for idx, v := range t.coords {
		data[idx] = v.Grad
	}

	return mat.NewDense(t.n, t.d, data)
}

// ZeroGrad clears the gradient of every coordinate.
func (t *Trainable) ZeroGrad() {
	for _, v := range t.coords {
		v.ZeroGrad()
	}
}

// Set overwrites every coordinate from points, which must have the same shape.
// Gradients are left untouched.
func (t *Trainable) Set(points mat.Matrix) error {
	if err := Validate(points); err != nil {
		return err
	}
	n, d := points.Dims()
	if n != t.n || d != t.d {
		return fmt.Errorf("Trainable.Set: %dx%d into %dx%d: %w", n, d, t.n, t.d, ErrDimensionMismatch)
	}
	for i := 0; i < n; i++ {
		for k := 0; k < d; k++ {
			t.coords[i*d+k].Value = points.At(i, k)
		}
	}

	return nil
}

// Update replaces every coordinate with fn(i, k, value, grad).
// It is the hook external optimisers use to apply a step in place.
// A non-finite result aborts the update before anything is written.
func (t *Trainable) Update(fn func(i, k int, value, grad float64) float64) error {
	next := make([]float64, len(t.coords))
	for idx, v := range t.coords {
		i, k := idx/t.d, idx%t.d
		nv := fn(i, k, v.Value, v.Grad)
		if math.IsNaN(nv) || math.IsInf(nv, 0) {
			return fmt.Errorf("Trainable.Update: point %d coord %d: %w", i, k, ErrNaNInf)
		}
		next[idx] = nv
	}
	for idx, v := range t.coords {
		v.Value = next[idx]
	}

	return nil
}
