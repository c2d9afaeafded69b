// SPDX-License-Identifier: MIT

package diagram

import (
	"fmt"
	"math"

	"github.com/katalvlaran/topoloss/autodiff"
	"github.com/katalvlaran/topoloss/distance"
	"github.com/katalvlaran/topoloss/rips"
)

// BuildDim0 builds the dimension-0 diagram: (0, D[i,j]) for every merge (i, j).
// The merge's Vertex field is ignored.
//
// Stage 1 (Validate): dm != nil.
// Stage 2 (Execute):  index dm with each destroyer edge; births share one constant 0.
// Stage 3 (Finalize): Diagram{Dim: 0} with len(gens) rows.
//
// Complexity: O(len(gens)).
func BuildDim0(dm *distance.Matrix, gens []rips.Merge) (Diagram, error) {
	if dm == nil {
		return Diagram{}, ErrNilMatrix
	}
	zero := autodiff.Const(0)
	pts := make([]Point, len(gens))
	for pos, g := range gens {
		death, err := lookup(dm, g.I, g.J)
		if err != nil {
			return Diagram{}, fmt.Errorf("BuildDim0: generator %d: %w", pos, err)
		}
		pts[pos] = Point{Birth: zero, Death: death}
	}

	return Diagram{Dim: Dim0, Points: pts}, nil
}

// BuildDim1 builds the dimension-1 diagram: (D[i,j], D[k,l]) for every cycle.
//
// Stage 1 (Validate): dm != nil.
// Stage 2 (Execute):  index dm with the creator edge then the destroyer edge.
// Stage 3 (Finalize): Diagram{Dim: 1} with len(gens) rows.
//
// Complexity: O(len(gens)).
func BuildDim1(dm *distance.Matrix, gens []rips.Cycle) (Diagram, error) {
	if dm == nil {
		return Diagram{}, ErrNilMatrix
	}
	pts := make([]Point, len(gens))
	for pos, g := range gens {
		birth, err := lookup(dm, g.I, g.J)
		if err != nil {
			return Diagram{}, fmt.Errorf("BuildDim1: generator %d creator: %w", pos, err)
		}
		death, err := lookup(dm, g.K, g.L)
		if err != nil {
			return Diagram{}, fmt.Errorf("BuildDim1: generator %d destroyer: %w", pos, err)
		}
		pts[pos] = Point{Birth: birth, Death: death}
	}

	return Diagram{Dim: Dim1, Points: pts}, nil
}

// lookup maps an engine index pair onto the gradient-tracked matrix, turning a bad
// index into ErrIndexOutOfRange rather than the matrix's own error.
func lookup(dm *distance.Matrix, i, j int) (*autodiff.Var, error) {
	n := dm.Len()
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, fmt.Errorf("edge (%d,%d) with n=%d: %w", i, j, n, ErrIndexOutOfRange)
	}

	return dm.At(i, j)
}

// Validate checks the data integrity of d.
//
//   - Any NaN birth/death → ErrNaN.
//   - death < birth − tol → ErrNegativePersistence.
//
// A negative tol is treated as 0. Infinite deaths are accepted.
func Validate(d Diagram, tol float64) error {
	if tol < 0 {
		tol = 0
	}
	for i, p := range d.Points {
		b, e := p.Birth.Value, p.Death.Value
		if math.IsNaN(b) || math.IsNaN(e) {
			return fmt.Errorf("dim %d row %d: %w", d.Dim, i, ErrNaN)
		}
		if e < b-tol {
			return fmt.Errorf("dim %d row %d: birth %g death %g: %w", d.Dim, i, b, e, ErrNegativePersistence)
		}
	}

	return nil
}
