// SPDX-License-Identifier: MIT

package diagram

import (
	"errors"
	"math"

	"github.com/katalvlaran/topoloss/autodiff"
	"github.com/katalvlaran/topoloss/rips"
)

// Sentinel errors. Messages are prefixed with "diagram:".
var (
	// ErrNilMatrix indicates a nil distance matrix.
	ErrNilMatrix = errors.New("diagram: nil distance matrix")

	// ErrIndexOutOfRange indicates a generator index outside [0, n).
	ErrIndexOutOfRange = errors.New("diagram: generator index out of range")

	// ErrNegativePersistence indicates death < birth beyond tolerance.
	ErrNegativePersistence = errors.New("diagram: death precedes birth")

	// ErrNaN indicates a NaN birth or death.
	ErrNaN = errors.New("diagram: NaN value")
)

// Homology dimensions handled by the builder.
const (
	Dim0 = 0 // connected components
	Dim1 = 1 // independent cycles
)

// Point is one (birth, death) entry. Both coordinates are autodiff values; on the
// target side they are constants.
type Point struct {
	Birth *autodiff.Var
	Death *autodiff.Var
}

// Diagram is an ordered persistence diagram for a single homology dimension.
type Diagram struct {
	Dim    int
	Points []Point
}

// Len returns the number of rows.
func (d Diagram) Len() int {
	return len(d.Points)
}

// Values returns a detached (birth, death) copy, one row per point.
func (d Diagram) Values() [][2]float64 {
	out := make([][2]float64, len(d.Points))
	for i, p := range d.Points {
		out[i] = [2]float64{p.Birth.Value, p.Death.Value}
	}

	return out
}

// Persistence returns death − birth per row as gradient-bearing values.
// It is an auxiliary output; the diagram itself keeps raw coordinates.
func Persistence(d Diagram) []*autodiff.Var {
	out := make([]*autodiff.Var, len(d.Points))
	for i, p := range d.Points {
		out[i] = autodiff.Sub(p.Death, p.Birth)
	}

	return out
}

// FromPairs converts reported pairs into a constant diagram (no gradient path).
func FromPairs(dim int, pairs []rips.Pair) Diagram {
	pts := make([]Point, len(pairs))
	for i, p := range pairs {
		pts[i] = Point{Birth: autodiff.Const(p.Birth), Death: autodiff.Const(p.Death)}
	}

	return Diagram{Dim: dim, Points: pts}
}

// Finite returns a copy of d without rows whose death (or birth) is infinite.
func Finite(d Diagram) Diagram {
	pts := make([]Point, 0, len(d.Points))
	for _, p := range d.Points {
		if math.IsInf(p.Death.Value, 0) || math.IsInf(p.Birth.Value, 0) {
			continue
		}
		pts = append(pts, p)
	}

	return Diagram{Dim: d.Dim, Points: pts}
}
