// SPDX-License-Identifier: MIT

package rips

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors. Messages are prefixed with "rips:".
var (
	// ErrNilPoints indicates a nil point matrix.
	ErrNilPoints = errors.New("rips: nil point matrix")

	// ErrNaNInf indicates non-finite coordinates or distances.
	ErrNaNInf = errors.New("rips: NaN or Inf in input")
)

// MaxSupportedDim is the highest homology dimension any backend reports.
const MaxSupportedDim = 1

// Edge is an unordered pair of point indices, stored with I < J.
type Edge struct {
	I, J int
}

// Merge is a dimension-0 generator: the edge (I, J) merges two components.
// Vertex is the representative of the component that dies; it is informational.
type Merge struct {
	Vertex int
	I, J   int
}

// Cycle is a dimension-1 generator: (I, J) creates a loop, (K, L) fills it in.
type Cycle struct {
	I, J int // creator edge
	K, L int // destroyer edge
}

// Pair is one (birth, death) point of a persistence diagram.
// Death is +Inf for essential features.
type Pair struct {
	Birth float64
	Death float64
}

// Persistence returns Death − Birth.
func (p Pair) Persistence() float64 {
	return p.Death - p.Birth
}

// Generators holds the combinatorial output of an engine.
//
//   - Dim0          finite dimension-0 generators, in increasing death order.
//   - Dim1          finite dimension-1 generators.
//   - Dim0Essential one representative vertex per component that never dies.
//   - Dim1Essential creator edges of loops that never die (finite thresholds only).
type Generators struct {
	Dim0          []Merge
	Dim1          []Cycle
	Dim0Essential []int
	Dim1Essential []Edge
}

// Engine computes generator indices from a detached point cloud.
type Engine interface {
	Generators(points mat.Matrix) (*Generators, error)
}

// Reporter computes persistence diagrams directly, indexed by homology dimension.
type Reporter interface {
	Diagrams(points mat.Matrix) ([][]Pair, error)
}

// EngineFunc adapts a plain function to Engine.
type EngineFunc func(points mat.Matrix) (*Generators, error)

// Generators implements Engine.
func (f EngineFunc) Generators(points mat.Matrix) (*Generators, error) {
	return f(points)
}
