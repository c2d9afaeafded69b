// SPDX-License-Identifier: MIT

package modelspace

import (
	"github.com/katalvlaran/topoloss/autodiff"
	"github.com/katalvlaran/topoloss/diagram"
	"github.com/katalvlaran/topoloss/rips"
	"gonum.org/v1/gonum/mat"
)

// buildTarget computes the target diagrams of y once.
// Every dimension up to rips.MaxSupportedDim is present (possibly empty), and rows
// with an infinite death are dropped: the source side never produces them.
func buildTarget(rep rips.Reporter, y *mat.Dense) ([]diagram.Diagram, error) {
	pairs, err := rep.Diagrams(y)
	if err != nil {
		return nil, err
	}
	out := make([]diagram.Diagram, rips.MaxSupportedDim+1)
	for dim := range out {
		var ps []rips.Pair
		if dim < len(pairs) {
			ps = pairs[dim]
		}
		out[dim] = diagram.Finite(diagram.FromPairs(dim, ps))
	}

	return out, nil
}

// copyDiagrams returns constant copies of ds so callers cannot touch the cache.
func copyDiagrams(ds []diagram.Diagram) []diagram.Diagram {
	out := make([]diagram.Diagram, len(ds))
	for i, d := range ds {
		pts := make([]diagram.Point, len(d.Points))
		for j, p := range d.Points {
			pts[j] = diagram.Point{
				Birth: autodiff.Const(p.Birth.Value),
				Death: autodiff.Const(p.Death.Value),
			}
		}
		out[i] = diagram.Diagram{Dim: d.Dim, Points: pts}
	}

	return out
}
