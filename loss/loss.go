// SPDX-License-Identifier: MIT

package loss

import (
	"errors"

	"github.com/katalvlaran/topoloss/autodiff"
	"github.com/katalvlaran/topoloss/diagram"
	"gonum.org/v1/gonum/mat"
)

// ErrNilTarget indicates a factory was called without target diagrams.
var ErrNilTarget = errors.New("loss: nil target diagrams")

// Target is what a Factory sees: the detached target cloud and its diagrams,
// indexed by dimension. Both are read-only.
type Target struct {
	Points   *mat.Dense
	Diagrams []diagram.Diagram
}

// Evaluator turns source diagrams into one scalar.
type Evaluator interface {
	Loss(source []diagram.Diagram) (*autodiff.Var, error)
}

// Factory builds an Evaluator bound to a target.
type Factory func(target Target) (Evaluator, error)

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc func(source []diagram.Diagram) (*autodiff.Var, error)

// Loss implements Evaluator.
func (f EvaluatorFunc) Loss(source []diagram.Diagram) (*autodiff.Var, error) {
	return f(source)
}
