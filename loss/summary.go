// SPDX-License-Identifier: MIT

package loss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/topoloss/autodiff"
	"github.com/katalvlaran/topoloss/diagram"
)

// DefaultExponent is the power applied to each life span.
const DefaultExponent = 2.0

// SummaryOption configures NewSummaryStatistic.
type SummaryOption func(*summaryOptions)

type summaryOptions struct {
	exponent float64
	dims     map[int]bool // nil ⇒ every dimension
}

// WithExponent sets p in |death − birth|^p. Panics unless p is finite and > 0.
func WithExponent(p float64) SummaryOption {
	if !(p > 0) || math.IsInf(p, 0) {
		panic(fmt.Sprintf("loss: WithExponent(%g): want finite p > 0", p))
	}

	return func(o *summaryOptions) { o.exponent = p }
}

// WithDimensions restricts the statistic to the given homology dimensions.
// Panics on a negative dimension. An empty call restores "all dimensions".
func WithDimensions(dims ...int) SummaryOption {
	for _, d := range dims {
		if d < 0 {
			panic(fmt.Sprintf("loss: WithDimensions: negative dimension %d", d))
		}
	}

	return func(o *summaryOptions) {
		if len(dims) == 0 {
			o.dims = nil
			return
		}
		o.dims = make(map[int]bool, len(dims))
		for _, d := range dims {
			o.dims[d] = true
		}
	}
}

// summaryStatistic is the Evaluator returned by NewSummaryStatistic.
type summaryStatistic struct {
	opts   summaryOptions
	target float64
}

// NewSummaryStatistic returns a Factory for the total-persistence loss.
func NewSummaryStatistic(opts ...SummaryOption) Factory {
	o := summaryOptions{exponent: DefaultExponent}
	for _, opt := range opts {
		opt(&o)
	}

	return func(target Target) (Evaluator, error) {
		if target.Diagrams == nil {
			return nil, ErrNilTarget
		}
		s := &summaryStatistic{opts: o}
		s.target = s.total(target.Diagrams).Value

		return s, nil
	}
}

// Loss implements Evaluator.
func (s *summaryStatistic) Loss(source []diagram.Diagram) (*autodiff.Var, error) {
	return autodiff.Abs(autodiff.AddConst(s.total(source), -s.target)), nil
}

// total returns S(ds) as a graph node; constants in, constant out.
func (s *summaryStatistic) total(ds []diagram.Diagram) *autodiff.Var {
	var terms []*autodiff.Var
	for _, d := range ds {
		if s.opts.dims != nil && !s.opts.dims[d.Dim] {
			continue
		}
		for _, p := range d.Points {
			if math.IsInf(p.Birth.Value, 0) || math.IsInf(p.Death.Value, 0) {
				continue
			}
			life := autodiff.Abs(autodiff.Sub(p.Death, p.Birth))
			terms = append(terms, autodiff.Pow(life, s.opts.exponent))
		}
	}

	return autodiff.Sum(terms...)
}
