// SPDX-License-Identifier: MIT

package rips

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/topoloss/cloud"
	"github.com/katalvlaran/topoloss/distance"
	"gonum.org/v1/gonum/mat"
)

// Ripser is the reference Vietoris–Rips backend. It implements Engine and Reporter.
type Ripser struct {
	maxDim    int
	threshold float64
	keepZero  bool
	logger    *slog.Logger
}

var (
	_ Engine   = (*Ripser)(nil)
	_ Reporter = (*Ripser)(nil)
)

// New returns a Ripser configured by opts on top of the package defaults.
func New(opts ...Option) *Ripser {
	r := &Ripser{
		maxDim:    DefaultMaxDim,
		threshold: DefaultThreshold,
		keepZero:  DefaultZeroPersistence,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// MaxDim returns the highest dimension this engine computes.
func (r *Ripser) MaxDim() int { return r.maxDim }

// Threshold returns the filtration cut-off.
func (r *Ripser) Threshold() float64 { return r.threshold }

// result is the joint output of one persistence computation.
type result struct {
	gens  Generators
	pairs [][]Pair
}

// Generators implements Engine.
func (r *Ripser) Generators(points mat.Matrix) (*Generators, error) {
	res, err := r.compute(points)
	if err != nil {
		return nil, err
	}

	return &res.gens, nil
}

// Diagrams implements Reporter. The outer slice has MaxDim()+1 entries; essential
// features carry Death = +Inf.
func (r *Ripser) Diagrams(points mat.Matrix) ([][]Pair, error) {
	res, err := r.compute(points)
	if err != nil {
		return nil, err
	}

	return res.pairs, nil
}

// compute runs the full pipeline on a detached cloud.
//
// Steps:
//  1. Pairwise Euclidean distances (shared kernel with the gradient-tracked path).
//  2. Filtration: edges ≤ threshold sorted by (length, i, j).
//  3. Dimension 0: Kruskal merges; essential components get (0, +Inf).
//  4. Dimension 1 (maxDim ≥ 1): boundary reduction; essential loops get (birth, +Inf).
func (r *Ripser) compute(points mat.Matrix) (*result, error) {
	dist, err := distance.Pairwise(points)
	if err != nil {
		switch {
		case errors.Is(err, distance.ErrNilPoints):
			return nil, ErrNilPoints
		case errors.Is(err, distance.ErrNaNInf), errors.Is(err, cloud.ErrNaNInf):
			return nil, fmt.Errorf("%v: %w", err, ErrNaNInf)
		}
		return nil, fmt.Errorf("rips: %w", err)
	}

	f := newFiltration(dist, r.threshold)
	res := &result{pairs: make([][]Pair, r.maxDim+1)}

	merges, deaths, ess0, negative := f.zeroDim(r.keepZero)
	res.gens.Dim0 = merges
	res.gens.Dim0Essential = ess0
	pairs0 := make([]Pair, 0, len(deaths)+len(ess0))
	for _, d := range deaths {
		pairs0 = append(pairs0, Pair{Birth: 0, Death: d})
	}
	for range ess0 {
		pairs0 = append(pairs0, Pair{Birth: 0, Death: math.Inf(1)})
	}
	res.pairs[0] = pairs0

	var loops, ess1 int
	if r.maxDim >= 1 {
		lp, essential := f.oneDim(negative)
		pairs1 := make([]Pair, 0, len(lp)+len(essential))
		for _, p := range lp {
			c, d := f.edges[p.creator], f.edges[p.destroyer]
			if d.length <= c.length && !r.keepZero {
				continue
			}
			res.gens.Dim1 = append(res.gens.Dim1, Cycle{I: c.i, J: c.j, K: d.i, L: d.j})
			pairs1 = append(pairs1, Pair{Birth: c.length, Death: d.length})
		}
		for _, pos := range essential {
			e := f.edges[pos]
			res.gens.Dim1Essential = append(res.gens.Dim1Essential, Edge{I: e.i, J: e.j})
			pairs1 = append(pairs1, Pair{Birth: e.length, Death: math.Inf(1)})
		}
		res.pairs[1] = pairs1
		loops, ess1 = len(res.gens.Dim1), len(essential)
	}

	r.logger.Debug("rips: persistence computed",
		slog.Int("points", f.n),
		slog.Int("edges", len(f.edges)),
		slog.Int("dim0_finite", len(merges)),
		slog.Int("dim0_essential", len(ess0)),
		slog.Int("dim1_finite", loops),
		slog.Int("dim1_essential", ess1),
	)

	return res, nil
}
