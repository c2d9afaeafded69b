// SPDX-License-Identifier: MIT

package rips

import (
	"fmt"
	"log/slog"
	"math"
)

// Defaults (single source of truth).
const (
	// DefaultMaxDim computes dimensions 0 and 1.
	DefaultMaxDim = 1

	// DefaultZeroPersistence drops pairs with death == birth, as ripser does.
	DefaultZeroPersistence = false
)

// DefaultThreshold admits every edge into the filtration.
var DefaultThreshold = math.Inf(1)

// Option configures a Ripser. Option constructors panic on nonsensical values
// (programmer error), never on data.
type Option func(*Ripser)

// WithMaxDim sets the highest homology dimension to compute (0 or 1).
func WithMaxDim(dim int) Option {
	if dim < 0 || dim > MaxSupportedDim {
		panic(fmt.Sprintf("rips: WithMaxDim(%d): want 0..%d", dim, MaxSupportedDim))
	}

	return func(r *Ripser) {
		r.maxDim = dim
	}
}

// WithThreshold excludes edges longer than t from the filtration.
// t must be ≥ 0 and not NaN; +Inf means no threshold.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || t < 0 {
		panic(fmt.Sprintf("rips: WithThreshold(%g): want t ≥ 0", t))
	}

	return func(r *Ripser) {
		r.threshold = t
	}
}

// WithZeroPersistence keeps pairs whose death equals their birth.
func WithZeroPersistence(keep bool) Option {
	return func(r *Ripser) {
		r.keepZero = keep
	}
}

// WithLogger sets the structured logger. nil restores slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Ripser) {
		if l == nil {
			l = slog.Default()
		}
		r.logger = l
	}
}
