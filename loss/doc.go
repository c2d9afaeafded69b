// SPDX-License-Identifier: MIT

// Package loss defines the contract between differentiable persistence diagrams and
// a scalar objective, plus one reference objective.
//
// Contract
//
//	A Factory is called exactly once, at module construction, with the detached
//	target cloud and its cached diagrams. It returns an Evaluator whose Loss method
//	is called on every evaluation with the source diagrams (indexed by dimension)
//	and returns one gradient-bearing scalar.
//
// Reference objective
//
//	NewSummaryStatistic compares total persistence:
//
//	    L = | S(source) − S(target) |,   S(D) = Σ_dim Σ_rows |death − birth|^p
//
//	S(target) is folded into a constant when the factory runs. Rows with an infinite
//	coordinate are skipped on both sides. With no features at all the loss is 0.
//
// Options
//
//   - WithExponent(p)        : p > 0, default DefaultExponent.
//   - WithDimensions(dims…)  : restrict S to the listed dimensions (default: all).
package loss
