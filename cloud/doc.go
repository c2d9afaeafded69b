// SPDX-License-Identifier: MIT

// Package cloud models point clouds in R^d in two parallel representations:
//
//   - Detached: a plain *mat.Dense (n rows × d columns). This is what combinatorial
//     routines such as the Vietoris–Rips generator engine consume.
//   - Trainable: a *Trainable owning an n×d grid of *autodiff.Var leaves. This is what
//     gradient-tracked computations (pairwise distances, diagrams, losses) consume.
//
// The only conversion points are NewTrainable (detached → trainable, copies values)
// and Trainable.Detach (trainable → detached, copies values). Nothing in this package
// is a dual-mode value: gradient-tracked numbers never leak into a mat.Dense and vice
// versa.
//
// A Trainable is mutated in place by the caller between evaluations (Set, Update,
// ZeroGrad). It is not safe for concurrent use.
//
// CSV ingestion (ReadCSV) is provided for command-line tooling; one point per line,
// every column numeric, all rows of equal width.
package cloud
