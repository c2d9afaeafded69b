// SPDX-License-Identifier: MIT

// Package distance computes pairwise Euclidean distances of a point cloud.
//
// Two entry points share one metric kernel (euclidean) so that numbers produced on
// the gradient-tracked path and on the detached path agree bit for bit:
//
//   - FromTrainable(*cloud.Trainable) → *Matrix: an n×n symmetric grid of *autodiff.Var,
//     zero diagonal, recomputed on every call and never cached. Each off-diagonal cell
//     is √Σ_k (x_ik − x_jk)² built from autodiff ops, so gradients flow back to the
//     coordinates of both endpoints.
//   - Pairwise(mat.Matrix) → *mat.SymDense: plain float64 distances for combinatorial
//     consumers (the Vietoris–Rips engine).
//
// Errors:
//   - ErrNilPoints   : nil input.
//   - ErrOutOfRange  : Matrix.At with an index outside [0, n).
//   - ErrNaNInf      : a computed distance is NaN or ±Inf (non-finite coordinates).
//
// Complexity: O(n²·d) time, O(n²) memory (the upper triangle is built once and shared).
package distance
