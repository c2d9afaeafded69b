// SPDX-License-Identifier: MIT

// Package diagram turns combinatorial persistence generators into differentiable
// persistence diagrams.
//
// What & Why
//
//	A Vietoris–Rips engine decides *which* edges create or destroy topological
//	features; that decision is discrete and has no gradient. The *values* of a
//	diagram, however, are just lengths of those edges. Re-reading the chosen edges
//	from a gradient-tracked distance matrix therefore gives (birth, death) pairs whose
//	derivatives flow back to every point that appears in a generator.
//
//	The builder never calls the engine itself. It receives integer indices that were
//	computed on a detached copy of the coordinates and applies them to the
//	gradient-tracked *distance.Matrix.
//
// Operations
//
//   - BuildDim0(D, merges) : one row per merge (i, j): (birth = 0, death = D[i,j]).
//   - BuildDim1(D, cycles) : one row per cycle (i, j, k, l): (birth = D[i,j], death = D[k,l]).
//   - Persistence(d)       : auxiliary life spans death − birth, gradient-bearing.
//   - Validate(d, tol)     : data-integrity check: NaN values, death < birth − tol.
//   - FromPairs(dim, ps)   : constant diagram from reported (birth, death) pairs.
//   - Finite(d)            : drop rows whose death is infinite.
//   - Diagram.Values()     : detached [][2]float64 copy.
//
// Error Conditions
//
//   - ErrNilMatrix           : nil distance matrix.
//   - ErrIndexOutOfRange     : a generator index outside [0, n): engine contract
//     violation, fatal for the evaluation.
//   - ErrNegativePersistence : death < birth beyond tolerance.
//   - ErrNaN                 : NaN birth or death.
//
// Empty generator sets produce empty diagrams, never an error.
//
// Complexity: O(g) for g generators; the distance matrix is only indexed.
package diagram
