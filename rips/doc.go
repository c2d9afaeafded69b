// SPDX-License-Identifier: MIT

// Package rips defines the Generator Engine contract for Vietoris–Rips persistent
// homology and ships a reference backend, Ripser.
//
// What & Why
//
//   - A Vietoris–Rips filtration adds the edge {i, j} at threshold ‖x_i − x_j‖ and a
//     triangle {i, j, k} at the length of its longest edge.
//   - Persistent homology pairs the simplices of that filtration: an edge that merges
//     two components "destroys" a dimension-0 feature; an edge that closes a loop
//     "creates" a dimension-1 feature, later "destroyed" by a triangle whose longest
//     edge fills the loop in.
//   - Which edges play those roles is a purely combinatorial decision. The Engine
//     reports it as index tuples so that callers can re-evaluate the very same edges on
//     a gradient-tracked distance matrix.
//
// Contract
//
//	type Engine interface {
//	    Generators(points mat.Matrix) (*Generators, error)
//	}
//	type Reporter interface {
//	    Diagrams(points mat.Matrix) ([][]Pair, error)
//	}
//
// Rules:
//
//   - Input is always a detached gonum matrix (n rows × d columns).
//   - Dimension 0: Merge{Vertex, I, J}; (I, J) is the destroyer edge, Vertex is an
//     auxiliary field (representative of the dying component) that consumers ignore.
//   - Dimension 1: Cycle{I, J, K, L}; (I, J) creator edge, (K, L) destroyer edge.
//   - Every index lies in [0, n). Consumers must still check and fail on violations.
//   - Empty generator sets are valid (n < 2, no loops).
//   - Reporter returns (birth, death) pairs per dimension, including essential
//     features with Death = +Inf.
//
// Reference backend (Ripser)
//
//   - Edges sorted by (length, i, j) with a stable sort → deterministic tie-breaking.
//   - Dimension 0 via Kruskal's union-find (path compression + union by rank).
//   - Dimension 1 via Z/2 column reduction of the triangle boundary matrix.
//   - Pairs with death == birth are dropped unless WithZeroPersistence(true).
//   - Options: WithMaxDim(0|1), WithThreshold(t), WithZeroPersistence(b), WithLogger(l).
//
// Complexity: O(n²·d + n² log n) for dimension 0; O(n³) triangles plus reduction for
// dimension 1. Meant for clouds of up to a few hundred points.
//
// Ripser holds no per-call state and is safe for concurrent use.
package rips
