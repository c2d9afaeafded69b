// SPDX-License-Identifier: MIT

// Package autodiff provides a small reverse-mode automatic differentiation graph
// over float64 scalars.
//
// What & Why
//
//   - Every gradient-tracked quantity in topoloss (trainable coordinates, pairwise
//     distances, persistence diagram entries, loss values) is a *Var.
//   - A *Var remembers its parents and a closure that pushes its own gradient
//     back into them. Backward walks the graph in reverse topological order once.
//
// Building blocks
//
//   - Leaves:   NewParam(v) (trainable), Const(v) (never receives useful gradient).
//   - Binary:   Add, Sub, Mul.
//   - Unary:    Neg, Scale, AddConst, Sqrt, Abs, Pow.
//   - N-ary:    Sum.
//   - Driver:   Backward(root) seeds root.Grad = 1 and accumulates into leaves.
//
// Gradients accumulate: call ZeroGrad on leaves (or cloud.Trainable.ZeroGrad)
// between backward passes.
//
// Non-smooth points use the zero subgradient: Sqrt at 0, Abs at 0 and Pow with
// exponent < 1 at 0 all propagate 0 instead of ±Inf/NaN.
//
// Complexity: each op is O(1) to build and O(1) to differentiate; Backward is
// O(V + E) over the reachable graph.
//
// A Var graph is not safe for concurrent mutation.
package autodiff
