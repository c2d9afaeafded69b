// SPDX-License-Identifier: MIT

// Package modelspace wires the pieces of a topological loss together.
//
// A Module owns a trainable point cloud X and a fixed target cloud Y. Construction
// computes Y's persistence diagrams once (the target cache) and hands them to a
// loss.Factory. Each evaluation then runs:
//
//  1. distance.FromTrainable(X)          gradient-tracked pairwise distances
//  2. engine.Generators(X.Detach())      discrete generators, no gradient
//  3. diagram.BuildDim0 / BuildDim1      index the tracked distances
//  4. diagram.Validate (optional)        death ≥ birth − tolerance, no NaN
//  5. evaluator.Loss(source diagrams)    one scalar
//
// Nothing but X and the target cache survives between calls. Gradients flow from
// the returned scalar to X through autodiff.Backward; moving X (for example with
// Points().Update) is the caller's business.
//
// Observability
//
//   - slog: Info when the target cache is built, Debug per evaluation.
//   - Prometheus: NewMetrics registers evaluation counters, latency and diagram
//     size histograms on a caller-supplied registerer.
//   - OpenTelemetry: one span per Forward, tagged with the module ID.
//
// A Module is not safe for concurrent use.
package modelspace
