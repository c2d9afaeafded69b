// Package topoloss makes Vietoris–Rips persistence diagrams differentiable, so a
// point cloud can be pulled toward the topology of another one by gradient descent.
//
// 🚀 What is topoloss?
//
//	A small library that turns discrete persistence pairings into gradients:
//		• Autodiff: reverse-mode scalar graph (autodiff)
//		• Point clouds: detached gonum matrices and trainable coordinates (cloud)
//		• Distances: gradient-tracked pairwise Euclidean matrix (distance)
//		• Engine: Vietoris–Rips generators for dimensions 0 and 1 (rips)
//		• Diagrams: (birth, death) pairs read back from tracked distances (diagram)
//		• Losses: evaluator contract plus a total-persistence loss (loss)
//		• Orchestration: target cache, evaluation, metrics, tracing (modelspace)
//
// ✨ How does a gradient get through a combinatorial algorithm?
//
//   - The engine runs on a detached copy and only answers *which* edges create or
//     destroy a feature.
//   - The builder reads those edges' lengths from the tracked distance matrix.
//   - Every birth and death is therefore an edge length, and edge lengths are
//     smooth in the coordinates away from ties.
//
// Layout:
//
//	autodiff/   : Var, ops, Backward
//	cloud/      : Trainable, Validate, ReadCSV
//	distance/   : Matrix (tracked), Pairwise (detached)
//	rips/       : Engine, Reporter, Ripser
//	diagram/    : BuildDim0, BuildDim1, Validate, Persistence
//	loss/       : Evaluator, Factory, NewSummaryStatistic
//	modelspace/ : Module: New, Evaluate, Forward
//	config/     : YAML configuration
//	diagramplot/: PNG/SVG rendering
//	cmd/topoloss: CLI
//
// Quick ASCII example:
//
//	    3───2
//	    │   │     one loop: born at the side (1), filled at the diagonal (√2)
//	    0───1
//
//	go get github.com/katalvlaran/topoloss
package topoloss
