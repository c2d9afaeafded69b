// SPDX-License-Identifier: MIT

// Package config holds the YAML configuration of a topoloss run.
//
// Sources, lowest priority first:
//
//  1. Default() : the same defaults the library packages use.
//  2. A YAML document (Load / Parse); unknown keys are rejected.
//
// Every loaded value is checked with go-playground/validator struct tags before it
// is returned. The typed sections translate into library options:
//
//   - EngineConfig.Options → []rips.Option
//   - LossConfig.Options   → []loss.SummaryOption
//   - LogConfig.Handler    → slog.Handler (text or JSON)
//
// Example document:
//
//	engine:
//	  max_dim: 1
//	  threshold: 2.5
//	builder:
//	  validate: true
//	  tolerance: 1e-9
//	loss:
//	  exponent: 2
//	  dimensions: [0, 1]
//	log:
//	  level: debug
//	  format: json
//	plot:
//	  width_inches: 5
//	  title: persistence
package config
