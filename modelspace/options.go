// SPDX-License-Identifier: MIT

package modelspace

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/topoloss/config"
	"github.com/katalvlaran/topoloss/rips"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Defaults (single source of truth).
const (
	// DefaultValidation runs diagram.Validate on every evaluation.
	DefaultValidation = true

	// DefaultTolerance is the slack allowed for death < birth.
	DefaultTolerance = 1e-9
)

// Option configures a Module. Option constructors panic on nonsensical values.
type Option func(*Module)

// WithEngine sets the generator engine. Without it a rips.Ripser is used.
func WithEngine(e rips.Engine) Option {
	if e == nil {
		panic("modelspace: WithEngine(nil)")
	}

	return func(m *Module) { m.engine = e }
}

// WithReporter sets the engine used to build the target cache.
func WithReporter(r rips.Reporter) Option {
	if r == nil {
		panic("modelspace: WithReporter(nil)")
	}

	return func(m *Module) { m.reporter = r }
}

// WithLogger sets the logger; nil means slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(m *Module) {
		if l == nil {
			l = slog.Default()
		}
		m.logger = l
	}
}

// WithValidation toggles the per-evaluation diagram check.
func WithValidation(on bool) Option {
	return func(m *Module) { m.validate = on }
}

// WithTolerance sets the negative-persistence slack. Panics if tol < 0 or NaN.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || tol < 0 {
		panic(fmt.Sprintf("modelspace: WithTolerance(%g): want tol ≥ 0", tol))
	}

	return func(m *Module) { m.tolerance = tol }
}

// WithMetrics attaches Prometheus collectors; nil disables metrics.
func WithMetrics(mx *Metrics) Option {
	return func(m *Module) { m.metrics = mx }
}

// WithTracerProvider sets the OpenTelemetry provider; nil means the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(m *Module) {
		if tp == nil {
			tp = otel.GetTracerProvider()
		}
		m.tracer = tp.Tracer(tracerName)
	}
}

// FromConfig applies the engine and builder sections of cfg. cfg must be valid;
// config.Load and config.Parse guarantee that. Explicit WithEngine / WithReporter
// options take precedence over the engine section.
func FromConfig(cfg config.Config) Option {
	engineOpts := cfg.Engine.Options(nil)

	return func(m *Module) {
		m.engineOpts = engineOpts
		m.validate = cfg.Builder.Validate
		m.tolerance = cfg.Builder.Tolerance
	}
}
