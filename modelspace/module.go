// SPDX-License-Identifier: MIT

package modelspace

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/topoloss/autodiff"
	"github.com/katalvlaran/topoloss/cloud"
	"github.com/katalvlaran/topoloss/diagram"
	"github.com/katalvlaran/topoloss/distance"
	"github.com/katalvlaran/topoloss/loss"
	"github.com/katalvlaran/topoloss/rips"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gonum.org/v1/gonum/mat"
)

const tracerName = "topoloss.modelspace"

// Module compares the persistent homology of a trainable cloud X against a fixed
// target cloud Y.
type Module struct {
	id uuid.UUID

	points         *cloud.Trainable
	target         *mat.Dense
	targetDiagrams []diagram.Diagram
	evaluator      loss.Evaluator

	engine     rips.Engine
	reporter   rips.Reporter
	engineOpts []rips.Option

	validate  bool
	tolerance float64

	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// Output is the full result of one evaluation.
type Output struct {
	// Loss is the scalar returned by the evaluator.
	Loss *autodiff.Var

	// Diagrams are the source diagrams, indexed by dimension.
	Diagrams []diagram.Diagram

	// Persistence holds death − birth per row, aligned with Diagrams.
	Persistence [][]*autodiff.Var
}

// New builds a Module from a source cloud (copied into trainable form), a target
// cloud (copied, detached) and a loss factory.
//
// Steps:
//  1. Validate both clouds (non-empty, finite) and their common dimension d.
//  2. Resolve options; engine and reporter default to one shared rips.Ripser.
//  3. Compute the target cache through the reporter.
//  4. Call factory exactly once with the target cloud and cache.
func New(source, target mat.Matrix, factory loss.Factory, opts ...Option) (*Module, error) {
	if factory == nil {
		return nil, ErrNilLoss
	}
	if err := cloud.Validate(source); err != nil {
		return nil, fmt.Errorf("modelspace: source: %w", err)
	}
	if err := cloud.Validate(target); err != nil {
		return nil, fmt.Errorf("modelspace: target: %w", err)
	}
	if err := cloud.SameDimension(source, target); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}

	m := &Module{
		id:        uuid.New(),
		validate:  DefaultValidation,
		tolerance: DefaultTolerance,
		logger:    slog.Default(),
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(slog.String("module_id", m.id.String()))
	if m.engine == nil || m.reporter == nil {
		ropts := append(append([]rips.Option(nil), m.engineOpts...), rips.WithLogger(m.logger))
		r := rips.New(ropts...)
		if m.engine == nil {
			m.engine = r
		}
		if m.reporter == nil {
			m.reporter = r
		}
	}

	points, err := cloud.NewTrainable(source)
	if err != nil {
		return nil, fmt.Errorf("modelspace: source: %w", err)
	}
	m.points = points
	m.target = mat.DenseCopyOf(target)

	m.targetDiagrams, err = buildTarget(m.reporter, m.target)
	if err != nil {
		return nil, fmt.Errorf("modelspace: target diagrams: %w", err)
	}

	ev, err := factory(loss.Target{
		Points:   mat.DenseCopyOf(m.target),
		Diagrams: copyDiagrams(m.targetDiagrams),
	})
	if err != nil {
		return nil, fmt.Errorf("modelspace: loss factory: %w", err)
	}
	if ev == nil {
		return nil, fmt.Errorf("modelspace: loss factory returned no evaluator: %w", ErrNilLoss)
	}
	m.evaluator = ev

	n, d := m.target.Dims()
	m.logger.Info("target cache built",
		slog.Int("target_points", n),
		slog.Int("dim", d),
		slog.Int("target_dim0", m.targetDiagrams[diagram.Dim0].Len()),
		slog.Int("target_dim1", m.targetDiagrams[diagram.Dim1].Len()),
	)

	return m, nil
}

// ID returns the instance identifier attached to logs and spans.
func (m *Module) ID() uuid.UUID { return m.id }

// Points returns the trainable cloud X. The caller may read gradients from it and
// move it between evaluations.
func (m *Module) Points() *cloud.Trainable { return m.points }

// Target returns constant copies of the cached target diagrams.
func (m *Module) Target() []diagram.Diagram { return copyDiagrams(m.targetDiagrams) }

// TargetPoints returns a copy of Y.
func (m *Module) TargetPoints() *mat.Dense { return mat.DenseCopyOf(m.target) }

// Evaluate runs one evaluation and returns the loss.
func (m *Module) Evaluate() (*autodiff.Var, error) {
	return m.EvaluateContext(context.Background())
}

// EvaluateContext is Evaluate with a parent context for tracing.
func (m *Module) EvaluateContext(ctx context.Context) (*autodiff.Var, error) {
	out, err := m.Forward(ctx)
	if err != nil {
		return nil, err
	}

	return out.Loss, nil
}

// Forward runs one evaluation and returns the loss with the intermediate diagrams.
// ctx only parents the span; the computation is not cancellable.
func (m *Module) Forward(ctx context.Context) (*Output, error) {
	n, d := m.points.Len(), m.points.Dim()
	_, span := m.tracer.Start(ctx, "modelspace.Module.Forward",
		trace.WithAttributes(
			attribute.String("module.id", m.id.String()),
			attribute.Int("points.n", n),
			attribute.Int("points.d", d),
		),
	)
	defer span.End()

	start := time.Now()
	out, err := m.forward()
	elapsed := time.Since(start)
	m.metrics.observe(elapsed, out, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		m.logger.Debug("evaluation failed", slog.String("error", err.Error()))
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("diagram.dim0", out.Diagrams[diagram.Dim0].Len()),
		attribute.Int("diagram.dim1", out.Diagrams[diagram.Dim1].Len()),
		attribute.Float64("loss", out.Loss.Value),
	)
	span.SetStatus(codes.Ok, "")
	m.logger.Debug("evaluation done",
		slog.Float64("loss", out.Loss.Value),
		slog.Int("dim0", out.Diagrams[diagram.Dim0].Len()),
		slog.Int("dim1", out.Diagrams[diagram.Dim1].Len()),
		slog.Duration("duration", elapsed),
	)

	return out, nil
}

// forward is the untraced evaluation pipeline.
func (m *Module) forward() (*Output, error) {
	dm, err := distance.FromTrainable(m.points)
	if err != nil {
		return nil, fmt.Errorf("modelspace: distances: %w", err)
	}

	gens, err := m.engine.Generators(m.points.Detach())
	if err != nil {
		return nil, fmt.Errorf("modelspace: generators: %w", err)
	}
	if gens == nil {
		gens = &rips.Generators{}
	}

	d0, err := diagram.BuildDim0(dm, gens.Dim0)
	if err != nil {
		return nil, fmt.Errorf("modelspace: %w", err)
	}
	d1, err := diagram.BuildDim1(dm, gens.Dim1)
	if err != nil {
		return nil, fmt.Errorf("modelspace: %w", err)
	}
	diagrams := []diagram.Diagram{d0, d1}

	if m.validate {
		for _, dg := range diagrams {
			if err := diagram.Validate(dg, m.tolerance); err != nil {
				return nil, fmt.Errorf("modelspace: %w", err)
			}
		}
	}

	l, err := m.evaluator.Loss(diagrams)
	if err != nil {
		return nil, fmt.Errorf("modelspace: loss: %w", err)
	}
	if l == nil {
		return nil, fmt.Errorf("modelspace: evaluator returned no value: %w", ErrNilLoss)
	}

	return &Output{
		Loss:        l,
		Diagrams:    diagrams,
		Persistence: [][]*autodiff.Var{diagram.Persistence(d0), diagram.Persistence(d1)},
	}, nil
}
