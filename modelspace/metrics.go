// SPDX-License-Identifier: MIT

package modelspace

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "topoloss"
	metricsSubsystem = "modelspace"
)

// Metrics holds the Prometheus collectors of one or more Modules.
type Metrics struct {
	// evaluations counts Forward calls by result (ok, error).
	evaluations *prometheus.CounterVec

	// duration tracks Forward latency.
	duration prometheus.Histogram

	// diagramRows tracks source diagram sizes by dimension.
	diagramRows *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		evaluations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "evaluations_total",
			Help:      "Total loss evaluations by result",
		}, []string{"result"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "evaluation_duration_seconds",
			Help:      "Loss evaluation duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
		}),
		diagramRows: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "diagram_rows",
			Help:      "Rows per source persistence diagram",
			Buckets:   []float64{0, 1, 10, 100, 1000, 10000},
		}, []string{"dim"}),
	}
}

// observe records one evaluation. Safe on a nil receiver.
func (mx *Metrics) observe(elapsed time.Duration, out *Output, err error) {
	if mx == nil {
		return
	}
	mx.duration.Observe(elapsed.Seconds())
	if err != nil {
		mx.evaluations.WithLabelValues("error").Inc()
		return
	}
	mx.evaluations.WithLabelValues("ok").Inc()
	for _, d := range out.Diagrams {
		mx.diagramRows.WithLabelValues(strconv.Itoa(d.Dim)).Observe(float64(d.Len()))
	}
}
