// Package observability wires the engine's lifecycle hooks to Prometheus
// collectors.
package observability

import (
	"context"

	"github.com/aretw0/svgtint/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors exposed on /metrics.
type Metrics struct {
	Extracts        *prometheus.CounterVec
	Rewrites        *prometheus.CounterVec
	RewriteDuration prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Extracts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "svgtint_extracts_total",
				Help: "Total number of instructions parsed into gradient specs",
			},
			[]string{"kind", "target_shape"},
		),
		Rewrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "svgtint_rewrites_total",
				Help: "Total number of document rewrites",
			},
			[]string{"mode", "outcome"},
		),
		RewriteDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "svgtint_rewrite_duration_seconds",
				Help: "Duration of document rewrites",
			},
		),
	}

	reg.MustRegister(m.Extracts, m.Rewrites, m.RewriteDuration)
	return m
}

// Hooks returns lifecycle hooks feeding these collectors. Merge with any
// additional hooks before handing them to the engine.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnExtract: func(ctx context.Context, e *domain.ExtractEvent) {
			m.Extracts.WithLabelValues(string(e.Spec.Kind), string(e.Spec.TargetShape)).Inc()
		},
		OnRewrite: func(ctx context.Context, e *domain.RewriteEvent) {
			outcome := "ok"
			if e.IsError {
				outcome = "error"
			}
			m.Rewrites.WithLabelValues(e.Mode, outcome).Inc()
			m.RewriteDuration.Observe(e.Duration.Seconds())
		},
	}
}
