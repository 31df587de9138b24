package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PreviewMetrics records preview button decisions.
type PreviewMetrics struct {
	Decisions   *prometheus.CounterVec
	ResolveTime *prometheus.HistogramVec
}

// NewPreviewMetrics creates the preview metrics and registers them on reg.
func NewPreviewMetrics(namespace string, reg prometheus.Registerer) *PreviewMetrics {
	if namespace == "" {
		namespace = "admin"
	}

	factory := promauto.With(reg)

	return &PreviewMetrics{
		Decisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "preview_button_decisions_total",
				Help:      "Preview button decisions by entity and reason",
			},
			[]string{"entity", "reason"}, // reason: shown, not_found, lookup_failed, ...
		),
		ResolveTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "preview_button_resolve_seconds",
				Help:      "Time spent resolving a preview button",
				Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"entity"},
		),
	}
}

// Observe records one decision. Safe to call on a nil receiver.
func (m *PreviewMetrics) Observe(entity, reason string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Decisions.WithLabelValues(entity, reason).Inc()
	m.ResolveTime.WithLabelValues(entity).Observe(elapsed.Seconds())
}
