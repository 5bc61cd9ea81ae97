package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CartSyncMetrics records outcomes of cart reconciliation calls.
type CartSyncMetrics struct {
	duration *prometheus.HistogramVec
	syncs    *prometheus.CounterVec
	reasons  *prometheus.CounterVec
}

// NewCartSyncMetrics registers the cart sync metrics on the provided registerer.
func NewCartSyncMetrics(reg prometheus.Registerer) *CartSyncMetrics {
	if reg == nil {
		return &CartSyncMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cart_sync_duration_seconds",
		Help:    "Duration of cart sync calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	syncs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_sync_total",
		Help: "Cart sync calls by outcome.",
	}, []string{"outcome"})
	reasons := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_sync_line_reasons_total",
		Help: "Reconciled cart lines by reason code.",
	}, []string{"reason"})
	reg.MustRegister(duration, syncs, reasons)
	return &CartSyncMetrics{
		duration: duration,
		syncs:    syncs,
		reasons:  reasons,
	}
}

// ObserveDuration records the duration of a sync call with its outcome.
func (c *CartSyncMetrics) ObserveDuration(outcome string, duration time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.WithLabelValues(normalizeLabel(outcome)).Observe(duration.Seconds())
}

// IncSync increments the sync counter for the given outcome.
func (c *CartSyncMetrics) IncSync(outcome string) {
	if c == nil || c.syncs == nil {
		return
	}
	c.syncs.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncLineReason increments the reason counter for a reconciled line.
func (c *CartSyncMetrics) IncLineReason(reason string) {
	if c == nil || c.reasons == nil {
		return
	}
	c.reasons.WithLabelValues(normalizeLabel(reason)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
