// Package metrics exposes prometheus counters for the order flow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

const namespace = "urbanthek"

// Metrics groups the storefront collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	OrdersSubmitted  prometheus.Counter
	CheckoutsBlocked *prometheus.CounterVec
	AddsRejected     prometheus.Counter
	OrderPayable     prometheus.Histogram
	SinkFailures     prometheus.Counter
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		OrdersSubmitted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_submitted_total",
			Help:      "Orders that passed checkout.",
		}),
		CheckoutsBlocked: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkouts_blocked_total",
			Help:      "Checkouts stopped by a submission check, by field.",
		}, []string{"field"}),
		AddsRejected: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_adds_rejected_total",
			Help:      "Items refused because the store was closed.",
		}),
		OrderPayable: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_payable_rupees",
			Help:      "Payable amount of submitted orders.",
			Buckets:   []float64{299, 399, 500, 750, 1000, 1500, 2000, 3000},
		}),
		SinkFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_sink_failures_total",
			Help:      "Submitted orders the order sink failed to record.",
		}),
	}
}

// OrderSubmitted records a completed checkout.
func (m *Metrics) OrderSubmitted(payable decimal.Decimal) {
	if m == nil {
		return
	}
	m.OrdersSubmitted.Inc()
	m.OrderPayable.Observe(payable.InexactFloat64())
}

// CheckoutBlocked records a failed submission check.
func (m *Metrics) CheckoutBlocked(field string) {
	if m == nil {
		return
	}
	m.CheckoutsBlocked.WithLabelValues(field).Inc()
}

// AddRejected records an item refused while closed.
func (m *Metrics) AddRejected() {
	if m == nil {
		return
	}
	m.AddsRejected.Inc()
}

// SinkFailed records an order that could not be persisted.
func (m *Metrics) SinkFailed() {
	if m == nil {
		return
	}
	m.SinkFailures.Inc()
}
