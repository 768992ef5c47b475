package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.OrderSubmitted(decimal.NewFromInt(430))
	m.OrderSubmitted(decimal.NewFromInt(1206))
	m.CheckoutBlocked("phone")
	m.CheckoutBlocked("phone")
	m.CheckoutBlocked("total")
	m.AddRejected()
	m.SinkFailed()

	if got := testutil.ToFloat64(m.OrdersSubmitted); got != 2 {
		t.Errorf("orders submitted = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.CheckoutsBlocked.WithLabelValues("phone")); got != 2 {
		t.Errorf("blocked on phone = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.CheckoutsBlocked.WithLabelValues("total")); got != 1 {
		t.Errorf("blocked on total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.AddsRejected); got != 1 {
		t.Errorf("adds rejected = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.SinkFailures); got != 1 {
		t.Errorf("sink failures = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.OrderPayable); got != 1 {
		t.Errorf("payable histogram series = %d, want 1", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.OrderSubmitted(decimal.NewFromInt(1))
	m.CheckoutBlocked("name")
	m.AddRejected()
	m.SinkFailed()
}
