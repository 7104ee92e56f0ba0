package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/api/v1/overview", "200", 0.1)
		m.ObserveRemoteCall("list_appointments", "ok", 0.1)
		m.ObserveRefresh("ok")
		m.IncStaleResponse("refresh")
		m.ObserveBooking("1:30 PM - 2:00 PM", "created")
	})
}

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("desk", prometheus.NewRegistry())

	m.IncStaleResponse("refresh")
	m.IncStaleResponse("refresh")
	m.ObserveRefresh("failed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.StaleResponsesTotal.WithLabelValues("refresh")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RefreshesTotal.WithLabelValues("failed")))
}
