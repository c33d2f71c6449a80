package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, c.Write(&out))
	return out.GetCounter().GetValue()
}

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer(reg, "salon-booking")

	m.ObserveBookingAttempt("created")
	m.ObserveBookingAttempt("conflict")
	m.ObserveBookingAttempt("conflict")
	m.ObserveAvailabilityCheck("closed")
	m.ObserveDBQuery("query", errors.New("boom"), 3*time.Millisecond)
	m.ObserveHTTPRequest("/api/v1/appointments", "POST", 409, 10*time.Millisecond)

	assert.Equal(t, 2.0, counterValue(t, m.bookingAttempts.WithLabelValues("conflict")))
	assert.Equal(t, 1.0, counterValue(t, m.bookingAttempts.WithLabelValues("created")))
	assert.Equal(t, 1.0, counterValue(t, m.availabilityChecks.WithLabelValues("closed")))
	assert.Equal(t, 1.0, counterValue(t, m.dbQueriesTotal.WithLabelValues("query", "error")))
	assert.Equal(t, 1.0, counterValue(t, m.httpRequestsTotal.WithLabelValues("/api/v1/appointments", "POST", "409")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveBookingAttempt("created")
		m.ObserveAvailabilityCheck("available")
		m.ObserveDBQuery("exec", nil, time.Millisecond)
		m.ObserveHTTPRequest("/", "GET", 200, time.Millisecond)
		m.SetPoolStats(1, 1, 0, 0)
		m.ObserveStaffLockWait(time.Millisecond)
	})
}
