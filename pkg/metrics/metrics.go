package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса.
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal     *prometheus.CounterVec
	dbQueryDuration    *prometheus.HistogramVec
	dbOpenConnections  prometheus.Gauge
	dbInUseConnections prometheus.Gauge
	dbIdleConnections  prometheus.Gauge
	dbWaitCount        prometheus.Gauge

	availabilityChecks *prometheus.CounterVec
	bookingAttempts    *prometheus.CounterVec
	staffLockWait      prometheus.Histogram
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "salon",
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total HTTP requests by route, method and status",
			ConstLabels: labels,
		}, []string{"route", "method", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   "salon",
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}, []string{"route", "method"}),
		dbQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "salon",
			Subsystem:   "db",
			Name:        "queries_total",
			Help:        "Total database queries by operation and result",
			ConstLabels: labels,
		}, []string{"operation", "result"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   "salon",
			Subsystem:   "db",
			Name:        "query_duration_seconds",
			Help:        "Database query latency",
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			ConstLabels: labels,
		}, []string{"operation"}),
		dbOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "salon", Subsystem: "db", Name: "open_connections",
			Help: "Open connections in the pool", ConstLabels: labels,
		}),
		dbInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "salon", Subsystem: "db", Name: "in_use_connections",
			Help: "Connections currently in use", ConstLabels: labels,
		}),
		dbIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "salon", Subsystem: "db", Name: "idle_connections",
			Help: "Idle connections in the pool", ConstLabels: labels,
		}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "salon", Subsystem: "db", Name: "wait_count",
			Help: "Total number of connections waited for", ConstLabels: labels,
		}),
		availabilityChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "salon",
			Subsystem:   "scheduling",
			Name:        "availability_checks_total",
			Help:        "Availability checks by outcome (available, unavailable, closed, error)",
			ConstLabels: labels,
		}, []string{"outcome"}),
		bookingAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "salon",
			Subsystem:   "scheduling",
			Name:        "booking_attempts_total",
			Help:        "Appointment creation attempts by outcome (created, conflict, error)",
			ConstLabels: labels,
		}, []string{"outcome"}),
		staffLockWait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "salon",
			Subsystem:   "scheduling",
			Name:        "staff_lock_wait_seconds",
			Help:        "Time spent waiting for the per-staff booking lock",
			Buckets:     []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
			ConstLabels: labels,
		}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueriesTotal,
		m.dbQueryDuration,
		m.dbOpenConnections,
		m.dbInUseConnections,
		m.dbIdleConnections,
		m.dbWaitCount,
		m.availabilityChecks,
		m.bookingAttempts,
		m.staffLockWait,
	)
	return m
}

func (m *Metrics) ObserveHTTPRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveDBQuery(operation string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.dbQueriesTotal.WithLabelValues(operation, result).Inc()
	m.dbQueryDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// SetPoolStats обновляет метрики пула соединений
func (m *Metrics) SetPoolStats(open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.dbOpenConnections.Set(float64(open))
	m.dbInUseConnections.Set(float64(inUse))
	m.dbIdleConnections.Set(float64(idle))
	m.dbWaitCount.Set(float64(waitCount))
}

func (m *Metrics) ObserveAvailabilityCheck(outcome string) {
	if m == nil {
		return
	}
	m.availabilityChecks.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveBookingAttempt(outcome string) {
	if m == nil {
		return
	}
	m.bookingAttempts.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveStaffLockWait(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.staffLockWait.Observe(elapsed.Seconds())
}
