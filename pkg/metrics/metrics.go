package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus метрик сервиса
// Все методы безопасно вызывать на nil (метрики выключены)
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	RemoteCallsTotal   *prometheus.CounterVec
	RemoteCallDuration *prometheus.HistogramVec

	RefreshesTotal      *prometheus.CounterVec
	StaleResponsesTotal *prometheus.CounterVec
	BookingsTotal       *prometheus.CounterVec
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном registerer
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		RemoteCallsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "remote_calls_total",
			Help:        "Calls to the appointment service by operation and outcome",
			ConstLabels: labels,
		}, []string{"operation", "outcome"}),

		RemoteCallDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "remote_call_duration_seconds",
			Help:        "Appointment service call duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		RefreshesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointment_store_refreshes_total",
			Help:        "Appointment store refreshes by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),

		StaleResponsesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "stale_responses_discarded_total",
			Help:        "Responses discarded because a newer request superseded them",
			ConstLabels: labels,
		}, []string{"channel"}),

		BookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_total",
			Help:        "Appointment bookings by slot and outcome",
			ConstLabels: labels,
		}, []string{"slot", "outcome"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.RemoteCallsTotal,
		m.RemoteCallDuration,
		m.RefreshesTotal,
		m.StaleResponsesTotal,
		m.BookingsTotal,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveRemoteCall фиксирует вызов удаленного сервиса записей
func (m *Metrics) ObserveRemoteCall(operation, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.RemoteCallsTotal.WithLabelValues(operation, outcome).Inc()
	m.RemoteCallDuration.WithLabelValues(operation).Observe(seconds)
}

// ObserveRefresh фиксирует результат обновления кэша записей
func (m *Metrics) ObserveRefresh(outcome string) {
	if m == nil {
		return
	}
	m.RefreshesTotal.WithLabelValues(outcome).Inc()
}

// IncStaleResponse фиксирует отброшенный устаревший ответ
func (m *Metrics) IncStaleResponse(channel string) {
	if m == nil {
		return
	}
	m.StaleResponsesTotal.WithLabelValues(channel).Inc()
}

// ObserveBooking фиксирует попытку записи в слот
func (m *Metrics) ObserveBooking(slot, outcome string) {
	if m == nil {
		return
	}
	m.BookingsTotal.WithLabelValues(slot, outcome).Inc()
}
