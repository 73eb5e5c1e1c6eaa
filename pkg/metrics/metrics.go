package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec

	activeSessions    prometheus.Gauge
	degradedFetches   *prometheus.CounterVec
	staleResponses    *prometheus.CounterVec
	submittedBookings *prometheus.CounterVec
}

// New создает и регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests served",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		upstreamRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Total number of requests to the public calendar API",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),
		upstreamRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Public calendar API request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "booker_active_sessions",
			Help:        "Number of live booker sessions",
			ConstLabels: constLabels,
		}),
		degradedFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booker_degraded_fetches_total",
			Help:        "Availability fetches that degraded to an empty result",
			ConstLabels: constLabels,
		}, []string{"kind"}),
		staleResponses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booker_stale_responses_total",
			Help:        "Fetch responses discarded because a newer request was issued",
			ConstLabels: constLabels,
		}, []string{"channel"}),
		submittedBookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booker_submitted_bookings_total",
			Help:        "Booking submissions by outcome",
			ConstLabels: constLabels,
		}, []string{"mode", "outcome"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.upstreamRequestsTotal,
		m.upstreamRequestDuration,
		m.activeSessions,
		m.degradedFetches,
		m.staleResponses,
		m.submittedBookings,
	)

	return m
}

// ObserveHTTPRequest учитывает входящий HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveUpstreamRequest учитывает запрос к public calendar API
// status = 0 означает ошибку транспорта
func (m *Metrics) ObserveUpstreamRequest(operation string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.upstreamRequestsTotal.WithLabelValues(operation, strconv.Itoa(status)).Inc()
	m.upstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetActiveSessions выставляет количество активных сессий
func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}

// IncDegradedFetch учитывает деградировавшую загрузку (month, day, week)
func (m *Metrics) IncDegradedFetch(kind string) {
	if m == nil {
		return
	}
	m.degradedFetches.WithLabelValues(kind).Inc()
}

// IncStaleResponse учитывает отброшенный устаревший ответ
func (m *Metrics) IncStaleResponse(channel string) {
	if m == nil {
		return
	}
	m.staleResponses.WithLabelValues(channel).Inc()
}

// IncSubmittedBooking учитывает отправку бронирования
func (m *Metrics) IncSubmittedBooking(mode, outcome string) {
	if m == nil {
		return
	}
	m.submittedBookings.WithLabelValues(mode, outcome).Inc()
}
