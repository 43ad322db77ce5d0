// Package metrics holds the Prometheus collectors of the service.
//
// Every Record*/Inc* method is safe on a nil *Metrics, so components can be
// wired without metrics when they are disabled in the config.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	serviceName string

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRateLimited     *prometheus.CounterVec

	// DB
	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
	DBConnections   *prometheus.GaugeVec

	// Domain
	BookingsCreated   *prometheus.CounterVec
	DateRejections    *prometheus.CounterVec
	DiagnosticLookups *prometheus.CounterVec
	Notifications     *prometheus.CounterVec
}

// New registers collectors in the default Prometheus registry.
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry registers collectors in reg.
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		HTTPRateLimited: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		}, []string{"service", "path"}),

		DBQueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"service", "operation"}),

		DBQueryErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Failed database queries",
		}, []string{"service", "operation"}),

		DBConnections: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Connection pool state",
		}, []string{"service", "state"}),

		BookingsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Bookings persisted, by pack and scheduling mode",
		}, []string{"service", "pack", "mode"}),

		DateRejections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_date_rejections_total",
			Help: "Requested dates refused by the business calendar",
		}, []string{"service", "reason"}),

		DiagnosticLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "diagnostic_lookups_total",
			Help: "Diagnostic report lookups by outcome",
		}, []string{"service", "outcome"}),

		Notifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Booking notifications by channel and outcome",
		}, []string{"service", "channel", "outcome"}),
	}
}

func (m *Metrics) ServiceName() string {
	if m == nil {
		return ""
	}
	return m.serviceName
}

func (m *Metrics) RecordHTTPRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(elapsed.Seconds())
}

func (m *Metrics) IncRateLimited(path string) {
	if m == nil {
		return
	}
	m.HTTPRateLimited.WithLabelValues(m.serviceName, path).Inc()
}

func (m *Metrics) RecordDBQuery(operation string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(elapsed.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(m.serviceName, operation).Inc()
	}
}

func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.DBConnections.WithLabelValues(m.serviceName, "open").Set(float64(open))
	m.DBConnections.WithLabelValues(m.serviceName, "in_use").Set(float64(inUse))
	m.DBConnections.WithLabelValues(m.serviceName, "idle").Set(float64(idle))
}

// IncBookingCreated mode is "scheduled" or "flexible".
func (m *Metrics) IncBookingCreated(pack, mode string) {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(m.serviceName, pack, mode).Inc()
}

func (m *Metrics) IncDateRejected(reason string) {
	if m == nil {
		return
	}
	m.DateRejections.WithLabelValues(m.serviceName, reason).Inc()
}

// IncDiagnosticLookup outcome is "found", "not_found" or "error".
func (m *Metrics) IncDiagnosticLookup(outcome string) {
	if m == nil {
		return
	}
	m.DiagnosticLookups.WithLabelValues(m.serviceName, outcome).Inc()
}

// IncNotification outcome is "sent", "failed" or "skipped".
func (m *Metrics) IncNotification(channel, outcome string) {
	if m == nil {
		return
	}
	m.Notifications.WithLabelValues(m.serviceName, channel, outcome).Inc()
}
