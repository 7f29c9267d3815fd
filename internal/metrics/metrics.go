package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "proposalcraft"

// Metrics holds the HTTP and business collectors of the service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	ProposalsCreatedTotal prometheus.Counter
	TransitionsTotal      *prometheus.CounterVec
	ExportsTotal          *prometheus.CounterVec
	ExportPages           prometheus.Histogram
	DepositsTotal         *prometheus.CounterVec
}

func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers every collector on registerer. Tests pass a fresh
// prometheus.NewRegistry() to avoid duplicate registration.
func NewWithRegistry(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "endpoint"},
		),
		ProposalsCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "proposals_created_total",
				Help:      "Total number of proposals created from a briefing",
			},
		),
		TransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "proposal_transitions_total",
				Help:      "Total number of persisted proposal status transitions",
			},
			[]string{"status"},
		),
		ExportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "proposal_exports_total",
				Help:      "Total number of PDF exports",
			},
			[]string{"template", "result"},
		),
		ExportPages: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "proposal_export_pages",
				Help:      "Number of pages of exported proposals",
				Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 50},
			},
		),
		DepositsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "deposit_payments_total",
				Help:      "Total number of deposit payments by resulting status",
			},
			[]string{"status"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, endpoint string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	if endpoint == "" {
		endpoint = "unmatched"
	}
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func (m *Metrics) ProposalCreated() {
	if m == nil {
		return
	}
	m.ProposalsCreatedTotal.Inc()
}

func (m *Metrics) Transition(status string) {
	if m == nil {
		return
	}
	m.TransitionsTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) Export(template string, pages int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.ExportsTotal.WithLabelValues(template, "error").Inc()
		return
	}
	m.ExportsTotal.WithLabelValues(template, "ok").Inc()
	m.ExportPages.Observe(float64(pages))
}

func (m *Metrics) Deposit(status string) {
	if m == nil {
		return
	}
	m.DepositsTotal.WithLabelValues(status).Inc()
}

// ShouldSkipEndpoint reports paths that are not recorded as HTTP traffic.
func ShouldSkipEndpoint(path string) bool {
	return path == "/metrics" || path == "/v1/ping" || strings.HasPrefix(path, "/swagger/")
}
