package client

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

const requestIDHeader = "X-Request-ID"

// requestIDTransport tags every outgoing request with a unique ID so client
// and server logs can be correlated.
type requestIDTransport struct {
	next http.RoundTripper
}

// WithRequestID wraps a transport with X-Request-ID injection.
func WithRequestID(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &requestIDTransport{next: next}
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if clone.Header.Get(requestIDHeader) == "" {
		clone.Header.Set(requestIDHeader, uuid.NewString())
	}
	return t.next.RoundTrip(clone)
}

// Metrics collects request counters and latency histograms for the client.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers client metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sma_console_http_requests_total",
			Help: "Outgoing API requests by method and status code.",
		}, []string{"method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sma_console_http_request_duration_seconds",
			Help:    "Outgoing API request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.duration)
	}
	return m
}

type metricsTransport struct {
	next    http.RoundTripper
	metrics *Metrics
}

// WithMetrics wraps a transport with request counting and latency tracking.
func WithMetrics(next http.RoundTripper, metrics *Metrics) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	if metrics == nil {
		return next
	}
	return &metricsTransport{next: next, metrics: metrics}
}

func (t *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	t.metrics.duration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())

	status := "error"
	if resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	t.metrics.requests.WithLabelValues(req.Method, status).Inc()
	return resp, err
}
