// Package metrics holds the Prometheus collectors shared by the API server and
// the outbound API clients.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"agenthub/pkg/serrors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// OutboundDuration records the latency of calls to third-party APIs.
var OutboundDuration = promauto.NewHistogramVec( //nolint: gochecknoglobals
	prometheus.HistogramOpts{
		Name:    "agenthub_outbound_request_duration_seconds",
		Help:    "Duration of requests sent to external services",
		Buckets: DefaultBuckets,
	},
	[]string{"service", "operation", "outcome"}, // outcome: ok, not_found, rate_limited, error
)

// ObserveOutbound records a call that started at start and ended with err.
func ObserveOutbound(service, operation string, start time.Time, err error) {
	OutboundDuration.
		WithLabelValues(service, operation, Outcome(err)).
		Observe(time.Since(start).Seconds())
}

// Outcome maps an error to the outcome label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, serrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, serrors.ErrRateLimited):
		return "rate_limited"
	default:
		return "error"
	}
}

// HTTPDuration records the latency of requests served by the API.
var HTTPDuration = promauto.NewHistogramVec( //nolint: gochecknoglobals
	prometheus.HistogramOpts{
		Name:    "agenthub_http_request_duration_seconds",
		Help:    "Duration of HTTP requests served by the API",
		Buckets: DefaultBuckets,
	},
	[]string{"method", "code"},
)

// ObserveHTTP records a served request.
func ObserveHTTP(method string, status int, elapsed time.Duration) {
	HTTPDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
