// Package metrics provides the service's operational counters and latency
// histogram, exposed in the Prometheus text format.
//
// The registry is an owned, injectable object rather than ambient global
// state: each service instance (and each test) creates its own, so counters
// never bleed between instances.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "quotastic"

// Registry holds the service's metrics. All counters are monotonic;
// rendering the export format never mutates them.
type Registry struct {
	registry *prometheus.Registry

	// QuotesServed counts quotes returned by random reads.
	QuotesServed prometheus.Counter

	// QuotesAdded counts successfully stored submissions.
	QuotesAdded prometheus.Counter

	// ProfanityBlocked counts submissions rejected by the moderation filter.
	ProfanityBlocked prometheus.Counter

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates a Registry with all collectors registered on a private
// Prometheus registry.
func New() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		QuotesServed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_served_total",
			Help:      "Quotes returned by random reads.",
		}),
		QuotesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_added_total",
			Help:      "Quotes successfully added to the store.",
		}),
		ProfanityBlocked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profanity_blocked_total",
			Help:      "Submissions rejected by the moderation filter.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		r.QuotesServed,
		r.QuotesAdded,
		r.ProfanityBlocked,
		r.requestsTotal,
		r.requestDuration,
	)

	return r
}

// ObserveRequest records one completed request: exactly one counter cell
// for {method, route, status} and one duration sample for {method, route},
// regardless of outcome.
func (r *Registry) ObserveRequest(method, route string, status int, duration time.Duration) {
	statusLabel := strconv.Itoa(status)
	r.requestsTotal.WithLabelValues(method, route, statusLabel).Inc()
	r.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler returns an http.Handler that renders the current metric state in
// the Prometheus text exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
