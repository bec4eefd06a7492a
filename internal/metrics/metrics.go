// Package metrics defines the Prometheus collectors exported by the study server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cardstudy"

// Metrics holds the collectors of one server instance.
type Metrics struct {
	registry *prometheus.Registry

	reviews          *prometheus.CounterVec
	reviewLogFailure prometheus.Counter
	rateLimited      *prometheus.CounterVec
	rpcDuration      *prometheus.HistogramVec
}

// New registers every collector on a fresh registry, including the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		reviews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_total",
			Help:      "Number of applied reviews by result.",
		}, []string{"result"}),
		reviewLogFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "review_log_failures_total",
			Help:      "Number of reviews whose schedule was saved but whose log entry was not.",
		}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Number of calls rejected by the rate limiter.",
		}, []string{"procedure"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "Duration of RPC calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.reviews,
		m.reviewLogFailure,
		m.rateLimited,
		m.rpcDuration,
	)
	return m
}

// ObserveReview counts an applied review.
func (m *Metrics) ObserveReview(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	m.reviews.WithLabelValues(result).Inc()
}

// ObserveReviewLogFailure counts a review that was applied without a log entry.
func (m *Metrics) ObserveReviewLogFailure() {
	m.reviewLogFailure.Inc()
}

// ObserveRateLimited counts a rejected call.
func (m *Metrics) ObserveRateLimited(procedure string) {
	m.rateLimited.WithLabelValues(procedure).Inc()
}

// ObserveRPC records the duration of a finished call.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	m.rpcDuration.WithLabelValues(procedure, code).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
