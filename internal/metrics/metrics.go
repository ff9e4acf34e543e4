// Package metrics provides Prometheus metrics for the fashion recommendation API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fashionrec"
const subsystem = "api"

var defaultBuckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000}

// Metrics owns a dedicated registry and every collector the server exports.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	quizAnalyses *prometheus.CounterVec
	aiLatency    *prometheus.HistogramVec
	cacheResults *prometheus.CounterVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	auto := promauto.With(registry)

	return &Metrics{
		registry: registry,
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint, method and status code",
		}, []string{"endpoint", "method", "status_code"}),
		httpRequestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request latency in milliseconds",
			Buckets:   defaultBuckets,
		}, []string{"endpoint", "method", "status_code"}),
		quizAnalyses: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "quiz_analyses_total",
			Help:      "Quiz analyses by method (ai or fallback)",
		}, []string{"method"}),
		aiLatency: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "ai_request_duration_milliseconds",
			Help:      "Latency of calls to the AI service in milliseconds",
			Buckets:   defaultBuckets,
		}, []string{"operation", "outcome"}),
		cacheResults: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "recommendation_cache_total",
			Help:      "Recommendation cache lookups by result",
		}, []string{"result"}),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest counts a request and observes its latency.
func (m *Metrics) RecordHTTPRequest(endpoint, method, statusCode string, duration time.Duration) {
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(float64(duration.Milliseconds()))
}

// QuizAnalyzed counts a quiz analysis.
func (m *Metrics) QuizAnalyzed(method string) {
	m.quizAnalyses.WithLabelValues(method).Inc()
}

// ObserveAI records the latency of an AI service call.
func (m *Metrics) ObserveAI(operation, outcome string, d time.Duration) {
	m.aiLatency.WithLabelValues(operation, outcome).Observe(float64(d.Milliseconds()))
}

// CacheLookup counts a recommendation cache hit or miss.
func (m *Metrics) CacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheResults.WithLabelValues(result).Inc()
}
