// Package observability holds the Prometheus instrumentation for the server.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "icu_client_requests_total",
			Help: "Upstream Intervals.icu requests by method and outcome.",
		},
		[]string{"method", "outcome"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "icu_client_request_duration_seconds",
			Help:    "Upstream request latency including retries.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	toolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "icu_tool_calls_total",
			Help: "MCP tool invocations by tool name.",
		},
		[]string{"tool"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration, toolCallsTotal)
}

// ObserveRequest records one finished upstream request. outcome is "ok" or
// the terminal error kind.
func ObserveRequest(method, outcome string, d time.Duration) {
	requestsTotal.WithLabelValues(method, outcome).Inc()
	requestDuration.WithLabelValues(method).Observe(d.Seconds())
}

// ObserveToolCall records one MCP tool invocation.
func ObserveToolCall(tool string) {
	toolCallsTotal.WithLabelValues(tool).Inc()
}
