// Package metrics defines Prometheus metrics for finn-client.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "finn"

// Outcome label values for APIRequestsTotal.
const (
	OutcomeOK          = "ok"
	OutcomeUnavailable = "unavailable"
	OutcomeParseError  = "parse_error"
)

// HTTP metrics for the proxy server.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last liveness probe succeeded (1) or not (0).",
	})
)

// FINN API metrics.
var (
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total FINN API requests by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of FINN API round-trips in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	APIDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "api_daily_usage",
		Help:      "FINN API requests sent within the rolling 24-hour window.",
	})

	APIDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_daily_limit_hits_total",
		Help:      "Total number of requests refused by the daily limit.",
	})
)

// Parsing metrics.
var (
	ParseErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "parse_errors_total",
		Help:      "Total number of malformed documents by kind (feed, entry).",
	}, []string{"document"})

	ListingsParsedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_parsed_total",
		Help:      "Total number of listings parsed from FINN documents.",
	})
)
