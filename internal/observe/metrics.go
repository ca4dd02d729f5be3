// Package observe holds the prometheus metrics for the service.
package observe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal tracks handled HTTP requests by route, method and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snaplink_http_requests_total",
		Help: "Total number of HTTP requests handled",
	}, []string{"route", "method", "status"})

	// HTTPRequestDuration tracks request processing time by route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "snaplink_http_request_duration_seconds",
		Help:    "Histogram of HTTP request processing duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// CodeCollisions tracks short-code allocation collisions by detection phase.
	CodeCollisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snaplink_code_collisions_total",
		Help: "Total number of short-code allocation collisions",
	}, []string{"phase"})

	// AllocationExhausted tracks allocations that ran out of attempts.
	AllocationExhausted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "snaplink_code_allocation_exhausted_total",
		Help: "Total number of short-code allocations that exhausted their attempt budget",
	})

	// AuthzDenies tracks policy denials by resource and reason.
	AuthzDenies = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snaplink_authz_denies_total",
		Help: "Total number of authorization denials",
	}, []string{"resource", "reason"})

	// CacheOperations tracks redirect cache hits and misses.
	CacheOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snaplink_cache_operations_total",
		Help: "Total number of redirect cache hits and misses",
	}, []string{"result"})
)
