package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "babanaplo_api_requests_total",
		Help: "Number of API requests by method and outcome.",
	}, []string{"method", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "babanaplo_api_request_duration_seconds",
		Help:    "API request latency by method.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
)
