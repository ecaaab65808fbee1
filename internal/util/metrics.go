package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrderCalculationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_calculations_total",
		Help: "Total number of successful order total calculations",
	})

	OrderCalculationsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_calculations_failed_total",
		Help: "Total number of rejected order calculations",
	}, []string{"reason"})

	OrderCalculationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_calculation_duration_seconds",
		Help:    "Latency of order total calculations",
		Buckets: prometheus.DefBuckets,
	})

	TransitionChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "status_transition_checks_total",
		Help: "Total number of status transition checks by outcome",
	}, []string{"result"})

	TransitionChecksFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "status_transition_checks_failed_total",
		Help: "Total number of transition checks rejected for unknown statuses",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
