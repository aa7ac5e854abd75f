// Package metrics defines prometheus metrics to expose
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "Envelopes emitted by task and result code",
		},
		// code is "ok" on success, the failure code otherwise
		[]string{"task", "code"},
	)

	InferenceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_inference_duration_seconds",
			Help:    "Time spent waiting on the inference backend in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30, 45, 60, 90, 120},
		},
		[]string{"task", "model"},
	)

	InferenceErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_inference_errors_total",
			Help: "Failed inference backend calls",
		},
		[]string{"task", "model", "from"},
	)

	ResponseCodes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_status_code",
			Help: "Status Codes",
		},
		[]string{"status_code"},
	)
)
