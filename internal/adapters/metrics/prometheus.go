package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "triage_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "triage_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	TicketsProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "triage_tickets_processed_total",
		Help: "Tickets run through the pipeline, by outcome",
	}, []string{"outcome"})

	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "triage_stage_duration_seconds",
		Help:    "Pipeline stage duration",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
	}, []string{"stage"})

	StageErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "triage_stage_errors_total",
		Help: "Pipeline stage failures, by stage and error kind",
	}, []string{"stage", "kind"})

	BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "triage_batch_size",
		Help:    "Number of tickets per batch request",
		Buckets: []float64{1, 2, 5, 10, 20, 50},
	})

	FeedbackReceivedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "triage_feedback_received_total",
		Help: "Feedback submissions acknowledged",
	})
)
