package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts finished requests by route, method and
	// status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studydesk_http_requests_total",
			Help: "Total number of handled HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPRequestDuration observes request latency by route and method.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "studydesk_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// ResetTokensPurged counts password reset rows removed by the
	// maintenance job.
	ResetTokensPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "studydesk_reset_tokens_purged_total",
			Help: "Expired or used password reset tokens removed",
		},
	)

	// DocumentsUploaded counts successful document uploads by file type.
	DocumentsUploaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studydesk_documents_uploaded_total",
			Help: "Documents stored on disk, by classified file type",
		},
		[]string{"file_type"},
	)
)
