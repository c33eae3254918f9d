package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	SearchSourceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "search_source_failures_total",
		Help: "Search sources that failed and contributed no hits",
	}, []string{"type"})

	FeedbackDeliveryFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feedback_delivery_failures_total",
		Help: "Feedback deliveries that failed, per channel",
	}, []string{"channel"})

	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Read cache hits",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Read cache misses",
	})

	OutboxPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "outbox_events_published_total",
		Help: "Outbox events published to kafka, by result",
	}, []string{"result"})
)
