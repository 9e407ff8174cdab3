package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts finished HTTP requests by method and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "topraklif_http_requests_total",
		Help: "Finished HTTP requests.",
	}, []string{"method", "status"})

	// FilterEvaluationsTotal counts full filter pipeline evaluations.
	FilterEvaluationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "topraklif_filter_evaluations_total",
		Help: "Filter pipeline evaluations (cache misses).",
	})

	// FilterCacheHitsTotal counts memoized filter results served.
	FilterCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "topraklif_filter_cache_hits_total",
		Help: "Memoized filter results served without re-evaluation.",
	})

	// FeedEventsTotal counts synthetic feed notifications by type.
	FeedEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "topraklif_feed_events_total",
		Help: "Notifications pushed to the feed.",
	}, []string{"type"})
)
