package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters and histograms exposed on /metrics
var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "urlshortener_http_requests_total",
		Help: "HTTP requests processed, by method, path and status code",
	}, []string{"method", "path", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "urlshortener_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	RateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "urlshortener_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	})

	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "urlshortener_cache_hits_total",
		Help: "URL lookups served from the cache",
	})

	CacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "urlshortener_cache_misses_total",
		Help: "URL lookups that fell through to the durable store",
	})

	ClicksDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "urlshortener_clicks_dropped_total",
		Help: "Click events dropped because the accounting queue was full",
	})
)
