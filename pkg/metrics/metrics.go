// Package metrics holds the Prometheus collectors of the recipe browser.
//
// Collectors are registered on the default registry at init time and exposed
// by the HTTP server under /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	HTTPRateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	// Collection

	RecipesLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipes_loaded",
			Help: "Number of recipes in the in-memory collection",
		},
	)

	RecipesLoadFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipes_load_failures_total",
			Help: "Total number of failed collection loads",
		},
	)

	// Filter memo

	FilterCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipe_filter_cache_hits_total",
			Help: "Total number of visible-set lookups served from the memo",
		},
	)

	FilterCacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipe_filter_cache_misses_total",
			Help: "Total number of visible-set lookups that ran the filter",
		},
	)

	// Photos

	PhotoThumbnailsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photo_thumbnails_total",
			Help: "Total number of thumbnail requests by result",
		},
		[]string{"result"},
	)
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordFilterLookup counts a memo hit or miss.
func RecordFilterLookup(hit bool) {
	if hit {
		FilterCacheHitsTotal.Inc()
		return
	}
	FilterCacheMissesTotal.Inc()
}

// RecordPhotoThumbnail counts a thumbnail request ("hit", "fetched", "error", "open").
func RecordPhotoThumbnail(result string) {
	PhotoThumbnailsTotal.WithLabelValues(result).Inc()
}
