package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Conversion pipeline metrics.
var (
	VersesConverted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vedadiff_verses_converted_total",
		Help: "Verses converted by text id",
	}, []string{"text"})

	MarkersResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vedadiff_markers_resolved_total",
		Help: "Accent markers resolved to a vowel, by accent type",
	}, []string{"type"})

	UnanchoredMarkers = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vedadiff_markers_unanchored_total",
		Help: "Accent markers dropped for lack of a preceding vowel",
	})

	InjectionDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vedadiff_injection_drops_total",
		Help: "Accent markers lost to a target-script vowel-count mismatch, by script",
	}, []string{"script"})

	ConvertDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vedadiff_convert_duration_seconds",
		Help:    "Duration of one document conversion",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	})
)

// API server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vedadiff_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vedadiff_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"route", "method"})

	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vedadiff_rate_limit_hits_total",
		Help: "Total rate limit rejections",
	})
)

// Database pool metrics (gauges updated periodically by cmd/serve when the
// store is PostgreSQL).
var (
	DBPoolTotalConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "vedadiff_db_pool_total_conns",
		Help: "Total number of connections in the pool",
	})

	DBPoolIdleConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "vedadiff_db_pool_idle_conns",
		Help: "Number of idle connections in the pool",
	})

	DBPoolAcquiredConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "vedadiff_db_pool_acquired_conns",
		Help: "Number of acquired connections in the pool",
	})
)
