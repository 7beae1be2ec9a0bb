// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Discovery metrics
	DiscoveryAttempts *prometheus.CounterVec
	DiscoveryResults  *prometheus.CounterVec
	DiscoveryDuration *prometheus.HistogramVec
	CandidatesScanned prometheus.Counter
	FallbackCacheSize prometheus.Gauge
	SinkErrors        *prometheus.CounterVec
	WatcherTriggers   prometheus.Counter

	// Upstream metrics
	RPCCallsTotal          *prometheus.CounterVec
	RPCCallLatency         *prometheus.HistogramVec
	LiquidityLookups       *prometheus.CounterVec
	LiquidityLookupLatency prometheus.Histogram

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "solana_buy_tracker"
	}

	return &Metrics{
		DiscoveryAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "discovery",
			Name:      "attempts_total",
			Help:      "Discovery attempts by outcome (empty, error, no_buy, buy)",
		}, []string{"outcome"}),
		DiscoveryResults: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "discovery",
			Name:      "results_total",
			Help:      "Completed discoveries by result (found, fallback, none)",
		}, []string{"result"}),
		DiscoveryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "discovery",
			Name:      "duration_seconds",
			Help:      "Wall time of a full discovery run",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"result"}),
		CandidatesScanned: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "discovery",
			Name:      "candidates_scanned_total",
			Help:      "Parsed transactions passed to the buy classifier",
		}),
		FallbackCacheSize: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "discovery",
			Name:      "fallback_cache_entries",
			Help:      "Tokens held in the last-known-buy cache",
		}),
		SinkErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "discovery",
			Name:      "sink_errors_total",
			Help:      "Failures delivering discovered buys to sinks",
		}, []string{"sink"}),
		WatcherTriggers: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "watcher",
			Name:      "triggers_total",
			Help:      "Background discoveries started by log notifications",
		}),

		RPCCallsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "calls_total",
			Help:      "Solana RPC calls by method and status",
		}, []string{"method", "status"}),
		RPCCallLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "call_latency_seconds",
			Help:      "Solana RPC call latency including retries",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		LiquidityLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "liquidity",
			Name:      "lookups_total",
			Help:      "Liquidity lookups by status",
		}, []string{"status"}),
		LiquidityLookupLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "liquidity",
			Name:      "lookup_latency_seconds",
			Help:      "Liquidity lookup latency",
			Buckets:   prometheus.DefBuckets,
		}),

		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code",
		}, []string{"route", "code"}),
	}
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordDiscoveryAttempt records the outcome of a single discovery attempt.
func RecordDiscoveryAttempt(outcome string) {
	DefaultMetrics.DiscoveryAttempts.WithLabelValues(outcome).Inc()
}

// RecordDiscoveryResult records a completed discovery run.
func RecordDiscoveryResult(result string, durationSeconds float64) {
	DefaultMetrics.DiscoveryResults.WithLabelValues(result).Inc()
	DefaultMetrics.DiscoveryDuration.WithLabelValues(result).Observe(durationSeconds)
}

// RecordCandidatesScanned adds n classified transactions.
func RecordCandidatesScanned(n int) {
	DefaultMetrics.CandidatesScanned.Add(float64(n))
}

// UpdateFallbackCacheSize sets the number of cached tokens.
func UpdateFallbackCacheSize(n int) {
	DefaultMetrics.FallbackCacheSize.Set(float64(n))
}

// RecordSinkError records a failed sink delivery.
func RecordSinkError(sink string) {
	DefaultMetrics.SinkErrors.WithLabelValues(sink).Inc()
}

// RecordWatcherTrigger records a watcher-initiated discovery.
func RecordWatcherTrigger() {
	DefaultMetrics.WatcherTriggers.Inc()
}

// RecordRPCCall records RPC call status and latency.
func RecordRPCCall(method string, err error, seconds float64) {
	DefaultMetrics.RPCCallsTotal.WithLabelValues(method, status(err)).Inc()
	DefaultMetrics.RPCCallLatency.WithLabelValues(method).Observe(seconds)
}

// RecordLiquidityLookup records liquidity lookup status and latency.
func RecordLiquidityLookup(err error, seconds float64) {
	DefaultMetrics.LiquidityLookups.WithLabelValues(status(err)).Inc()
	DefaultMetrics.LiquidityLookupLatency.Observe(seconds)
}

// RecordHTTPRequest records a served HTTP request.
func RecordHTTPRequest(route, code string) {
	DefaultMetrics.HTTPRequests.WithLabelValues(route, code).Inc()
}
