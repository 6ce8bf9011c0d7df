// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, imports, queries, exports and database operations.
package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"hydromon/internal/logger"
)

const (
	namespace = "hydromon"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Import metrics - track import jobs and their rows
	ImportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "imports",
			Name:      "total",
			Help:      "Total number of import jobs by variant and final status",
		},
		[]string{"variant", "status"},
	)

	ImportsInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "imports",
			Name:      "in_progress",
			Help:      "Number of import jobs currently in progress",
		},
		[]string{"variant"},
	)

	ImportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "imports",
			Name:      "duration_seconds",
			Help:      "Import job duration in seconds",
			Buckets:   []float64{.1, .5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"variant"},
	)

	// RowsProcessed counts rows by outcome: success, rejected or duplicate.
	RowsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rows",
			Name:      "processed_total",
			Help:      "Total number of import rows by variant and outcome",
		},
		[]string{"variant", "outcome"},
	)

	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rows",
			Name:      "stage_duration_seconds",
			Help:      "Pipeline stage duration in seconds",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"variant", "stage"},
	)

	StationsProvisioned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stations",
			Name:      "provisioned_total",
			Help:      "Total number of stations auto-created by imports",
		},
		[]string{"variant"},
	)

	// QueryDuration tracks record listings and chart aggregations.
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "queries",
			Name:      "duration_seconds",
			Help:      "Record query duration in seconds by variant and kind",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"variant", "kind"},
	)

	// Streaming export metrics - track streaming exports
	StreamingExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "exports_total",
			Help:      "Total number of streaming exports by variant and result",
		},
		[]string{"variant", "result"},
	)

	StreamingExportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "export_duration_seconds",
			Help:      "Streaming export duration in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"variant"},
	)

	StreamingExportRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "records_total",
			Help:      "Total number of records streamed by variant",
		},
		[]string{"variant"},
	)

	StreamingExportsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "exports_in_flight",
			Help:      "Number of streaming exports currently in progress",
		},
		[]string{"variant"},
	)

	// Database metrics - track database operation performance
	DBConnectionPoolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Database connection pool stats",
		},
		[]string{"state"},
	)
)

// PoolStats is an interface for getting pool statistics
// This allows for easier testing by mocking the pool stats
type PoolStats interface {
	TotalConns() int32
	IdleConns() int32
	AcquiredConns() int32
}

// PoolStatsProvider is an interface for providing pool stats
type PoolStatsProvider interface {
	Stat() PoolStats
}

// pgxPoolAdapter adapts pgxpool.Pool to PoolStatsProvider
type pgxPoolAdapter struct {
	pool *pgxpool.Pool
}

func (a *pgxPoolAdapter) Stat() PoolStats {
	return a.pool.Stat()
}

// PoolStatsCollector collects database pool statistics periodically
type PoolStatsCollector struct {
	provider PoolStatsProvider
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewPoolStatsCollector creates a new pool stats collector
func NewPoolStatsCollector(pool *pgxpool.Pool) *PoolStatsCollector {
	return &PoolStatsCollector{
		provider: &pgxPoolAdapter{pool: pool},
		stopChan: make(chan struct{}),
	}
}

// NewPoolStatsCollectorWithProvider creates a new pool stats collector with a custom provider (for testing)
func NewPoolStatsCollectorWithProvider(provider PoolStatsProvider) *PoolStatsCollector {
	return &PoolStatsCollector{
		provider: provider,
		stopChan: make(chan struct{}),
	}
}

// Start begins collecting pool stats every interval
func (c *PoolStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

func (c *PoolStatsCollector) collect() {
	stats := c.provider.Stat()
	DBConnectionPoolSize.WithLabelValues("total").Set(float64(stats.TotalConns()))
	DBConnectionPoolSize.WithLabelValues("idle").Set(float64(stats.IdleConns()))
	DBConnectionPoolSize.WithLabelValues("in_use").Set(float64(stats.AcquiredConns()))
}

// Stop stops the pool stats collector
func (c *PoolStatsCollector) Stop() {
	close(c.stopChan)
	c.wg.Wait()
}

// ObserveImportCompletion records metrics when an import job finishes.
// rejected includes duplicates; duplicates are also counted on their own.
func ObserveImportCompletion(variant, status string, durationSeconds float64, success, rejected, duplicates int) {
	ImportsTotal.WithLabelValues(variant, status).Inc()
	ImportDuration.WithLabelValues(variant).Observe(durationSeconds)

	if success > 0 {
		RowsProcessed.WithLabelValues(variant, "success").Add(float64(success))
	}
	if rejected > 0 {
		RowsProcessed.WithLabelValues(variant, "rejected").Add(float64(rejected))
	}
	if duplicates > 0 {
		RowsProcessed.WithLabelValues(variant, "duplicate").Add(float64(duplicates))
	}
}

// StartImport increments the in-progress gauge for a variant
func StartImport(variant string) {
	ImportsInProgress.WithLabelValues(variant).Inc()
}

// EndImport decrements the in-progress gauge for a variant
func EndImport(variant string) {
	ImportsInProgress.WithLabelValues(variant).Dec()
}

// StationProvisioned counts one auto-created station
func StationProvisioned(variant string) {
	StationsProvisioned.WithLabelValues(variant).Inc()
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the elapsed time since the timer was created
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(time.Since(t.start).Seconds())
}

// Seconds returns the elapsed time since the timer was created
func (t *Timer) Seconds() float64 {
	return time.Since(t.start).Seconds()
}

// LogHealthCheckMetrics logs database pool stats (for debugging)
func LogHealthCheckMetrics(ctx context.Context, pool *pgxpool.Pool) {
	stats := pool.Stat()
	logger.FromContext(ctx).DebugContext(ctx, "Database pool stats",
		slog.Int("total_conns", int(stats.TotalConns())),
		slog.Int("idle_conns", int(stats.IdleConns())),
		slog.Int("acquired_conns", int(stats.AcquiredConns())),
		slog.Int64("acquire_count", stats.AcquireCount()),
		slog.Int64("canceled_acquire_count", stats.CanceledAcquireCount()),
	)
}

// StartStreamingExport starts tracking a streaming export
func StartStreamingExport(variant string) {
	StreamingExportsInFlight.WithLabelValues(variant).Inc()
}

// EndStreamingExport ends tracking a streaming export and records metrics
func EndStreamingExport(variant, result string, durationSeconds float64, recordCount int) {
	StreamingExportsInFlight.WithLabelValues(variant).Dec()
	StreamingExportsTotal.WithLabelValues(variant, result).Inc()
	StreamingExportDuration.WithLabelValues(variant).Observe(durationSeconds)
	if recordCount > 0 {
		StreamingExportRecords.WithLabelValues(variant).Add(float64(recordCount))
	}
}
