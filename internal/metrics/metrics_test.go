package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveImportCompletion(t *testing.T) {
	// Counters cannot be reset in prometheus, so we just test increments
	initialTotal := testutil.ToFloat64(ImportsTotal.WithLabelValues("flow", "completed_with_errors"))
	initialSuccess := testutil.ToFloat64(RowsProcessed.WithLabelValues("flow", "success"))
	initialRejected := testutil.ToFloat64(RowsProcessed.WithLabelValues("flow", "rejected"))
	initialDuplicate := testutil.ToFloat64(RowsProcessed.WithLabelValues("flow", "duplicate"))

	ObserveImportCompletion("flow", "completed_with_errors", 5.5, 100, 5, 2)

	assert.Equal(t, initialTotal+1, testutil.ToFloat64(ImportsTotal.WithLabelValues("flow", "completed_with_errors")))
	assert.Equal(t, initialSuccess+100, testutil.ToFloat64(RowsProcessed.WithLabelValues("flow", "success")))
	assert.Equal(t, initialRejected+5, testutil.ToFloat64(RowsProcessed.WithLabelValues("flow", "rejected")))
	assert.Equal(t, initialDuplicate+2, testutil.ToFloat64(RowsProcessed.WithLabelValues("flow", "duplicate")))
}

func TestStartEndImport(t *testing.T) {
	initialInProgress := testutil.ToFloat64(ImportsInProgress.WithLabelValues("rainfall"))

	StartImport("rainfall")
	afterStart := testutil.ToFloat64(ImportsInProgress.WithLabelValues("rainfall"))
	assert.Equal(t, initialInProgress+1, afterStart, "In-progress should increment on StartImport")

	EndImport("rainfall")
	afterEnd := testutil.ToFloat64(ImportsInProgress.WithLabelValues("rainfall"))
	assert.Equal(t, initialInProgress, afterEnd, "In-progress should decrement on EndImport")
}

func TestStageDuration(t *testing.T) {
	NewTimer().ObserveDuration(StageDuration.WithLabelValues("water-level", "insert"))

	count := testutil.CollectAndCount(StageDuration)
	assert.GreaterOrEqual(t, count, 1, "StageDuration should have observations")
}

func TestStationProvisioned(t *testing.T) {
	initial := testutil.ToFloat64(StationsProvisioned.WithLabelValues("water-quality"))

	StationProvisioned("water-quality")
	StationProvisioned("water-quality")

	assert.Equal(t, initial+2, testutil.ToFloat64(StationsProvisioned.WithLabelValues("water-quality")))
}

func TestTimer(t *testing.T) {
	timer := NewTimer()

	// Sleep a bit to have measurable duration
	time.Sleep(10 * time.Millisecond)

	// Create a test histogram to observe
	testHistogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "test_timer_histogram",
		Help:    "Test histogram for timer",
		Buckets: []float64{.01, .05, .1, .5, 1},
	})

	timer.ObserveDuration(testHistogram)

	// Verify histogram was observed (should have at least one observation)
	// We can't easily read the value, but we can verify no panic occurred
}

func TestHTTPMetricsExist(t *testing.T) {
	// Verify HTTP metrics are properly initialized
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInFlight)

	// Increment and verify
	initialRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	HTTPRequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
	newRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	assert.Equal(t, initialRequests+1, newRequests)
}

func TestDBConnectionPoolSizeMetric(t *testing.T) {
	// Verify DB pool metric exists and can be set
	DBConnectionPoolSize.WithLabelValues("total").Set(10)
	DBConnectionPoolSize.WithLabelValues("idle").Set(5)
	DBConnectionPoolSize.WithLabelValues("in_use").Set(5)

	assert.Equal(t, float64(10), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")))
}

func TestStreamingExportMetrics(t *testing.T) {
	initialTotal := testutil.ToFloat64(StreamingExportsTotal.WithLabelValues("flow", "success"))
	initialInFlight := testutil.ToFloat64(StreamingExportsInFlight.WithLabelValues("flow"))
	initialRecords := testutil.ToFloat64(StreamingExportRecords.WithLabelValues("flow"))

	StartStreamingExport("flow")
	afterStart := testutil.ToFloat64(StreamingExportsInFlight.WithLabelValues("flow"))
	assert.Equal(t, initialInFlight+1, afterStart, "In-flight should increment on StartStreamingExport")

	EndStreamingExport("flow", "success", 0.5, 1000)

	afterEnd := testutil.ToFloat64(StreamingExportsInFlight.WithLabelValues("flow"))
	assert.Equal(t, initialInFlight, afterEnd, "In-flight should decrement on EndStreamingExport")

	newTotal := testutil.ToFloat64(StreamingExportsTotal.WithLabelValues("flow", "success"))
	assert.Equal(t, initialTotal+1, newTotal, "StreamingExportsTotal should increment")

	newRecords := testutil.ToFloat64(StreamingExportRecords.WithLabelValues("flow"))
	assert.Equal(t, initialRecords+1000, newRecords, "StreamingExportRecords should increase by record count")
}

func TestStreamingExportErrorMetrics(t *testing.T) {
	initialErrors := testutil.ToFloat64(StreamingExportsTotal.WithLabelValues("water-level", "error"))

	StartStreamingExport("water-level")
	EndStreamingExport("water-level", "error", 1.0, 500)

	newErrors := testutil.ToFloat64(StreamingExportsTotal.WithLabelValues("water-level", "error"))
	assert.Equal(t, initialErrors+1, newErrors, "Error count should increment")
}

func TestStreamingExportZeroRecords(t *testing.T) {
	initialRecords := testutil.ToFloat64(StreamingExportRecords.WithLabelValues("rainfall"))

	StartStreamingExport("rainfall")
	EndStreamingExport("rainfall", "success", 0.1, 0)

	newRecords := testutil.ToFloat64(StreamingExportRecords.WithLabelValues("rainfall"))
	assert.Equal(t, initialRecords, newRecords, "StreamingExportRecords should not change for zero records")
}

func TestTimerObserveDuration(t *testing.T) {
	timer := NewTimer()

	// Sleep a bit to have measurable duration
	time.Sleep(50 * time.Millisecond)

	// Create a test histogram to observe
	testHistogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "test_timer_duration_histogram",
		Help:    "Test histogram for timer duration",
		Buckets: []float64{.01, .05, .1, .5, 1},
	})
	prometheus.MustRegister(testHistogram)
	defer prometheus.Unregister(testHistogram)

	timer.ObserveDuration(testHistogram)

	// Verify the histogram received an observation
	count := testutil.CollectAndCount(testHistogram)
	assert.Equal(t, 1, count, "Histogram should have exactly one observation")
}

func TestPoolStatsCollectorStartStop(t *testing.T) {
	// Create a mock pool stats provider
	mockProvider := &mockPoolStatsProvider{
		totalConns:    10,
		idleConns:     5,
		acquiredConns: 5,
	}

	collector := NewPoolStatsCollectorWithProvider(mockProvider)

	// Start the collector with a short interval
	collector.Start(10 * time.Millisecond)

	// Let it run for a bit to collect stats
	time.Sleep(30 * time.Millisecond)

	// Verify stats were collected
	total := testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total"))
	idle := testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle"))
	inUse := testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use"))

	assert.Equal(t, float64(10), total, "Total connections should be 10")
	assert.Equal(t, float64(5), idle, "Idle connections should be 5")
	assert.Equal(t, float64(5), inUse, "In-use connections should be 5")

	// Stop the collector
	collector.Stop()

	// Verify it stopped (no panic, completes in reasonable time)
}

// mockPoolStats implements PoolStats for testing
type mockPoolStats struct {
	total    int32
	idle     int32
	acquired int32
}

func (m *mockPoolStats) TotalConns() int32    { return m.total }
func (m *mockPoolStats) IdleConns() int32     { return m.idle }
func (m *mockPoolStats) AcquiredConns() int32 { return m.acquired }

// mockPoolStatsProvider implements PoolStatsProvider for testing
type mockPoolStatsProvider struct {
	totalConns    int32
	idleConns     int32
	acquiredConns int32
}

func (m *mockPoolStatsProvider) Stat() PoolStats {
	return &mockPoolStats{
		total:    m.totalConns,
		idle:     m.idleConns,
		acquired: m.acquiredConns,
	}
}

func TestPoolStatsCollectorMultipleCollections(t *testing.T) {
	// Create a mock that changes values
	mockProvider := &dynamicMockPoolStatsProvider{
		calls: 0,
	}

	collector := NewPoolStatsCollectorWithProvider(mockProvider)
	collector.Start(5 * time.Millisecond)

	// Let it collect a few times
	time.Sleep(25 * time.Millisecond)

	collector.Stop()

	// Should have collected multiple times
	assert.GreaterOrEqual(t, mockProvider.calls, 2, "Should collect multiple times")
}

type dynamicMockPoolStatsProvider struct {
	calls int
}

func (m *dynamicMockPoolStatsProvider) Stat() PoolStats {
	m.calls++
	return &mockPoolStats{
		total:    int32(10 + m.calls),
		idle:     int32(5),
		acquired: int32(5 + m.calls),
	}
}

func TestObserveImportCompletionZeroCounts(t *testing.T) {
	initialTotal := testutil.ToFloat64(ImportsTotal.WithLabelValues("water-level", "completed"))
	initialSuccess := testutil.ToFloat64(RowsProcessed.WithLabelValues("water-level", "success"))
	initialRejected := testutil.ToFloat64(RowsProcessed.WithLabelValues("water-level", "rejected"))

	ObserveImportCompletion("water-level", "completed", 1.0, 0, 0, 0)

	newTotal := testutil.ToFloat64(ImportsTotal.WithLabelValues("water-level", "completed"))
	assert.Equal(t, initialTotal+1, newTotal, "ImportsTotal should increment")

	assert.Equal(t, initialSuccess, testutil.ToFloat64(RowsProcessed.WithLabelValues("water-level", "success")))
	assert.Equal(t, initialRejected, testutil.ToFloat64(RowsProcessed.WithLabelValues("water-level", "rejected")))
}

func TestObserveImportCompletionOnlyRejected(t *testing.T) {
	initialSuccess := testutil.ToFloat64(RowsProcessed.WithLabelValues("water-quality", "success"))
	initialRejected := testutil.ToFloat64(RowsProcessed.WithLabelValues("water-quality", "rejected"))

	ObserveImportCompletion("water-quality", "failed", 3.0, 0, 100, 0)

	assert.Equal(t, initialSuccess, testutil.ToFloat64(RowsProcessed.WithLabelValues("water-quality", "success")))
	assert.Equal(t, initialRejected+100, testutil.ToFloat64(RowsProcessed.WithLabelValues("water-quality", "rejected")))
}

func TestLogHealthCheckMetrics(t *testing.T) {
	// LogHealthCheckMetrics requires a real pgxpool.Pool which we can't easily mock
	// This test just verifies the function signature and that it would be callable
	// The actual integration test would use a real database connection
	t.Run("function exists and is callable", func(t *testing.T) {
		// Verify the function is defined (compile-time check)
		var _ = LogHealthCheckMetrics
	})
}

func TestImportDurationHistogramBuckets(t *testing.T) {
	// Observe various durations and verify they're recorded
	durations := []float64{0.1, 0.5, 1.0, 5.0, 30.0, 120.0}

	for _, d := range durations {
		ImportDuration.WithLabelValues("flow").Observe(d)
	}

	count := testutil.CollectAndCount(ImportDuration)
	assert.GreaterOrEqual(t, count, 1, "ImportDuration should have observations")
}

func TestHTTPRequestDurationHistogramBuckets(t *testing.T) {
	// Observe various request durations
	durations := []float64{0.005, 0.01, 0.1, 0.5, 1.0, 5.0, 30.0}

	for _, d := range durations {
		HTTPRequestDuration.WithLabelValues("GET", "/test").Observe(d)
	}

	// Verify histogram has observations
	count := testutil.CollectAndCount(HTTPRequestDuration)
	assert.GreaterOrEqual(t, count, 1, "HTTPRequestDuration should have observations")
}

func TestStreamingExportDurationHistogramBuckets(t *testing.T) {
	// Observe various streaming export durations
	durations := []float64{0.05, 0.1, 0.5, 1.0, 5.0, 30.0, 60.0}

	for _, d := range durations {
		StreamingExportDuration.WithLabelValues("flow").Observe(d)
	}

	// Verify histogram has observations
	count := testutil.CollectAndCount(StreamingExportDuration)
	assert.GreaterOrEqual(t, count, 1, "StreamingExportDuration should have observations")
}

func TestHTTPRequestsInFlightGauge(t *testing.T) {
	initial := testutil.ToFloat64(HTTPRequestsInFlight)

	HTTPRequestsInFlight.Inc()
	HTTPRequestsInFlight.Inc()
	after2 := testutil.ToFloat64(HTTPRequestsInFlight)
	assert.Equal(t, initial+2, after2, "In-flight should be initial+2")

	HTTPRequestsInFlight.Dec()
	after1 := testutil.ToFloat64(HTTPRequestsInFlight)
	assert.Equal(t, initial+1, after1, "In-flight should be initial+1")

	HTTPRequestsInFlight.Dec()
	afterReset := testutil.ToFloat64(HTTPRequestsInFlight)
	assert.Equal(t, initial, afterReset, "In-flight should return to initial")
}

func TestTimerSeconds(t *testing.T) {
	timer := NewTimer()
	time.Sleep(10 * time.Millisecond)
	assert.GreaterOrEqual(t, timer.Seconds(), 0.01)
}
