package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestStartEndImport(t *testing.T) {
	initialInProgress := testutil.ToFloat64(ImportsInProgress.WithLabelValues("kidsgiftboxes"))
	initialTotal := testutil.ToFloat64(ImportsTotal.WithLabelValues("kidsgiftboxes", "completed_with_errors"))
	initialSuccess := testutil.ToFloat64(ImportRows.WithLabelValues("kidsgiftboxes", "success"))
	initialErrors := testutil.ToFloat64(ImportRows.WithLabelValues("kidsgiftboxes", "error"))

	StartImport("kidsgiftboxes")
	assert.Equal(t, initialInProgress+1, testutil.ToFloat64(ImportsInProgress.WithLabelValues("kidsgiftboxes")))

	EndImport("kidsgiftboxes", "completed_with_errors", 1.5, 148, 2)

	assert.Equal(t, initialInProgress, testutil.ToFloat64(ImportsInProgress.WithLabelValues("kidsgiftboxes")))
	assert.Equal(t, initialTotal+1, testutil.ToFloat64(ImportsTotal.WithLabelValues("kidsgiftboxes", "completed_with_errors")))
	assert.Equal(t, initialSuccess+148, testutil.ToFloat64(ImportRows.WithLabelValues("kidsgiftboxes", "success")))
	assert.Equal(t, initialErrors+2, testutil.ToFloat64(ImportRows.WithLabelValues("kidsgiftboxes", "error")))
}

func TestEndImportZeroCounts(t *testing.T) {
	initialSuccess := testutil.ToFloat64(ImportRows.WithLabelValues("carousel", "success"))
	initialErrors := testutil.ToFloat64(ImportRows.WithLabelValues("carousel", "error"))

	StartImport("carousel")
	EndImport("carousel", "failed", 0.1, 0, 0)

	assert.Equal(t, initialSuccess, testutil.ToFloat64(ImportRows.WithLabelValues("carousel", "success")))
	assert.Equal(t, initialErrors, testutil.ToFloat64(ImportRows.WithLabelValues("carousel", "error")))
}

func TestObserveBatchDuration(t *testing.T) {
	ObserveBatchDuration("kidsgiftboxes", NewTimer())

	count := testutil.CollectAndCount(BatchDuration)
	assert.GreaterOrEqual(t, count, 1, "BatchDuration should have observations")
}

func TestIDCollisionsAndCache(t *testing.T) {
	initial := testutil.ToFloat64(IDCollisions.WithLabelValues("sequential"))
	IDCollisions.WithLabelValues("sequential").Inc()
	assert.Equal(t, initial+1, testutil.ToFloat64(IDCollisions.WithLabelValues("sequential")))

	hits := testutil.ToFloat64(CacheRequests.WithLabelValues("hit"))
	CacheRequests.WithLabelValues("hit").Inc()
	assert.Equal(t, hits+1, testutil.ToFloat64(CacheRequests.WithLabelValues("hit")))
}

func TestHTTPMetricsExist(t *testing.T) {
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInFlight)

	initialRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	HTTPRequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
	newRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	assert.Equal(t, initialRequests+1, newRequests)
}

func TestStreamingExportMetrics(t *testing.T) {
	initialTotal := testutil.ToFloat64(StreamingExportsTotal.WithLabelValues("kidsgiftboxes", "ndjson", "success"))
	initialInFlight := testutil.ToFloat64(StreamingExportsInFlight.WithLabelValues("kidsgiftboxes"))
	initialRecords := testutil.ToFloat64(StreamingExportRecords.WithLabelValues("kidsgiftboxes", "ndjson"))

	StartStreamingExport("kidsgiftboxes")
	afterStart := testutil.ToFloat64(StreamingExportsInFlight.WithLabelValues("kidsgiftboxes"))
	assert.Equal(t, initialInFlight+1, afterStart, "In-flight should increment on StartStreamingExport")

	EndStreamingExport("kidsgiftboxes", "ndjson", "success", 0.5, 1000)

	assert.Equal(t, initialInFlight, testutil.ToFloat64(StreamingExportsInFlight.WithLabelValues("kidsgiftboxes")))
	assert.Equal(t, initialTotal+1, testutil.ToFloat64(StreamingExportsTotal.WithLabelValues("kidsgiftboxes", "ndjson", "success")))
	assert.Equal(t, initialRecords+1000, testutil.ToFloat64(StreamingExportRecords.WithLabelValues("kidsgiftboxes", "ndjson")))
}

func TestStreamingExportZeroRecords(t *testing.T) {
	initialRecords := testutil.ToFloat64(StreamingExportRecords.WithLabelValues("kidsgiftboxes", "csv"))

	StartStreamingExport("kidsgiftboxes")
	EndStreamingExport("kidsgiftboxes", "csv", "success", 0.1, 0)

	newRecords := testutil.ToFloat64(StreamingExportRecords.WithLabelValues("kidsgiftboxes", "csv"))
	assert.Equal(t, initialRecords, newRecords, "StreamingExportRecords should not change for zero records")
}

func TestTimerObserveDuration(t *testing.T) {
	timer := NewTimer()
	time.Sleep(20 * time.Millisecond)

	testHistogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "test_timer_duration_histogram",
		Help:    "Test histogram for timer duration",
		Buckets: []float64{.01, .05, .1, .5, 1},
	})
	prometheus.MustRegister(testHistogram)
	defer prometheus.Unregister(testHistogram)

	timer.ObserveDuration(testHistogram)

	assert.Equal(t, 1, testutil.CollectAndCount(testHistogram))
	assert.GreaterOrEqual(t, timer.Seconds(), 0.02)
}

func TestPoolStatsCollectorStartStop(t *testing.T) {
	mockProvider := &mockPoolStatsProvider{
		totalConns:    10,
		idleConns:     5,
		acquiredConns: 5,
	}

	collector := NewPoolStatsCollectorWithProvider(mockProvider)
	collector.Start(10 * time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	collector.Stop()

	assert.Equal(t, float64(10), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")))
}

type mockPoolStats struct {
	total    int32
	idle     int32
	acquired int32
}

func (m *mockPoolStats) TotalConns() int32    { return m.total }
func (m *mockPoolStats) IdleConns() int32     { return m.idle }
func (m *mockPoolStats) AcquiredConns() int32 { return m.acquired }

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

func TestHTTPRequestsInFlightGauge(t *testing.T) {
	initial := testutil.ToFloat64(HTTPRequestsInFlight)

	HTTPRequestsInFlight.Inc()
	HTTPRequestsInFlight.Inc()
	assert.Equal(t, initial+2, testutil.ToFloat64(HTTPRequestsInFlight))

	HTTPRequestsInFlight.Dec()
	HTTPRequestsInFlight.Dec()
	assert.Equal(t, initial, testutil.ToFloat64(HTTPRequestsInFlight))
}
