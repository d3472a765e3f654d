package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

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

func TestModerationMetrics(t *testing.T) {
	initialProposed := testutil.ToFloat64(ArticlesProposedTotal)
	ArticlesProposedTotal.Inc()
	assert.Equal(t, initialProposed+1, testutil.ToFloat64(ArticlesProposedTotal))

	initialChanges := testutil.ToFloat64(StatusChangesTotal.WithLabelValues("published"))
	StatusChangesTotal.WithLabelValues("published").Add(3)
	assert.Equal(t, initialChanges+3, testutil.ToFloat64(StatusChangesTotal.WithLabelValues("published")))
}

func TestObserveNotification(t *testing.T) {
	initialSuccess := testutil.ToFloat64(NotificationsTotal.WithLabelValues("success"))
	initialFailure := testutil.ToFloat64(NotificationsTotal.WithLabelValues("failure"))

	ObserveNotification("success", 0.25)
	ObserveNotification("failure", 1.5)

	assert.Equal(t, initialSuccess+1, testutil.ToFloat64(NotificationsTotal.WithLabelValues("success")))
	assert.Equal(t, initialFailure+1, testutil.ToFloat64(NotificationsTotal.WithLabelValues("failure")))

	// Verify histogram has observations
	count := testutil.CollectAndCount(NotificationDuration)
	assert.GreaterOrEqual(t, count, 1, "NotificationDuration should have observations")
}

func TestExportMetrics(t *testing.T) {
	initialTotal := testutil.ToFloat64(ExportsTotal.WithLabelValues("success"))
	initialRecords := testutil.ToFloat64(ExportRecords)

	ExportsTotal.WithLabelValues("success").Inc()
	ExportRecords.Add(1000)

	assert.Equal(t, initialTotal+1, testutil.ToFloat64(ExportsTotal.WithLabelValues("success")))
	assert.Equal(t, initialRecords+1000, testutil.ToFloat64(ExportRecords))
}

func TestTimerObserveDuration(t *testing.T) {
	timer := NewTimer()

	// Sleep a bit to have measurable duration
	time.Sleep(50 * time.Millisecond)

	testHistogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "test_timer_duration_histogram",
		Help:    "Test histogram for timer duration",
		Buckets: []float64{.01, .05, .1, .5, 1},
	})
	prometheus.MustRegister(testHistogram)
	defer prometheus.Unregister(testHistogram)

	timer.ObserveDuration(testHistogram)

	count := testutil.CollectAndCount(testHistogram)
	assert.Equal(t, 1, count, "Histogram should have exactly one observation")

	assert.GreaterOrEqual(t, timer.Elapsed(), 0.05)
}

func TestPoolStatsCollectorStartStop(t *testing.T) {
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

	total := testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total"))
	idle := testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle"))
	inUse := testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use"))

	assert.Equal(t, float64(10), total, "Total connections should be 10")
	assert.Equal(t, float64(5), idle, "Idle connections should be 5")
	assert.Equal(t, float64(5), inUse, "In-use connections should be 5")

	// Stop the collector
	collector.Stop()
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
