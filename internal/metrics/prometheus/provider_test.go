package prometheus_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	prometheus_metrics "blog-service/internal/metrics/prometheus"
)

func TestPrometheusMetricsProvider(t *testing.T) {
	provider := prometheus_metrics.NewPrometheusMetricsProvider()

	before := testutil.ToFloat64(prometheus_metrics.PostOperationsTotal.WithLabelValues("create", "true"))
	provider.IncrementPostOperations("create", true)
	after := testutil.ToFloat64(prometheus_metrics.PostOperationsTotal.WithLabelValues("create", "true"))
	assert.Equal(t, before+1, after)

	provider.SetServiceHealth(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(prometheus_metrics.ServiceHealth))
	provider.SetServiceHealth(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(prometheus_metrics.ServiceHealth))

	hits := testutil.ToFloat64(prometheus_metrics.CacheHitsTotal)
	provider.IncrementCacheHits()
	assert.Equal(t, hits+1, testutil.ToFloat64(prometheus_metrics.CacheHitsTotal))

	provider.RecordHTTPRequestDuration("GET", "/posts", "200", 10*time.Millisecond)
	provider.IncrementHTTPRequests("GET", "/posts", "200")
	assert.Equal(t, float64(1), testutil.ToFloat64(prometheus_metrics.HTTPRequestsTotal.WithLabelValues("GET", "/posts", "200")))
}
