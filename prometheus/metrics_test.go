package prometheus

import (
	"testing"
	"time"

	"storefront-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTrackDBOperationObservesDuration(t *testing.T) {
	cfg := &config.Config{Metrics: config.MetricsConfig{Prefix: "storefront_test"}}
	InitMetrics(cfg)

	TrackDBOperation("query")(time.Now().Add(-5 * time.Millisecond))

	count := testutil.CollectAndCount(&DbOperationDuration,
		"storefront_test_db_operation_duration_seconds")
	assert.Equal(t, 1, count)
}
