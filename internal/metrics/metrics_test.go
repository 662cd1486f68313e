package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, RunDuration)
	assert.NotNil(t, RunsTotal)
	assert.NotNil(t, RunsOverlappedTotal)
	assert.NotNil(t, ProcessingErrorsTotal)
	assert.NotNil(t, SchedulerNextRunTimestamp)
	assert.NotNil(t, AlertsSentTotal)
	assert.NotNil(t, AlertsSuppressedTotal)
	assert.NotNil(t, CooldownResetsTotal)
	assert.NotNil(t, NotificationFailuresTotal)
	assert.NotNil(t, CatalogCallsTotal)
	assert.NotNil(t, CatalogDailyUsage)
	assert.NotNil(t, CatalogDailyLimitHits)
	assert.NotNil(t, CatalogCacheHitsTotal)
}
