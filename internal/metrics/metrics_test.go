package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, APIRequestsTotal)
	assert.NotNil(t, APIRequestDuration)
	assert.NotNil(t, APIDailyUsage)
	assert.NotNil(t, APIDailyLimitHits)
	assert.NotNil(t, ParseErrorsTotal)
	assert.NotNil(t, ListingsParsedTotal)
}

func TestAPIRequestsTotal_Labels(t *testing.T) {
	t.Parallel()

	c := APIRequestsTotal.WithLabelValues("metrics-test", OutcomeOK)
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.InDelta(t, before+1, testutil.ToFloat64(c), 0.0001)
}
