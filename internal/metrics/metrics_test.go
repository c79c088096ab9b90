package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatheredNames(t *testing.T, c *Collector) map[string]bool {
	t.Helper()
	families, err := c.Registry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, family := range families {
		names[family.GetName()] = true
	}
	return names
}

func TestCollectorRecordsRequests(t *testing.T) {
	c := NewCollector()

	c.RecordRequest("expiring_recipes", "ok")
	c.RecordRequest("expiring_recipes", "ok")
	c.RecordRequest("minimal_waste_menu", "error")

	names := gatheredNames(t, c)
	assert.True(t, names["suggestion_requests_total"])
}

func TestCollectorRecordsGaugesAndDurations(t *testing.T) {
	c := NewCollector()

	c.RecordScoringDuration("expiring_recipes", 25*time.Millisecond)
	c.RecordExpiringItems("1", 4)
	c.RecordAtRiskValue("1", 1250.50)

	names := gatheredNames(t, c)
	assert.True(t, names["suggestion_scoring_duration_seconds"])
	assert.True(t, names["inventory_expiring_items"])
	assert.True(t, names["inventory_at_risk_value"])
}
