package suggest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildExpiryDashboardCounts(t *testing.T) {
	halfDay := testNow.Add(12 * time.Hour)
	items := []Item{
		{ID: 1, Name: "Milk", Quantity: 2, Cost: 3, ExpiryDate: &halfDay},
		{ID: 2, Name: "Paneer", Quantity: 5, Cost: 8, ExpiryDate: daysFromNow(4)},
		{ID: 3, Name: "Atta", Quantity: 10, Cost: 1, ExpiryDate: daysFromNow(20)},
		{ID: 4, Name: "Salt", Quantity: 3, Cost: 1, ExpiryDate: nil},
		{ID: 5, Name: "Spoiled", Quantity: 1, Cost: 1, ExpiryDate: daysFromNow(-2)},
		{ID: 6, Name: "Gone", Quantity: 0, Cost: 1, ExpiryDate: daysFromNow(2)},
	}

	dashboard := BuildExpiryDashboard(items, testNow)

	assert.Equal(t, 1, dashboard.Counts.ExpiringToday)
	assert.Equal(t, 2, dashboard.Counts.ExpiringThisWeek)
	assert.Equal(t, 3, dashboard.Counts.ExpiringThisMonth)

	// Only the week's items are detailed, soonest first.
	require.Len(t, dashboard.ExpiringItems, 2)
	assert.Equal(t, uint(1), dashboard.ExpiringItems[0].ID)
	assert.Equal(t, uint(2), dashboard.ExpiringItems[1].ID)

	// 2*3 for milk plus 5*8 for paneer.
	assert.Equal(t, 46.0, dashboard.TotalValue)
}

func TestBuildExpiryDashboardRecipeDetails(t *testing.T) {
	items := []Item{
		{
			ID: 1, Name: "Cream", Quantity: 2, Cost: 5, ExpiryDate: daysFromNow(2),
			Usages: []Usage{
				{Recipe: Recipe{ID: 11, Name: "Korma"}, QuantityNeeded: 0.5, Unit: "l"},
				{Recipe: Recipe{ID: 12, Name: "Kheer"}, QuantityNeeded: 0.3, Unit: "l"},
			},
		},
	}

	dashboard := BuildExpiryDashboard(items, testNow)
	require.Len(t, dashboard.ExpiringItems, 1)

	item := dashboard.ExpiringItems[0]
	assert.Equal(t, 2, item.RecipesCount)
	assert.Equal(t, 2, item.DaysUntilExpiry)
	assert.Equal(t, "Korma", item.Recipes[0].Name)
}

func TestBuildExpiryDashboardEmpty(t *testing.T) {
	dashboard := BuildExpiryDashboard(nil, testNow)
	assert.Zero(t, dashboard.Counts)
	assert.Equal(t, 0.0, dashboard.TotalValue)
	assert.Empty(t, dashboard.ExpiringItems)
}
