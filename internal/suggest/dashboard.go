package suggest

import (
	"sort"
	"time"
)

// DashboardCounts buckets expiring items by horizon.
type DashboardCounts struct {
	ExpiringToday     int `json:"expiringToday"`
	ExpiringThisWeek  int `json:"expiringThisWeek"`
	ExpiringThisMonth int `json:"expiringThisMonth"`
}

// DashboardRecipe is a consuming recipe listed on the expiry dashboard.
type DashboardRecipe struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	QuantityNeeded float64 `json:"quantityNeeded"`
	Unit           string  `json:"unit"`
}

// DashboardItem details one item expiring within the week.
type DashboardItem struct {
	ID              uint              `json:"id"`
	Name            string            `json:"name"`
	Category        string            `json:"category"`
	Quantity        float64           `json:"quantity"`
	Unit            string            `json:"unit"`
	ExpiryDate      *time.Time        `json:"expiryDate"`
	DaysUntilExpiry int               `json:"daysUntilExpiry"`
	Value           float64           `json:"value"`
	RecipesCount    int               `json:"recipesCount"`
	Recipes         []DashboardRecipe `json:"recipes"`
}

// Dashboard summarizes upcoming expirations and the stock value at risk.
type Dashboard struct {
	Counts        DashboardCounts `json:"counts"`
	TotalValue    float64         `json:"totalValue"`
	ExpiringItems []DashboardItem `json:"expiringItems"`
}

// BuildExpiryDashboard counts items expiring today, this week, and this
// month, and details the week's expiring stock with its value and the
// recipes that could consume it. Items without an expiry date or
// without stock are ignored.
func BuildExpiryDashboard(items []Item, now time.Time) Dashboard {
	endOfDay := now.AddDate(0, 0, 1)
	endOfWeek := now.AddDate(0, 0, 7)
	endOfMonth := now.AddDate(0, 1, 0)

	var dashboard Dashboard
	for _, item := range items {
		if item.ExpiryDate == nil || item.Quantity <= 0 {
			continue
		}
		expiry := *item.ExpiryDate
		if expiry.Before(now) {
			continue
		}
		if expiry.Before(endOfDay) {
			dashboard.Counts.ExpiringToday++
		}
		if expiry.Before(endOfWeek) {
			dashboard.Counts.ExpiringThisWeek++
		}
		if expiry.Before(endOfMonth) {
			dashboard.Counts.ExpiringThisMonth++
		}

		if !expiry.Before(endOfWeek) {
			continue
		}

		recipes := make([]DashboardRecipe, 0, len(item.Usages))
		for _, usage := range item.Usages {
			recipes = append(recipes, DashboardRecipe{
				ID:             usage.Recipe.ID,
				Name:           usage.Recipe.Name,
				QuantityNeeded: usage.QuantityNeeded,
				Unit:           usage.Unit,
			})
		}

		value := round2(item.Quantity * item.Cost)
		dashboard.TotalValue += value
		dashboard.ExpiringItems = append(dashboard.ExpiringItems, DashboardItem{
			ID:              item.ID,
			Name:            item.Name,
			Category:        item.Category,
			Quantity:        item.Quantity,
			Unit:            item.Unit,
			ExpiryDate:      item.ExpiryDate,
			DaysUntilExpiry: DaysUntilExpiry(expiry, now),
			Value:           value,
			RecipesCount:    len(recipes),
			Recipes:         recipes,
		})
	}

	sort.Slice(dashboard.ExpiringItems, func(i, j int) bool {
		a, b := dashboard.ExpiringItems[i], dashboard.ExpiringItems[j]
		if !a.ExpiryDate.Equal(*b.ExpiryDate) {
			return a.ExpiryDate.Before(*b.ExpiryDate)
		}
		return a.ID < b.ID
	})

	dashboard.TotalValue = round2(dashboard.TotalValue)
	return dashboard
}
