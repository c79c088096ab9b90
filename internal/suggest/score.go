package suggest

import (
	"math"
	"time"
)

// Scoring constants. Weights are defaults, not fixed law; callers may
// tune them per restaurant.
const (
	// RecentSalesWindowDays bounds the trailing window used for the
	// popularity component.
	RecentSalesWindowDays = 30

	// usageSaturation divides the raw usage percentage into a 0-10
	// score. The score saturates at 200%, where one serving would need
	// double the remaining stock.
	usageSaturation = 20.0

	// popularitySaturation is the recent-sales count per score point.
	// 100+ units sold in the trailing window scores the full 10.
	popularitySaturation = 10.0

	scoreCeiling = 10.0
)

// ScoreWeights blends the three component scores of a recipe suggestion.
type ScoreWeights struct {
	Urgency    float64
	Usage      float64
	Popularity float64
}

// DefaultScoreWeights favors urgency over usage and popularity, which
// matches the waste-prevention goal of the suggestions report.
var DefaultScoreWeights = ScoreWeights{Urgency: 0.5, Usage: 0.3, Popularity: 0.2}

// scoreUsage computes the composite score for a single recipe candidate
// against an expiring item. The item has already passed FilterExpiring,
// but a zero stock quantity is still guarded and treated as fully
// consumed rather than dividing by zero.
func scoreUsage(item Item, usage Usage, now time.Time, daysThreshold int, weights ScoreWeights) ScoredRecipe {
	daysLeft := daysThreshold
	if item.ExpiryDate != nil {
		daysLeft = DaysUntilExpiry(*item.ExpiryDate, now)
	}

	// Raw percentage drives the score; the reported field is capped at
	// 100 regardless of how oversized the recipe's need is.
	rawUsagePct := 100.0
	if item.Quantity > 0 {
		rawUsagePct = usage.QuantityNeeded / item.Quantity * 100
	}

	totalSold, recentSales := sumSales(usage.Recipe.Sales, now)

	urgencyScore := float64(daysThreshold-daysLeft) / float64(daysThreshold) * scoreCeiling
	usageScore := math.Min(rawUsagePct/usageSaturation, scoreCeiling)
	popularityScore := math.Min(float64(recentSales)/popularitySaturation, scoreCeiling)

	total := urgencyScore*weights.Urgency + usageScore*weights.Usage + popularityScore*weights.Popularity

	return ScoredRecipe{
		RecipeID:        usage.Recipe.ID,
		RecipeName:      usage.Recipe.Name,
		RecipeCategory:  usage.Recipe.Category,
		RecipePrice:     usage.Recipe.Price,
		IngredientName:  item.Name,
		DaysUntilExpiry: daysLeft,
		QuantityNeeded:  usage.QuantityNeeded,
		Unit:            usage.Unit,
		TotalSales:      totalSold,
		RecentSales:     recentSales,
		UsagePercentage: round2(math.Min(rawUsagePct, 100)),
		Score:           round2(total),
	}
}

// sumSales returns total units sold and units sold within the trailing
// recent-sales window.
func sumSales(sales []Sale, now time.Time) (total, recent int) {
	windowStart := now.AddDate(0, 0, -RecentSalesWindowDays)
	for _, sale := range sales {
		total += sale.QuantitySold
		if !sale.Date.Before(windowStart) {
			recent += sale.QuantitySold
		}
	}
	return total, recent
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
