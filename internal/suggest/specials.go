package suggest

import (
	"math"
	"sort"
	"time"
)

// Specials heuristic constants.
const (
	// pointsPerExpiringIngredient feeds the expiry component of the
	// specials score.
	pointsPerExpiringIngredient = 2.0

	// inversePopularityBase rewards recipes that sold little recently,
	// since specials exist to move slow stock.
	inversePopularityBase = 10.0

	// marginScale maps profit margin percentage onto a 0-10 score.
	marginScale = 10.0

	// DefaultSpecialsLimit caps the recommendation list.
	DefaultSpecialsLimit = 5
)

// Specials score weights.
var specialsWeights = struct {
	Expiry     float64
	Popularity float64
	Margin     float64
}{0.5, 0.3, 0.2}

// SpecialRecommendation ranks a regular recipe as a candidate daily
// special.
type SpecialRecommendation struct {
	RecipeID                uint    `json:"recipeId"`
	RecipeName              string  `json:"recipeName"`
	RecipeCategory          string  `json:"recipeCategory"`
	ExpiringIngredientCount int     `json:"expiringIngredientCount"`
	RecentSales             int     `json:"recentSales"`
	ProfitMargin            float64 `json:"profitMargin"`
	Price                   float64 `json:"price"`
	Score                   float64 `json:"recommendationScore"`
}

// RecommendSpecials ranks non-special recipes as candidates for the
// specials board. Recipes score higher when they contain ingredients
// expiring within horizonDays, when they have sold poorly recently, and
// when their profit margin is strong. Returns at most limit entries
// (DefaultSpecialsLimit when limit is not positive).
func RecommendSpecials(recipes []Recipe, now time.Time, horizonDays, limit int) ([]SpecialRecommendation, error) {
	if horizonDays <= 0 {
		return nil, invalidInputf("horizon days must be positive, got %d", horizonDays)
	}
	if limit <= 0 {
		limit = DefaultSpecialsLimit
	}

	cutoff := now.AddDate(0, 0, horizonDays)
	results := make([]SpecialRecommendation, 0, len(recipes))
	for _, recipe := range recipes {
		if recipe.IsSpecial {
			continue
		}

		expiringCount := 0
		costPrice := 0.0
		for _, ing := range recipe.Ingredients {
			costPrice += ing.Quantity * ing.Cost
			if ing.ExpiryDate != nil && ing.ExpiryDate.After(now) && !ing.ExpiryDate.After(cutoff) {
				expiringCount++
			}
		}

		_, recentSales := sumSales(recipe.Sales, now)

		// A free or unpriced recipe has no meaningful margin.
		margin := 0.0
		if recipe.Price > 0 {
			margin = (recipe.Price - costPrice) / recipe.Price * 100
		}
		marginScore := math.Min(math.Max(margin/marginScale, 0), scoreCeiling)

		expiryScore := float64(expiringCount) * pointsPerExpiringIngredient
		popularityScore := math.Max(inversePopularityBase-float64(recentSales), 0)

		total := expiryScore*specialsWeights.Expiry +
			popularityScore*specialsWeights.Popularity +
			marginScore*specialsWeights.Margin

		results = append(results, SpecialRecommendation{
			RecipeID:                recipe.ID,
			RecipeName:              recipe.Name,
			RecipeCategory:          recipe.Category,
			ExpiringIngredientCount: expiringCount,
			RecentSales:             recentSales,
			ProfitMargin:            round2(margin),
			Price:                   recipe.Price,
			Score:                   round2(total),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].RecipeID < results[j].RecipeID
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
