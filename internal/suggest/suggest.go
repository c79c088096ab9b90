package suggest

import (
	"sort"
	"time"
)

// SuggestRecipes produces one Suggestion per expiring item, each with
// the recipes that consume the item ranked by composite score. Items
// with no recipe usage edges yield no suggestion. The result is ordered
// soonest-expiring first; recipe lists are ordered highest-scoring
// first, with recipe ID as a deterministic tiebreaker.
func SuggestRecipes(items []Item, now time.Time, daysThreshold int, weights ScoreWeights) ([]Suggestion, error) {
	expiring, err := FilterExpiring(items, now, daysThreshold)
	if err != nil {
		return nil, err
	}

	suggestions := make([]Suggestion, 0, len(expiring))
	for _, item := range expiring {
		if len(item.Usages) == 0 {
			continue
		}

		scored := make([]ScoredRecipe, 0, len(item.Usages))
		for _, usage := range item.Usages {
			if usage.QuantityNeeded <= 0 {
				return nil, invalidInputf("recipe %d needs non-positive quantity %.2f of item %d",
					usage.Recipe.ID, usage.QuantityNeeded, item.ID)
			}
			scored = append(scored, scoreUsage(item, usage, now, daysThreshold, weights))
		}

		sort.Slice(scored, func(i, j int) bool {
			if scored[i].Score != scored[j].Score {
				return scored[i].Score > scored[j].Score
			}
			return scored[i].RecipeID < scored[j].RecipeID
		})

		suggestions = append(suggestions, Suggestion{
			ExpiringIngredient: ExpiringIngredient{
				ID:              item.ID,
				Name:            item.Name,
				Category:        item.Category,
				ExpiryDate:      item.ExpiryDate,
				DaysUntilExpiry: DaysUntilExpiry(*item.ExpiryDate, now),
				Quantity:        item.Quantity,
				Unit:            item.Unit,
			},
			SuggestedRecipes: scored,
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		a, b := suggestions[i].ExpiringIngredient, suggestions[j].ExpiringIngredient
		if a.DaysUntilExpiry != b.DaysUntilExpiry {
			return a.DaysUntilExpiry < b.DaysUntilExpiry
		}
		return a.ID < b.ID
	})

	return suggestions, nil
}
