package suggest

import (
	"math"
	"sort"
)

// Menu heuristic constants.
const (
	// expiryPercentageScale maps a 0-100 expiring-ingredient percentage
	// onto the 0-10 score range.
	expiryPercentageScale = 0.1

	// DefaultMenuSize is used when the caller passes no explicit size.
	DefaultMenuSize = 10
)

// MenuWeights blends the expiry and popularity components of the
// waste-reduction score.
type MenuWeights struct {
	Expiry     float64
	Popularity float64
}

// DefaultMenuWeights leans on expiring-ingredient coverage first so the
// menu burns through stock that would otherwise be wasted.
var DefaultMenuWeights = MenuWeights{Expiry: 0.7, Popularity: 0.3}

// MenuRecipe is one recipe scored for the waste-minimizing menu.
type MenuRecipe struct {
	RecipeID            uint    `json:"recipeId"`
	RecipeName          string  `json:"recipeName"`
	Category            string  `json:"category"`
	Price               float64 `json:"price"`
	ExpiringIngredients int     `json:"expiringIngredientsCount"`
	ExpiringPercentage  float64 `json:"expiringIngredientsPercentage"`
	HistoricalSales     int     `json:"historicalSales"`
	WasteReductionScore float64 `json:"wasteReductionScore"`
}

// MenuPlan is a category-balanced menu selection plus the full scored
// recipe list it was drawn from.
type MenuPlan struct {
	Sections map[string][]MenuRecipe `json:"menuSuggestion"`
	Scored   []MenuRecipe            `json:"allRecipesScored"`
}

// BuildWasteMinimizingMenu scores every recipe by how many of its
// ingredients are currently expiring and how well it historically sold,
// then partitions the ranking into balanced per-category sections of
// ceil(menuSize / distinct categories) recipes each.
func BuildWasteMinimizingMenu(recipes []Recipe, expiringItemIDs []uint, menuSize int, weights MenuWeights) (*MenuPlan, error) {
	if menuSize <= 0 {
		return nil, invalidInputf("menu size must be positive, got %d", menuSize)
	}

	expiring := make(map[uint]bool, len(expiringItemIDs))
	for _, id := range expiringItemIDs {
		expiring[id] = true
	}

	scored := make([]MenuRecipe, 0, len(recipes))
	for _, recipe := range recipes {
		expiringUsed := 0
		for _, ing := range recipe.Ingredients {
			if expiring[ing.InventoryItemID] {
				expiringUsed++
			}
		}

		// A recipe with no ingredients contributes nothing to waste
		// reduction; its percentage is zero, not a division error.
		expiringPct := 0.0
		if len(recipe.Ingredients) > 0 {
			expiringPct = float64(expiringUsed) / float64(len(recipe.Ingredients)) * 100
		}

		totalSales := 0
		for _, sale := range recipe.Sales {
			totalSales += sale.QuantitySold
		}

		expiryScore := expiringPct * expiryPercentageScale
		popularityScore := math.Min(float64(totalSales)/popularitySaturation, scoreCeiling)
		total := expiryScore*weights.Expiry + popularityScore*weights.Popularity

		scored = append(scored, MenuRecipe{
			RecipeID:            recipe.ID,
			RecipeName:          recipe.Name,
			Category:            recipe.Category,
			Price:               recipe.Price,
			ExpiringIngredients: expiringUsed,
			ExpiringPercentage:  round2(expiringPct),
			HistoricalSales:     totalSales,
			WasteReductionScore: round2(total),
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].WasteReductionScore != scored[j].WasteReductionScore {
			return scored[i].WasteReductionScore > scored[j].WasteReductionScore
		}
		return scored[i].RecipeID < scored[j].RecipeID
	})

	categories := make([]string, 0)
	seen := make(map[string]bool)
	for _, r := range scored {
		if !seen[r.Category] {
			seen[r.Category] = true
			categories = append(categories, r.Category)
		}
	}

	sections := make(map[string][]MenuRecipe, len(categories))
	if len(categories) > 0 {
		perCategory := int(math.Ceil(float64(menuSize) / float64(len(categories))))
		for _, category := range categories {
			section := make([]MenuRecipe, 0, perCategory)
			for _, r := range scored {
				if r.Category != category {
					continue
				}
				section = append(section, r)
				if len(section) == perCategory {
					break
				}
			}
			sections[category] = section
		}
	}

	return &MenuPlan{Sections: sections, Scored: scored}, nil
}
