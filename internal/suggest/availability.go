package suggest

import "math"

// IngredientAvailability reports stock coverage for one ingredient of a
// recipe.
type IngredientAvailability struct {
	IngredientID     uint    `json:"ingredientId"`
	IngredientName   string  `json:"ingredientName"`
	Required         float64 `json:"required"`
	Available        float64 `json:"available"`
	Unit             string  `json:"unit"`
	IsAvailable      bool    `json:"isAvailable"`
	PercentAvailable float64 `json:"percentAvailable"`
}

// AvailabilityReport says whether a recipe can be made from current
// stock, ingredient by ingredient.
type AvailabilityReport struct {
	RecipeID                uint                     `json:"recipeId"`
	RecipeName              string                   `json:"recipeName"`
	AllIngredientsAvailable bool                     `json:"allIngredientsAvailable"`
	Ingredients             []IngredientAvailability `json:"ingredientStatus"`
}

// CheckAvailability compares each ingredient requirement of a recipe
// against the stock on hand. PercentAvailable is capped at 100; an
// ingredient requiring nothing is always fully available.
func CheckAvailability(recipe Recipe) AvailabilityReport {
	report := AvailabilityReport{
		RecipeID:                recipe.ID,
		RecipeName:              recipe.Name,
		AllIngredientsAvailable: true,
		Ingredients:             make([]IngredientAvailability, 0, len(recipe.Ingredients)),
	}

	for _, ing := range recipe.Ingredients {
		pct := 100.0
		if ing.Quantity > 0 {
			pct = math.Min(ing.InStock/ing.Quantity*100, 100)
		}
		available := ing.InStock >= ing.Quantity
		if !available {
			report.AllIngredientsAvailable = false
		}
		report.Ingredients = append(report.Ingredients, IngredientAvailability{
			IngredientID:     ing.InventoryItemID,
			IngredientName:   ing.Name,
			Required:         ing.Quantity,
			Available:        ing.InStock,
			Unit:             ing.Unit,
			IsAvailable:      available,
			PercentAvailable: round2(pct),
		})
	}

	return report
}
