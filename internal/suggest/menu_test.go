package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuRecipe(id uint, category string, ingredientIDs []uint, totalSold int) Recipe {
	ingredients := make([]Ingredient, 0, len(ingredientIDs))
	for _, itemID := range ingredientIDs {
		ingredients = append(ingredients, Ingredient{InventoryItemID: itemID, Quantity: 1})
	}
	return Recipe{
		ID:          id,
		Name:        "Recipe",
		Category:    category,
		Ingredients: ingredients,
		Sales:       salesOn(testNow.AddDate(0, 0, -3), totalSold),
	}
}

func TestBuildWasteMinimizingMenuScoring(t *testing.T) {
	recipes := []Recipe{
		// Both ingredients expiring, modest sales.
		menuRecipe(1, "Main Course", []uint{10, 11}, 20),
		// No expiring ingredients, strong sales.
		menuRecipe(2, "Main Course", []uint{12, 13}, 150),
		// Half expiring, no sales.
		menuRecipe(3, "Starters", []uint{10, 12}, 0),
	}

	plan, err := BuildWasteMinimizingMenu(recipes, []uint{10, 11}, 10, DefaultMenuWeights)
	require.NoError(t, err)
	require.Len(t, plan.Scored, 3)

	// expiry 100*0.1=10 weighted 0.7 plus popularity 2.0 weighted 0.3.
	assert.Equal(t, uint(1), plan.Scored[0].RecipeID)
	assert.InDelta(t, 7.6, plan.Scored[0].WasteReductionScore, 0.001)

	// Scores are non-increasing.
	for i := 1; i < len(plan.Scored); i++ {
		assert.LessOrEqual(t, plan.Scored[i].WasteReductionScore, plan.Scored[i-1].WasteReductionScore)
	}
}

func TestBuildWasteMinimizingMenuZeroIngredients(t *testing.T) {
	recipes := []Recipe{
		{ID: 1, Name: "Empty", Category: "Starters"},
	}

	plan, err := BuildWasteMinimizingMenu(recipes, []uint{10}, 5, DefaultMenuWeights)
	require.NoError(t, err)
	require.Len(t, plan.Scored, 1)
	assert.Equal(t, 0.0, plan.Scored[0].ExpiringPercentage)
	assert.Equal(t, 0.0, plan.Scored[0].WasteReductionScore)
}

func TestBuildWasteMinimizingMenuBalancedSections(t *testing.T) {
	recipes := []Recipe{
		menuRecipe(1, "Main Course", []uint{10}, 10),
		menuRecipe(2, "Main Course", []uint{10}, 20),
		menuRecipe(3, "Main Course", []uint{10}, 30),
		menuRecipe(4, "Starters", []uint{10}, 5),
		menuRecipe(5, "Desserts", []uint{11}, 5),
	}

	plan, err := BuildWasteMinimizingMenu(recipes, []uint{10}, 6, DefaultMenuWeights)
	require.NoError(t, err)

	// ceil(6/3) = 2 recipes per category at most.
	require.Len(t, plan.Sections, 3)
	for category, section := range plan.Sections {
		assert.LessOrEqual(t, len(section), 2, "category %s oversized", category)
		for _, r := range section {
			assert.Equal(t, category, r.Category)
		}
	}
	// The strongest main courses keep their rank inside the section.
	mains := plan.Sections["Main Course"]
	require.Len(t, mains, 2)
	assert.Equal(t, uint(3), mains[0].RecipeID)
}

func TestBuildWasteMinimizingMenuValidation(t *testing.T) {
	_, err := BuildWasteMinimizingMenu(nil, nil, 0, DefaultMenuWeights)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
