package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendSpecialsRanking(t *testing.T) {
	expiringSoon := daysFromNow(3)

	recipes := []Recipe{
		{
			// Two expiring ingredients, slow seller, healthy margin.
			ID: 1, Name: "Saag", Price: 20,
			Ingredients: []Ingredient{
				{InventoryItemID: 1, Quantity: 1, Cost: 2, ExpiryDate: expiringSoon},
				{InventoryItemID: 2, Quantity: 1, Cost: 3, ExpiryDate: expiringSoon},
			},
			Sales: salesOn(testNow.AddDate(0, 0, -2), 1),
		},
		{
			// Nothing expiring and already popular.
			ID: 2, Name: "Butter Chicken", Price: 25,
			Ingredients: []Ingredient{
				{InventoryItemID: 3, Quantity: 1, Cost: 5},
			},
			Sales: salesOn(testNow.AddDate(0, 0, -2), 40),
		},
		{
			// Already on the specials board, must be skipped.
			ID: 3, Name: "Kulfi", Price: 10, IsSpecial: true,
		},
	}

	specials, err := RecommendSpecials(recipes, testNow, 7, 5)
	require.NoError(t, err)
	require.Len(t, specials, 2)

	assert.Equal(t, uint(1), specials[0].RecipeID)
	assert.Equal(t, 2, specials[0].ExpiringIngredientCount)
	assert.Greater(t, specials[0].Score, specials[1].Score)

	// Saag: expiry 2*2=4 weighted 0.5, inverse popularity 9 weighted
	// 0.3, margin (20-5)/20 = 75% giving score 7.5 weighted 0.2.
	assert.InDelta(t, 6.2, specials[0].Score, 0.001)
}

func TestRecommendSpecialsLimit(t *testing.T) {
	recipes := make([]Recipe, 0, 8)
	for i := uint(1); i <= 8; i++ {
		recipes = append(recipes, Recipe{ID: i, Name: "R", Price: 10})
	}

	specials, err := RecommendSpecials(recipes, testNow, 7, 3)
	require.NoError(t, err)
	assert.Len(t, specials, 3)

	// Non-positive limit falls back to the default.
	specials, err = RecommendSpecials(recipes, testNow, 7, 0)
	require.NoError(t, err)
	assert.Len(t, specials, DefaultSpecialsLimit)
}

func TestRecommendSpecialsZeroPriceGuard(t *testing.T) {
	recipes := []Recipe{
		{ID: 1, Name: "Comp", Price: 0,
			Ingredients: []Ingredient{{InventoryItemID: 1, Quantity: 2, Cost: 4}}},
	}

	specials, err := RecommendSpecials(recipes, testNow, 7, 5)
	require.NoError(t, err)
	require.Len(t, specials, 1)
	assert.Equal(t, 0.0, specials[0].ProfitMargin)
}

func TestRecommendSpecialsValidation(t *testing.T) {
	_, err := RecommendSpecials(nil, testNow, 0, 5)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
