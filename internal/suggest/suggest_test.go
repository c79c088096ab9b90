package suggest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func daysFromNow(days int) *time.Time {
	t := testNow.AddDate(0, 0, days)
	return &t
}

func salesOn(date time.Time, quantities ...int) []Sale {
	sales := make([]Sale, 0, len(quantities))
	for _, q := range quantities {
		sales = append(sales, Sale{Date: date, QuantitySold: q})
	}
	return sales
}

func TestSuggestRecipesScoring(t *testing.T) {
	// Ten units expiring in three days, one recipe needing five units
	// per serving with twenty recent sales.
	items := []Item{
		{
			ID:         1,
			Name:       "Paneer",
			Category:   "Dairy",
			Quantity:   10,
			Unit:       "kg",
			ExpiryDate: daysFromNow(3),
			Usages: []Usage{
				{
					Recipe: Recipe{
						ID:    7,
						Name:  "Palak Paneer",
						Sales: salesOn(testNow.AddDate(0, 0, -5), 20),
					},
					QuantityNeeded: 5,
					Unit:           "kg",
				},
			},
		},
	}

	suggestions, err := SuggestRecipes(items, testNow, 7, DefaultScoreWeights)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)

	suggestion := suggestions[0]
	assert.Equal(t, uint(1), suggestion.ExpiringIngredient.ID)
	assert.Equal(t, 3, suggestion.ExpiringIngredient.DaysUntilExpiry)

	require.Len(t, suggestion.SuggestedRecipes, 1)
	scored := suggestion.SuggestedRecipes[0]
	assert.Equal(t, uint(7), scored.RecipeID)
	assert.Equal(t, 50.0, scored.UsagePercentage)
	assert.Equal(t, 20, scored.RecentSales)
	assert.Equal(t, 20, scored.TotalSales)

	// urgency (7-3)/7*10 = 5.714..., usage 50/20 = 2.5, popularity
	// 20/10 = 2.0, blended 0.5/0.3/0.2 and rounded to two decimals.
	assert.InDelta(t, 4.01, scored.Score, 0.001)
}

func TestSuggestRecipesExcludesNullAndPastExpiry(t *testing.T) {
	usage := Usage{Recipe: Recipe{ID: 1, Name: "Dal"}, QuantityNeeded: 1}
	items := []Item{
		{ID: 1, Name: "No expiry", Quantity: 5, ExpiryDate: nil, Usages: []Usage{usage}},
		{ID: 2, Name: "Expired", Quantity: 5, ExpiryDate: daysFromNow(-1), Usages: []Usage{usage}},
		{ID: 3, Name: "Too far out", Quantity: 5, ExpiryDate: daysFromNow(30), Usages: []Usage{usage}},
		{ID: 4, Name: "Out of stock", Quantity: 0, ExpiryDate: daysFromNow(2), Usages: []Usage{usage}},
	}

	suggestions, err := SuggestRecipes(items, testNow, 7, DefaultScoreWeights)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestSuggestRecipesSkipsItemsWithoutRecipes(t *testing.T) {
	items := []Item{
		{ID: 1, Name: "Tamarind", Quantity: 3, ExpiryDate: daysFromNow(2)},
	}

	suggestions, err := SuggestRecipes(items, testNow, 7, DefaultScoreWeights)
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestSuggestRecipesOrdering(t *testing.T) {
	// Three items with different expiry horizons; each has two recipes
	// with different popularity.
	hot := salesOn(testNow.AddDate(0, 0, -2), 50)
	cold := salesOn(testNow.AddDate(0, 0, -2), 1)

	mkItem := func(id uint, days int) Item {
		return Item{
			ID:         id,
			Name:       "Item",
			Quantity:   10,
			ExpiryDate: daysFromNow(days),
			Usages: []Usage{
				{Recipe: Recipe{ID: 20, Name: "Unpopular", Sales: cold}, QuantityNeeded: 2},
				{Recipe: Recipe{ID: 10, Name: "Popular", Sales: hot}, QuantityNeeded: 2},
			},
		}
	}

	items := []Item{mkItem(3, 6), mkItem(1, 1), mkItem(2, 4)}

	suggestions, err := SuggestRecipes(items, testNow, 7, DefaultScoreWeights)
	require.NoError(t, err)
	require.Len(t, suggestions, 3)

	// Suggestions sorted soonest-expiring first.
	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t,
			suggestions[i].ExpiringIngredient.DaysUntilExpiry,
			suggestions[i-1].ExpiringIngredient.DaysUntilExpiry)
	}
	assert.Equal(t, uint(1), suggestions[0].ExpiringIngredient.ID)

	// Recipes within a suggestion sorted by score descending.
	for _, s := range suggestions {
		for i := 1; i < len(s.SuggestedRecipes); i++ {
			assert.LessOrEqual(t, s.SuggestedRecipes[i].Score, s.SuggestedRecipes[i-1].Score)
		}
		assert.Equal(t, uint(10), s.SuggestedRecipes[0].RecipeID)
	}
}

func TestSuggestRecipesTieBrokenByRecipeID(t *testing.T) {
	sales := salesOn(testNow.AddDate(0, 0, -3), 10)
	items := []Item{
		{
			ID:         1,
			Quantity:   10,
			ExpiryDate: daysFromNow(3),
			Usages: []Usage{
				{Recipe: Recipe{ID: 9, Name: "B", Sales: sales}, QuantityNeeded: 4},
				{Recipe: Recipe{ID: 2, Name: "A", Sales: sales}, QuantityNeeded: 4},
			},
		},
	}

	suggestions, err := SuggestRecipes(items, testNow, 7, DefaultScoreWeights)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)

	recipes := suggestions[0].SuggestedRecipes
	require.Len(t, recipes, 2)
	assert.Equal(t, recipes[0].Score, recipes[1].Score)
	assert.Equal(t, uint(2), recipes[0].RecipeID)
	assert.Equal(t, uint(9), recipes[1].RecipeID)
}

func TestSuggestRecipesUsageClamp(t *testing.T) {
	// A recipe needing far more than the remaining stock still reports
	// at most 100 percent usage.
	items := []Item{
		{
			ID:         1,
			Quantity:   2,
			ExpiryDate: daysFromNow(1),
			Usages: []Usage{
				{Recipe: Recipe{ID: 1, Name: "Biryani"}, QuantityNeeded: 500},
			},
		},
	}

	suggestions, err := SuggestRecipes(items, testNow, 7, DefaultScoreWeights)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)

	scored := suggestions[0].SuggestedRecipes[0]
	assert.Equal(t, 100.0, scored.UsagePercentage)
	assert.False(t, scored.Score < 0)
}

func TestSuggestRecipesIdempotent(t *testing.T) {
	items := []Item{
		{
			ID:         1,
			Name:       "Cream",
			Quantity:   4,
			ExpiryDate: daysFromNow(2),
			Usages: []Usage{
				{Recipe: Recipe{ID: 3, Name: "Korma", Sales: salesOn(testNow.AddDate(0, 0, -1), 7)}, QuantityNeeded: 1},
				{Recipe: Recipe{ID: 5, Name: "Kheer", Sales: salesOn(testNow.AddDate(0, 0, -9), 2)}, QuantityNeeded: 2},
			},
		},
	}

	first, err := SuggestRecipes(items, testNow, 7, DefaultScoreWeights)
	require.NoError(t, err)
	second, err := SuggestRecipes(items, testNow, 7, DefaultScoreWeights)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSuggestRecipesRejectsBadInput(t *testing.T) {
	valid := Item{ID: 1, Quantity: 5, ExpiryDate: daysFromNow(2),
		Usages: []Usage{{Recipe: Recipe{ID: 1}, QuantityNeeded: 1}}}

	_, err := SuggestRecipes([]Item{valid}, testNow, 0, DefaultScoreWeights)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = SuggestRecipes([]Item{valid}, testNow, -3, DefaultScoreWeights)
	assert.ErrorIs(t, err, ErrInvalidInput)

	negative := valid
	negative.Quantity = -1
	_, err = SuggestRecipes([]Item{negative}, testNow, 7, DefaultScoreWeights)
	assert.ErrorIs(t, err, ErrInvalidInput)

	badUsage := valid
	badUsage.Usages = []Usage{{Recipe: Recipe{ID: 1}, QuantityNeeded: 0}}
	_, err = SuggestRecipes([]Item{badUsage}, testNow, 7, DefaultScoreWeights)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRecentSalesWindow(t *testing.T) {
	sales := []Sale{
		{Date: testNow.AddDate(0, 0, -40), QuantitySold: 100},
		{Date: testNow.AddDate(0, 0, -10), QuantitySold: 30},
		{Date: testNow.AddDate(0, 0, -1), QuantitySold: 5},
	}

	total, recent := sumSales(sales, testNow)
	assert.Equal(t, 135, total)
	assert.Equal(t, 35, recent)
}
