package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAvailability(t *testing.T) {
	recipe := Recipe{
		ID:   1,
		Name: "Chana Masala",
		Ingredients: []Ingredient{
			{InventoryItemID: 1, Name: "Chana Dal", Quantity: 2, InStock: 10, Unit: "kg"},
			{InventoryItemID: 2, Name: "Tomatoes", Quantity: 4, InStock: 1, Unit: "kg"},
		},
	}

	report := CheckAvailability(recipe)
	assert.False(t, report.AllIngredientsAvailable)
	require.Len(t, report.Ingredients, 2)

	dal := report.Ingredients[0]
	assert.True(t, dal.IsAvailable)
	assert.Equal(t, 100.0, dal.PercentAvailable)

	tomatoes := report.Ingredients[1]
	assert.False(t, tomatoes.IsAvailable)
	assert.Equal(t, 25.0, tomatoes.PercentAvailable)
}

func TestCheckAvailabilityAllInStock(t *testing.T) {
	recipe := Recipe{
		ID:   2,
		Name: "Raita",
		Ingredients: []Ingredient{
			{InventoryItemID: 1, Name: "Curd", Quantity: 1, InStock: 1},
		},
	}

	report := CheckAvailability(recipe)
	assert.True(t, report.AllIngredientsAvailable)
}

func TestCheckAvailabilityZeroRequirement(t *testing.T) {
	recipe := Recipe{
		ID:   3,
		Name: "Garnish",
		Ingredients: []Ingredient{
			{InventoryItemID: 1, Name: "Coriander", Quantity: 0, InStock: 0},
		},
	}

	report := CheckAvailability(recipe)
	assert.True(t, report.AllIngredientsAvailable)
	assert.Equal(t, 100.0, report.Ingredients[0].PercentAvailable)
}
