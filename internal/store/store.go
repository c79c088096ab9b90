// Package store is the query layer between the gorm models and the
// pure suggestion engine. It loads rows with their associations and
// converts them into the plain data types the engine consumes.
package store

import (
	"github.com/jinzhu/gorm"

	"smartkitchen/internal/models"
	"smartkitchen/internal/suggest"
)

// Store wraps a gorm connection with the queries the API layer needs.
type Store struct {
	db *gorm.DB
}

// New creates a Store on top of an open gorm connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// toSuggestItem converts an inventory row and its preloaded usage edges
// into the engine's input type.
func toSuggestItem(item models.InventoryItem) suggest.Item {
	usages := make([]suggest.Usage, 0, len(item.UsedInRecipes))
	for _, edge := range item.UsedInRecipes {
		usages = append(usages, suggest.Usage{
			Recipe:         toSuggestRecipe(edge.Recipe),
			QuantityNeeded: edge.Quantity,
			Unit:           edge.Unit,
		})
	}
	return suggest.Item{
		ID:           item.ID,
		Name:         item.Name,
		Category:     item.Category,
		Quantity:     item.Quantity,
		Unit:         item.Unit,
		MinQuantity:  item.MinQuantity,
		Cost:         item.Cost,
		ExpiryDate:   item.ExpiryDate,
		PurchaseDate: item.PurchaseDate,
		Usages:       usages,
	}
}

// toSuggestRecipe converts a recipe row with preloaded ingredients and
// sales into the engine's input type.
func toSuggestRecipe(recipe models.Recipe) suggest.Recipe {
	ingredients := make([]suggest.Ingredient, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		ingredients = append(ingredients, suggest.Ingredient{
			InventoryItemID: ing.InventoryItemID,
			Name:            ing.InventoryItem.Name,
			Quantity:        ing.Quantity,
			Unit:            ing.Unit,
			Cost:            ing.InventoryItem.Cost,
			InStock:         ing.InventoryItem.Quantity,
			ExpiryDate:      ing.InventoryItem.ExpiryDate,
		})
	}

	sales := make([]suggest.Sale, 0, len(recipe.SalesData))
	for _, sale := range recipe.SalesData {
		sales = append(sales, suggest.Sale{
			Date:         sale.Date,
			QuantitySold: sale.QuantitySold,
		})
	}

	return suggest.Recipe{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Category:    recipe.Category,
		Price:       recipe.Price,
		IsSpecial:   recipe.IsSpecial,
		Ingredients: ingredients,
		Sales:       sales,
	}
}
