// Package suggest implements the expiry-driven recipe ranking engine.
// All functions are pure: they operate on plain in-memory data with an
// injected reference time and share no mutable state, so they are safe
// to call concurrently from any number of request handlers.
package suggest

import "time"

// Item is an inventory snapshot row together with the recipe usage
// edges that consume it.
type Item struct {
	ID           uint
	Name         string
	Category     string
	Quantity     float64
	Unit         string
	MinQuantity  float64
	Cost         float64
	ExpiryDate   *time.Time
	PurchaseDate *time.Time
	Usages       []Usage
}

// Usage links an inventory item to a recipe that consumes it.
// QuantityNeeded is the amount one serving of the recipe uses.
type Usage struct {
	Recipe         Recipe
	QuantityNeeded float64
	Unit           string
}

// Recipe is a menu recipe with its ingredient list and sales history.
type Recipe struct {
	ID          uint
	Name        string
	Category    string
	Price       float64
	IsSpecial   bool
	Ingredients []Ingredient
	Sales       []Sale
}

// Ingredient is one entry of a recipe's ingredient list, carrying the
// current stock level and cost of the underlying inventory item.
type Ingredient struct {
	InventoryItemID uint
	Name            string
	Quantity        float64
	Unit            string
	Cost            float64
	InStock         float64
	ExpiryDate      *time.Time
}

// Sale is a single historical sales record for a recipe.
type Sale struct {
	Date         time.Time
	QuantitySold int
}

// WasteRecord is a logged quantity of an inventory item thrown away.
type WasteRecord struct {
	InventoryItemID uint
	Quantity        float64
	RecordedAt      time.Time
}

// ExpiringIngredient describes the inventory item a suggestion is about.
type ExpiringIngredient struct {
	ID              uint       `json:"id"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	ExpiryDate      *time.Time `json:"expiryDate"`
	DaysUntilExpiry int        `json:"daysUntilExpiry"`
	Quantity        float64    `json:"quantity"`
	Unit            string     `json:"unit"`
}

// ScoredRecipe is one ranked recipe candidate for an expiring item.
type ScoredRecipe struct {
	RecipeID        uint    `json:"recipeId"`
	RecipeName      string  `json:"recipeName"`
	RecipeCategory  string  `json:"recipeCategory"`
	RecipePrice     float64 `json:"recipePrice"`
	IngredientName  string  `json:"ingredientName"`
	DaysUntilExpiry int     `json:"daysUntilExpiry"`
	QuantityNeeded  float64 `json:"quantityNeeded"`
	Unit            string  `json:"unit"`
	TotalSales      int     `json:"totalSales"`
	RecentSales     int     `json:"recentSales"`
	UsagePercentage float64 `json:"usagePercentage"`
	Score           float64 `json:"score"`
}

// Suggestion groups the ranked recipe candidates for one expiring item.
type Suggestion struct {
	ExpiringIngredient ExpiringIngredient `json:"expiringIngredient"`
	SuggestedRecipes   []ScoredRecipe     `json:"suggestedRecipes"`
}
