package models

import "github.com/jinzhu/gorm"

// Recipe represents a dish on the restaurant's menu with its ingredient
// requirements and sales history.
type Recipe struct {
	gorm.Model
	RestaurantID uint
	Name         string
	Category     string
	Price        float64
	IsSpecial    bool

	Ingredients []RecipeItem `gorm:"foreignkey:RecipeID"`
	SalesData   []SaleRecord `gorm:"foreignkey:RecipeID"`
}

// TableName sets the table name for Recipe
func (Recipe) TableName() string {
	return "recipes"
}

// RecipeItem links a recipe to an inventory item it consumes. Quantity
// is the amount one serving uses, in Unit.
type RecipeItem struct {
	gorm.Model
	RecipeID        uint
	InventoryItemID uint
	Quantity        float64
	Unit            string

	Recipe        Recipe        `gorm:"foreignkey:RecipeID"`
	InventoryItem InventoryItem `gorm:"foreignkey:InventoryItemID"`
}

// TableName sets the table name for RecipeItem
func (RecipeItem) TableName() string {
	return "recipe_items"
}

// RecipeCategory represents the menu category of a recipe
type RecipeCategory string

const (
	// Recipe categories
	CategoryStarters   RecipeCategory = "Starters"
	CategoryMainCourse RecipeCategory = "Main Course"
	CategoryBreads     RecipeCategory = "Breads"
	CategoryRice       RecipeCategory = "Rice"
	CategoryDesserts   RecipeCategory = "Desserts"
	CategoryBeverages  RecipeCategory = "Beverages"
)
