package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// InventoryItem represents an ingredient or supply in restaurant stock.
// ExpiryDate is nullable; items without one never enter expiry-based
// reports.
type InventoryItem struct {
	gorm.Model
	RestaurantID uint
	Name         string
	Category     string
	Quantity     float64
	Unit         string
	MinQuantity  float64
	Cost         float64
	ExpiryDate   *time.Time
	PurchaseDate *time.Time

	UsedInRecipes []RecipeItem  `gorm:"foreignkey:InventoryItemID"`
	WasteRecords  []WasteRecord `gorm:"foreignkey:InventoryItemID"`
}

// TableName sets the table name for InventoryItem
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// InventoryCategory represents the category of an inventory item
type InventoryCategory string

const (
	// Inventory categories
	CategorySpices     InventoryCategory = "Spices"
	CategoryPulses     InventoryCategory = "Pulses"
	CategoryGrains     InventoryCategory = "Grains"
	CategoryDairy      InventoryCategory = "Dairy"
	CategoryVegetables InventoryCategory = "Vegetables"
	CategoryFruits     InventoryCategory = "Fruits"
	CategoryOils       InventoryCategory = "Oils"
	CategoryFlours     InventoryCategory = "Flours"
	CategoryMeat       InventoryCategory = "Meat"
	CategorySeafood    InventoryCategory = "Seafood"
	CategoryCondiments InventoryCategory = "Condiments"
	CategoryHerbs      InventoryCategory = "Herbs"
)

// InventoryUnit represents the unit of measurement for an inventory item
type InventoryUnit string

const (
	// Weight units
	UnitGram     InventoryUnit = "g"
	UnitKilogram InventoryUnit = "kg"

	// Volume units
	UnitMilliliter InventoryUnit = "ml"
	UnitLiter      InventoryUnit = "liter"

	// Count units
	UnitPiece InventoryUnit = "pc"
	UnitBox   InventoryUnit = "box"
)
