package models

import "github.com/jinzhu/gorm"

// WasteRecord represents a logged quantity of an inventory item thrown
// away, with the reason it was wasted.
type WasteRecord struct {
	gorm.Model
	RestaurantID    uint
	InventoryItemID uint
	Quantity        float64
	Reason          string

	InventoryItem InventoryItem `gorm:"foreignkey:InventoryItemID"`
}

// TableName sets the table name for WasteRecord
func (WasteRecord) TableName() string {
	return "waste_records"
}

// WasteReason represents why stock was discarded
type WasteReason string

const (
	// Waste reasons
	ReasonExpired     WasteReason = "expired"
	ReasonSpoiled     WasteReason = "spoiled"
	ReasonOverproduce WasteReason = "overproduction"
	ReasonPrepError   WasteReason = "preparation_error"
	ReasonReturned    WasteReason = "customer_return"
)
