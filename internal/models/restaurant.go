package models

import "github.com/jinzhu/gorm"

// Restaurant represents a single restaurant tenant. All inventory,
// recipe, sales, and waste data hangs off a restaurant.
type Restaurant struct {
	gorm.Model
	Name    string
	Address string
	Phone   string
}

// TableName sets the table name for Restaurant
func (Restaurant) TableName() string {
	return "restaurants"
}
