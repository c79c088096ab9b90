package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// Menu represents a curated set of recipes, such as a waste-prevention
// specials board.
type Menu struct {
	gorm.Model
	RestaurantID uint
	Name         string
	Description  string
	IsActive     bool
	StartDate    *time.Time

	Items []MenuItem `gorm:"foreignkey:MenuID"`
}

// TableName sets the table name for Menu
func (Menu) TableName() string {
	return "menus"
}

// MenuItem places a recipe on a menu in a given section and position.
type MenuItem struct {
	gorm.Model
	MenuID   uint
	RecipeID uint
	Section  string
	Position int

	Recipe Recipe `gorm:"foreignkey:RecipeID"`
}

// TableName sets the table name for MenuItem
func (MenuItem) TableName() string {
	return "menu_items"
}
