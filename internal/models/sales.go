package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

// SaleRecord represents one day's sales of a recipe.
type SaleRecord struct {
	gorm.Model
	RecipeID     uint
	Date         time.Time
	QuantitySold int
	Revenue      float64
}

// TableName sets the table name for SaleRecord
func (SaleRecord) TableName() string {
	return "sale_records"
}
