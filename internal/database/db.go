package database

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" // PostgreSQL dialect
	_ "github.com/mattn/go-sqlite3"              // SQLite driver

	"smartkitchen/internal/models"
)

var db *gorm.DB

// InitDB initializes the database connection. Dialect is "sqlite3" or
// "postgres"; source is the file path or connection string.
func InitDB(dialect, source string) error {
	var err error
	db, err = gorm.Open(dialect, source)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Configure connection pool
	db.DB().SetMaxIdleConns(10)
	db.DB().SetMaxOpenConns(100)
	db.DB().SetConnMaxLifetime(time.Hour)

	return nil
}

// Migrate creates and updates all required tables.
func Migrate() error {
	return db.AutoMigrate(
		&models.Restaurant{},
		&models.InventoryItem{},
		&models.Recipe{},
		&models.RecipeItem{},
		&models.SaleRecord{},
		&models.WasteRecord{},
		&models.Menu{},
		&models.MenuItem{},
	).Error
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return db
}

// CloseDB closes the database connection
func CloseDB() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
