package store

import (
	"fmt"
	"time"

	"smartkitchen/internal/models"
	"smartkitchen/internal/suggest"
)

// ExpiringInventory returns the restaurant's items whose expiry date
// falls inside (now, now+daysThreshold] and that still have stock, with
// the recipes and sales history needed for scoring preloaded.
func (s *Store) ExpiringInventory(restaurantID uint, now time.Time, daysThreshold int) ([]suggest.Item, error) {
	cutoff := now.AddDate(0, 0, daysThreshold)

	var rows []models.InventoryItem
	err := s.db.
		Where("restaurant_id = ? AND expiry_date IS NOT NULL AND expiry_date > ? AND expiry_date <= ? AND quantity > 0",
			restaurantID, now, cutoff).
		Preload("UsedInRecipes.Recipe.SalesData").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading expiring inventory: %w", err)
	}

	items := make([]suggest.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, toSuggestItem(row))
	}
	return items, nil
}

// AllInventory returns every inventory item of a restaurant with usage
// edges and sales preloaded, for the reorder and dashboard reports.
func (s *Store) AllInventory(restaurantID uint) ([]suggest.Item, error) {
	var rows []models.InventoryItem
	err := s.db.
		Where("restaurant_id = ?", restaurantID).
		Preload("UsedInRecipes.Recipe.SalesData").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading inventory: %w", err)
	}

	items := make([]suggest.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, toSuggestItem(row))
	}
	return items, nil
}

// ListInventory returns the raw inventory rows for the CRUD endpoints.
func (s *Store) ListInventory(restaurantID uint) ([]models.InventoryItem, error) {
	var rows []models.InventoryItem
	if err := s.db.Where("restaurant_id = ?", restaurantID).Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing inventory: %w", err)
	}
	return rows, nil
}

// CreateInventoryItem persists a new inventory item.
func (s *Store) CreateInventoryItem(item *models.InventoryItem) error {
	if err := s.db.Create(item).Error; err != nil {
		return fmt.Errorf("creating inventory item: %w", err)
	}
	return nil
}
