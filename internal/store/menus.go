package store

import (
	"fmt"
	"time"

	"smartkitchen/internal/models"
)

// CreateWastePreventionMenu persists a new active menu holding the
// given recipes in a "Specials" section, in the order provided.
func (s *Store) CreateWastePreventionMenu(restaurantID uint, name, description string, recipeIDs []uint, now time.Time) (*models.Menu, error) {
	tx := s.db.Begin()
	if err := tx.Error; err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}

	menu := models.Menu{
		RestaurantID: restaurantID,
		Name:         name,
		Description:  description,
		IsActive:     true,
		StartDate:    &now,
	}
	if err := tx.Create(&menu).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("creating menu: %w", err)
	}

	for position, recipeID := range recipeIDs {
		item := models.MenuItem{
			MenuID:   menu.ID,
			RecipeID: recipeID,
			Section:  "Specials",
			Position: position,
		}
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("adding recipe %d to menu: %w", recipeID, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("committing menu: %w", err)
	}

	var saved models.Menu
	if err := s.db.Preload("Items.Recipe").First(&saved, menu.ID).Error; err != nil {
		return nil, fmt.Errorf("reloading menu %d: %w", menu.ID, err)
	}
	return &saved, nil
}
