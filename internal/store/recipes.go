package store

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"smartkitchen/internal/models"
	"smartkitchen/internal/suggest"
)

// Recipes returns every recipe of a restaurant with ingredients, their
// inventory items, and sales history preloaded.
func (s *Store) Recipes(restaurantID uint) ([]suggest.Recipe, error) {
	var rows []models.Recipe
	err := s.db.
		Where("restaurant_id = ?", restaurantID).
		Preload("Ingredients.InventoryItem").
		Preload("SalesData").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading recipes: %w", err)
	}

	recipes := make([]suggest.Recipe, 0, len(rows))
	for _, row := range rows {
		recipes = append(recipes, toSuggestRecipe(row))
	}
	return recipes, nil
}

// RecipeByID returns one recipe with its ingredient stock levels, or
// nil when no such recipe exists.
func (s *Store) RecipeByID(id uint) (*suggest.Recipe, error) {
	var row models.Recipe
	err := s.db.
		Preload("Ingredients.InventoryItem").
		Preload("SalesData").
		First(&row, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading recipe %d: %w", id, err)
	}

	recipe := toSuggestRecipe(row)
	return &recipe, nil
}

// SetRecipeSpecial flags or unflags a recipe as a special. Returns the
// updated recipe name, or an empty string when the recipe is missing.
func (s *Store) SetRecipeSpecial(id uint, isSpecial bool) (string, error) {
	var row models.Recipe
	err := s.db.First(&row, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("loading recipe %d: %w", id, err)
	}

	if err := s.db.Model(&row).Update("is_special", isSpecial).Error; err != nil {
		return "", fmt.Errorf("updating recipe %d: %w", id, err)
	}
	return row.Name, nil
}
