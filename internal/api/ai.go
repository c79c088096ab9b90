package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartkitchen/internal/suggest"
)

type menuDescriptionRequest struct {
	RecipeID uint `json:"recipeId" binding:"required"`
}

// GenerateMenuDescription asks the LLM for menu copy for a recipe.
func (s *Server) GenerateMenuDescription(c *gin.Context) {
	const route = "ai_menu_description"
	s.Monitor.RecordRequest(route)

	if s.AI == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI service not configured"})
		return
	}

	var req menuDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe ID is required"})
		return
	}

	recipe, err := s.DB.RecipeByID(req.RecipeID)
	if err != nil {
		s.fail(c, route, err, "Failed to generate menu description")
		return
	}
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	ingredients := make([]string, 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		ingredients = append(ingredients, ingredient.Name)
	}

	description, err := s.AI.MenuDescription(c.Request.Context(), recipe.Name, recipe.Category, ingredients)
	if err != nil {
		s.fail(c, route, err, "Failed to generate menu description")
		return
	}

	s.Metrics.RecordRequest(route, "ok")
	c.JSON(http.StatusOK, gin.H{
		"recipeId":    recipe.ID,
		"recipeName":  recipe.Name,
		"description": description,
	})
}

type wasteInsightsRequest struct {
	RestaurantID uint `json:"restaurantId" binding:"required"`
}

// GenerateWasteInsights summarizes the reorder report into advice.
func (s *Server) GenerateWasteInsights(c *gin.Context) {
	const route = "ai_waste_insights"
	s.Monitor.RecordRequest(route)

	if s.AI == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI service not configured"})
		return
	}

	var req wasteInsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant ID is required"})
		return
	}

	now := s.now()
	items, err := s.DB.AllInventory(req.RestaurantID)
	if err != nil {
		s.fail(c, route, err, "Failed to generate waste insights")
		return
	}
	waste, err := s.DB.WasteRecords(req.RestaurantID, now.AddDate(0, 0, -suggest.WasteLookbackDays))
	if err != nil {
		s.fail(c, route, err, "Failed to generate waste insights")
		return
	}

	recommendations, err := suggest.ReorderRecommendations(items, waste, now)
	if err != nil {
		s.fail(c, route, err, "Failed to generate waste insights")
		return
	}

	report, err := json.Marshal(recommendations)
	if err != nil {
		s.fail(c, route, err, "Failed to generate waste insights")
		return
	}

	insights, err := s.AI.WasteInsights(c.Request.Context(), string(report))
	if err != nil {
		s.fail(c, route, err, "Failed to generate waste insights")
		return
	}

	s.Metrics.RecordRequest(route, "ok")
	c.JSON(http.StatusOK, gin.H{
		"restaurantId": req.RestaurantID,
		"insights":     insights,
	})
}
