package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"smartkitchen/internal/suggest"
)

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func parseUint(value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// uintParam parses a path parameter as an ID, responding 400 on failure.
func (s *Server) uintParam(c *gin.Context, name string) (uint, bool) {
	id, err := parseUint(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid %s", name)})
		return 0, false
	}
	return id, true
}

func (s *Server) intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func (s *Server) fail(c *gin.Context, route string, err error, message string) {
	if errors.Is(err, suggest.ErrInvalidInput) {
		s.Metrics.RecordRequest(route, "error")
		c.JSON(http.StatusBadRequest, gin.H{"error": message, "details": err.Error()})
		return
	}
	s.Metrics.RecordRequest(route, "error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": message, "details": err.Error()})
}

// GetExpiringRecipes suggests recipes for ingredients expiring within
// the requested window.
func (s *Server) GetExpiringRecipes(c *gin.Context) {
	const route = "expiring_recipes"
	s.Monitor.RecordRequest(route)

	restaurantID, err := parseUint(c.Query("restaurantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant ID is required"})
		return
	}
	days := s.intQuery(c, "days", s.opts.DaysThreshold)

	now := s.now()
	items, err := s.DB.ExpiringInventory(restaurantID, now, days)
	if err != nil {
		s.fail(c, route, err, "Failed to get recipe suggestions")
		return
	}

	start := s.now()
	suggestions, err := suggest.SuggestRecipes(items, now, days, suggest.DefaultScoreWeights)
	if err != nil {
		s.fail(c, route, err, "Failed to get recipe suggestions")
		return
	}
	s.Metrics.RecordScoringDuration(route, s.now().Sub(start))
	s.Metrics.RecordRequest(route, "ok")
	s.Metrics.RecordExpiringItems(strconv.FormatUint(uint64(restaurantID), 10), len(suggestions))
	s.Monitor.RecordSuggestionRun(route, len(suggestions), s.now().Sub(start))

	if len(suggestions) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message":     "No ingredients are expiring soon.",
			"suggestions": []suggest.Suggestion{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     fmt.Sprintf("Found %d ingredients expiring within %d days", len(suggestions), days),
		"suggestions": suggestions,
	})
}

// GetMinimalWasteMenu builds a category-balanced menu favoring recipes
// that consume soon-to-expire stock.
func (s *Server) GetMinimalWasteMenu(c *gin.Context) {
	const route = "minimal_waste_menu"
	s.Monitor.RecordRequest(route)

	restaurantID, ok := s.uintParam(c, "restaurantId")
	if !ok {
		return
	}
	menuSize := s.intQuery(c, "size", s.opts.MenuSize)

	now := s.now()
	recipes, err := s.DB.Recipes(restaurantID)
	if err != nil {
		s.fail(c, route, err, "Failed to generate minimal waste menu")
		return
	}
	expiring, err := s.DB.ExpiringInventory(restaurantID, now, s.opts.DaysThreshold)
	if err != nil {
		s.fail(c, route, err, "Failed to generate minimal waste menu")
		return
	}

	expiringIDs := make([]uint, 0, len(expiring))
	for _, item := range expiring {
		expiringIDs = append(expiringIDs, item.ID)
	}

	plan, err := suggest.BuildWasteMinimizingMenu(recipes, expiringIDs, menuSize, suggest.DefaultMenuWeights)
	if err != nil {
		s.fail(c, route, err, "Failed to generate minimal waste menu")
		return
	}
	s.Metrics.RecordRequest(route, "ok")

	c.JSON(http.StatusOK, gin.H{
		"expiringItemsCount": len(expiring),
		"menuSuggestion":     plan.Sections,
		"allRecipesScored":   plan.Scored,
	})
}

// GetInventoryOptimization reports reorder recommendations for every
// inventory item.
func (s *Server) GetInventoryOptimization(c *gin.Context) {
	const route = "inventory_optimization"
	s.Monitor.RecordRequest(route)

	restaurantID, ok := s.uintParam(c, "restaurantId")
	if !ok {
		return
	}

	now := s.now()
	items, err := s.DB.AllInventory(restaurantID)
	if err != nil {
		s.fail(c, route, err, "Failed to generate inventory optimization")
		return
	}
	waste, err := s.DB.WasteRecords(restaurantID, now.AddDate(0, 0, -suggest.WasteLookbackDays))
	if err != nil {
		s.fail(c, route, err, "Failed to generate inventory optimization")
		return
	}

	recommendations, err := suggest.ReorderRecommendations(items, waste, now)
	if err != nil {
		s.fail(c, route, err, "Failed to generate inventory optimization")
		return
	}
	s.Metrics.RecordRequest(route, "ok")

	critical, highWaste := 0, 0
	for _, rec := range recommendations {
		switch rec.Status {
		case suggest.StatusCriticalLow:
			critical++
		case suggest.StatusHighWaste:
			highWaste++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalItems":      len(recommendations),
		"criticalItems":   critical,
		"highWasteItems":  highWaste,
		"recommendations": recommendations,
	})
}

// GetSpecialsRecommendations recommends recipes to promote as specials.
func (s *Server) GetSpecialsRecommendations(c *gin.Context) {
	const route = "specials_recommendations"
	s.Monitor.RecordRequest(route)

	restaurantID, ok := s.uintParam(c, "restaurantId")
	if !ok {
		return
	}
	weeks := s.intQuery(c, "weeks", 1)

	now := s.now()
	recipes, err := s.DB.Recipes(restaurantID)
	if err != nil {
		s.fail(c, route, err, "Failed to generate specials recommendations")
		return
	}
	expiring, err := s.DB.ExpiringInventory(restaurantID, now, weeks*7)
	if err != nil {
		s.fail(c, route, err, "Failed to generate specials recommendations")
		return
	}

	recommendations, err := suggest.RecommendSpecials(recipes, now, weeks*7, suggest.DefaultSpecialsLimit)
	if err != nil {
		s.fail(c, route, err, "Failed to generate specials recommendations")
		return
	}
	s.Metrics.RecordRequest(route, "ok")

	c.JSON(http.StatusOK, gin.H{
		"expiringIngredientCount": len(expiring),
		"recommendedSpecials":     recommendations,
	})
}

// GetRecipeInventoryCheck reports whether a recipe's ingredients are in
// stock.
func (s *Server) GetRecipeInventoryCheck(c *gin.Context) {
	const route = "recipe_inventory_check"
	s.Monitor.RecordRequest(route)

	recipeID, ok := s.uintParam(c, "recipeId")
	if !ok {
		return
	}

	recipe, err := s.DB.RecipeByID(recipeID)
	if err != nil {
		s.fail(c, route, err, "Failed to check recipe inventory")
		return
	}
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	s.Metrics.RecordRequest(route, "ok")
	c.JSON(http.StatusOK, suggest.CheckAvailability(*recipe))
}

// GetExpiringDashboard summarizes expiring stock for a restaurant.
func (s *Server) GetExpiringDashboard(c *gin.Context) {
	const route = "expiring_dashboard"
	s.Monitor.RecordRequest(route)

	restaurantID, ok := s.uintParam(c, "restaurantId")
	if !ok {
		return
	}

	now := s.now()
	items, err := s.DB.AllInventory(restaurantID)
	if err != nil {
		s.fail(c, route, err, "Failed to get expiration dashboard")
		return
	}

	dashboard := suggest.BuildExpiryDashboard(items, now)
	s.Metrics.RecordRequest(route, "ok")
	s.Metrics.RecordAtRiskValue(strconv.FormatUint(uint64(restaurantID), 10), dashboard.TotalValue)

	c.JSON(http.StatusOK, dashboard)
}

type markAsSpecialRequest struct {
	RecipeID  uint  `json:"recipeId" binding:"required"`
	IsSpecial *bool `json:"isSpecial"`
}

// MarkAsSpecial flags a recipe as a special, typically after accepting
// a suggestion.
func (s *Server) MarkAsSpecial(c *gin.Context) {
	const route = "mark_as_special"
	s.Monitor.RecordRequest(route)

	var req markAsSpecialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe ID is required"})
		return
	}

	isSpecial := true
	if req.IsSpecial != nil {
		isSpecial = *req.IsSpecial
	}

	name, err := s.DB.SetRecipeSpecial(req.RecipeID, isSpecial)
	if err != nil {
		s.fail(c, route, err, "Failed to update recipe special status")
		return
	}
	if name == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	verb := "marked as"
	if !isSpecial {
		verb = "removed from"
	}
	s.Metrics.RecordRequest(route, "ok")
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Recipe %s has been %s special", name, verb),
	})
}

type createMenuRequest struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	RecipeIDs    []uint `json:"recipeIds" binding:"required"`
}

// CreateWastePreventionMenu persists a menu built from suggestions.
func (s *Server) CreateWastePreventionMenu(c *gin.Context) {
	const route = "create_waste_prevention_menu"
	s.Monitor.RecordRequest(route)

	var req createMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant ID, menu name, and recipe IDs array are required"})
		return
	}

	now := s.now()
	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Waste prevention menu created %s", now.Format("2006-01-02"))
	}

	menu, err := s.DB.CreateWastePreventionMenu(req.RestaurantID, req.Name, description, req.RecipeIDs, now)
	if err != nil {
		s.fail(c, route, err, "Failed to create waste prevention menu")
		return
	}

	s.Metrics.RecordRequest(route, "ok")
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Created new waste prevention menu %q with %d recipes", req.Name, len(req.RecipeIDs)),
		"menu":    menu,
	})
}
