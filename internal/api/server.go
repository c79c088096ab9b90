package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smartkitchen/internal/ai"
	"smartkitchen/internal/metrics"
	"smartkitchen/internal/models"
	"smartkitchen/internal/monitoring"
	"smartkitchen/internal/suggest"
)

// Database represents the persistence capability set the handlers need
type Database interface {
	ExpiringInventory(restaurantID uint, now time.Time, daysThreshold int) ([]suggest.Item, error)
	AllInventory(restaurantID uint) ([]suggest.Item, error)
	ListInventory(restaurantID uint) ([]models.InventoryItem, error)
	CreateInventoryItem(item *models.InventoryItem) error
	Recipes(restaurantID uint) ([]suggest.Recipe, error)
	RecipeByID(id uint) (*suggest.Recipe, error)
	SetRecipeSpecial(id uint, isSpecial bool) (string, error)
	WasteRecords(restaurantID uint, since time.Time) ([]suggest.WasteRecord, error)
	ListWasteRecords(restaurantID uint) ([]models.WasteRecord, error)
	CreateWasteRecord(record *models.WasteRecord) error
	CreateWastePreventionMenu(restaurantID uint, name, description string, recipeIDs []uint, now time.Time) (*models.Menu, error)
}

// Options configures the server's suggestion defaults and auth.
type Options struct {
	DaysThreshold int
	MenuSize      int
	AuthEnabled   bool
	AuthSecret    string
}

// Server represents the suggestion API
type Server struct {
	Router  *gin.Engine
	DB      Database
	AI      *ai.Service
	Monitor *monitoring.Monitor
	Metrics *metrics.Collector

	opts Options
	now  func() time.Time
}

// NewServer creates a new API server instance
func NewServer(db Database, aiService *ai.Service, collector *metrics.Collector, opts Options) *Server {
	if opts.DaysThreshold <= 0 {
		opts.DaysThreshold = 7
	}
	if opts.MenuSize <= 0 {
		opts.MenuSize = suggest.DefaultMenuSize
	}

	s := &Server{
		Router:  gin.Default(),
		DB:      db,
		AI:      aiService,
		Monitor: monitoring.NewMonitor(),
		Metrics: collector,
		opts:    opts,
		now:     time.Now,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Smart Kitchen API is running"})
	})

	s.Router.GET("/ws", s.handleWebSocket)

	v1 := s.Router.Group("/api/v1")
	if s.opts.AuthEnabled {
		v1.Use(AuthMiddleware(s.opts.AuthSecret))
	}
	{
		suggestions := v1.Group("/suggestions")
		suggestions.GET("/expiring-recipes", s.GetExpiringRecipes)
		suggestions.GET("/minimal-waste-menu/:restaurantId", s.GetMinimalWasteMenu)
		suggestions.GET("/inventory-optimization/:restaurantId", s.GetInventoryOptimization)
		suggestions.GET("/specials-recommendations/:restaurantId", s.GetSpecialsRecommendations)
		suggestions.GET("/recipe-inventory-check/:recipeId", s.GetRecipeInventoryCheck)
		suggestions.GET("/expiring-dashboard/:restaurantId", s.GetExpiringDashboard)
		suggestions.POST("/mark-as-special", s.MarkAsSpecial)
		suggestions.POST("/create-waste-prevention-menu", s.CreateWastePreventionMenu)

		v1.GET("/inventory", s.GetInventory)
		v1.POST("/inventory", s.CreateInventoryItem)
		v1.GET("/waste", s.GetWasteRecords)
		v1.POST("/waste", s.CreateWasteRecord)

		v1.POST("/ai/menu-description", s.GenerateMenuDescription)
		v1.POST("/ai/waste-insights", s.GenerateWasteInsights)

		v1.GET("/metrics", s.GetMonitorMetrics)
	}
}

// GetMonitorMetrics returns the in-process monitor snapshot.
func (s *Server) GetMonitorMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.Monitor.GetMetrics())
}
