package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartkitchen/internal/models"
)

// GetInventory lists a restaurant's inventory items.
func (s *Server) GetInventory(c *gin.Context) {
	const route = "inventory_list"
	s.Monitor.RecordRequest(route)

	restaurantID, err := parseUint(c.Query("restaurantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant ID is required"})
		return
	}

	items, err := s.DB.ListInventory(restaurantID)
	if err != nil {
		s.fail(c, route, err, "Failed to list inventory")
		return
	}

	s.Metrics.RecordRequest(route, "ok")
	c.JSON(http.StatusOK, gin.H{"totalItems": len(items), "items": items})
}

type createItemRequest struct {
	RestaurantID uint    `json:"restaurantId" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	MinQuantity  float64 `json:"minQuantity"`
	Cost         float64 `json:"cost"`
	ExpiryDate   *string `json:"expiryDate"`
}

// CreateInventoryItem adds a new inventory item.
func (s *Server) CreateInventoryItem(c *gin.Context) {
	const route = "inventory_create"
	s.Monitor.RecordRequest(route)

	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant ID and item name are required"})
		return
	}
	if req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must not be negative"})
		return
	}

	item := models.InventoryItem{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		MinQuantity:  req.MinQuantity,
		Cost:         req.Cost,
	}
	if req.ExpiryDate != nil {
		expiry, err := parseDate(*req.ExpiryDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expiry date"})
			return
		}
		item.ExpiryDate = &expiry
	}

	if err := s.DB.CreateInventoryItem(&item); err != nil {
		s.fail(c, route, err, "Failed to create inventory item")
		return
	}

	s.Metrics.RecordRequest(route, "ok")
	c.JSON(http.StatusCreated, item)
}

// GetWasteRecords lists a restaurant's waste log, newest first.
func (s *Server) GetWasteRecords(c *gin.Context) {
	const route = "waste_list"
	s.Monitor.RecordRequest(route)

	restaurantID, err := parseUint(c.Query("restaurantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant ID is required"})
		return
	}

	records, err := s.DB.ListWasteRecords(restaurantID)
	if err != nil {
		s.fail(c, route, err, "Failed to list waste records")
		return
	}

	s.Metrics.RecordRequest(route, "ok")
	c.JSON(http.StatusOK, gin.H{"totalRecords": len(records), "records": records})
}

type createWasteRequest struct {
	RestaurantID    uint    `json:"restaurantId" binding:"required"`
	InventoryItemID uint    `json:"inventoryItemId" binding:"required"`
	Quantity        float64 `json:"quantity" binding:"required"`
	Reason          string  `json:"reason"`
}

// CreateWasteRecord logs wasted stock and decrements the item.
func (s *Server) CreateWasteRecord(c *gin.Context) {
	const route = "waste_create"
	s.Monitor.RecordRequest(route)

	var req createWasteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant ID, inventory item ID, and quantity are required"})
		return
	}
	if req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be positive"})
		return
	}

	record := models.WasteRecord{
		RestaurantID:    req.RestaurantID,
		InventoryItemID: req.InventoryItemID,
		Quantity:        req.Quantity,
		Reason:          req.Reason,
	}
	if record.Reason == "" {
		record.Reason = string(models.ReasonSpoiled)
	}

	if err := s.DB.CreateWasteRecord(&record); err != nil {
		s.fail(c, route, err, "Failed to create waste record")
		return
	}

	s.Metrics.RecordRequest(route, "ok")
	c.JSON(http.StatusCreated, record)
}
