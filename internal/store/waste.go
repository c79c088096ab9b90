package store

import (
	"fmt"
	"time"

	"smartkitchen/internal/models"
	"smartkitchen/internal/suggest"
)

// WasteRecords returns the restaurant's waste log entries recorded at
// or after since, converted for the reorder heuristic.
func (s *Store) WasteRecords(restaurantID uint, since time.Time) ([]suggest.WasteRecord, error) {
	var rows []models.WasteRecord
	err := s.db.
		Where("restaurant_id = ? AND created_at >= ?", restaurantID, since).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading waste records: %w", err)
	}

	records := make([]suggest.WasteRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, suggest.WasteRecord{
			InventoryItemID: row.InventoryItemID,
			Quantity:        row.Quantity,
			RecordedAt:      row.CreatedAt,
		})
	}
	return records, nil
}

// ListWasteRecords returns the raw waste rows, newest first.
func (s *Store) ListWasteRecords(restaurantID uint) ([]models.WasteRecord, error) {
	var rows []models.WasteRecord
	err := s.db.
		Where("restaurant_id = ?", restaurantID).
		Preload("InventoryItem").
		Order("created_at desc").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing waste records: %w", err)
	}
	return rows, nil
}

// CreateWasteRecord logs wasted stock and decrements the item's
// quantity inside one transaction.
func (s *Store) CreateWasteRecord(record *models.WasteRecord) error {
	tx := s.db.Begin()
	if err := tx.Error; err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	if err := tx.Create(record).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("creating waste record: %w", err)
	}

	var item models.InventoryItem
	if err := tx.First(&item, record.InventoryItemID).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("loading inventory item %d: %w", record.InventoryItemID, err)
	}

	remaining := item.Quantity - record.Quantity
	if remaining < 0 {
		remaining = 0
	}
	if err := tx.Model(&item).Update("quantity", remaining).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("updating inventory item %d: %w", record.InventoryItemID, err)
	}

	return tx.Commit().Error
}
