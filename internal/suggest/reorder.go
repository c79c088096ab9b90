package suggest

import (
	"math"
	"sort"
	"time"
)

// Reorder heuristic constants.
const (
	// LeadTimeDays is the assumed supplier lead time.
	LeadTimeDays = 7

	// SafetyStockDays of average usage are kept as buffer on top of the
	// lead-time demand.
	SafetyStockDays = 3

	// WasteLookbackDays bounds the waste records considered.
	WasteLookbackDays = 90

	// highWasteThreshold is the waste percentage above which an item is
	// flagged regardless of stock level, unless it is critically low.
	highWasteThreshold = 15.0
)

// ReorderStatus classifies an inventory item's stock position.
type ReorderStatus string

const (
	StatusCriticalLow ReorderStatus = "Critical Low"
	StatusHighWaste   ReorderStatus = "High Waste"
	StatusLow         ReorderStatus = "Low"
	StatusOverstocked ReorderStatus = "Overstocked"
	StatusOptimal     ReorderStatus = "Optimal"
)

var statusPriority = map[ReorderStatus]int{
	StatusCriticalLow: 1,
	StatusHighWaste:   2,
	StatusLow:         3,
	StatusOverstocked: 4,
	StatusOptimal:     5,
}

var statusActions = map[ReorderStatus]string{
	StatusCriticalLow: "Order immediately",
	StatusHighWaste:   "Reduce order quantity and review usage",
	StatusLow:         "Reorder soon",
	StatusOverstocked: "Reduce future orders",
	StatusOptimal:     "No action needed",
}

// ReorderRecommendation is the per-item output of the reorder heuristic.
type ReorderRecommendation struct {
	ItemID            uint          `json:"itemId"`
	ItemName          string        `json:"itemName"`
	Category          string        `json:"category"`
	CurrentQuantity   float64       `json:"currentQuantity"`
	Unit              string        `json:"unit"`
	MinQuantity       float64       `json:"minQuantity"`
	RecommendedMin    float64       `json:"recommendedMinQuantity"`
	OptimalQuantity   float64       `json:"optimalQuantity"`
	UsedInRecipes     int           `json:"usedInRecipes"`
	AverageDailyUsage float64       `json:"averageDailyUsage"`
	WastePercentage   float64       `json:"wastePercentage"`
	Status            ReorderStatus `json:"status"`
	Action            string        `json:"action"`
	CostImpact        float64       `json:"costImpact"`
}

// ReorderRecommendations derives a restocking recommendation for every
// inventory item from recent sales demand and waste history. Output is
// ordered by status severity, most urgent first.
func ReorderRecommendations(items []Item, wasteRecords []WasteRecord, now time.Time) ([]ReorderRecommendation, error) {
	wasteStart := now.AddDate(0, 0, -WasteLookbackDays)
	wasteByItem := make(map[uint]float64)
	for _, record := range wasteRecords {
		if record.RecordedAt.Before(wasteStart) {
			continue
		}
		wasteByItem[record.InventoryItemID] += record.Quantity
	}

	recommendations := make([]ReorderRecommendation, 0, len(items))
	for _, item := range items {
		if item.Quantity < 0 {
			return nil, invalidInputf("item %d has negative quantity %.2f", item.ID, item.Quantity)
		}

		// Demand over the trailing sales window, spread across every
		// recipe that consumes this item.
		totalUsage := 0.0
		for _, usage := range item.Usages {
			_, recentSales := sumSales(usage.Recipe.Sales, now)
			totalUsage += float64(recentSales) * usage.QuantityNeeded
		}

		averageDailyUsage := totalUsage / RecentSalesWindowDays
		optimal := math.Ceil(averageDailyUsage*LeadTimeDays + averageDailyUsage*SafetyStockDays)

		totalWasted := wasteByItem[item.ID]
		wastePct := 0.0
		if item.Quantity+totalWasted > 0 {
			wastePct = totalWasted / (item.Quantity + totalWasted) * 100
		}

		status := classifyStock(item, optimal, wastePct)

		recommendations = append(recommendations, ReorderRecommendation{
			ItemID:            item.ID,
			ItemName:          item.Name,
			Category:          item.Category,
			CurrentQuantity:   item.Quantity,
			Unit:              item.Unit,
			MinQuantity:       item.MinQuantity,
			RecommendedMin:    math.Ceil(optimal * 0.5),
			OptimalQuantity:   optimal,
			UsedInRecipes:     len(item.Usages),
			AverageDailyUsage: round2(averageDailyUsage),
			WastePercentage:   round2(wastePct),
			Status:            status,
			Action:            statusActions[status],
			CostImpact:        round2((item.Quantity - optimal) * item.Cost),
		})
	}

	sort.Slice(recommendations, func(i, j int) bool {
		pi, pj := statusPriority[recommendations[i].Status], statusPriority[recommendations[j].Status]
		if pi != pj {
			return pi < pj
		}
		return recommendations[i].ItemID < recommendations[j].ItemID
	})

	return recommendations, nil
}

// classifyStock applies the status rules in priority order; the first
// match wins.
func classifyStock(item Item, optimal, wastePct float64) ReorderStatus {
	switch {
	case item.Quantity < item.MinQuantity:
		return StatusCriticalLow
	case wastePct > highWasteThreshold:
		return StatusHighWaste
	case item.Quantity < optimal*0.5:
		return StatusLow
	case item.Quantity > optimal*2:
		return StatusOverstocked
	default:
		return StatusOptimal
	}
}
