package suggest

import (
	"math"
	"time"
)

const hoursPerDay = 24

// DaysUntilExpiry returns the number of whole days from now until
// expiry, rounding partial days up. An expiry three hours away counts
// as one day.
func DaysUntilExpiry(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / hoursPerDay))
}

// FilterExpiring returns the items whose expiry date falls inside the
// window (now, now+daysThreshold] and that still have stock on hand.
// Items without an expiry date never qualify.
func FilterExpiring(items []Item, now time.Time, daysThreshold int) ([]Item, error) {
	if daysThreshold <= 0 {
		return nil, invalidInputf("days threshold must be positive, got %d", daysThreshold)
	}

	cutoff := now.AddDate(0, 0, daysThreshold)
	expiring := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Quantity < 0 {
			return nil, invalidInputf("item %d has negative quantity %.2f", item.ID, item.Quantity)
		}
		if item.ExpiryDate == nil || item.Quantity == 0 {
			continue
		}
		if item.ExpiryDate.After(now) && !item.ExpiryDate.After(cutoff) {
			expiring = append(expiring, item)
		}
	}
	return expiring, nil
}
