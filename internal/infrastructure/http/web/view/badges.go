package view

import (
	"time"

	"bytebasket/internal/domain/inventory"
)

// Badge is a status label rendered next to an item row.
type Badge struct {
	Label string
	Class string
}

// ItemBadges maps an item's stock status to display badges. An item with
// neither condition gets the single "Good" badge.
func ItemBadges(it inventory.Item, now time.Time) []Badge {
	b := inventory.ItemBadges(it, now)
	var out []Badge
	if b.LowStock {
		out = append(out, Badge{Label: "Low Stock", Class: "badge-low-stock"})
	}
	if b.Expiring {
		out = append(out, Badge{Label: "Expiring Soon", Class: "badge-expiring"})
	}
	if len(out) == 0 {
		out = append(out, Badge{Label: "Good", Class: "badge-good"})
	}
	return out
}

// AlertPreview returns the first 3 item names plus a count of the rest,
// for the alert banners.
func AlertPreview(items []inventory.Item) (names []string, more int) {
	for i, it := range items {
		if i == 3 {
			return names, len(items) - 3
		}
		names = append(names, it.ItemName)
	}
	return names, 0
}
