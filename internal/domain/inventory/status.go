package inventory

import "time"

// DefaultMinimumStock applies when a record has no minimum_stock_level.
const DefaultMinimumStock = 10

// ExpiringWindow is how far ahead an expiration date counts as "soon".
const ExpiringWindow = 7 * 24 * time.Hour

// IsLowStock reports whether quantity is at or below the minimum stock
// level, defaulting the level to DefaultMinimumStock when unset.
//
// This is the single definition of "low stock" on the client; the table
// badges, the alerts banner and the low_stock filter all agree with it.
func IsLowStock(quantity int, minimum *int) bool {
	level := DefaultMinimumStock
	if minimum != nil {
		level = *minimum
	}
	return quantity <= level
}

// IsExpiringSoon reports whether exp exists and falls within ExpiringWindow
// of now.
func IsExpiringSoon(exp *Date, now time.Time) bool {
	if exp == nil || exp.IsZero() {
		return false
	}
	return !exp.After(now.Add(ExpiringWindow))
}

// Badges are the per-row status markers.
type Badges struct {
	LowStock bool
	Expiring bool
}

// Good reports whether neither badge applies.
func (b Badges) Good() bool { return !b.LowStock && !b.Expiring }

// ItemBadges computes the status badges for an item. A server-supplied
// low_stock flag is honored in addition to the local rule.
func ItemBadges(it Item, now time.Time) Badges {
	return Badges{
		LowStock: it.LowStock || IsLowStock(it.Quantity, it.MinimumStockLevel),
		Expiring: IsExpiringSoon(it.ExpirationDate, now),
	}
}
