package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func datePtr(t time.Time) *Date { return &Date{t} }

func TestIsLowStock(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		minimum  *int
		want     bool
	}{
		{"below explicit minimum", 3, intPtr(5), true},
		{"at explicit minimum", 5, intPtr(5), true},
		{"above explicit minimum", 6, intPtr(5), false},
		{"no minimum uses default 10, below", 10, nil, true},
		{"no minimum uses default 10, above", 11, nil, false},
		{"zero quantity", 0, intPtr(0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLowStock(tt.quantity, tt.minimum))
		})
	}
}

func TestIsExpiringSoon(t *testing.T) {
	now := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		exp  *Date
		want bool
	}{
		{"nil date never expires", nil, false},
		{"zero date never expires", &Date{}, false},
		{"already past", datePtr(now.Add(-24 * time.Hour)), true},
		{"within seven days", datePtr(now.Add(6 * 24 * time.Hour)), true},
		{"exactly seven days", datePtr(now.Add(7 * 24 * time.Hour)), true},
		{"beyond seven days", datePtr(now.Add(8 * 24 * time.Hour)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExpiringSoon(tt.exp, now))
		})
	}
}

func TestItemBadgesHonorsServerFlag(t *testing.T) {
	now := time.Now()

	// Server says low stock even though the local rule disagrees.
	it := Item{Quantity: 100, MinimumStockLevel: intPtr(5), LowStock: true}
	badges := ItemBadges(it, now)
	assert.True(t, badges.LowStock)
	assert.False(t, badges.Expiring)
	assert.False(t, badges.Good())

	// Neither rule fires.
	ok := Item{Quantity: 100, MinimumStockLevel: intPtr(5)}
	assert.True(t, ItemBadges(ok, now).Good())
}
