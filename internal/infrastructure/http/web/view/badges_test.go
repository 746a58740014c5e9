package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bytebasket/internal/domain/inventory"
)

func TestItemBadges(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	soon := inventory.Date{Time: now.AddDate(0, 0, 3)}

	good := ItemBadges(inventory.Item{Quantity: 50}, now)
	assert.Equal(t, []Badge{{Label: "Good", Class: "badge-good"}}, good)

	low := ItemBadges(inventory.Item{Quantity: 4}, now)
	assert.Equal(t, "Low Stock", low[0].Label)

	both := ItemBadges(inventory.Item{Quantity: 4, ExpirationDate: &soon}, now)
	assert.Len(t, both, 2)
}

func TestAlertPreview(t *testing.T) {
	items := []inventory.Item{
		{ItemName: "a"}, {ItemName: "b"}, {ItemName: "c"}, {ItemName: "d"}, {ItemName: "e"},
	}
	names, more := AlertPreview(items)
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, 2, more)

	names, more = AlertPreview(items[:2])
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Zero(t, more)
}
