package view

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bytebasket/internal/domain/inventory"
)

func TestWriteItemsCSV(t *testing.T) {
	min := 5
	exp := inventory.Date{Time: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)}
	items := []inventory.Item{
		{ItemName: "Rice", Category: "dry-goods", Quantity: 12, MinimumStockLevel: &min,
			StorageLocation: "Shelf A", ExpirationDate: &exp, Barcode: "123"},
		{ItemName: "Beans", Category: "canned-goods", Quantity: 3},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteItemsCSV(&buf, items))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Item Name", rows[0][0])
	assert.Equal(t, []string{"Rice", "dry-goods", "", "12", "5", "Shelf A", "2026-04-01", "123"}, rows[1])
	assert.Equal(t, []string{"Beans", "canned-goods", "", "3", "", "", "", ""}, rows[2])
}
