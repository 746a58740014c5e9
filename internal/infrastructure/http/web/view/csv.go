package view

import (
	"encoding/csv"
	"io"
	"strconv"

	"bytebasket/internal/domain/inventory"
)

// csvHeader matches the columns of the inventory table.
var csvHeader = []string{
	"Item Name", "Category", "Dietary Category", "Quantity",
	"Minimum Stock Level", "Storage Location", "Expiration Date", "Barcode",
}

// WriteItemsCSV exports the current page of inventory items as CSV.
func WriteItemsCSV(w io.Writer, items []inventory.Item) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, it := range items {
		minLevel := ""
		if it.MinimumStockLevel != nil {
			minLevel = strconv.Itoa(*it.MinimumStockLevel)
		}
		expiry := ""
		if it.ExpirationDate != nil && !it.ExpirationDate.IsZero() {
			expiry = it.ExpirationDate.Format("2006-01-02")
		}
		row := []string{
			it.ItemName, it.Category, it.DietaryCategory,
			strconv.Itoa(it.Quantity), minLevel,
			it.StorageLocation, expiry, it.Barcode,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
