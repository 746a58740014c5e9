package inventory

import (
	"strconv"
	"strings"

	"bytebasket/internal/core/apperror"
)

// ItemForm holds raw form input for the item editor. Values stay strings
// until validation passes; quantity and minimum stock level are converted
// to integers on submit.
type ItemForm struct {
	FoodbankID        string
	ItemName          string
	Category          string
	Quantity          string
	ExpirationDate    string
	StorageLocation   string
	DietaryCategory   string
	Barcode           string
	MinimumStockLevel string
	Description       string
}

// NewItemForm returns a blank form with the default minimum stock level
// prefilled.
func NewItemForm() ItemForm {
	return ItemForm{MinimumStockLevel: strconv.Itoa(DefaultMinimumStock)}
}

// FormFromItem prefills the editor from an existing record.
func FormFromItem(it Item) ItemForm {
	f := ItemForm{
		FoodbankID:      it.FoodbankID,
		ItemName:        it.ItemName,
		Category:        it.Category,
		Quantity:        strconv.Itoa(it.Quantity),
		StorageLocation: it.StorageLocation,
		DietaryCategory: it.DietaryCategory,
		Barcode:         it.Barcode,
		Description:     it.Description,
	}
	if it.ExpirationDate != nil && !it.ExpirationDate.IsZero() {
		f.ExpirationDate = it.ExpirationDate.Format("2006-01-02")
	}
	if it.MinimumStockLevel != nil {
		f.MinimumStockLevel = strconv.Itoa(*it.MinimumStockLevel)
	} else {
		f.MinimumStockLevel = strconv.Itoa(DefaultMinimumStock)
	}
	return f
}

// Validate returns per-field messages for every violation. An empty map
// means the form may be submitted.
func (f ItemForm) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.ItemName) == "" {
		errs["item_name"] = "Item name is required"
	}
	if strings.TrimSpace(f.Category) == "" {
		errs["category"] = "Category is required"
	}
	if qty, err := strconv.Atoi(strings.TrimSpace(f.Quantity)); err != nil || qty < 0 {
		errs["quantity"] = "Valid quantity is required"
	}
	if f.MinimumStockLevel != "" {
		if lvl, err := strconv.Atoi(strings.TrimSpace(f.MinimumStockLevel)); err != nil || lvl < 0 {
			errs["minimum_stock_level"] = "Minimum stock level must be 0 or greater"
		}
	}

	return errs
}

// Input validates the form and converts it to a mutation payload. On
// violation it returns a validation AppError carrying the field messages
// and no payload; callers must not issue any network call in that case.
func (f ItemForm) Input() (ItemInput, error) {
	if errs := f.Validate(); len(errs) > 0 {
		return ItemInput{}, apperror.NewValidationFields(errs)
	}

	qty, _ := strconv.Atoi(strings.TrimSpace(f.Quantity))
	lvl := DefaultMinimumStock
	if f.MinimumStockLevel != "" {
		lvl, _ = strconv.Atoi(strings.TrimSpace(f.MinimumStockLevel))
	}

	return ItemInput{
		FoodbankID:        strings.TrimSpace(f.FoodbankID),
		ItemName:          strings.TrimSpace(f.ItemName),
		Category:          strings.TrimSpace(f.Category),
		DietaryCategory:   strings.TrimSpace(f.DietaryCategory),
		Quantity:          qty,
		MinimumStockLevel: lvl,
		StorageLocation:   strings.TrimSpace(f.StorageLocation),
		ExpirationDate:    strings.TrimSpace(f.ExpirationDate),
		Barcode:           strings.TrimSpace(f.Barcode),
		Description:       strings.TrimSpace(f.Description),
	}, nil
}
