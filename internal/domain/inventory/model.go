// Package inventory owns the inventory browsing state: the item list, its
// filters and pagination, and the low-stock/expiry rules shared by every
// surface that renders an item.
package inventory

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar date as the platform API serializes it: either a bare
// "2006-01-02" or a full RFC 3339 timestamp.
type Date struct {
	time.Time
}

// UnmarshalJSON accepts null, "", date-only and RFC 3339 forms.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalJSON writes the date-only form the API expects on input.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// Item is a transient client-side projection of an inventory record.
// Records are never patched locally; the list is refetched after every
// mutation so server-computed fields stay authoritative.
type Item struct {
	ID                string `json:"_id"`
	InventoryID       string `json:"inventory_id,omitempty"`
	FoodbankID        string `json:"foodbank_id,omitempty"`
	ItemName          string `json:"item_name"`
	Category          string `json:"category"`
	DietaryCategory   string `json:"dietary_category,omitempty"`
	Quantity          int    `json:"quantity"`
	MinimumStockLevel *int   `json:"minimum_stock_level,omitempty"`
	StorageLocation   string `json:"storage_location,omitempty"`
	ExpirationDate    *Date  `json:"expiration_date,omitempty"`
	Barcode           string `json:"barcode,omitempty"`
	Description       string `json:"description,omitempty"`
	LowStock          bool   `json:"low_stock,omitempty"`
	DateAdded         *Date  `json:"date_added,omitempty"`
}

// Key returns the record identifier. Older API records expose inventory_id
// instead of _id.
func (it Item) Key() string {
	if it.ID != "" {
		return it.ID
	}
	return it.InventoryID
}

// ItemInput is the mutation payload for create/update.
type ItemInput struct {
	FoodbankID        string `json:"foodbank_id,omitempty"`
	ItemName          string `json:"item_name"`
	Category          string `json:"category"`
	DietaryCategory   string `json:"dietary_category,omitempty"`
	Quantity          int    `json:"quantity"`
	MinimumStockLevel int    `json:"minimum_stock_level"`
	StorageLocation   string `json:"storage_location,omitempty"`
	ExpirationDate    string `json:"expiration_date,omitempty"`
	Barcode           string `json:"barcode,omitempty"`
	Description       string `json:"description,omitempty"`
}

// Pagination is server-derived paging metadata, read-only on the client.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// Filters governs which items are fetched.
type Filters struct {
	Search          string
	Category        string
	DietaryCategory string
	FoodbankID      string
	LowStock        bool
	Sort            string
	Page            int
	Limit           int
}

// DefaultFilters returns the initial filter state: newest first, page 1,
// twenty items per page.
func DefaultFilters() Filters {
	return Filters{Sort: "-date_added", Page: 1, Limit: 20}
}

// Values encodes the filters as API query parameters. Empty strings and
// unset booleans are omitted, matching what the API treats as "no filter".
func (f Filters) Values() url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.DietaryCategory != "" {
		q.Set("dietary_category", f.DietaryCategory)
	}
	if f.FoodbankID != "" {
		q.Set("foodbank_id", f.FoodbankID)
	}
	if f.LowStock {
		q.Set("low_stock", "true")
	}
	if f.Sort != "" {
		q.Set("sort", f.Sort)
	}
	q.Set("page", strconv.Itoa(f.Page))
	q.Set("limit", strconv.Itoa(f.Limit))
	return q
}

// FilterUpdate is a partial filter change. Nil fields keep current values.
type FilterUpdate struct {
	Search          *string
	Category        *string
	DietaryCategory *string
	FoodbankID      *string
	LowStock        *bool
	Sort            *string
	Limit           *int
}

// Apply merges the update into f. Any filter change other than page resets
// the page to 1 so a narrowed result set never leaves the view on an
// out-of-range page.
func (f Filters) Apply(u FilterUpdate) Filters {
	if u.Search != nil {
		f.Search = *u.Search
	}
	if u.Category != nil {
		f.Category = *u.Category
	}
	if u.DietaryCategory != nil {
		f.DietaryCategory = *u.DietaryCategory
	}
	if u.FoodbankID != nil {
		f.FoodbankID = *u.FoodbankID
	}
	if u.LowStock != nil {
		f.LowStock = *u.LowStock
	}
	if u.Sort != nil {
		f.Sort = *u.Sort
	}
	if u.Limit != nil && *u.Limit > 0 {
		f.Limit = *u.Limit
	}
	f.Page = 1
	return f
}

// Stats is the aggregate view served by GET /inventory/stats.
type Stats struct {
	TotalItems    int `json:"totalItems"`
	TotalQuantity int `json:"totalQuantity"`
	LowStockCount int `json:"lowStockCount"`
	ExpiringCount int `json:"expiringCount"`
}
