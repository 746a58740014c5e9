// Package donation implements the public donation form: validation,
// defaults and submission to the platform API.
package donation

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"bytebasket/internal/core/apperror"
)

// Defaults applied when the form leaves the field empty.
const (
	DefaultUnit     = "pieces"
	DefaultCategory = "other"
)

// Units the form offers. Fractional quantities are meaningful for the
// weight-based ones, so quantity is a decimal throughout.
var Units = []string{"pieces", "kg", "lbs", "boxes", "cans", "bags"}

// Categories the form offers.
var Categories = []string{
	"canned-goods", "dry-goods", "fresh-produce", "dairy", "frozen",
	"baby-food", "beverages", "other",
}

// Donation is the submission payload. Image bytes travel as a separate
// multipart part and are not part of this struct.
type Donation struct {
	DonorName           string          `json:"donorName"`
	DonorEmail          string          `json:"donorEmail"`
	DonorPhone          string          `json:"donorPhone,omitempty"`
	ProductName         string          `json:"productName"`
	Quantity            decimal.Decimal `json:"quantity"`
	Unit                string          `json:"unit"`
	Category            string          `json:"category"`
	ScheduledPickupDate string          `json:"scheduledPickupDate,omitempty"`
	ScheduledPickupTime string          `json:"scheduledPickupTime,omitempty"`
	Notes               string          `json:"notes,omitempty"`
}

// Image is an optional photo attached to a donation.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Form carries the raw string values as submitted.
type Form struct {
	DonorName           string
	DonorEmail          string
	DonorPhone          string
	ProductName         string
	Quantity            string
	Unit                string
	Category            string
	ScheduledPickupDate string
	ScheduledPickupTime string
	Notes               string
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate returns per-field messages for every violation.
func (f Form) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.DonorName) == "" {
		errs["donorName"] = "Your name is required"
	}
	switch {
	case strings.TrimSpace(f.DonorEmail) == "":
		errs["donorEmail"] = "Email is required"
	case !emailPattern.MatchString(f.DonorEmail):
		errs["donorEmail"] = "Please enter a valid email address"
	}
	if strings.TrimSpace(f.ProductName) == "" {
		errs["productName"] = "Product name is required"
	}
	if q, err := decimal.NewFromString(strings.TrimSpace(f.Quantity)); err != nil || !q.IsPositive() {
		errs["quantity"] = "Valid quantity is required"
	}
	return errs
}

// Donation converts the form into a submission payload, applying the unit
// and category defaults. Validation failures block the conversion.
func (f Form) Donation() (*Donation, error) {
	if errs := f.Validate(); len(errs) > 0 {
		return nil, apperror.NewValidationFields(errs)
	}
	qty, _ := decimal.NewFromString(strings.TrimSpace(f.Quantity))
	d := &Donation{
		DonorName:           strings.TrimSpace(f.DonorName),
		DonorEmail:          strings.TrimSpace(f.DonorEmail),
		DonorPhone:          strings.TrimSpace(f.DonorPhone),
		ProductName:         strings.TrimSpace(f.ProductName),
		Quantity:            qty,
		Unit:                f.Unit,
		Category:            f.Category,
		ScheduledPickupDate: f.ScheduledPickupDate,
		ScheduledPickupTime: f.ScheduledPickupTime,
		Notes:               f.Notes,
	}
	if d.Unit == "" {
		d.Unit = DefaultUnit
	}
	if d.Category == "" {
		d.Category = DefaultCategory
	}
	return d, nil
}
