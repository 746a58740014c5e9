// Package foodbank manages the food-bank directory and the nested
// storage-location editing flow.
package foodbank

import (
	"regexp"
	"strings"
)

// FoodBank is a client-side projection of a food bank record.
type FoodBank struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
}

// StorageLocation is a storage area belonging to one food bank.
type StorageLocation struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	FoodBank string `json:"foodBank,omitempty"`
}

// FoodBankInput is the create/update payload.
type FoodBankInput struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate returns per-field messages for every violation.
func (in FoodBankInput) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(in.Address) == "" {
		errs["address"] = "Address is required"
	}
	if strings.TrimSpace(in.City) == "" {
		errs["city"] = "City is required"
	}
	if in.ContactEmail != "" && !emailPattern.MatchString(in.ContactEmail) {
		errs["contactEmail"] = "Please enter a valid email address"
	}
	return errs
}

// StorageInput is the storage-location create/update payload. On create the
// owning food bank ID is attached by the manager.
type StorageInput struct {
	Name     string `json:"name"`
	FoodBank string `json:"foodBank,omitempty"`
}

// Validate returns per-field messages for every violation.
func (in StorageInput) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Storage location name is required"
	}
	return errs
}
