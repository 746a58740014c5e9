// Package volunteer implements the volunteer flow: the landing, register,
// schedule and my-shifts views, the gating between them, and the shift
// operations against the shifts API.
package volunteer

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// Shift statuses as served by the shifts API.
const (
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Shift is a volunteer shift slot.
type Shift struct {
	ID             string `json:"id"`
	Date           string `json:"date"` // 2006-01-02
	Time           string `json:"time"` // display range, e.g. "9:00 AM - 12:00 PM"
	Activity       string `json:"activity"`
	SpotsAvailable int    `json:"spotsAvailable"`
	Status         string `json:"status,omitempty"`
}

// Day parses the shift date; the zero time when unparsable.
func (s Shift) Day() time.Time {
	t, _ := time.Parse("2006-01-02", s.Date)
	return t
}

// SplitShifts partitions shifts into upcoming (today or later, not
// cancelled, ascending) and past (completed, most recent first).
func SplitShifts(shifts []Shift, now time.Time) (upcoming, past []Shift) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, s := range shifts {
		switch {
		case !s.Day().Before(today) && s.Status != StatusCancelled:
			upcoming = append(upcoming, s)
		case s.Status == StatusCompleted:
			past = append(past, s)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool { return upcoming[i].Day().Before(upcoming[j].Day()) })
	sort.Slice(past, func(i, j int) bool { return past[i].Day().After(past[j].Day()) })
	return upcoming, past
}

// RegistrationInput is the volunteer registration payload.
type RegistrationInput struct {
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Address          string   `json:"address"`
	City             string   `json:"city"`
	PostalCode       string   `json:"postalCode"`
	EmergencyContact string   `json:"emergencyContact"`
	EmergencyPhone   string   `json:"emergencyPhone"`
	Availability     []string `json:"availability"`
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitPattern = regexp.MustCompile(`\D`)
)

// Validate returns per-field messages for every violation.
func (in RegistrationInput) Validate() map[string]string {
	errs := make(map[string]string)

	required := []struct{ field, value, message string }{
		{"firstName", in.FirstName, "First name is required"},
		{"lastName", in.LastName, "Last name is required"},
		{"email", in.Email, "Email is required"},
		{"phone", in.Phone, "Phone number is required"},
		{"address", in.Address, "Address is required"},
		{"city", in.City, "City is required"},
		{"postalCode", in.PostalCode, "Postal code is required"},
		{"emergencyContact", in.EmergencyContact, "Emergency contact is required"},
		{"emergencyPhone", in.EmergencyPhone, "Emergency phone is required"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs[r.field] = r.message
		}
	}
	if len(in.Availability) == 0 {
		errs["availability"] = "Please select your availability"
	}
	if in.Email != "" && !emailPattern.MatchString(in.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if in.Phone != "" {
		digits := digitPattern.ReplaceAllString(in.Phone, "")
		if len(digits) < 7 {
			errs["phone"] = "Please enter a valid phone number"
		}
	}
	return errs
}
