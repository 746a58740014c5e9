package volunteer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitShifts(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	shifts := []Shift{
		{ID: "a", Date: "2026-03-12", Status: StatusConfirmed},
		{ID: "b", Date: "2026-03-10", Status: StatusConfirmed}, // today counts as upcoming
		{ID: "c", Date: "2026-03-01", Status: StatusCompleted},
		{ID: "d", Date: "2026-03-05", Status: StatusCompleted},
		{ID: "e", Date: "2026-03-20", Status: StatusCancelled}, // cancelled never upcoming
		{ID: "f", Date: "2026-03-02", Status: StatusCancelled}, // cancelled past is dropped
	}

	upcoming, past := SplitShifts(shifts, now)

	require.Len(t, upcoming, 2)
	assert.Equal(t, "b", upcoming[0].ID)
	assert.Equal(t, "a", upcoming[1].ID)

	require.Len(t, past, 2)
	assert.Equal(t, "d", past[0].ID)
	assert.Equal(t, "c", past[1].ID)
}

func TestRegistrationValidation(t *testing.T) {
	errs := RegistrationInput{}.Validate()
	assert.Equal(t, "First name is required", errs["firstName"])
	assert.Equal(t, "Last name is required", errs["lastName"])
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "Phone number is required", errs["phone"])
	assert.Equal(t, "Address is required", errs["address"])
	assert.Equal(t, "City is required", errs["city"])
	assert.Equal(t, "Postal code is required", errs["postalCode"])
	assert.Equal(t, "Emergency contact is required", errs["emergencyContact"])
	assert.Equal(t, "Emergency phone is required", errs["emergencyPhone"])
	assert.Equal(t, "Please select your availability", errs["availability"])

	in := validRegistration()
	in.Email = "not-an-email"
	assert.Equal(t, "Please enter a valid email address", in.Validate()["email"])

	in = validRegistration()
	in.Phone = "12-34"
	assert.Equal(t, "Please enter a valid phone number", in.Validate()["phone"])

	assert.Empty(t, validRegistration().Validate())
}

func validRegistration() RegistrationInput {
	return RegistrationInput{
		FirstName:        "Dana",
		LastName:         "Reyes",
		Email:            "dana@example.com",
		Phone:            "604-555-0199",
		Address:          "12 Main St",
		City:             "Vancouver",
		PostalCode:       "V5K 0A1",
		EmergencyContact: "Sam Reyes",
		EmergencyPhone:   "604-555-0200",
		Availability:     []string{"weekday-mornings"},
	}
}

func TestResolveGating(t *testing.T) {
	// Register unauthenticated redirects to signup.
	view, redirect := Resolve(ViewRegister, false, false)
	assert.True(t, redirect)
	assert.Equal(t, ViewLanding, view)

	// Register when already registered lands on schedule.
	view, redirect = Resolve(ViewRegister, true, true)
	assert.False(t, redirect)
	assert.Equal(t, ViewSchedule, view)

	// Register authenticated and unregistered passes through.
	view, redirect = Resolve(ViewRegister, true, false)
	assert.False(t, redirect)
	assert.Equal(t, ViewRegister, view)

	// Other views never redirect.
	view, redirect = Resolve(ViewMyShifts, false, false)
	assert.False(t, redirect)
	assert.Equal(t, ViewMyShifts, view)
}

func TestParseView(t *testing.T) {
	assert.Equal(t, ViewLanding, ParseView(""))
	assert.Equal(t, ViewLanding, ParseView("bogus"))
	assert.Equal(t, ViewSchedule, ParseView("schedule"))
	assert.Equal(t, ViewMyShifts, ParseView("myshifts"))
}
