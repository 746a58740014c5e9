package volunteer

import (
	"context"

	"bytebasket/internal/core/apperror"
)

// API is the shifts API surface. Registration and shift operations are
// real network calls; the view transitions above stay purely local.
type API interface {
	RegisterVolunteer(ctx context.Context, in RegistrationInput) error
	ListShifts(ctx context.Context, date string) ([]Shift, error)
	MyShifts(ctx context.Context) ([]Shift, error)
	SignUpForShift(ctx context.Context, shiftID string) (*Shift, error)
	CancelShift(ctx context.Context, shiftID string) error
}

// Service wraps the shifts API with validation.
type Service struct {
	api API
}

// NewService creates a Service.
func NewService(api API) *Service {
	return &Service{api: api}
}

// Register validates and submits a volunteer registration. Validation
// failures block the API call.
func (s *Service) Register(ctx context.Context, in RegistrationInput) error {
	if errs := in.Validate(); len(errs) > 0 {
		return apperror.NewValidationFields(errs)
	}
	return s.api.RegisterVolunteer(ctx, in)
}

// Shifts lists available shifts, optionally for one date (2006-01-02).
func (s *Service) Shifts(ctx context.Context, date string) ([]Shift, error) {
	return s.api.ListShifts(ctx, date)
}

// MyShifts lists the signed-in volunteer's shifts.
func (s *Service) MyShifts(ctx context.Context) ([]Shift, error) {
	return s.api.MyShifts(ctx)
}

// SignUp signs up for a shift and returns the confirmed shift.
func (s *Service) SignUp(ctx context.Context, shiftID string) (*Shift, error) {
	if shiftID == "" {
		return nil, apperror.NewValidation("shift id is required")
	}
	return s.api.SignUpForShift(ctx, shiftID)
}

// Cancel cancels a shift sign-up.
func (s *Service) Cancel(ctx context.Context, shiftID string) error {
	if shiftID == "" {
		return apperror.NewValidation("shift id is required")
	}
	return s.api.CancelShift(ctx, shiftID)
}
