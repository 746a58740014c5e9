package donation

import "context"

// API is the donations surface of the platform API.
type API interface {
	SubmitDonation(ctx context.Context, d Donation, img *Image) error
}

// Service validates and submits donations.
type Service struct {
	api API
}

// NewService creates a Service.
func NewService(api API) *Service {
	return &Service{api: api}
}

// Submit validates the form and posts the donation. Validation failures
// block the API call.
func (s *Service) Submit(ctx context.Context, f Form, img *Image) error {
	d, err := f.Donation()
	if err != nil {
		return err
	}
	return s.api.SubmitDonation(ctx, *d, img)
}
