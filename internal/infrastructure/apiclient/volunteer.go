package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"bytebasket/internal/domain/volunteer"
)

// RegisterVolunteer calls POST /volunteers/register.
func (c *Client) RegisterVolunteer(ctx context.Context, in volunteer.RegistrationInput) error {
	return c.doJSON(ctx, http.MethodPost, "/volunteers/register", in, nil)
}

// ListShifts calls GET /shifts, optionally filtered to one date.
func (c *Client) ListShifts(ctx context.Context, date string) ([]volunteer.Shift, error) {
	path := "/shifts"
	if date != "" {
		path += "?" + url.Values{"date": {date}}.Encode()
	}
	var env struct {
		Data []volunteer.Shift `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// MyShifts calls GET /shifts/mine.
func (c *Client) MyShifts(ctx context.Context) ([]volunteer.Shift, error) {
	var env struct {
		Data []volunteer.Shift `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/shifts/mine", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// SignUpForShift calls POST /shifts/:id/signup.
func (c *Client) SignUpForShift(ctx context.Context, shiftID string) (*volunteer.Shift, error) {
	var env struct {
		Data *volunteer.Shift `json:"data"`
	}
	path := "/shifts/" + url.PathEscape(shiftID) + "/signup"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// CancelShift calls DELETE /shifts/:id/signup.
func (c *Client) CancelShift(ctx context.Context, shiftID string) error {
	path := "/shifts/" + url.PathEscape(shiftID) + "/signup"
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}
