package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"bytebasket/internal/domain/auth"
)

// authEnvelope is the {success, message, ...} shape of the auth endpoints.
type authEnvelope struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    *auth.User `json:"user"`
	Data    *auth.User `json:"data"`
}

func (e authEnvelope) user() *auth.User {
	if e.User != nil {
		return e.User
	}
	return e.Data
}

// Register calls POST /auth/register.
func (c *Client) Register(ctx context.Context, in auth.SignUpInput) (*auth.AuthResult, error) {
	var env authEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", in, &env); err != nil {
		return nil, err
	}
	return &auth.AuthResult{Token: env.Token, User: env.user()}, nil
}

// Login calls POST /auth/login.
func (c *Client) Login(ctx context.Context, creds auth.Credentials) (*auth.AuthResult, error) {
	var env authEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", creds, &env); err != nil {
		return nil, err
	}
	return &auth.AuthResult{Token: env.Token, User: env.user()}, nil
}

// Logout calls POST /auth/logout.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// Me calls GET /auth/me.
func (c *Client) Me(ctx context.Context) (*auth.User, error) {
	var env authEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, &env); err != nil {
		return nil, err
	}
	return env.user(), nil
}

// VerifyEmail calls GET /auth/verify-email?token= and returns the API's
// message.
func (c *Client) VerifyEmail(ctx context.Context, token string) (string, error) {
	q := url.Values{"token": {token}}
	var env authEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/auth/verify-email?"+q.Encode(), nil, &env); err != nil {
		return "", err
	}
	return env.Message, nil
}

// ResendVerification calls POST /auth/resend-verification.
func (c *Client) ResendVerification(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.doJSON(ctx, http.MethodPost, "/auth/resend-verification", body, nil)
}

// DashboardSummary calls GET /auth/dashboard.
func (c *Client) DashboardSummary(ctx context.Context) (*auth.Dashboard, error) {
	var env struct {
		Success bool            `json:"success"`
		Data    *auth.Dashboard `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/auth/dashboard", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}
