package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenUsable reports whether a stored bearer token is worth sending.
// The token is opaque to the console, but when it happens to be a JWT a
// locally-expired one is treated as absent so the dashboard fails closed
// without a round trip. Tokens that don't parse as JWTs pass through;
// the API is the authority on their validity.
func TokenUsable(token string, now time.Time) bool {
	if token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return now.Before(exp.Time)
}
