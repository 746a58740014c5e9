// Package auth implements sign-up, sign-in, email verification and the
// session lifecycle around the platform API's auth endpoints.
package auth

import (
	"regexp"
	"strings"
)

// User is the authenticated account as served by GET /auth/me.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Roles served by the platform API.
const (
	RoleDonor     = "donor"
	RoleVolunteer = "volunteer"
	RoleAdmin     = "admin"
)

// Credentials is the sign-in payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpInput is the registration payload.
type SignUpInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate returns per-field messages for every violation.
func (in SignUpInput) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "Name is required"
	}
	switch {
	case strings.TrimSpace(in.Email) == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(in.Email):
		errs["email"] = "Please enter a valid email address"
	}
	switch {
	case in.Password == "":
		errs["password"] = "Password is required"
	case len(in.Password) < 6:
		errs["password"] = "Password must be at least 6 characters"
	}
	return errs
}

// Validate returns per-field messages for every violation.
func (in Credentials) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(in.Email) == "" {
		errs["email"] = "Email is required"
	}
	if in.Password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}

// AuthResult is what the API returns on a successful sign-in/sign-up.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// Dashboard is the role-dependent summary served by GET /auth/dashboard.
type Dashboard struct {
	Role           string `json:"role"`
	TotalDonations int    `json:"totalDonations"`
	UpcomingShifts int    `json:"upcomingShifts"`
	ManagedBanks   int    `json:"managedBanks"`
	Message        string `json:"message,omitempty"`
}
