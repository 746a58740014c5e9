package auth

import (
	"context"
	"time"

	"bytebasket/internal/core/apperror"
	"bytebasket/internal/infrastructure/session"
	"bytebasket/pkg/logger"
)

// API is the auth surface of the platform API.
type API interface {
	Register(ctx context.Context, in SignUpInput) (*AuthResult, error)
	Login(ctx context.Context, creds Credentials) (*AuthResult, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*User, error)
	VerifyEmail(ctx context.Context, token string) (string, error)
	ResendVerification(ctx context.Context, email string) error
}

// Service drives the auth flows and keeps the session store in step with
// them: sign-in/sign-up store the token, sign-out clears everything.
type Service struct {
	api      API
	sessions session.Store
	now      func() time.Time
}

// NewService creates a Service.
func NewService(api API, sessions session.Store) *Service {
	return &Service{api: api, sessions: sessions, now: time.Now}
}

// SignIn authenticates and stores the returned token in the session.
// Volunteer flags from a previous session under the same ID are reset.
func (s *Service) SignIn(ctx context.Context, sessionID string, creds Credentials) (*User, error) {
	if errs := creds.Validate(); len(errs) > 0 {
		return nil, apperror.NewValidationFields(errs)
	}
	res, err := s.api.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Put(ctx, sessionID, session.Session{Token: res.Token}); err != nil {
		return nil, apperror.NewInternal(err)
	}
	return res.User, nil
}

// SignUp registers a new account. When the API returns a token the user is
// signed in immediately; otherwise the account awaits email verification.
func (s *Service) SignUp(ctx context.Context, sessionID string, in SignUpInput) (*User, bool, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return nil, false, apperror.NewValidationFields(errs)
	}
	res, err := s.api.Register(ctx, in)
	if err != nil {
		return nil, false, err
	}
	if res.Token == "" {
		return res.User, false, nil
	}
	if err := s.sessions.Put(ctx, sessionID, session.Session{Token: res.Token}); err != nil {
		return nil, false, apperror.NewInternal(err)
	}
	return res.User, true, nil
}

// SignOut ends the session. The API logout is best-effort: a failure is
// logged and ignored so the local session always clears. Watchers of the
// session observe the reset.
func (s *Service) SignOut(ctx context.Context, sessionID string) error {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err == nil && TokenUsable(sess.Token, s.now()) {
		if err := s.api.Logout(ctx); err != nil {
			logger.Warn(ctx, "api logout failed, clearing session anyway", "error", err)
		}
	}
	return s.sessions.Clear(ctx, sessionID)
}

// CurrentUser resolves the signed-in user. Without a usable token it
// fails closed: Unauthorized is returned and GET /auth/me is never called.
// A 401 from the API clears the stale token.
func (s *Service) CurrentUser(ctx context.Context, sessionID string) (*User, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	if !TokenUsable(sess.Token, s.now()) {
		return nil, apperror.NewUnauthorized("authentication required")
	}
	user, err := s.api.Me(ctx)
	if err != nil {
		if apperror.IsUnauthorized(err) {
			if clearErr := s.sessions.Clear(ctx, sessionID); clearErr != nil {
				logger.Warn(ctx, "failed to clear stale session", "error", clearErr)
			}
		}
		return nil, err
	}
	return user, nil
}

// Session returns the raw session state for sessionID.
func (s *Service) Session(ctx context.Context, sessionID string) (session.Session, error) {
	return s.sessions.Get(ctx, sessionID)
}

// MarkVolunteerRegistered records a completed volunteer registration in
// the session, preserving the token.
func (s *Service) MarkVolunteerRegistered(ctx context.Context, sessionID, name string) error {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return apperror.NewInternal(err)
	}
	sess.VolunteerRegistered = true
	sess.VolunteerName = name
	return s.sessions.Put(ctx, sessionID, sess)
}

// VerifyEmail verifies the token from the verification link and returns
// the API's message.
func (s *Service) VerifyEmail(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", apperror.NewValidation("Verification token is missing")
	}
	return s.api.VerifyEmail(ctx, token)
}

// ResendVerification requests a fresh verification email.
func (s *Service) ResendVerification(ctx context.Context, email string) error {
	if !emailPattern.MatchString(email) {
		return apperror.NewValidation("Please enter a valid email address")
	}
	return s.api.ResendVerification(ctx, email)
}
