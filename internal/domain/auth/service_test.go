package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bytebasket/internal/core/apperror"
	"bytebasket/internal/infrastructure/session"
)

type mockAuthAPI struct {
	loginResult *AuthResult
	loginErr    error
	meResult    *User
	meErr       error
	logoutErr   error

	meCalls     int
	logoutCalls int
}

func (m *mockAuthAPI) Register(ctx context.Context, in SignUpInput) (*AuthResult, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthAPI) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthAPI) Logout(ctx context.Context) error {
	m.logoutCalls++
	return m.logoutErr
}
func (m *mockAuthAPI) Me(ctx context.Context) (*User, error) {
	m.meCalls++
	return m.meResult, m.meErr
}
func (m *mockAuthAPI) VerifyEmail(ctx context.Context, token string) (string, error) {
	return "Email verified successfully", nil
}
func (m *mockAuthAPI) ResendVerification(ctx context.Context, email string) error {
	return nil
}

func newTestService(api *mockAuthAPI) (*Service, session.Store) {
	store := session.NewMemoryStore(time.Hour)
	return NewService(api, store), store
}

func TestSignInStoresToken(t *testing.T) {
	api := &mockAuthAPI{loginResult: &AuthResult{Token: "tok-1", User: &User{ID: "u1", Name: "Dana"}}}
	svc, store := newTestService(api)
	defer store.Close()

	user, err := svc.SignIn(context.Background(), "sid", Credentials{Email: "dana@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "Dana", user.Name)

	sess, err := store.Get(context.Background(), "sid")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", sess.Token)
}

func TestSignInValidationBlocksAPI(t *testing.T) {
	api := &mockAuthAPI{}
	svc, store := newTestService(api)
	defer store.Close()

	_, err := svc.SignIn(context.Background(), "sid", Credentials{})
	assert.True(t, apperror.IsValidation(err))
	fields := apperror.FieldErrors(err)
	assert.Equal(t, "Email is required", fields["email"])
	assert.Equal(t, "Password is required", fields["password"])
}

func TestCurrentUserFailsClosedWithoutToken(t *testing.T) {
	api := &mockAuthAPI{meResult: &User{ID: "u1"}}
	svc, store := newTestService(api)
	defer store.Close()

	_, err := svc.CurrentUser(context.Background(), "sid")
	assert.True(t, apperror.IsUnauthorized(err))
	assert.Equal(t, 0, api.meCalls, "no token must mean no /auth/me call")
}

func TestCurrentUserClearsSessionOn401(t *testing.T) {
	api := &mockAuthAPI{meErr: apperror.NewUpstream(401, "token invalid")}
	svc, store := newTestService(api)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "sid", session.Session{Token: "stale"}))

	_, err := svc.CurrentUser(ctx, "sid")
	assert.True(t, apperror.IsUnauthorized(err))
	assert.Equal(t, 1, api.meCalls)

	sess, err := store.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Empty(t, sess.Token)
}

func TestSignOutClearsEverythingEvenWhenAPIFails(t *testing.T) {
	api := &mockAuthAPI{logoutErr: apperror.NewConnection(context.DeadlineExceeded)}
	svc, store := newTestService(api)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "sid", session.Session{
		Token:               "tok-1",
		VolunteerRegistered: true,
		VolunteerName:       "Dana",
	}))

	watch, cancel := store.Watch("sid")
	defer cancel()

	require.NoError(t, svc.SignOut(ctx, "sid"))
	assert.Equal(t, 1, api.logoutCalls)

	sess, err := store.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Empty(t, sess.Token)
	assert.False(t, sess.VolunteerRegistered)
	assert.Empty(t, sess.VolunteerName)

	select {
	case got := <-watch:
		assert.Equal(t, session.Session{}, got, "watchers observe the reset")
	case <-time.After(time.Second):
		t.Fatal("watcher did not observe logout")
	}
}

func TestMarkVolunteerRegisteredPreservesToken(t *testing.T) {
	api := &mockAuthAPI{}
	svc, store := newTestService(api)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "sid", session.Session{Token: "tok-1"}))
	require.NoError(t, svc.MarkVolunteerRegistered(ctx, "sid", "Dana"))

	sess, err := store.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", sess.Token)
	assert.True(t, sess.VolunteerRegistered)
	assert.Equal(t, "Dana", sess.VolunteerName)
}
