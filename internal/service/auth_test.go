package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/guiatur/guiatur-api/internal/domain/auth"
	apperrors "github.com/guiatur/guiatur-api/internal/errors"
	mocks "github.com/guiatur/guiatur-api/internal/mocks/auth"
	"github.com/guiatur/guiatur-api/internal/ports"
)

// mockSessionStore is a test helper for testing session store errors.
type mockSessionStore struct {
	saveFunc        func(context.Context, domainauth.Session) error
	getFunc         func(context.Context, string) (domainauth.Session, error)
	refreshFunc     func(context.Context, string, time.Duration) (domainauth.Session, error)
	lastRefreshFunc func(context.Context, string) (time.Time, error)
	deleteFunc      func(context.Context, string) error
}

func (m *mockSessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, sess)
	}
	return nil
}

func (m *mockSessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return domainauth.Session{}, nil
}

func (m *mockSessionStore) Refresh(ctx context.Context, id string, extend time.Duration) (domainauth.Session, error) {
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx, id, extend)
	}
	return domainauth.Session{}, nil
}

func (m *mockSessionStore) LastRefresh(ctx context.Context, id string) (time.Time, error) {
	if m.lastRefreshFunc != nil {
		return m.lastRefreshFunc(ctx, id)
	}
	return time.Time{}, nil
}

func (m *mockSessionStore) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func newTestAuthService(t *testing.T) (*AuthService, *mocks.MockPasswordAuthenticator, *mocks.MemorySessionStore, *mocks.MemoryLoginThrottle) {
	t.Helper()
	authenticator := mocks.NewMockPasswordAuthenticator("ana@example.com", "Sup3r@Secret")
	sessions := mocks.NewMemorySessionStore()
	throttle := mocks.NewMemoryLoginThrottle(5)
	svc := NewAuthService(AuthServiceOptions{
		Authenticator: authenticator,
		Sessions:      sessions,
		Roles:         mocks.StaticRoleResolver{Roles: map[string]domainauth.Role{"breno@ceo.com": domainauth.RoleAdmin}},
		Throttle:      throttle,
	})
	return svc, authenticator, sessions, throttle
}

func TestNewAuthService_Defaults(t *testing.T) {
	svc := NewAuthService(AuthServiceOptions{})

	assert.Equal(t, defaultSessionTTL, svc.sessionTTL)
	assert.Equal(t, defaultRefreshInterval, svc.refreshInterval)
	assert.NotNil(t, svc.logger)
	assert.NotNil(t, svc.now)
}

func TestAuthService_SignIn_Success(t *testing.T) {
	svc, _, sessions, _ := newTestAuthService(t)

	result, err := svc.SignIn(context.Background(), SignInInput{Email: "  Ana@Example.com ", Password: "Sup3r@Secret"})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Session.ID)
	assert.Equal(t, "ana@example.com", result.Session.Email)
	assert.Equal(t, domainauth.RoleTourist, result.Session.Role)
	assert.Equal(t, "/", result.LandingPath)

	saved, err := sessions.Get(context.Background(), result.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Session.UserID, saved.UserID)
}

func TestAuthService_SignIn_AdminLanding(t *testing.T) {
	authenticator := mocks.NewMockPasswordAuthenticator("breno@ceo.com", "Sup3r@Secret")
	svc := NewAuthService(AuthServiceOptions{
		Authenticator: authenticator,
		Sessions:      mocks.NewMemorySessionStore(),
		Roles:         mocks.StaticRoleResolver{Roles: map[string]domainauth.Role{"breno@ceo.com": domainauth.RoleAdmin}},
		Throttle:      mocks.NewMemoryLoginThrottle(5),
	})

	result, err := svc.SignIn(context.Background(), SignInInput{Email: "breno@ceo.com", Password: "Sup3r@Secret"})

	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdmin, result.Session.Role)
	assert.Equal(t, "/admin", result.LandingPath)
}

func TestAuthService_SignIn_ValidatesInput(t *testing.T) {
	svc, authenticator, _, _ := newTestAuthService(t)

	_, err := svc.SignIn(context.Background(), SignInInput{Email: "not-an-email", Password: "Sup3r@Secret"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "email", apperrors.GetField(err))

	_, err = svc.SignIn(context.Background(), SignInInput{Email: "ana@example.com"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "password", apperrors.GetField(err))

	// Validation failures never reach the credential check.
	assert.Empty(t, authenticator.Calls)
}

func TestAuthService_SignIn_WrongPasswordRecordsFailure(t *testing.T) {
	svc, _, _, throttle := newTestAuthService(t)

	_, err := svc.SignIn(context.Background(), SignInInput{Email: "ana@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.True(t, apperrors.IsAuthRejected(err))
	assert.Equal(t, 1, throttle.Failures("ana@example.com"))
}

func TestAuthService_SignIn_SixthAttemptThrottled(t *testing.T) {
	svc, authenticator, _, _ := newTestAuthService(t)
	ctx := context.Background()

	for range 5 {
		_, err := svc.SignIn(ctx, SignInInput{Email: "ana@example.com", Password: "wrong"})
		require.Error(t, err)
		assert.True(t, apperrors.IsAuthRejected(err))
	}
	require.Len(t, authenticator.Calls, 5)

	_, err := svc.SignIn(ctx, SignInInput{Email: "ana@example.com", Password: "Sup3r@Secret"})

	require.Error(t, err)
	assert.True(t, apperrors.IsRateLimited(err))
	// The throttled attempt must not reach the credential check.
	assert.Len(t, authenticator.Calls, 5)
}

func TestAuthService_SignIn_SuccessResetsThrottle(t *testing.T) {
	svc, _, _, throttle := newTestAuthService(t)
	ctx := context.Background()

	for range 3 {
		_, _ = svc.SignIn(ctx, SignInInput{Email: "ana@example.com", Password: "wrong"})
	}
	require.Equal(t, 3, throttle.Failures("ana@example.com"))

	_, err := svc.SignIn(ctx, SignInInput{Email: "ana@example.com", Password: "Sup3r@Secret"})

	require.NoError(t, err)
	assert.Equal(t, 0, throttle.Failures("ana@example.com"))
}

func TestAuthService_SignIn_CapsExpiryAtSessionTTL(t *testing.T) {
	authenticator := mocks.NewMockPasswordAuthenticator("ana@example.com", "Sup3r@Secret")
	now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	authenticator.Identities["ana@example.com"] = domainauth.Identity{
		UserID:    "u1",
		Email:     "ana@example.com",
		ExpiresAt: now.Add(72 * time.Hour),
	}
	svc := NewAuthService(AuthServiceOptions{
		Authenticator: authenticator,
		Sessions:      mocks.NewMemorySessionStore(),
		Roles:         mocks.StaticRoleResolver{},
		Throttle:      mocks.NewMemoryLoginThrottle(5),
		SessionTTL:    time.Hour,
		Now:           func() time.Time { return now },
	})

	result, err := svc.SignIn(context.Background(), SignInInput{Email: "ana@example.com", Password: "Sup3r@Secret"})

	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), result.Session.ExpiresAt)
}

func TestAuthService_GetSession_Success(t *testing.T) {
	svc, _, sessions, _ := newTestAuthService(t)
	ctx := context.Background()
	sess := domainauth.Session{
		ID:        "sess-1",
		UserID:    "u1",
		Email:     "ana@example.com",
		Role:      domainauth.RoleTourist,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, sessions.Save(ctx, sess))

	got, err := svc.GetSession(ctx, "sess-1")

	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
}

func TestAuthService_GetSession_Expired(t *testing.T) {
	var deleted []string
	store := &mockSessionStore{
		getFunc: func(context.Context, string) (domainauth.Session, error) {
			return domainauth.Session{ID: "sess-1", UserID: "u1", ExpiresAt: time.Now().Add(-time.Hour)}, nil
		},
		deleteFunc: func(_ context.Context, id string) error {
			deleted = append(deleted, id)
			return nil
		},
	}
	svc := NewAuthService(AuthServiceOptions{
		Sessions: store,
		Roles:    mocks.StaticRoleResolver{},
		Throttle: mocks.NewMemoryLoginThrottle(5),
	})

	_, err := svc.GetSession(context.Background(), "sess-1")

	require.Error(t, err)
	assert.True(t, ErrSessionExpired(err))
	assert.Equal(t, []string{"sess-1"}, deleted)
}

func TestAuthService_GetSession_KeepaliveRefreshesStaleMarker(t *testing.T) {
	sessions := mocks.NewMemorySessionStore()
	ctx := context.Background()
	require.NoError(t, sessions.Save(ctx, domainauth.Session{
		ID:        "sess-1",
		UserID:    "u1",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}))

	svc := NewAuthService(AuthServiceOptions{
		Sessions:        sessions,
		Roles:           mocks.StaticRoleResolver{},
		Throttle:        mocks.NewMemoryLoginThrottle(5),
		SessionTTL:      time.Hour,
		RefreshInterval: 15 * time.Minute,
	})

	// No marker yet: the first read refreshes.
	got, err := svc.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Greater(t, time.Until(got.ExpiresAt), 50*time.Minute)

	marker, err := sessions.LastRefresh(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, marker.IsZero())

	// Fresh marker: the second read leaves the session alone.
	extended := got.ExpiresAt
	got, err = svc.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, extended, got.ExpiresAt)
}

func TestAuthService_GetSession_RefreshFailureKeepsSession(t *testing.T) {
	store := &mockSessionStore{
		getFunc: func(context.Context, string) (domainauth.Session, error) {
			return domainauth.Session{ID: "sess-1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}, nil
		},
		refreshFunc: func(context.Context, string, time.Duration) (domainauth.Session, error) {
			return domainauth.Session{}, errors.New("redis down")
		},
	}
	svc := NewAuthService(AuthServiceOptions{
		Sessions: store,
		Roles:    mocks.StaticRoleResolver{},
		Throttle: mocks.NewMemoryLoginThrottle(5),
	})

	got, err := svc.GetSession(context.Background(), "sess-1")

	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
}

func TestAuthService_RefreshSession(t *testing.T) {
	svc, _, sessions, _ := newTestAuthService(t)
	ctx := context.Background()
	require.NoError(t, sessions.Save(ctx, domainauth.Session{
		ID:        "sess-1",
		UserID:    "u1",
		ExpiresAt: time.Now().Add(time.Minute),
	}))

	got, err := svc.RefreshSession(ctx, "sess-1")

	require.NoError(t, err)
	assert.Greater(t, time.Until(got.ExpiresAt), 23*time.Hour)

	marker, err := sessions.LastRefresh(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, marker.IsZero())
}

func TestAuthService_SignOut_ClearsSessionAndThrottle(t *testing.T) {
	svc, _, sessions, throttle := newTestAuthService(t)
	ctx := context.Background()

	_, _ = svc.SignIn(ctx, SignInInput{Email: "ana@example.com", Password: "wrong"})
	require.Equal(t, 1, throttle.Failures("ana@example.com"))

	require.NoError(t, sessions.Save(ctx, domainauth.Session{
		ID:        "sess-1",
		UserID:    "u1",
		Email:     "ana@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, svc.SignOut(ctx, "sess-1"))

	_, err := sessions.Get(ctx, "sess-1")
	assert.Error(t, err)
	assert.Equal(t, 0, throttle.Failures("ana@example.com"))
}

func TestAuthService_SignOut_EmptySessionID(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)
	assert.NoError(t, svc.SignOut(context.Background(), ""))
}

func TestAuthService_BeginLogin(t *testing.T) {
	provider := mocks.NewMockAuthProvider()
	svc := NewAuthService(AuthServiceOptions{
		Provider: provider,
		Sessions: mocks.NewMemorySessionStore(),
		Roles:    mocks.StaticRoleResolver{},
		Throttle: mocks.NewMemoryLoginThrottle(5),
	})

	result, err := svc.BeginLogin(context.Background(), "http://localhost:8080/api/auth/callback")

	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", result.AuthURL)
	assert.Equal(t, "state-1", result.State)
	assert.Equal(t, "nonce-1", result.Nonce)
}

func TestAuthService_BeginLogin_RequiresRedirectURL(t *testing.T) {
	svc := NewAuthService(AuthServiceOptions{
		Provider: mocks.NewMockAuthProvider(),
		Sessions: mocks.NewMemorySessionStore(),
		Roles:    mocks.StaticRoleResolver{},
	})

	_, err := svc.BeginLogin(context.Background(), "")
	assert.Error(t, err)
}

func TestAuthService_BeginLogin_NoProvider(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)
	_, err := svc.BeginLogin(context.Background(), "http://localhost:8080/callback")
	assert.Error(t, err)
}

func TestAuthService_CompleteLogin(t *testing.T) {
	provider := mocks.NewMockAuthProvider()
	sessions := mocks.NewMemorySessionStore()
	svc := NewAuthService(AuthServiceOptions{
		Provider: provider,
		Sessions: sessions,
		Roles:    mocks.StaticRoleResolver{Roles: map[string]domainauth.Role{"mock.user@example.com": domainauth.RoleGuide}},
		Throttle: mocks.NewMemoryLoginThrottle(5),
	})

	result, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{Code: "code", State: "state-1", Nonce: "nonce-1"})

	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleGuide, result.Session.Role)
	assert.Equal(t, "/dashboard", result.LandingPath)

	_, err = sessions.Get(context.Background(), result.Session.ID)
	assert.NoError(t, err)
}

func TestAuthService_CompleteLogin_RequiresParams(t *testing.T) {
	svc := NewAuthService(AuthServiceOptions{
		Provider: mocks.NewMockAuthProvider(),
		Sessions: mocks.NewMemorySessionStore(),
		Roles:    mocks.StaticRoleResolver{},
	})
	ctx := context.Background()

	_, err := svc.CompleteLogin(ctx, CompleteLoginInput{State: "s", Nonce: "n"})
	assert.Error(t, err)
	_, err = svc.CompleteLogin(ctx, CompleteLoginInput{Code: "c", Nonce: "n"})
	assert.Error(t, err)
	_, err = svc.CompleteLogin(ctx, CompleteLoginInput{Code: "c", State: "s"})
	assert.Error(t, err)
}

func TestAuthService_SignIn_SaveError(t *testing.T) {
	store := &mockSessionStore{
		saveFunc: func(context.Context, domainauth.Session) error {
			return errors.New("redis down")
		},
	}
	svc := NewAuthService(AuthServiceOptions{
		Authenticator: mocks.NewMockPasswordAuthenticator("ana@example.com", "Sup3r@Secret"),
		Sessions:      store,
		Roles:         mocks.StaticRoleResolver{},
		Throttle:      mocks.NewMemoryLoginThrottle(5),
	})

	_, err := svc.SignIn(context.Background(), SignInInput{Email: "ana@example.com", Password: "Sup3r@Secret"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save session")
}

var _ ports.SessionStore = (*mockSessionStore)(nil)
