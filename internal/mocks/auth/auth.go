package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainauth "github.com/guiatur/guiatur-api/internal/domain/auth"
	"github.com/guiatur/guiatur-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.PasswordAuthenticator = (*MockPasswordAuthenticator)(nil)
	_ ports.AuthProvider          = (*MockAuthProvider)(nil)
	_ ports.SessionStore          = (*MemorySessionStore)(nil)
	_ ports.RoleResolver          = (*StaticRoleResolver)(nil)
	_ ports.LoginThrottle         = (*MemoryLoginThrottle)(nil)
)

// ErrNotFound is returned by mocks when an entity is not present.
type notFoundError struct{}

func (notFoundError) Error() string { return "not found" }

var ErrNotFound error = notFoundError{}

// MockPasswordAuthenticator verifies credentials against a fixed table of
// accounts, or delegates to AuthenticateFunc when set.
type MockPasswordAuthenticator struct {
	AuthenticateFunc func(ctx context.Context, creds ports.Credentials) (domainauth.Identity, error)

	// Accounts maps normalized email to the accepted password.
	Accounts map[string]string
	// Identities maps normalized email to the identity returned on success.
	Identities map[string]domainauth.Identity

	// Calls records every attempted email in order.
	Calls []string
}

// NewMockPasswordAuthenticator creates an authenticator with a single account.
func NewMockPasswordAuthenticator(email, password string) *MockPasswordAuthenticator {
	email = domainauth.NormalizeEmail(email)
	return &MockPasswordAuthenticator{
		Accounts: map[string]string{email: password},
		Identities: map[string]domainauth.Identity{
			email: {
				UserID:    "mock-user-1",
				Name:      "Mock User",
				Email:     email,
				ExpiresAt: time.Now().Add(time.Hour),
			},
		},
	}
}

func (m *MockPasswordAuthenticator) Authenticate(ctx context.Context, creds ports.Credentials) (domainauth.Identity, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, creds)
	}

	email := domainauth.NormalizeEmail(creds.Email)
	m.Calls = append(m.Calls, email)

	want, ok := m.Accounts[email]
	if !ok || want != creds.Password {
		return domainauth.Identity{}, errors.New("invalid email or password")
	}

	id, ok := m.Identities[email]
	if !ok {
		id = domainauth.Identity{UserID: "mock-" + email, Email: email}
	}
	if id.ExpiresAt.IsZero() {
		id.ExpiresAt = time.Now().Add(time.Hour)
	}
	return id, nil
}

// MockAuthProvider simulates an IdP for tests with deterministic state/nonce handling.
type MockAuthProvider struct {
	BeginFunc    func(ctx context.Context, in ports.BeginInput) (authURL, state, nonce string, err error)
	ExchangeFunc func(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, error)

	// Deterministic values for predictable testing
	AuthURL     string
	StatePrefix string
	NoncePrefix string
	DefaultUser domainauth.Identity

	// Internal state tracking for deterministic behavior
	callCount int
}

// NewMockAuthProvider creates a MockAuthProvider with sensible defaults.
func NewMockAuthProvider() *MockAuthProvider {
	return &MockAuthProvider{
		AuthURL:     "https://mock-idp/auth",
		StatePrefix: "state",
		NoncePrefix: "nonce",
		DefaultUser: domainauth.Identity{
			UserID:    "mock-user-1",
			Name:      "Mock User",
			Email:     "mock.user@example.com",
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}
}

func (m *MockAuthProvider) Begin(ctx context.Context, in ports.BeginInput) (string, string, string, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx, in)
	}

	m.callCount++
	authURL := m.AuthURL
	if authURL == "" {
		authURL = "https://mock-idp/auth"
	}

	statePrefix := m.StatePrefix
	if statePrefix == "" {
		statePrefix = "state"
	}
	noncePrefix := m.NoncePrefix
	if noncePrefix == "" {
		noncePrefix = "nonce"
	}

	state := fmt.Sprintf("%s-%d", statePrefix, m.callCount)
	nonce := fmt.Sprintf("%s-%d", noncePrefix, m.callCount)

	return authURL, state, nonce, nil
}

func (m *MockAuthProvider) Exchange(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, in)
	}

	// Return a copy of the default user with a fresh expiration time
	user := m.DefaultUser
	if user.UserID == "" {
		user = domainauth.Identity{
			UserID: "mock-user-1",
			Name:   "Mock User",
			Email:  "mock.user@example.com",
		}
	}
	user.ExpiresAt = time.Now().Add(time.Hour)

	return user, nil
}

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	sessions  map[string]domainauth.Session
	refreshed map[string]time.Time

	// Now overrides the clock when set, for deterministic expiry tests.
	Now func() time.Time
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions:  make(map[string]domainauth.Session),
		refreshed: make(map[string]time.Time),
	}
}

func (m *MemorySessionStore) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}
	if !sess.ExpiresAt.IsZero() && !sess.ExpiresAt.After(m.now()) {
		delete(m.sessions, id)
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Refresh(ctx context.Context, id string, extend time.Duration) (domainauth.Session, error) {
	sess, err := m.Get(ctx, id)
	if err != nil {
		return domainauth.Session{}, err
	}
	sess.ExpiresAt = m.now().Add(extend)
	m.sessions[id] = sess
	m.refreshed[id] = m.now()
	return sess, nil
}

func (m *MemorySessionStore) LastRefresh(_ context.Context, id string) (time.Time, error) {
	return m.refreshed[id], nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	delete(m.sessions, id)
	delete(m.refreshed, id)
	return nil
}

// StaticRoleResolver resolves roles from a fixed per-email map with a
// default fallback. The zero value resolves every identity to tourist.
type StaticRoleResolver struct {
	// Roles maps normalized email to role.
	Roles map[string]domainauth.Role
	// Default is returned when the email is absent from Roles. Empty
	// defaults to tourist.
	Default domainauth.Role
}

func (m StaticRoleResolver) Resolve(_ context.Context, identity domainauth.Identity) domainauth.Role {
	if r, ok := m.Roles[domainauth.NormalizeEmail(identity.Email)]; ok {
		return r
	}
	if m.Default != "" {
		return m.Default
	}
	return domainauth.RoleTourist
}

// MemoryLoginThrottle counts failures per normalized email in memory.
type MemoryLoginThrottle struct {
	// Max is the number of failures after which Allow denies. Zero means 5.
	Max int

	failures map[string]int
}

// NewMemoryLoginThrottle creates a throttle with the given failure limit.
func NewMemoryLoginThrottle(max int) *MemoryLoginThrottle {
	return &MemoryLoginThrottle{Max: max, failures: make(map[string]int)}
}

func (m *MemoryLoginThrottle) limit() int {
	if m.Max > 0 {
		return m.Max
	}
	return 5
}

func (m *MemoryLoginThrottle) Allow(_ context.Context, email string) (bool, error) {
	return m.failures[domainauth.NormalizeEmail(email)] < m.limit(), nil
}

func (m *MemoryLoginThrottle) RecordFailure(_ context.Context, email string) error {
	if m.failures == nil {
		m.failures = make(map[string]int)
	}
	m.failures[domainauth.NormalizeEmail(email)]++
	return nil
}

func (m *MemoryLoginThrottle) Reset(_ context.Context, email string) error {
	delete(m.failures, domainauth.NormalizeEmail(email))
	return nil
}

// Failures returns the current failure count for an email.
func (m *MemoryLoginThrottle) Failures(email string) int {
	return m.failures[domainauth.NormalizeEmail(email)]
}
