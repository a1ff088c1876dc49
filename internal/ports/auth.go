package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"time"

	domainauth "github.com/guiatur/guiatur-api/internal/domain/auth"
)

// Credentials carries a password sign-in attempt.
type Credentials struct {
	Email    string
	Password string
}

// PasswordAuthenticator verifies credentials against the account store and
// returns the authenticated identity.
type PasswordAuthenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (domainauth.Identity, error)
}

// BeginInput carries inputs for initiating a federated auth flow.
type BeginInput struct {
	RedirectURL string
}

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// AuthProvider initiates and completes a federated login flow against an
// external IdP. Used only when social login is enabled.
type AuthProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying state and nonce, and returns the authenticated identity.
	Exchange(ctx context.Context, in ExchangeInput) (domainauth.Identity, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	// Refresh extends the session expiry and returns the updated session.
	Refresh(ctx context.Context, id string, extend time.Duration) (domainauth.Session, error)
	// LastRefresh returns when the session was last refreshed, or the zero
	// time when no marker exists.
	LastRefresh(ctx context.Context, id string) (time.Time, error)
	Delete(ctx context.Context, id string) error
}

// RoleResolver maps an authenticated identity to exactly one role. It
// never fails: lookup errors degrade to the tourist role.
type RoleResolver interface {
	Resolve(ctx context.Context, identity domainauth.Identity) domainauth.Role
}

// ProfileRoleLookup reads the stored role of a user profile by identity id.
type ProfileRoleLookup interface {
	RoleByID(ctx context.Context, userID string) (domainauth.Role, error)
}

// ResetTokenStore persists single-use password reset tokens. A token maps
// to the account it was issued for and expires on its own.
type ResetTokenStore interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	// Consume returns the user ID a token was issued for and deletes it,
	// so a token never authorizes more than one reset.
	Consume(ctx context.Context, token string) (string, error)
}

// LoginThrottle gates repeated sign-in failures per normalized email.
type LoginThrottle interface {
	// Allow reports whether a sign-in attempt may proceed. A throttled
	// attempt must not reach the credential check.
	Allow(ctx context.Context, email string) (bool, error)
	// RecordFailure registers a failed attempt and its timestamp.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the counters, e.g. after a successful sign-in.
	Reset(ctx context.Context, email string) error
}
