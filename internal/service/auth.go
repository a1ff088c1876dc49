package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/guiatur/guiatur-api/internal/domain/auth"
	"github.com/guiatur/guiatur-api/internal/domain/model"
	apperrors "github.com/guiatur/guiatur-api/internal/errors"
	"github.com/guiatur/guiatur-api/internal/ports"
)

const (
	defaultSessionTTL      = 24 * time.Hour
	defaultRefreshInterval = 15 * time.Minute
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Authenticator ports.PasswordAuthenticator
	Provider      ports.AuthProvider
	Sessions      ports.SessionStore
	Roles         ports.RoleResolver
	Throttle      ports.LoginThrottle

	// SessionTTL bounds session lifetime; RefreshInterval controls how
	// often the keepalive marker triggers a TTL extension.
	SessionTTL      time.Duration
	RefreshInterval time.Duration

	Logger *slog.Logger
	Now    func() time.Time
}

// AuthService orchestrates sign-in flows by coordinating credential checks,
// throttling, role resolution, and session persistence.
type AuthService struct {
	authenticator ports.PasswordAuthenticator
	provider      ports.AuthProvider
	sessions      ports.SessionStore
	roles         ports.RoleResolver
	throttle      ports.LoginThrottle

	sessionTTL      time.Duration
	refreshInterval time.Duration

	logger *slog.Logger
	now    func() time.Time
}

var errSessionExpired = errors.New("session expired")

// ErrSessionExpired reports whether the error marks an expired session.
func ErrSessionExpired(err error) bool {
	return errors.Is(err, errSessionExpired)
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	interval := opts.RefreshInterval
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		authenticator:   opts.Authenticator,
		provider:        opts.Provider,
		sessions:        opts.Sessions,
		roles:           opts.Roles,
		throttle:        opts.Throttle,
		sessionTTL:      ttl,
		refreshInterval: interval,
		logger:          logger,
		now:             now,
	}
}

// SignInInput carries a password sign-in attempt.
type SignInInput struct {
	Email    string
	Password string
}

// SignInResult contains the established session and where the browser
// should land after sign-in, absent a stashed redirect.
type SignInResult struct {
	Session     domainauth.Session
	LandingPath string
}

// SignIn validates the credentials, enforces the per-email attempt limit,
// resolves the role and persists a session. A throttled attempt never
// reaches the credential check.
func (s *AuthService) SignIn(ctx context.Context, input SignInInput) (*SignInResult, error) {
	email := domainauth.NormalizeEmail(input.Email)
	if err := model.ValidateEmail(email); err != nil {
		return nil, apperrors.ValidationField("email", err.Error())
	}
	if input.Password == "" {
		return nil, apperrors.ValidationField("password", "password is required")
	}

	allowed, err := s.throttle.Allow(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check sign-in attempts: %w", err)
	}
	if !allowed {
		s.logger.WarnContext(ctx, "sign-in throttled", "email", email)
		return nil, apperrors.RateLimited("Too many failed attempts. Try again later.")
	}

	identity, err := s.authenticator.Authenticate(ctx, ports.Credentials{Email: email, Password: input.Password})
	if err != nil {
		if recordErr := s.throttle.RecordFailure(ctx, email); recordErr != nil {
			s.logger.ErrorContext(ctx, "record sign-in failure", "email", email, "error", recordErr)
		}
		// The cause is kept on the error but the client always sees the same
		// message, so unknown-email and wrong-password are indistinguishable.
		// Provider errors on the federated path surface via CompleteLogin.
		return nil, apperrors.AuthRejected("Invalid email or password.", err)
	}

	if resetErr := s.throttle.Reset(ctx, email); resetErr != nil {
		s.logger.ErrorContext(ctx, "reset sign-in attempts", "email", email, "error", resetErr)
	}

	session, err := s.establishSession(ctx, identity)
	if err != nil {
		return nil, err
	}

	return &SignInResult{
		Session:     session,
		LandingPath: session.Role.LandingPath(),
	}, nil
}

// BeginLoginResult contains the result of beginning a federated login flow.
type BeginLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginLogin initiates a federated login flow and returns the provider auth
// URL with state and nonce. Only available when a provider is configured.
func (s *AuthService) BeginLogin(ctx context.Context, redirectURL string) (*BeginLoginResult, error) {
	if s.provider == nil {
		return nil, errors.New("federated login is not enabled")
	}
	if redirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	authURL, state, nonce, err := s.provider.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}

	return &BeginLoginResult{
		AuthURL: authURL,
		State:   state,
		Nonce:   nonce,
	}, nil
}

// CompleteLoginInput groups parameters for completing a federated login flow.
type CompleteLoginInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteLogin completes a federated login flow by exchanging the code for
// an identity, resolving the role, and persisting a session.
func (s *AuthService) CompleteLogin(ctx context.Context, input CompleteLoginInput) (*SignInResult, error) {
	if s.provider == nil {
		return nil, errors.New("federated login is not enabled")
	}
	if input.Code == "" {
		return nil, errors.New("authorization code is required")
	}
	if input.State == "" {
		return nil, errors.New("state parameter is required")
	}
	if input.Nonce == "" {
		return nil, errors.New("nonce parameter is required")
	}

	identity, err := s.provider.Exchange(ctx, ports.ExchangeInput{
		Code:  input.Code,
		State: input.State,
		Nonce: input.Nonce,
	})
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	session, err := s.establishSession(ctx, identity)
	if err != nil {
		return nil, err
	}

	return &SignInResult{
		Session:     session,
		LandingPath: session.Role.LandingPath(),
	}, nil
}

// establishSession resolves the role, mints a session id, and persists the
// session with the configured TTL.
func (s *AuthService) establishSession(ctx context.Context, identity domainauth.Identity) (domainauth.Session, error) {
	role := s.roles.Resolve(ctx, identity)

	expiresAt := identity.ExpiresAt
	if limit := s.now().Add(s.sessionTTL); expiresAt.IsZero() || expiresAt.After(limit) {
		expiresAt = limit
	}

	session := domainauth.Session{
		ID:        uuid.NewString(),
		UserID:    identity.UserID,
		Name:      identity.Name,
		Email:     identity.Email,
		Role:      role,
		ExpiresAt: expiresAt,
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return domainauth.Session{}, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

// GetSession retrieves a session by ID, extending its lifetime when the
// keepalive marker is stale. Expired sessions are removed.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if s.now().After(session.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	if refreshed, ok := s.maybeRefresh(ctx, session); ok {
		session = refreshed
	}

	return &session, nil
}

// maybeRefresh extends the session when the last refresh marker is older
// than the refresh interval or missing. Refresh failures do not invalidate
// an otherwise live session.
func (s *AuthService) maybeRefresh(ctx context.Context, session domainauth.Session) (domainauth.Session, bool) {
	last, err := s.sessions.LastRefresh(ctx, session.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "read session refresh marker", "session_id", session.ID, "error", err)
		return session, false
	}
	if !last.IsZero() && s.now().Sub(last) < s.refreshInterval {
		return session, false
	}

	refreshed, err := s.sessions.Refresh(ctx, session.ID, s.sessionTTL)
	if err != nil {
		s.logger.WarnContext(ctx, "refresh session", "session_id", session.ID, "error", err)
		return session, false
	}
	return refreshed, true
}

// RefreshSession extends the session lifetime and rewrites the keepalive marker.
func (s *AuthService) RefreshSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}
	session, err := s.sessions.Refresh(ctx, sessionID, s.sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("refresh session: %w", err)
	}
	return &session, nil
}

// SignOut removes the session and clears the sign-in attempt counters for
// the account.
func (s *AuthService) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to sign out
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err == nil {
		if resetErr := s.throttle.Reset(ctx, session.Email); resetErr != nil {
			s.logger.WarnContext(ctx, "reset sign-in attempts on sign-out", "email", session.Email, "error", resetErr)
		}
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
