package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModePassword verifies credentials against the local account store.
	AuthModePassword AuthMode = "password"
	// AuthModeOIDC uses an external OIDC provider for authentication.
	AuthModeOIDC AuthMode = "oidc"
	// AuthModeMock uses mock/dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "password", "oidc", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: password, oidc, mock)", v)
	}
}

// OIDCConfig contains OIDC provider configuration (used when Mode=oidc).
type OIDCConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"guiatur"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:"guiatur"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
	LogoutURL    string `env:"LOGOUT_URL"`
}

// DevAuthConfig controls the mock authentication identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	UserID string `env:"USER_ID" envDefault:"dev-user"`
	Name   string `env:"NAME"    envDefault:"Dev User"`
	Email  string `env:"EMAIL"   envDefault:"dev@example.com"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which authentication provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"password"`

	// OIDC configuration (used when Mode=oidc).
	OIDC OIDCConfig `envPrefix:"OIDC_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	// AdminEmails lists the accounts granted the admin role regardless of
	// their profile type.
	AdminEmails []string `env:"AUTH_ADMIN_EMAILS" envDefault:"breno@ceo.com" envSeparator:";"`

	// SessionTTL bounds session lifetime in Redis.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// RefreshInterval controls how often an active session has its TTL
	// extended on read.
	RefreshInterval time.Duration `env:"SESSION_REFRESH_INTERVAL" envDefault:"15m"`

	// MaxLoginAttempts is the per-email failed sign-in budget before
	// throttling kicks in. With the default of 5, the sixth attempt
	// inside the window is rejected.
	MaxLoginAttempts int `env:"AUTH_MAX_LOGIN_ATTEMPTS" envDefault:"5"`

	// LoginAttemptWindow is how long a failed-attempt counter lives.
	LoginAttemptWindow time.Duration `env:"AUTH_LOGIN_ATTEMPT_WINDOW" envDefault:"15m"`

	// ResetTokenTTL is how long a password reset link stays usable.
	ResetTokenTTL time.Duration `env:"AUTH_RESET_TOKEN_TTL" envDefault:"30m"`
}

// Sanitize applies guardrails to authentication configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = 24 * time.Hour
	}
	if a.RefreshInterval <= 0 {
		a.RefreshInterval = 15 * time.Minute
	}
	// The refresh marker is pointless when it outlives the session itself.
	if a.RefreshInterval > a.SessionTTL {
		a.RefreshInterval = a.SessionTTL
	}
	if a.MaxLoginAttempts <= 0 {
		a.MaxLoginAttempts = 5
	}
	if a.LoginAttemptWindow <= 0 {
		a.LoginAttemptWindow = 15 * time.Minute
	}
	if a.ResetTokenTTL <= 0 {
		a.ResetTokenTTL = 30 * time.Minute
	}
}
