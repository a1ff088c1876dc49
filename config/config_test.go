package config

import (
	"reflect"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Auth.Mode != AuthModePassword {
		t.Errorf("expected default auth mode password, got %q", cfg.Auth.Mode)
	}
	if got, want := cfg.Auth.AdminEmails, []string{"breno@ceo.com"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected default admin emails %v, got %v", want, got)
	}
	if cfg.Auth.SessionTTL != 24*time.Hour {
		t.Errorf("expected default session TTL 24h, got %v", cfg.Auth.SessionTTL)
	}
	if cfg.Auth.RefreshInterval != 15*time.Minute {
		t.Errorf("expected default refresh interval 15m, got %v", cfg.Auth.RefreshInterval)
	}
	if cfg.Auth.MaxLoginAttempts != 5 {
		t.Errorf("expected default login attempt budget 5, got %d", cfg.Auth.MaxLoginAttempts)
	}
	if cfg.Auth.LoginAttemptWindow != 15*time.Minute {
		t.Errorf("expected default attempt window 15m, got %v", cfg.Auth.LoginAttemptWindow)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.HTTP.Addr)
	}
	if cfg.Postgres.Name != "guiatur" {
		t.Errorf("expected default database name guiatur, got %q", cfg.Postgres.Name)
	}
	if !cfg.Postgres.RunMigrationsOnStart {
		t.Error("expected migrations to run on start by default")
	}
	if cfg.Redis.URI != "localhost:6379" {
		t.Errorf("expected default redis URI localhost:6379, got %q", cfg.Redis.URI)
	}
	if cfg.Email.Enabled {
		t.Error("expected email notifications disabled by default")
	}
	if cfg.IsDev {
		t.Error("expected dev mode off by default")
	}
}

func TestAppConfig_ParseAuthEnv(t *testing.T) {
	t.Setenv("AUTH_MODE", "oidc")
	t.Setenv("AUTH_ADMIN_EMAILS", "breno@ceo.com;ops@guiatur.com.br")
	t.Setenv("SESSION_TTL", "8h")
	t.Setenv("SESSION_REFRESH_INTERVAL", "5m")
	t.Setenv("AUTH_MAX_LOGIN_ATTEMPTS", "3")
	t.Setenv("AUTH_LOGIN_ATTEMPT_WINDOW", "1m")
	t.Setenv("AUTH_RESET_TOKEN_TTL", "20m")
	t.Setenv("OIDC_CLIENT_ID", "app-client")
	t.Setenv("OIDC_CLIENT_SECRET", "super-secret")
	t.Setenv("OIDC_REDIRECT_URL", "https://guiatur.example.com/auth/callback")
	t.Setenv("OIDC_DISCOVERY_URL", "https://login.example.com/.well-known/openid-configuration")
	t.Setenv("OIDC_SCOPE", "openid profile email")
	t.Setenv("DEV_AUTH_USER_ID", "dev-user")
	t.Setenv("DEV_AUTH_NAME", "Dev User")
	t.Setenv("DEV_AUTH_EMAIL", "dev@example.com")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}

	expected := AuthConfig{
		Mode: AuthModeOIDC,
		OIDC: OIDCConfig{
			ClientID:     "app-client",
			ClientSecret: "super-secret",
			RedirectURL:  "https://guiatur.example.com/auth/callback",
			Scope:        "openid profile email",
			DiscoveryURL: "https://login.example.com/.well-known/openid-configuration",
		},
		DevAuth: DevAuthConfig{
			UserID: "dev-user",
			Name:   "Dev User",
			Email:  "dev@example.com",
		},
		AdminEmails:        []string{"breno@ceo.com", "ops@guiatur.com.br"},
		SessionTTL:         8 * time.Hour,
		RefreshInterval:    5 * time.Minute,
		MaxLoginAttempts:   3,
		LoginAttemptWindow: time.Minute,
		ResetTokenTTL:      20 * time.Minute,
	}

	if !reflect.DeepEqual(cfg.Auth, expected) {
		t.Fatalf("unexpected auth configuration:\nexpected: %#v\ngot:      %#v", expected, cfg.Auth)
	}
}

func TestAuthMode_UnmarshalText(t *testing.T) {
	tests := []struct {
		input       string
		expected    AuthMode
		expectError bool
	}{
		{input: "password", expected: AuthModePassword},
		{input: "oidc", expected: AuthModeOIDC},
		{input: "mock", expected: AuthModeMock},
		{input: "OIDC", expected: AuthModeOIDC},
		{input: "oauth", expectError: true},
		{input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var mode AuthMode
			err := mode.UnmarshalText([]byte(tt.input))
			if tt.expectError {
				if err == nil {
					t.Errorf("expected error for %q but got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if mode != tt.expected {
				t.Errorf("expected mode %q, got %q", tt.expected, mode)
			}
		})
	}
}

func TestAuthConfig_SanitizeClampsRefreshInterval(t *testing.T) {
	cfg := AuthConfig{
		SessionTTL:      time.Hour,
		RefreshInterval: 2 * time.Hour,
	}
	cfg.Sanitize()

	if cfg.RefreshInterval != time.Hour {
		t.Errorf("expected refresh interval clamped to session TTL, got %v", cfg.RefreshInterval)
	}
	if cfg.MaxLoginAttempts != 5 {
		t.Errorf("expected zero attempt budget to fall back to 5, got %d", cfg.MaxLoginAttempts)
	}
	if cfg.LoginAttemptWindow != 15*time.Minute {
		t.Errorf("expected zero attempt window to fall back to 15m, got %v", cfg.LoginAttemptWindow)
	}
	if cfg.ResetTokenTTL != 30*time.Minute {
		t.Errorf("expected zero reset token TTL to fall back to 30m, got %v", cfg.ResetTokenTTL)
	}
}

func TestHTTPConfig_SanitizeClampsCompressionLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		expected int
	}{
		{name: "below range", level: 0, expected: 1},
		{name: "in range", level: 6, expected: 6},
		{name: "above range", level: 12, expected: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := HTTPConfig{CompressionLevel: tt.level}
			cfg.Sanitize()
			if cfg.CompressionLevel != tt.expected {
				t.Errorf("expected level %d, got %d", tt.expected, cfg.CompressionLevel)
			}
		})
	}
}

func TestEmailConfig_Sanitize(t *testing.T) {
	cfg := EmailConfig{Timeout: -1, RetryLimit: -5}
	cfg.Sanitize()

	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected timeout fallback 10s, got %v", cfg.Timeout)
	}
	if cfg.RetryLimit != 0 {
		t.Errorf("expected retry limit clamped to 0, got %d", cfg.RetryLimit)
	}
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	tests := []struct {
		name     string
		dev      bool
		nodeEnv  string
		expected bool
	}{
		{name: "explicit dev flag", dev: true, expected: true},
		{name: "node env development", nodeEnv: "development", expected: true},
		{name: "node env dev", nodeEnv: "dev", expected: true},
		{name: "node env production", nodeEnv: "production", expected: false},
		{name: "nothing set", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NODE_ENV", tt.nodeEnv)
			cfg := AppConfig{IsDev: tt.dev}
			cfg.Sanitize()
			if cfg.IsDev != tt.expected {
				t.Errorf("expected IsDev=%v, got %v", tt.expected, cfg.IsDev)
			}
		})
	}
}
