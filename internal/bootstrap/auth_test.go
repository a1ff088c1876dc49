package bootstrap

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/guiatur/guiatur-api/config"
	authmocks "github.com/guiatur/guiatur-api/internal/mocks/auth"
)

func TestBuildAuthServiceReturnsNilWithoutRedis(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		auth config.AuthConfig
	}{
		{
			name: "password mode",
			auth: config.AuthConfig{
				Mode:        config.AuthModePassword,
				AdminEmails: []string{"breno@ceo.com"},
			},
		},
		{
			name: "mock mode",
			auth: config.AuthConfig{
				Mode: config.AuthModeMock,
				DevAuth: config.DevAuthConfig{
					UserID: "dev",
					Email:  "dev@example.com",
				},
			},
		},
		{
			name: "oidc mode",
			auth: config.AuthConfig{
				Mode: config.AuthModeOIDC,
				OIDC: config.OIDCConfig{
					ClientID:     "client-id",
					ClientSecret: "client-secret",
					DiscoveryURL: "https://issuer.example.com",
					RedirectURL:  "https://app.example.com/auth/callback",
					Scope:        "openid",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := AuthConfig{
				Auth:        tt.auth,
				RedisClient: nil,
				Logger:      logger,
			}

			if svc := BuildAuthService(cfg); svc != nil {
				t.Fatalf("BuildAuthService() = %v, want nil", svc)
			}
		})
	}
}

func TestBuildAuthServiceReturnsNilWithoutAuthenticator(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := AuthConfig{
		Auth: config.AuthConfig{
			Mode:               config.AuthModePassword,
			AdminEmails:        []string{"breno@ceo.com"},
			SessionTTL:         time.Hour,
			RefreshInterval:    time.Minute,
			MaxLoginAttempts:   5,
			LoginAttemptWindow: time.Minute,
		},
		RedisClient: unreachableRedisClient(),
		Logger:      logger,
	}

	if svc := BuildAuthService(cfg); svc != nil {
		t.Fatalf("BuildAuthService() = %v, want nil", svc)
	}
}

func TestBuildAuthServiceReturnsNilForIncompleteOIDC(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := AuthConfig{
		Auth: config.AuthConfig{
			Mode: config.AuthModeOIDC,
			OIDC: config.OIDCConfig{
				ClientID: "client-id",
				// secret and discovery URL missing
			},
		},
		RedisClient:   unreachableRedisClient(),
		Authenticator: authmocks.NewMockPasswordAuthenticator("ana@example.com", "Sup3r@Secret"),
		Logger:        logger,
	}

	if svc := BuildAuthService(cfg); svc != nil {
		t.Fatalf("BuildAuthService() = %v, want nil", svc)
	}
}

func TestBuildAuthServicePasswordMode(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := AuthConfig{
		Auth: config.AuthConfig{
			Mode:               config.AuthModePassword,
			AdminEmails:        []string{"breno@ceo.com"},
			SessionTTL:         time.Hour,
			RefreshInterval:    time.Minute,
			MaxLoginAttempts:   5,
			LoginAttemptWindow: time.Minute,
		},
		RedisClient:   unreachableRedisClient(),
		Authenticator: authmocks.NewMockPasswordAuthenticator("ana@example.com", "Sup3r@Secret"),
		Logger:        logger,
	}

	if svc := BuildAuthService(cfg); svc == nil {
		t.Fatal("BuildAuthService() = nil, want service")
	}
}
