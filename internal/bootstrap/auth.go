package bootstrap

import (
	"log/slog"

	"github.com/guiatur/guiatur-api/config"
	"github.com/guiatur/guiatur-api/internal/adapters/authroles"
	"github.com/guiatur/guiatur-api/internal/adapters/devauth"
	"github.com/guiatur/guiatur-api/internal/adapters/oidc"
	redisadapter "github.com/guiatur/guiatur-api/internal/adapters/redis"
	"github.com/guiatur/guiatur-api/internal/ports"
	"github.com/guiatur/guiatur-api/internal/service"
	"github.com/redis/go-redis/v9"
)

// AuthConfig contains configuration for the auth service.
type AuthConfig struct {
	Auth        config.AuthConfig
	RedisClient redis.UniversalClient

	// Authenticator verifies password credentials; usually the user repo.
	Authenticator ports.PasswordAuthenticator
	// RoleLookup reads stored profile roles; usually the user repo.
	RoleLookup ports.ProfileRoleLookup

	Logger *slog.Logger
}

// BuildAuthService creates an auth service based on the configured auth mode.
// Returns nil if auth is not configured or configuration is invalid, which
// leaves every guarded route closed.
func BuildAuthService(cfg AuthConfig) *service.AuthService {
	if cfg.RedisClient == nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("auth service disabled: redis client not configured", "mode", cfg.Auth.Mode)
		}
		return nil
	}

	// Sessions and throttling live in Redis regardless of auth mode.
	sessionStore := redisadapter.NewSessionStoreWithPrefix(cfg.RedisClient, "session:")
	throttle := redisadapter.NewLoginThrottleWithLimits(
		cfg.RedisClient,
		cfg.Auth.MaxLoginAttempts,
		cfg.Auth.LoginAttemptWindow,
	)
	roles := authroles.NewResolver(cfg.Auth.AdminEmails, cfg.RoleLookup, cfg.Logger)

	opts := service.AuthServiceOptions{
		Authenticator:   cfg.Authenticator,
		Sessions:        sessionStore,
		Roles:           roles,
		Throttle:        throttle,
		SessionTTL:      cfg.Auth.SessionTTL,
		RefreshInterval: cfg.Auth.RefreshInterval,
		Logger:          cfg.Logger,
	}

	switch cfg.Auth.Mode {
	case config.AuthModePassword:
		if cfg.Authenticator == nil {
			if cfg.Logger != nil {
				cfg.Logger.Warn("AuthModePassword selected but no authenticator available; auth disabled")
			}
			return nil
		}

	case config.AuthModeOIDC:
		prov := buildOIDCProvider(cfg)
		if prov == nil {
			return nil
		}
		opts.Provider = prov

	case config.AuthModeMock:
		prov := buildDevProvider(cfg)
		if prov == nil {
			return nil
		}
		opts.Provider = prov

	default:
		return nil
	}

	return service.NewAuthService(opts)
}

func buildDevProvider(cfg AuthConfig) *devauth.Provider {
	// Explicitly enabled mock mode; build a local provider.
	prov, err := devauth.NewProvider(devauth.Config{
		UserID: cfg.Auth.DevAuth.UserID,
		Name:   cfg.Auth.DevAuth.Name,
		Email:  cfg.Auth.DevAuth.Email,
		// session duration defaults inside provider
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create dev auth provider, auth disabled", "error", err)
		}
		return nil
	}
	return prov
}

func buildOIDCProvider(cfg AuthConfig) *oidc.Provider {
	// Only enable when fully configured
	oc := cfg.Auth.OIDC
	if oc.DiscoveryURL == "" || oc.ClientID == "" || oc.ClientSecret == "" {
		if cfg.Logger != nil {
			cfg.Logger.Warn("AuthModeOIDC selected but required config missing; auth disabled",
				"discovery_url_empty", oc.DiscoveryURL == "",
				"client_id_empty", oc.ClientID == "",
				"client_secret_empty", oc.ClientSecret == "",
			)
		}
		return nil
	}

	prov, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     oc.ClientID,
		ClientSecret: oc.ClientSecret,
		RedirectURL:  oc.RedirectURL,
		Scope:        oc.Scope,
		DiscoveryURL: oc.DiscoveryURL,
		LogoutURL:    oc.LogoutURL,
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create OIDC provider, auth disabled", "error", err)
		}
		return nil
	}
	return prov
}
