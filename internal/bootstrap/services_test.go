package bootstrap

import (
	"io"
	"log/slog"
	"testing"

	"github.com/guiatur/guiatur-api/config"
	"github.com/redis/go-redis/v9"
)

// unreachableRedisClient returns a client that is never dialed during
// construction; tests exercising wiring only must not issue commands.
//
//nolint:ireturn // tests exercise the same interface the wiring uses.
func unreachableRedisClient() redis.UniversalClient {
	return redis.NewClient(&redis.Options{Addr: "localhost:1"})
}

func TestNewServicesWiresContainer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.AppConfig{
		Auth: config.AuthConfig{
			Mode:        config.AuthModePassword,
			AdminEmails: []string{"breno@ceo.com"},
		},
	}
	cfg.Sanitize()

	services := NewServices(&ServiceDeps{
		Config:      cfg,
		DB:          nil, // repos hold the handle; nothing queries during wiring
		RedisClient: unreachableRedisClient(),
		Logger:      logger,
	})

	if services.Users == nil {
		t.Error("expected user service to be wired")
	}
	if services.Guides == nil {
		t.Error("expected guide service to be wired")
	}
	if services.Tours == nil {
		t.Error("expected tour service to be wired")
	}
	if services.Bookings == nil {
		t.Error("expected booking service to be wired")
	}
	if services.Favorites == nil {
		t.Error("expected favorite service to be wired")
	}
	if services.Auth == nil {
		t.Error("expected auth service to be wired in password mode")
	}
}

func TestNewServicesDisablesAuthWithoutRedis(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	services := NewServices(&ServiceDeps{
		Config: &config.AppConfig{},
		Logger: logger,
	})

	if services.Auth != nil {
		t.Error("expected auth service to be nil without redis")
	}
	if services.Users == nil {
		t.Error("expected user service to be wired regardless of auth")
	}
}

func TestBuildEmailNotifier(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     config.EmailConfig
		wantNil bool
	}{
		{
			name:    "disabled",
			cfg:     config.EmailConfig{Enabled: false},
			wantNil: true,
		},
		{
			name: "enabled but incomplete",
			cfg: config.EmailConfig{
				Enabled:  true,
				Endpoint: "https://api.emailjs.com/api/v1.0/email/send",
				// service id, template id, public key missing
			},
			wantNil: true,
		},
		{
			name: "fully configured",
			cfg: config.EmailConfig{
				Enabled:    true,
				Endpoint:   "https://api.emailjs.com/api/v1.0/email/send",
				ServiceID:  "service_guiatur",
				TemplateID: "template_booking",
				PublicKey:  "public-key",
			},
			wantNil: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := buildEmailNotifier(tt.cfg, logger)
			if (notifier == nil) != tt.wantNil {
				t.Errorf("buildEmailNotifier() nil=%v, want nil=%v", notifier == nil, tt.wantNil)
			}
		})
	}
}
