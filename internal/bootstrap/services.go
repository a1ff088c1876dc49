package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/guiatur/guiatur-api/config"
	"github.com/guiatur/guiatur-api/internal/adapters/email"
	redisadapter "github.com/guiatur/guiatur-api/internal/adapters/redis"
	"github.com/guiatur/guiatur-api/internal/core"
	"github.com/guiatur/guiatur-api/internal/data"
	"github.com/guiatur/guiatur-api/internal/ports"
	"github.com/guiatur/guiatur-api/internal/service"
	"github.com/redis/go-redis/v9"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Users     *service.UserService
	Guides    *service.GuideService
	Tours     *service.TourService
	Bookings  *service.BookingService
	Favorites *service.FavoriteService
	Auth      *service.AuthService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	Users     *data.UserRepo
	Guides    *data.GuideRepo
	Tours     *data.TourRepo
	Bookings  *data.BookingRepo
	Favorites *data.FavoriteRepo
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB) *serviceRepositories {
	return &serviceRepositories{
		Users:     data.NewUserRepo(db),
		Guides:    data.NewGuideRepo(db),
		Tours:     data.NewTourRepo(db),
		Bookings:  data.NewBookingRepo(db),
		Favorites: data.NewFavoriteRepo(db),
	}
}

// buildEmailNotifier wires the email notifier when enabled. A misconfigured
// notifier logs and degrades to nil; bookings still succeed without email
// and password reset requests are refused.
func buildEmailNotifier(cfg config.EmailConfig, logger *slog.Logger) *email.Notifier {
	if !cfg.Enabled {
		return nil
	}

	notifier, err := email.NewNotifier(email.Config{
		Endpoint:        cfg.Endpoint,
		ServiceID:       cfg.ServiceID,
		TemplateID:      cfg.TemplateID,
		ResetTemplateID: cfg.ResetTemplateID,
		PublicKey:       cfg.PublicKey,
		Timeout:         cfg.Timeout,
		RetryLimit:      cfg.RetryLimit,
	})
	if err != nil {
		if logger != nil {
			logger.Warn("email notifier disabled", "error", err)
		}
		return nil
	}
	return notifier
}

// NewServices wires repositories into application services.
func NewServices(deps *ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appCfg := deps.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	repos := buildRepositories(deps.DB)

	// Assigning a typed nil adapter into the notifier ports would defeat
	// the services' nil checks, so the interfaces stay nil unless the
	// adapter is actually usable.
	notifier := buildEmailNotifier(appCfg.Email, logger)
	var bookingNotifier core.BookingNotifier
	var resetNotifier core.PasswordResetNotifier
	if notifier != nil {
		bookingNotifier = notifier
		if appCfg.Email.ResetTemplateID != "" {
			resetNotifier = notifier
		}
	}

	var resetTokens ports.ResetTokenStore
	if deps.RedisClient != nil {
		resetTokens = redisadapter.NewResetTokenStore(deps.RedisClient)
	}

	users := service.NewUserService(service.UserServiceOptions{
		Users:         repos.Users,
		Guides:        repos.Guides,
		Authenticator: repos.Users,
		ResetTokens:   resetTokens,
		ResetNotifier: resetNotifier,
		ResetTokenTTL: appCfg.Auth.ResetTokenTTL,
		BaseURL:       appCfg.HTTP.BaseURL,
		Logger:        logger,
	})
	guides := service.NewGuideService(service.GuideServiceOptions{
		Guides: repos.Guides,
	})
	tours := service.NewTourService(service.TourServiceOptions{
		Tours:  repos.Tours,
		Guides: repos.Guides,
	})
	bookings := service.NewBookingService(service.BookingServiceOptions{
		Bookings: repos.Bookings,
		Guides:   repos.Guides,
		Tours:    repos.Tours,
		Users:    repos.Users,
		Notifier: bookingNotifier,
		Logger:   logger,
	})
	favorites := service.NewFavoriteService(service.FavoriteServiceOptions{
		Favorites: repos.Favorites,
		Guides:    repos.Guides,
	})

	auth := BuildAuthService(AuthConfig{
		Auth:          appCfg.Auth,
		RedisClient:   deps.RedisClient,
		Authenticator: repos.Users,
		RoleLookup:    repos.Users,
		Logger:        logger,
	})

	return ServiceContainer{
		Users:     users,
		Guides:    guides,
		Tours:     tours,
		Bookings:  bookings,
		Favorites: favorites,
		Auth:      auth,
	}
}
