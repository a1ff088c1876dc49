package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/guiatur/guiatur-api/internal/domain/auth"
	"github.com/guiatur/guiatur-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      *service.AuthService
	Users     *service.UserService
	Guides    *service.GuideService
	Tours     *service.TourService
	Bookings  *service.BookingService
	Favorites *service.FavoriteService

	CookieDomain string
	// CompressionLevel enables gzip compression of responses when set to a
	// value in the 1-9 range; zero disables it.
	CompressionLevel int
	Logger           *slog.Logger
}

// NewRouter creates and configures the HTTP router with the guard chain.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		Passwords:    services.Users,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}
	userHandlers := &UserHandlers{Users: services.Users}
	guideHandlers := &GuideHandlers{Svc: services.Guides}
	tourHandlers := &TourHandlers{Svc: services.Tours, Guides: services.Guides}
	bookingHandlers := &BookingHandlers{Svc: services.Bookings, Guides: services.Guides}
	favoriteHandlers := &FavoriteHandlers{Svc: services.Favorites}
	adminHandlers := &AdminHandlers{Users: services.Users, Bookings: services.Bookings}
	pageHandlers := &PageHandlers{
		Users:    services.Users,
		Guides:   services.Guides,
		Tours:    services.Tours,
		Bookings: services.Bookings,
	}

	cfg := guardConfig{}
	if services.Auth != nil {
		cfg.Sessions = services.Auth
	}

	registerAuthRoutes(mux, authHandlers, cfg)
	registerUserRoutes(mux, userHandlers, cfg)
	registerCatalogRoutes(mux, guideHandlers, tourHandlers)
	registerGuideAPIRoutes(mux, tourHandlers, bookingHandlers, cfg)
	registerBookingRoutes(mux, bookingHandlers, cfg)
	registerFavoriteRoutes(mux, favoriteHandlers, cfg)
	registerAdminRoutes(mux, adminHandlers, cfg)
	registerPageRoutes(mux, pageHandlers, cfg)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Compression sits innermost so logging captures compressed sizes.
	var handler http.Handler = mux
	if services.CompressionLevel > 0 {
		handler = Compression(CompressionConfig{Level: services.CompressionLevel, Logger: logger})(handler)
	}
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}

// guardConfig wires session-backed guards into route registration. A nil
// Sessions disables the guards, which keeps handler tests independent of
// the auth stack.
type guardConfig struct {
	Sessions SessionReader
}

func (cfg guardConfig) noop() func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler { return h }
}

func (cfg guardConfig) auth() func(http.Handler) http.Handler {
	if cfg.Sessions == nil {
		return cfg.noop()
	}
	return RequireAuth(cfg.Sessions)
}

func (cfg guardConfig) role(role domainauth.Role) func(http.Handler) http.Handler {
	if cfg.Sessions == nil {
		return cfg.noop()
	}
	return RequireRole(cfg.Sessions, role)
}

func (cfg guardConfig) authBrowser() func(http.Handler) http.Handler {
	if cfg.Sessions == nil {
		return cfg.noop()
	}
	return RequireAuthBrowser(cfg.Sessions)
}

func (cfg guardConfig) roleBrowser(role domainauth.Role) func(http.Handler) http.Handler {
	if cfg.Sessions == nil {
		return cfg.noop()
	}
	return RequireRoleBrowser(cfg.Sessions, role)
}

func (cfg guardConfig) optional() func(http.Handler) http.Handler {
	if cfg.Sessions == nil {
		return cfg.noop()
	}
	return OptionalAuth(cfg.Sessions)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, cfg guardConfig) {
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("GET /auth/login", h.BeginLogin)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("GET /api/auth/status", h.Status)
	mux.HandleFunc("POST /api/auth/refresh", h.Refresh)
	mux.Handle("POST /api/auth/password", cfg.auth()(http.HandlerFunc(h.ChangePassword)))
	mux.HandleFunc("POST /api/auth/password/reset-request", h.RequestPasswordReset)
	mux.HandleFunc("POST /api/auth/password/reset", h.ResetPassword)
}

func registerUserRoutes(mux *http.ServeMux, h *UserHandlers, cfg guardConfig) {
	mux.HandleFunc("POST /api/users/tourist", h.RegisterTourist)
	mux.HandleFunc("POST /api/users/guide", h.RegisterGuide)
	mux.Handle("GET /api/users/me", cfg.auth()(http.HandlerFunc(h.Me)))
}

// registerCatalogRoutes wires the public read-only catalog.
func registerCatalogRoutes(mux *http.ServeMux, guides *GuideHandlers, tours *TourHandlers) {
	mux.HandleFunc("GET /api/guides", guides.List)
	mux.HandleFunc("GET /api/guides/{id}", guides.Get)
	mux.HandleFunc("GET /api/tours", tours.List)
	mux.HandleFunc("GET /api/tours/{id}", tours.Get)
	mux.HandleFunc("GET /api/locations", tours.Locations)
	mux.HandleFunc("GET /api/tourism-types", tours.TourismTypes)
}

// registerGuideAPIRoutes wires the endpoints reserved for guide accounts.
func registerGuideAPIRoutes(
	mux *http.ServeMux,
	tours *TourHandlers,
	bookings *BookingHandlers,
	cfg guardConfig,
) {
	wrap := cfg.role(domainauth.RoleGuide)
	mux.Handle("POST /api/tours", wrap(http.HandlerFunc(tours.Create)))
	mux.Handle("DELETE /api/tours/{id}", wrap(http.HandlerFunc(tours.Delete)))
	mux.Handle("GET /api/guides/me/bookings", wrap(http.HandlerFunc(bookings.ListForGuide)))
	mux.Handle("PATCH /api/bookings/{id}/status", wrap(http.HandlerFunc(bookings.UpdateStatus)))
}

func registerBookingRoutes(mux *http.ServeMux, h *BookingHandlers, cfg guardConfig) {
	wrap := cfg.auth()
	mux.Handle("POST /api/bookings", wrap(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/bookings", wrap(http.HandlerFunc(h.ListMine)))
	mux.Handle("POST /api/bookings/{id}/cancel", wrap(http.HandlerFunc(h.Cancel)))
}

func registerFavoriteRoutes(mux *http.ServeMux, h *FavoriteHandlers, cfg guardConfig) {
	wrap := cfg.auth()
	mux.Handle("POST /api/favorites/{guideId}", wrap(http.HandlerFunc(h.Toggle)))
	mux.Handle("GET /api/favorites", wrap(http.HandlerFunc(h.List)))
}

func registerAdminRoutes(mux *http.ServeMux, h *AdminHandlers, cfg guardConfig) {
	wrap := cfg.role(domainauth.RoleAdmin)
	mux.Handle("GET /api/admin/users", wrap(http.HandlerFunc(h.ListUsers)))
	mux.Handle("GET /api/admin/bookings", wrap(http.HandlerFunc(h.ListBookings)))
	mux.Handle("GET /admin", cfg.roleBrowser(domainauth.RoleAdmin)(http.HandlerFunc(h.Overview)))
}

// registerPageRoutes wires the browser entry points. Public pages get
// OptionalAuth so they can personalize; guarded pages redirect browsers
// to /login and return 401 for API clients.
func registerPageRoutes(mux *http.ServeMux, h *PageHandlers, cfg guardConfig) {
	optional := cfg.optional()
	mux.Handle("GET /{$}", optional(http.HandlerFunc(h.Home)))
	mux.HandleFunc("GET /login", h.LoginPage)
	mux.HandleFunc("GET /reset-password", h.ResetPasswordPage)
	mux.HandleFunc("GET /search", h.Search)
	mux.HandleFunc("GET /tour/{id}", h.TourPage)
	mux.Handle("GET /booking/{guideId}", optional(http.HandlerFunc(h.BookingPage)))

	guide := cfg.roleBrowser(domainauth.RoleGuide)
	mux.Handle("GET /dashboard", guide(http.HandlerFunc(h.GuideDashboard)))
	mux.Handle("GET /parceiro/dashboard", guide(http.HandlerFunc(h.GuideDashboard)))

	authed := cfg.authBrowser()
	mux.Handle("GET /perfil", authed(http.HandlerFunc(h.Profile)))
	mux.Handle("GET /reservas", authed(http.HandlerFunc(h.Reservations)))
}
