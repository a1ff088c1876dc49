// Package devseed populates a development database with demo accounts,
// guide profiles, tours, and the search vocabulary. Seeding is idempotent;
// rows that already exist are left untouched.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/guiatur/guiatur-api/internal/data"
	"github.com/guiatur/guiatur-api/internal/domain/model"
	"github.com/guiatur/guiatur-api/internal/service"
)

// DevPassword is the password shared by all seeded accounts.
const DevPassword = "Guiatur!123"

// Services bundles the dependencies needed for development seeding.
type Services struct {
	DB     *sql.DB
	users  *service.UserService
	repo   *data.UserRepo
	guides *data.GuideRepo
	tourDB *data.TourRepo
}

// NewServices constructs all required services for seeding using the provided DB.
func NewServices(db *sql.DB) Services {
	userRepo := data.NewUserRepo(db)
	guideRepo := data.NewGuideRepo(db)
	tourRepo := data.NewTourRepo(db)

	users := service.NewUserService(service.UserServiceOptions{
		Users:         userRepo,
		Guides:        guideRepo,
		Authenticator: userRepo,
	})

	return Services{
		DB:     db,
		users:  users,
		repo:   userRepo,
		guides: guideRepo,
		tourDB: tourRepo,
	}
}

// SeedAll seeds the vocabulary, demo accounts, and demo tours.
func (s Services) SeedAll(ctx context.Context, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := s.seedVocabulary(ctx); err != nil {
		return fmt.Errorf("seed vocabulary: %w", err)
	}
	if err := s.seedAccounts(ctx, logger); err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}
	if err := s.seedTours(ctx, logger); err != nil {
		return fmt.Errorf("seed tours: %w", err)
	}

	logger.InfoContext(ctx, "development seed completed", "password", DevPassword)
	return nil
}

type seedLocation struct {
	name  string
	state string
}

// seedVocabulary inserts the browsable destinations and tour categories.
func (s Services) seedVocabulary(ctx context.Context) error {
	locations := []seedLocation{
		{"Salvador", "BA"},
		{"Chapada Diamantina", "BA"},
		{"Rio de Janeiro", "RJ"},
		{"Paraty", "RJ"},
		{"Bonito", "MS"},
		{"Foz do Iguaçu", "PR"},
	}
	for _, loc := range locations {
		if _, err := s.DB.ExecContext(ctx,
			`INSERT INTO locations (name, state) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			loc.name, loc.state,
		); err != nil {
			return fmt.Errorf("insert location %q: %w", loc.name, err)
		}
	}

	types := []string{"Aventura", "Ecoturismo", "Gastronomia", "Cultural", "Praias", "Trilhas"}
	for _, name := range types {
		if _, err := s.DB.ExecContext(ctx,
			`INSERT INTO tourism_types (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
			name,
		); err != nil {
			return fmt.Errorf("insert tourism type %q: %w", name, err)
		}
	}

	return nil
}

type seedTourist struct {
	name  string
	email string
}

func (s Services) seedAccounts(ctx context.Context, logger *slog.Logger) error {
	tourists := []seedTourist{
		// breno is the default admin allow-list account; the role comes
		// from configuration, not the stored type.
		{name: "Breno Almeida", email: "breno@ceo.com"},
		{name: "Ana Souza", email: "ana@example.com"},
	}
	for _, t := range tourists {
		created, err := s.ensureTourist(ctx, t)
		if err != nil {
			return err
		}
		if created {
			logger.InfoContext(ctx, "seeded tourist account", "email", t.email)
		}
	}

	guides := []service.RegisterGuideInput{
		{
			Name:           "Carlos Santana",
			Email:          "carlos@example.com",
			Password:       DevPassword,
			Location:       "Salvador",
			Languages:      []string{"português", "inglês"},
			Specialties:    []string{"Cultural", "Gastronomia"},
			CadasturNumber: "CAD100001",
			SocialLinks:    model.SocialLinks{Instagram: "@carlosguia"},
		},
		{
			Name:           "Maria Lima",
			Email:          "maria@example.com",
			Password:       DevPassword,
			Location:       "Chapada Diamantina",
			Languages:      []string{"português", "espanhol"},
			Specialties:    []string{"Trilhas", "Ecoturismo"},
			CadasturNumber: "CAD100002",
			SocialLinks:    model.SocialLinks{Tripadvisor: "maria-lima-tours"},
		},
	}
	for _, g := range guides {
		created, err := s.ensureGuide(ctx, g)
		if err != nil {
			return err
		}
		if created {
			logger.InfoContext(ctx, "seeded guide account", "email", g.Email)
		}
	}

	return nil
}

func (s Services) ensureTourist(ctx context.Context, t seedTourist) (bool, error) {
	_, err := s.repo.GetByEmail(ctx, t.email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, data.ErrUserNotFound) {
		return false, fmt.Errorf("look up %q: %w", t.email, err)
	}

	if _, err := s.users.RegisterTourist(ctx, &model.CreateUserRequest{
		Name:     t.name,
		Email:    t.email,
		Password: DevPassword,
	}); err != nil {
		return false, fmt.Errorf("seed tourist %q: %w", t.email, err)
	}
	return true, nil
}

func (s Services) ensureGuide(ctx context.Context, g service.RegisterGuideInput) (bool, error) {
	_, err := s.repo.GetByEmail(ctx, g.Email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, data.ErrUserNotFound) {
		return false, fmt.Errorf("look up %q: %w", g.Email, err)
	}

	if _, err := s.users.RegisterGuide(ctx, g); err != nil {
		return false, fmt.Errorf("seed guide %q: %w", g.Email, err)
	}
	return true, nil
}

func (s Services) seedTours(ctx context.Context, logger *slog.Logger) error {
	demoTours := map[string][]model.CreateTourRequest{
		"carlos@example.com": {
			{
				Name:        "Pelourinho histórico a pé",
				Description: strPtr("Caminhada guiada pelo centro histórico de Salvador."),
				Location:    "Salvador",
				Price:       120,
			},
			{
				Name:        "Sabores da Bahia",
				Description: strPtr("Tour gastronômico com acarajé, moqueca e Mercado Modelo."),
				Location:    "Salvador",
				Price:       180,
			},
		},
		"maria@example.com": {
			{
				Name:        "Trilha do Vale do Pati",
				Description: strPtr("Travessia de três dias pelo vale mais bonito da Chapada."),
				Location:    "Chapada Diamantina",
				Price:       950,
			},
		},
	}

	for email, tours := range demoTours {
		user, err := s.repo.GetByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("look up guide account %q: %w", email, err)
		}
		guide, err := s.guides.GetByUserID(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("look up guide profile %q: %w", email, err)
		}

		guideID := guide.ID
		existing, err := s.tourDB.Count(ctx, &model.ToursListOptions{GuideID: &guideID})
		if err != nil {
			return fmt.Errorf("count tours for %q: %w", email, err)
		}
		if existing > 0 {
			continue
		}

		for i := range tours {
			req := tours[i]
			req.GuideID = guide.ID
			if _, createErr := s.tourDB.Create(ctx, &req); createErr != nil {
				return fmt.Errorf("seed tour %q: %w", req.Name, createErr)
			}
			logger.InfoContext(ctx, "seeded tour", "guide", email, "tour", req.Name)
		}
	}

	return nil
}

func strPtr(s string) *string { return &s }
