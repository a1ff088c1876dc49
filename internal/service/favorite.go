package service

import (
	"context"
	"errors"

	"github.com/guiatur/guiatur-api/internal/core"
	"github.com/guiatur/guiatur-api/internal/data"
	"github.com/guiatur/guiatur-api/internal/domain/model"
	apperrors "github.com/guiatur/guiatur-api/internal/errors"
)

// FavoriteServiceOptions groups dependencies for FavoriteService.
type FavoriteServiceOptions struct {
	Favorites core.FavoriteRepository
	Guides    core.GuideRepository
}

// FavoriteService manages the guides a user has saved.
type FavoriteService struct {
	favorites core.FavoriteRepository
	guides    core.GuideRepository
}

// NewFavoriteService constructs a new FavoriteService.
func NewFavoriteService(opts FavoriteServiceOptions) *FavoriteService {
	return &FavoriteService{favorites: opts.Favorites, guides: opts.Guides}
}

// Toggle saves the guide when absent and removes it when present.
func (s *FavoriteService) Toggle(ctx context.Context, userID, guideID string) (*model.ToggleResult, error) {
	if _, err := s.guides.GetByID(ctx, guideID); err != nil {
		if errors.Is(err, data.ErrGuideNotFound) {
			return nil, apperrors.NotFound("Guide not found")
		}
		return nil, apperrors.MapDBError(err)
	}

	result, err := s.favorites.Toggle(ctx, userID, guideID)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return result, nil
}

// IsFavorite reports whether the user has saved the guide.
func (s *FavoriteService) IsFavorite(ctx context.Context, userID, guideID string) (bool, error) {
	return s.favorites.IsFavorite(ctx, userID, guideID)
}

// ListByUser returns the raw favorite rows for a user.
func (s *FavoriteService) ListByUser(ctx context.Context, userID string) ([]*model.Favorite, error) {
	return s.favorites.ListByUser(ctx, userID)
}

// ListGuides returns the full guide profiles a user has saved.
func (s *FavoriteService) ListGuides(ctx context.Context, userID string) ([]*model.Guide, error) {
	return s.favorites.ListGuidesByUser(ctx, userID)
}
