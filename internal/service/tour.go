package service

import (
	"context"
	"errors"

	"github.com/guiatur/guiatur-api/internal/core"
	"github.com/guiatur/guiatur-api/internal/data"
	"github.com/guiatur/guiatur-api/internal/domain/model"
	apperrors "github.com/guiatur/guiatur-api/internal/errors"
)

// TourServiceOptions groups dependencies for TourService.
type TourServiceOptions struct {
	Tours  core.TourRepository
	Guides core.GuideRepository
}

// TourService serves the tour catalog and its search vocabulary.
type TourService struct {
	tours  core.TourRepository
	guides core.GuideRepository
}

// NewTourService constructs a new TourService.
func NewTourService(opts TourServiceOptions) *TourService {
	return &TourService{tours: opts.Tours, guides: opts.Guides}
}

// Create validates and persists a tour for an existing guide.
func (s *TourService) Create(ctx context.Context, req *model.CreateTourRequest) (*model.Tour, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if _, err := s.guides.GetByID(ctx, req.GuideID); err != nil {
		if errors.Is(err, data.ErrGuideNotFound) {
			return nil, apperrors.ValidationField("guide_id", "Guide not found")
		}
		return nil, apperrors.MapDBError(err)
	}

	tour, err := s.tours.Create(ctx, req)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return tour, nil
}

// GetByID retrieves a tour by ID.
func (s *TourService) GetByID(ctx context.Context, id string) (*model.Tour, error) {
	tour, err := s.tours.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrTourNotFound) {
			return nil, apperrors.NotFound("Tour not found")
		}
		return nil, apperrors.MapDBError(err)
	}
	return tour, nil
}

// ToursPage is a page of tours with the unpaged total for the filter set.
type ToursPage struct {
	Tours []*model.Tour `json:"tours"`
	Total int           `json:"total"`
}

// List returns a page of tours matching the options plus the total count.
func (s *TourService) List(ctx context.Context, opts model.ToursListOptions) (*ToursPage, error) {
	normalized := normalizeToursListOptions(opts)

	tours, err := s.tours.List(ctx, &normalized)
	if err != nil {
		return nil, err
	}
	total, err := s.tours.Count(ctx, &normalized)
	if err != nil {
		return nil, err
	}
	return &ToursPage{Tours: tours, Total: total}, nil
}

// Delete removes a tour. Only the owning guide may delete it.
func (s *TourService) Delete(ctx context.Context, id, guideID string) (bool, error) {
	tour, err := s.tours.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrTourNotFound) {
			return false, nil
		}
		return false, apperrors.MapDBError(err)
	}
	if tour.GuideID != guideID {
		return false, apperrors.AuthRejected("Tour belongs to another guide", nil)
	}
	return s.tours.Delete(ctx, id)
}

// ListLocations returns the browsable destinations.
func (s *TourService) ListLocations(ctx context.Context) ([]*model.Location, error) {
	return s.tours.ListLocations(ctx)
}

// ListTourismTypes returns the tour categories.
func (s *TourService) ListTourismTypes(ctx context.Context) ([]*model.TourismType, error) {
	return s.tours.ListTourismTypes(ctx)
}

func normalizeToursListOptions(opts model.ToursListOptions) model.ToursListOptions {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	if opts.Q != nil && *opts.Q == "" {
		opts.Q = nil
	}
	if opts.GuideID != nil && *opts.GuideID == "" {
		opts.GuideID = nil
	}
	if opts.Location != nil && *opts.Location == "" {
		opts.Location = nil
	}

	return opts
}
