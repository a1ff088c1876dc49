package service

import (
	"context"
	"errors"

	"github.com/guiatur/guiatur-api/internal/core"
	"github.com/guiatur/guiatur-api/internal/data"
	"github.com/guiatur/guiatur-api/internal/domain/model"
	apperrors "github.com/guiatur/guiatur-api/internal/errors"
)

// GuideServiceOptions groups dependencies for GuideService.
type GuideServiceOptions struct {
	Guides core.GuideRepository
}

// GuideService serves the public guide catalog.
type GuideService struct {
	guides core.GuideRepository
}

// NewGuideService constructs a new GuideService.
func NewGuideService(opts GuideServiceOptions) *GuideService {
	return &GuideService{guides: opts.Guides}
}

// GetByID retrieves a guide profile by ID.
func (s *GuideService) GetByID(ctx context.Context, id string) (*model.Guide, error) {
	guide, err := s.guides.GetByID(ctx, id)
	if err != nil {
		return nil, mapGuideErr(err)
	}
	return guide, nil
}

// GetByUserID retrieves the guide profile attached to a user account.
func (s *GuideService) GetByUserID(ctx context.Context, userID string) (*model.Guide, error) {
	guide, err := s.guides.GetByUserID(ctx, userID)
	if err != nil {
		return nil, mapGuideErr(err)
	}
	return guide, nil
}

// GuidesPage is a page of guides with the unpaged total for the filter set.
type GuidesPage struct {
	Guides []*model.Guide `json:"guides"`
	Total  int            `json:"total"`
}

// List returns a page of guides matching the options plus the total count.
func (s *GuideService) List(ctx context.Context, opts model.GuidesListOptions) (*GuidesPage, error) {
	normalized := normalizeGuidesListOptions(opts)

	guides, err := s.guides.List(ctx, &normalized)
	if err != nil {
		return nil, err
	}
	total, err := s.guides.Count(ctx, &normalized)
	if err != nil {
		return nil, err
	}
	return &GuidesPage{Guides: guides, Total: total}, nil
}

func mapGuideErr(err error) error {
	if errors.Is(err, data.ErrGuideNotFound) {
		return apperrors.NotFound("Guide not found")
	}
	return apperrors.MapDBError(err)
}

func normalizeGuidesListOptions(opts model.GuidesListOptions) model.GuidesListOptions {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	if opts.Q != nil && *opts.Q == "" {
		opts.Q = nil
	}
	if opts.Location != nil && *opts.Location == "" {
		opts.Location = nil
	}

	return opts
}
