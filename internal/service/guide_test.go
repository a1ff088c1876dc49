package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/guiatur/guiatur-api/internal/data"
	"github.com/guiatur/guiatur-api/internal/domain/model"
	apperrors "github.com/guiatur/guiatur-api/internal/errors"
	"github.com/guiatur/guiatur-api/internal/mocks"
	"github.com/guiatur/guiatur-api/internal/testutil"
)

// newGuideService creates a mock repository and service for testing.
func newGuideService(t *testing.T) (*mocks.MockGuideRepository, *GuideService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	guideRepo := mocks.NewMockGuideRepository(ctrl)
	service := NewGuideService(GuideServiceOptions{Guides: guideRepo})

	return guideRepo, service
}

func TestGuideService_GetByID(t *testing.T) {
	t.Parallel()
	guideRepo, service := newGuideService(t)
	ctx := context.Background()

	guideRepo.EXPECT().
		GetByID(ctx, "g1").
		Return(&model.Guide{ID: "g1", Name: "Carlos Lima", Rating: 5.0}, nil).
		Times(1)

	guide, err := service.GetByID(ctx, "g1")

	require.NoError(t, err)
	assert.Equal(t, "Carlos Lima", guide.Name)
}

func TestGuideService_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	guideRepo, service := newGuideService(t)
	ctx := context.Background()

	guideRepo.EXPECT().
		GetByID(ctx, "missing").
		Return(nil, data.ErrGuideNotFound).
		Times(1)

	_, err := service.GetByID(ctx, "missing")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestGuideService_GetByUserID(t *testing.T) {
	t.Parallel()
	guideRepo, service := newGuideService(t)
	ctx := context.Background()

	guideRepo.EXPECT().
		GetByUserID(ctx, "u1").
		Return(&model.Guide{ID: "g1", UserID: "u1"}, nil).
		Times(1)

	guide, err := service.GetByUserID(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, "g1", guide.ID)
}

func TestGuideService_List_NormalizesOptions(t *testing.T) {
	t.Parallel()
	guideRepo, service := newGuideService(t)
	ctx := context.Background()

	expected := &model.GuidesListOptions{Limit: 50, Offset: 0}

	guideRepo.EXPECT().
		List(ctx, expected).
		Return([]*model.Guide{{ID: "g1"}, {ID: "g2"}}, nil).
		Times(1)

	guideRepo.EXPECT().
		Count(ctx, expected).
		Return(2, nil).
		Times(1)

	// Empty-string filters collapse to nil so the repository skips the clauses.
	empty := ""
	page, err := service.List(ctx, model.GuidesListOptions{Limit: 0, Offset: -1, Q: &empty, Location: &empty})

	require.NoError(t, err)
	assert.Len(t, page.Guides, 2)
	assert.Equal(t, 2, page.Total)
}

func TestGuideService_List_KeepsFilters(t *testing.T) {
	t.Parallel()
	guideRepo, service := newGuideService(t)
	ctx := context.Background()

	opts := model.GuidesListOptions{
		Limit:    10,
		Q:        testutil.StringPtr("carlos"),
		Location: testutil.StringPtr("Salvador"),
	}

	guideRepo.EXPECT().
		List(ctx, &opts).
		Return([]*model.Guide{{ID: "g1", Location: "Salvador"}}, nil).
		Times(1)

	guideRepo.EXPECT().
		Count(ctx, &opts).
		Return(1, nil).
		Times(1)

	page, err := service.List(ctx, opts)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}

func TestGuideService_List_RepoError(t *testing.T) {
	t.Parallel()
	guideRepo, service := newGuideService(t)
	ctx := context.Background()

	guideRepo.EXPECT().
		List(ctx, gomock.Any()).
		Return(nil, errors.New("db down")).
		Times(1)

	_, err := service.List(ctx, model.GuidesListOptions{Limit: 10})
	assert.Error(t, err)
}
