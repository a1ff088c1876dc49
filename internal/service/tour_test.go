package service

import (
	"context"
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

// newTourService creates mock repositories and a service for testing.
func newTourService(t *testing.T) (*mocks.MockTourRepository, *mocks.MockGuideRepository, *TourService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tourRepo := mocks.NewMockTourRepository(ctrl)
	guideRepo := mocks.NewMockGuideRepository(ctrl)
	service := NewTourService(TourServiceOptions{Tours: tourRepo, Guides: guideRepo})

	return tourRepo, guideRepo, service
}

func TestTourService_Create(t *testing.T) {
	t.Parallel()
	tourRepo, guideRepo, service := newTourService(t)
	ctx := context.Background()

	req := testutil.NewTourRequest("g1").Build()

	guideRepo.EXPECT().
		GetByID(ctx, "g1").
		Return(&model.Guide{ID: "g1"}, nil).
		Times(1)

	tourRepo.EXPECT().
		Create(ctx, req).
		Return(&model.Tour{ID: "t1", GuideID: "g1", Name: req.Name, Price: req.Price}, nil).
		Times(1)

	tour, err := service.Create(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "t1", tour.ID)
}

func TestTourService_Create_UnknownGuide(t *testing.T) {
	t.Parallel()
	_, guideRepo, service := newTourService(t)
	ctx := context.Background()

	guideRepo.EXPECT().
		GetByID(ctx, "g-missing").
		Return(nil, data.ErrGuideNotFound).
		Times(1)

	_, err := service.Create(ctx, testutil.NewTourRequest("g-missing").Build())

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "guide_id", apperrors.GetField(err))
}

func TestTourService_Create_InvalidRequest(t *testing.T) {
	t.Parallel()
	_, _, service := newTourService(t)

	req := testutil.NewTourRequest("g1").Build()
	req.Price = -10

	_, err := service.Create(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestTourService_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	tourRepo, _, service := newTourService(t)
	ctx := context.Background()

	tourRepo.EXPECT().
		GetByID(ctx, "missing").
		Return(nil, data.ErrTourNotFound).
		Times(1)

	_, err := service.GetByID(ctx, "missing")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestTourService_List_NormalizesOptions(t *testing.T) {
	t.Parallel()
	tourRepo, _, service := newTourService(t)
	ctx := context.Background()

	expected := &model.ToursListOptions{Limit: 50, Offset: 0, MaxPrice: testutil.Float64Ptr(200)}

	tourRepo.EXPECT().
		List(ctx, expected).
		Return([]*model.Tour{{ID: "t1", Price: 150}}, nil).
		Times(1)

	tourRepo.EXPECT().
		Count(ctx, expected).
		Return(1, nil).
		Times(1)

	empty := ""
	page, err := service.List(ctx, model.ToursListOptions{
		Offset:   -5,
		Q:        &empty,
		GuideID:  &empty,
		MaxPrice: testutil.Float64Ptr(200),
	})

	require.NoError(t, err)
	assert.Len(t, page.Tours, 1)
	assert.Equal(t, 1, page.Total)
}

func TestTourService_Delete_OwnerOnly(t *testing.T) {
	t.Parallel()
	tourRepo, _, service := newTourService(t)
	ctx := context.Background()

	tourRepo.EXPECT().
		GetByID(ctx, "t1").
		Return(&model.Tour{ID: "t1", GuideID: "g1"}, nil).
		Times(1)

	_, err := service.Delete(ctx, "t1", "g2")

	require.Error(t, err)
	assert.True(t, apperrors.IsAuthRejected(err))
}

func TestTourService_Delete(t *testing.T) {
	t.Parallel()
	tourRepo, _, service := newTourService(t)
	ctx := context.Background()

	tourRepo.EXPECT().
		GetByID(ctx, "t1").
		Return(&model.Tour{ID: "t1", GuideID: "g1"}, nil).
		Times(1)

	tourRepo.EXPECT().
		Delete(ctx, "t1").
		Return(true, nil).
		Times(1)

	ok, err := service.Delete(ctx, "t1", "g1")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTourService_Delete_MissingTour(t *testing.T) {
	t.Parallel()
	tourRepo, _, service := newTourService(t)
	ctx := context.Background()

	tourRepo.EXPECT().
		GetByID(ctx, "missing").
		Return(nil, data.ErrTourNotFound).
		Times(1)

	ok, err := service.Delete(ctx, "missing", "g1")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTourService_SearchVocabulary(t *testing.T) {
	t.Parallel()
	tourRepo, _, service := newTourService(t)
	ctx := context.Background()

	tourRepo.EXPECT().
		ListLocations(ctx).
		Return([]*model.Location{{ID: "l1", Name: "Salvador", State: "BA"}}, nil).
		Times(1)

	tourRepo.EXPECT().
		ListTourismTypes(ctx).
		Return([]*model.TourismType{{ID: "tt1", Name: "aventura"}}, nil).
		Times(1)

	locations, err := service.ListLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, "BA", locations[0].State)

	types, err := service.ListTourismTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, "aventura", types[0].Name)
}
