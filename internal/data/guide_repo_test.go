package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guiatur/guiatur-api/internal/domain/model"
	"github.com/guiatur/guiatur-api/internal/testutil"
)

func createTestGuide(t *testing.T, db *sql.DB, location string) *model.Guide {
	t.Helper()
	nano := time.Now().UnixNano()
	user := createTestUser(t, db, fmt.Sprintf("guide-%d@example.com", nano), model.UserTypeGuide)

	repo := NewGuideRepo(db)
	g, err := repo.Create(context.Background(), testutil.NewGuideRequest(user.ID).
		WithCadastur(fmt.Sprintf("CAD%d", nano)).
		Build())
	require.NoError(t, err)

	if location != "" {
		_, err = db.Exec(`UPDATE guides SET location = $1 WHERE id = $2`, location, g.ID)
		require.NoError(t, err)
		g.Location = location
	}
	return g
}

func TestGuideRepo_Create_Get(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewGuideRepo(db)

		nano := time.Now().UnixNano()
		user := createTestUser(t, db, fmt.Sprintf("carlos-%d@example.com", nano), model.UserTypeGuide)

		req := testutil.NewGuideRequest(user.ID).
			WithCadastur(fmt.Sprintf("CAD%d", nano)).
			WithSocialLinks(model.SocialLinks{Instagram: "@carlos.tours"}).
			Build()
		g, err := repo.Create(ctx, req)
		require.NoError(t, err)
		require.NotEmpty(t, g.ID)
		assert.Equal(t, user.ID, g.UserID)
		assert.Equal(t, 5.0, g.Rating)
		assert.Equal(t, "@carlos.tours", g.SocialLinks.Instagram)
		assert.NotZero(t, g.CreatedAt)

		got, err := repo.GetByID(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, g.CadasturNumber, got.CadasturNumber)
		assert.Equal(t, g.Languages, got.Languages)

		byUser, err := repo.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, g.ID, byUser.ID)

		_, err = repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
		require.ErrorIs(t, err, ErrGuideNotFound)
	})
}

func TestGuideRepo_Create_DuplicateCadastur(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewGuideRepo(db)

		nano := time.Now().UnixNano()
		cadastur := fmt.Sprintf("CAD%d", nano)

		first := createTestUser(t, db, fmt.Sprintf("g1-%d@example.com", nano), model.UserTypeGuide)
		second := createTestUser(t, db, fmt.Sprintf("g2-%d@example.com", nano), model.UserTypeGuide)

		_, err := repo.Create(ctx, testutil.NewGuideRequest(first.ID).WithCadastur(cadastur).Build())
		require.NoError(t, err)

		_, err = repo.Create(ctx, testutil.NewGuideRequest(second.ID).WithCadastur(cadastur).Build())
		require.ErrorIs(t, err, ErrGuideCadasturExists)
	})
}

func TestGuideRepo_Create_ValidationErrors(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewGuideRepo(db)

		// short cadastur
		_, err := repo.Create(ctx, testutil.NewGuideRequest("u1").WithCadastur("ab1").Build())
		require.Error(t, err)

		// cadastur with symbols
		_, err = repo.Create(ctx, testutil.NewGuideRequest("u1").WithCadastur("CAD-12345").Build())
		require.Error(t, err)

		// missing user
		req := testutil.NewGuideRequest("").Build()
		_, err = repo.Create(ctx, req)
		require.Error(t, err)
	})
}

func TestGuideRepo_List_Filters(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewGuideRepo(db)

		salvador := createTestGuide(t, db, "Salvador")
		createTestGuide(t, db, "Manaus")

		// location filter
		loc := "salvador"
		lst, err := repo.List(ctx, &model.GuidesListOptions{Limit: 10, Location: &loc})
		require.NoError(t, err)
		require.Len(t, lst, 1)
		assert.Equal(t, salvador.ID, lst[0].ID)

		cnt, err := repo.Count(ctx, &model.GuidesListOptions{Location: &loc})
		require.NoError(t, err)
		assert.Equal(t, 1, cnt)

		// free-text search matches name or location
		q := "manaus"
		lst, err = repo.List(ctx, &model.GuidesListOptions{Limit: 10, Q: &q})
		require.NoError(t, err)
		require.Len(t, lst, 1)
		assert.Equal(t, "Manaus", lst[0].Location)

		// unfiltered
		cnt, err = repo.Count(ctx, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, cnt, 2)
	})
}

func TestGuideRepo_UpdateRating(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewGuideRepo(db)

		g := createTestGuide(t, db, "")

		require.NoError(t, repo.UpdateRating(ctx, g.ID, 4.2))

		got, err := repo.GetByID(ctx, g.ID)
		require.NoError(t, err)
		assert.InDelta(t, 4.2, got.Rating, 0.001)

		// out of range
		require.Error(t, repo.UpdateRating(ctx, g.ID, 5.5))

		// unknown guide
		require.ErrorIs(t, repo.UpdateRating(ctx, "00000000-0000-0000-0000-000000000000", 4.0), ErrGuideNotFound)
	})
}

func TestGuideRepo_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewGuideRepo(db)

		g := createTestGuide(t, db, "")

		deleted, err := repo.Delete(ctx, g.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, g.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
