package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guiatur/guiatur-api/internal/domain/model"
	"github.com/guiatur/guiatur-api/internal/testutil"
)

func TestTourRepo_Create_Get_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewTourRepo(db)

		g := createTestGuide(t, db, "Salvador")

		req := testutil.NewTourRequest(g.ID).
			WithDescription("Caminhada guiada pelo centro historico").
			WithPrice(180).
			Build()
		tour, err := repo.Create(ctx, req)
		require.NoError(t, err)
		require.NotEmpty(t, tour.ID)
		assert.Equal(t, g.ID, tour.GuideID)
		assert.Equal(t, 5.0, tour.Rating)
		assert.InDelta(t, 180, tour.Price, 0.001)
		require.NotNil(t, tour.Description)

		got, err := repo.GetByID(ctx, tour.ID)
		require.NoError(t, err)
		assert.Equal(t, tour.Name, got.Name)

		deleted, err := repo.Delete(ctx, tour.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, tour.ID)
		require.ErrorIs(t, err, ErrTourNotFound)
	})
}

func TestTourRepo_Create_ValidationErrors(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewTourRepo(db)

		// missing guide
		_, err := repo.Create(ctx, testutil.NewTourRequest("").Build())
		require.Error(t, err)

		// negative price
		req := testutil.NewTourRequest("g1").Build()
		req.Price = -1
		_, err = repo.Create(ctx, req)
		require.Error(t, err)

		// empty name
		req = testutil.NewTourRequest("g1").WithName(" ").Build()
		_, err = repo.Create(ctx, req)
		require.Error(t, err)
	})
}

func TestTourRepo_List_Filters(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewTourRepo(db)

		g1 := createTestGuide(t, db, "Salvador")
		g2 := createTestGuide(t, db, "Manaus")

		_, err := repo.Create(ctx, testutil.NewTourRequest(g1.ID).
			WithName("Passeio no Pelourinho").
			WithLocation("Salvador").
			WithPrice(150).
			Build())
		require.NoError(t, err)

		_, err = repo.Create(ctx, testutil.NewTourRequest(g2.ID).
			WithName("Trilha na floresta").
			WithLocation("Manaus").
			WithPrice(320).
			Build())
		require.NoError(t, err)

		// by guide
		lst, err := repo.List(ctx, &model.ToursListOptions{Limit: 10, GuideID: &g1.ID})
		require.NoError(t, err)
		require.Len(t, lst, 1)
		assert.Equal(t, "Passeio no Pelourinho", lst[0].Name)

		// by location
		loc := "manaus"
		lst, err = repo.List(ctx, &model.ToursListOptions{Limit: 10, Location: &loc})
		require.NoError(t, err)
		require.Len(t, lst, 1)
		assert.Equal(t, g2.ID, lst[0].GuideID)

		// by max price
		maxPrice := 200.0
		lst, err = repo.List(ctx, &model.ToursListOptions{Limit: 10, MaxPrice: &maxPrice})
		require.NoError(t, err)
		require.Len(t, lst, 1)
		assert.InDelta(t, 150, lst[0].Price, 0.001)

		// free-text search
		q := "trilha"
		cnt, err := repo.Count(ctx, &model.ToursListOptions{Q: &q})
		require.NoError(t, err)
		assert.Equal(t, 1, cnt)

		cnt, err = repo.Count(ctx, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, cnt, 2)
	})
}

func TestTourRepo_SearchVocabulary(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewTourRepo(db)

		_, err := db.Exec(`INSERT INTO locations (name, state) VALUES ($1, $2), ($3, $4)`,
			"Salvador", "BA", "Manaus", "AM")
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO tourism_types (name) VALUES ($1), ($2)`,
			"aventura", "gastronomia")
		require.NoError(t, err)

		locations, err := repo.ListLocations(ctx)
		require.NoError(t, err)
		require.Len(t, locations, 2)
		// alphabetical
		assert.Equal(t, "Manaus", locations[0].Name)
		assert.Equal(t, "AM", locations[0].State)

		types, err := repo.ListTourismTypes(ctx)
		require.NoError(t, err)
		require.Len(t, types, 2)
		assert.Equal(t, "aventura", types[0].Name)
	})
}
