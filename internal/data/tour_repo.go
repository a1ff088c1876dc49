package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/guiatur/guiatur-api/internal/data/database"
	"github.com/guiatur/guiatur-api/internal/data/pgxutil"
	"github.com/guiatur/guiatur-api/internal/domain/model"
)

// initialTourRating is assigned to every new tour.
const initialTourRating = 5.0

// TourRepo provides database operations for the tour catalog, including
// the locations and tourism types used by the search surface.
type TourRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewTourRepo creates a new TourRepo with real time provider.
func NewTourRepo(db *sql.DB) *TourRepo {
	return &TourRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewTourRepoWithTimeProvider creates a new TourRepo with a custom time provider (useful for tests).
func NewTourRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *TourRepo {
	return &TourRepo{DB: db, timeProvider: tp}
}

// Create inserts a new tour.
func (r *TourRepo) Create(ctx context.Context, req *model.CreateTourRequest) (*model.Tour, error) {
	if req == nil {
		return nil, errors.New("create tour request is required")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Tour
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO tours (guide_id, name, description, location, photo, price, rating, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, guide_id, name, description, location, photo, price, rating, created_at, updated_at
		`,
			req.GuideID,
			strings.TrimSpace(req.Name),
			req.Description,
			strings.TrimSpace(req.Location),
			req.Photo,
			req.Price,
			initialTourRating,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Tour])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create tour: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a tour by ID.
func (r *TourRepo) GetByID(ctx context.Context, id string) (*model.Tour, error) {
	var tour model.Tour
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, tourGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		tour, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Tour])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTourNotFound
		}
		return nil, fmt.Errorf("failed to get tour by ID: %w", err)
	}
	return &tour, nil
}

// List retrieves tours with optional filters and pagination.
func (r *TourRepo) List(ctx context.Context, opts *model.ToursListOptions) ([]*model.Tour, error) {
	if opts == nil {
		opts = &model.ToursListOptions{}
	}
	query, args := database.BuildListQuery(r.buildTourQueryOptions(opts, false))

	var rowsOut []model.Tour
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Tour])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list tours: %w", err)
	}

	res := make([]*model.Tour, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Count returns the number of tours matching the filters.
func (r *TourRepo) Count(ctx context.Context, opts *model.ToursListOptions) (int, error) {
	if opts == nil {
		opts = &model.ToursListOptions{}
	}
	query, args := database.BuildListQuery(r.buildTourQueryOptions(opts, true))

	var count int
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, query, args...).Scan(&count)
	}); err != nil {
		return 0, fmt.Errorf("failed to count tours: %w", err)
	}
	return count, nil
}

// Delete deletes a tour by ID.
func (r *TourRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM tours WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete tour: %w", err)
	}
	return rows > 0, nil
}

// ListLocations returns all destinations ordered by name.
func (r *TourRepo) ListLocations(ctx context.Context) ([]*model.Location, error) {
	var rowsOut []model.Location
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT id, name, state, created_at FROM locations ORDER BY name ASC`)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Location])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	res := make([]*model.Location, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// ListTourismTypes returns all tour categories ordered by name.
func (r *TourRepo) ListTourismTypes(ctx context.Context) ([]*model.TourismType, error) {
	var rowsOut []model.TourismType
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT id, name, created_at FROM tourism_types ORDER BY name ASC`)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.TourismType])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list tourism types: %w", err)
	}

	res := make([]*model.TourismType, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// --- helpers ---

const tourGetByIDQuery = `
		SELECT id, guide_id, name, description, location, photo, price, rating, created_at, updated_at
		FROM tours
		WHERE id = $1`

// tourColumns returns the standard column list for tour queries.
func tourColumns() []string {
	return []string{
		"id",
		"guide_id",
		"name",
		"description",
		"location",
		"photo",
		"price",
		"rating",
		"created_at",
		"updated_at",
	}
}

// buildTourQueryOptions builds query options for tour listing with filters.
func (r *TourRepo) buildTourQueryOptions(
	opts *model.ToursListOptions,
	countOnly bool,
) *database.ListQueryOptions {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	queryOpts := []database.ListQueryOption{
		database.WithColumns(tourColumns()...),
	}
	if countOnly {
		queryOpts = append(queryOpts, database.WithCountOnly())
	} else {
		queryOpts = append(queryOpts,
			database.WithLimit(limit),
			database.WithOffset(offset),
			database.WithOrderBy("rating", "DESC"),
		)
	}

	if opts.Q != nil && strings.TrimSpace(*opts.Q) != "" {
		q := "%" + strings.TrimSpace(*opts.Q) + "%"
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereRawCond("(name ILIKE $1 OR location ILIKE $1)", q),
		))
	}
	if opts.GuideID != nil && *opts.GuideID != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("guide_id", database.Equal, *opts.GuideID),
		))
	}
	if opts.Location != nil && strings.TrimSpace(*opts.Location) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("location", database.ILike, "%"+strings.TrimSpace(*opts.Location)+"%"),
		))
	}
	if opts.MaxPrice != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("price", database.LessThanOrEqual, *opts.MaxPrice),
		))
	}

	return database.NewListQueryOptions("tours", queryOpts...)
}
