package data

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/guiatur/guiatur-api/internal/data/database"
	"github.com/guiatur/guiatur-api/internal/data/pgxutil"
	domainauth "github.com/guiatur/guiatur-api/internal/domain/auth"
	"github.com/guiatur/guiatur-api/internal/domain/model"
)

// initialGuideRating is assigned to every new guide profile.
const initialGuideRating = 5.0

// GuideRepo provides database operations for guide profiles.
type GuideRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewGuideRepo creates a new GuideRepo with real time provider.
func NewGuideRepo(db *sql.DB) *GuideRepo {
	return &GuideRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewGuideRepoWithTimeProvider creates a new GuideRepo with a custom time provider (useful for tests).
func NewGuideRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *GuideRepo {
	return &GuideRepo{DB: db, timeProvider: tp}
}

// guideRow mirrors the guides table; social_links is stored as JSONB.
type guideRow struct {
	ID             string          `db:"id"`
	UserID         string          `db:"user_id"`
	Name           string          `db:"name"`
	Email          string          `db:"email"`
	Location       string          `db:"location"`
	Languages      []string        `db:"languages"`
	Specialties    []string        `db:"specialties"`
	CadasturNumber string          `db:"cadastur_number"`
	SocialLinks    json.RawMessage `db:"social_links"`
	Rating         float64         `db:"rating"`
	CreatedAt      sql.NullTime    `db:"created_at"`
	UpdatedAt      sql.NullTime    `db:"updated_at"`
}

func (row guideRow) toModel() (*model.Guide, error) {
	g := &model.Guide{
		ID:             row.ID,
		UserID:         row.UserID,
		Name:           row.Name,
		Email:          row.Email,
		Location:       row.Location,
		Languages:      row.Languages,
		Specialties:    row.Specialties,
		CadasturNumber: row.CadasturNumber,
		Rating:         row.Rating,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
	if len(row.SocialLinks) > 0 {
		if err := json.Unmarshal(row.SocialLinks, &g.SocialLinks); err != nil {
			return nil, fmt.Errorf("decode social_links: %w", err)
		}
	}
	return g, nil
}

// Create inserts a new guide profile with the initial rating.
func (r *GuideRepo) Create(ctx context.Context, req *model.CreateGuideRequest) (*model.Guide, error) {
	if req == nil {
		return nil, errors.New("create guide request is required")
	}

	req.Sanitize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	links, err := json.Marshal(req.SocialLinks)
	if err != nil {
		return nil, fmt.Errorf("encode social_links: %w", err)
	}

	createdAt := r.timeProvider.Now().UTC()
	var row guideRow
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO guides (
				user_id, name, email, location, languages, specialties,
				cadastur_number, social_links, rating, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING `+guideColumnList,
			req.UserID,
			req.Name,
			domainauth.NormalizeEmail(req.Email),
			req.Location,
			req.Languages,
			req.Specialties,
			req.CadasturNumber,
			links,
			initialGuideRating,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		row, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[guideRow])
		return err
	}); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrGuideCadasturExists
		}
		return nil, fmt.Errorf("failed to create guide: %w", err)
	}
	return row.toModel()
}

// GetByID retrieves a guide by ID.
func (r *GuideRepo) GetByID(ctx context.Context, id string) (*model.Guide, error) {
	return r.getByQuery(ctx, guideGetByIDQuery, "failed to get guide by ID", id)
}

// GetByUserID retrieves the guide profile attached to a user account.
func (r *GuideRepo) GetByUserID(ctx context.Context, userID string) (*model.Guide, error) {
	return r.getByQuery(ctx, guideGetByUserIDQuery, "failed to get guide by user ID", userID)
}

// List retrieves guides with optional filters and pagination.
func (r *GuideRepo) List(ctx context.Context, opts *model.GuidesListOptions) ([]*model.Guide, error) {
	if opts == nil {
		opts = &model.GuidesListOptions{}
	}
	query, args := database.BuildListQuery(r.buildGuideQueryOptions(opts, false))

	var rowsOut []guideRow
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[guideRow])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list guides: %w", err)
	}

	res := make([]*model.Guide, 0, len(rowsOut))
	for i := range rowsOut {
		g, err := rowsOut[i].toModel()
		if err != nil {
			return nil, err
		}
		res = append(res, g)
	}
	return res, nil
}

// Count returns the number of guides matching the filters.
func (r *GuideRepo) Count(ctx context.Context, opts *model.GuidesListOptions) (int, error) {
	if opts == nil {
		opts = &model.GuidesListOptions{}
	}
	queryOpts := r.buildGuideQueryOptions(opts, true)
	query, args := database.BuildListQuery(queryOpts)

	var count int
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, query, args...).Scan(&count)
	}); err != nil {
		return 0, fmt.Errorf("failed to count guides: %w", err)
	}
	return count, nil
}

// UpdateRating replaces the aggregate rating of a guide.
func (r *GuideRepo) UpdateRating(ctx context.Context, id string, rating float64) error {
	if rating < 0 || rating > 5 {
		return errors.New("rating must be between 0 and 5")
	}

	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx,
			`UPDATE guides SET rating = $1, updated_at = now() WHERE id = $2`, rating, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update guide rating: %w", err)
	}
	if rows == 0 {
		return ErrGuideNotFound
	}
	return nil
}

// Delete deletes a guide by ID.
func (r *GuideRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM guides WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete guide: %w", err)
	}
	return rows > 0, nil
}

// --- helpers ---

const guideColumnList = `id, user_id, name, email, location, languages, specialties,
		cadastur_number, social_links, rating, created_at, updated_at`

const (
	guideGetByIDQuery = `
		SELECT ` + guideColumnList + `
		FROM guides
		WHERE id = $1`

	guideGetByUserIDQuery = `
		SELECT ` + guideColumnList + `
		FROM guides
		WHERE user_id = $1`
)

// guideColumns returns the standard column list for guide queries.
func guideColumns() []string {
	return []string{
		"id",
		"user_id",
		"name",
		"email",
		"location",
		"languages",
		"specialties",
		"cadastur_number",
		"social_links",
		"rating",
		"created_at",
		"updated_at",
	}
}

// buildGuideQueryOptions builds query options for guide listing with filters.
func (r *GuideRepo) buildGuideQueryOptions(
	opts *model.GuidesListOptions,
	countOnly bool,
) *database.ListQueryOptions {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	queryOpts := []database.ListQueryOption{
		database.WithColumns(guideColumns()...),
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
	if opts.Location != nil && strings.TrimSpace(*opts.Location) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("location", database.ILike, "%"+strings.TrimSpace(*opts.Location)+"%"),
		))
	}

	return database.NewListQueryOptions("guides", queryOpts...)
}

// getByQuery is a helper function to execute a query and return a single guide.
func (r *GuideRepo) getByQuery(
	ctx context.Context,
	q string,
	errMsg string,
	args ...any,
) (*model.Guide, error) {
	var row guideRow
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		row, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[guideRow])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGuideNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return row.toModel()
}
