package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/guiatur/guiatur-api/internal/data/database"
	"github.com/guiatur/guiatur-api/internal/data/pgxutil"
	"github.com/guiatur/guiatur-api/internal/domain/model"
)

// BookingRepo provides database operations for reservations.
type BookingRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewBookingRepo creates a new BookingRepo with real time provider.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewBookingRepoWithTimeProvider creates a new BookingRepo with a custom time provider (useful for tests).
func NewBookingRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *BookingRepo {
	return &BookingRepo{DB: db, timeProvider: tp}
}

// Create inserts a booking in pending status.
func (r *BookingRepo) Create(
	ctx context.Context,
	req *model.CreateBookingRequest,
	totalPrice float64,
) (*model.Booking, error) {
	if req == nil {
		return nil, errors.New("create booking request is required")
	}
	if err := req.Validate(r.timeProvider.Now()); err != nil {
		return nil, err
	}
	if totalPrice < 0 {
		return nil, errors.New("total price cannot be negative")
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Booking
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO bookings (user_id, guide_id, tour_id, date, participants, total_price, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, user_id, guide_id, tour_id, date, participants, total_price, status, created_at, updated_at
		`,
			req.UserID,
			req.GuideID,
			req.TourID,
			req.Date.UTC(),
			req.Participants,
			totalPrice,
			model.BookingStatusPending,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a booking by ID.
func (r *BookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var booking model.Booking
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, bookingGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		booking, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking by ID: %w", err)
	}
	return &booking, nil
}

// List retrieves bookings with optional filters and pagination.
func (r *BookingRepo) List(ctx context.Context, opts *model.BookingsListOptions) ([]*model.Booking, error) {
	if opts == nil {
		opts = &model.BookingsListOptions{}
	}
	query, args := database.BuildListQuery(r.buildBookingQueryOptions(opts))

	var rowsOut []model.Booking
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Booking])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	res := make([]*model.Booking, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// UpdateStatus transitions a booking and returns the updated row.
func (r *BookingRepo) UpdateStatus(
	ctx context.Context,
	id string,
	status model.BookingStatus,
) (*model.Booking, error) {
	if !status.Valid() {
		return nil, errors.New("status must be pending, confirmed, or cancelled")
	}

	var out model.Booking
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE bookings SET status = $1, updated_at = now()
			WHERE id = $2
			RETURNING id, user_id, guide_id, tour_id, date, participants, total_price, status, created_at, updated_at
		`, status, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	return &out, nil
}

// --- helpers ---

const bookingGetByIDQuery = `
		SELECT id, user_id, guide_id, tour_id, date, participants, total_price, status, created_at, updated_at
		FROM bookings
		WHERE id = $1`

// bookingColumns returns the standard column list for booking queries.
func bookingColumns() []string {
	return []string{
		"id",
		"user_id",
		"guide_id",
		"tour_id",
		"date",
		"participants",
		"total_price",
		"status",
		"created_at",
		"updated_at",
	}
}

// buildBookingQueryOptions builds query options for booking listing with filters.
func (r *BookingRepo) buildBookingQueryOptions(opts *model.BookingsListOptions) *database.ListQueryOptions {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	queryOpts := []database.ListQueryOption{
		database.WithColumns(bookingColumns()...),
		database.WithLimit(limit),
		database.WithOffset(offset),
		database.WithOrderBy("date", "DESC"),
	}

	if opts.UserID != nil && *opts.UserID != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("user_id", database.Equal, *opts.UserID),
		))
	}
	if opts.GuideID != nil && *opts.GuideID != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("guide_id", database.Equal, *opts.GuideID),
		))
	}
	if opts.Status != nil && *opts.Status != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("status", database.Equal, string(*opts.Status)),
		))
	}

	return database.NewListQueryOptions("bookings", queryOpts...)
}
