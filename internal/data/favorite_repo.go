package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/guiatur/guiatur-api/internal/data/pgxutil"
	"github.com/guiatur/guiatur-api/internal/domain/model"
)

// FavoriteRepo provides database operations for saved guides.
type FavoriteRepo struct {
	DB *sql.DB
}

// NewFavoriteRepo creates a new FavoriteRepo.
func NewFavoriteRepo(db *sql.DB) *FavoriteRepo {
	return &FavoriteRepo{DB: db}
}

// Toggle adds the (user, guide) pair when absent and removes it when
// present. The delete-then-insert runs in one transaction so concurrent
// toggles cannot leave duplicates.
func (r *FavoriteRepo) Toggle(ctx context.Context, userID, guideID string) (*model.ToggleResult, error) {
	if userID == "" || guideID == "" {
		return nil, errors.New("user_id and guide_id are required")
	}

	var result model.ToggleResult
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Fn: func(tx pgx.Tx) error {
			ct, err := tx.Exec(ctx,
				`DELETE FROM favorites WHERE user_id = $1 AND guide_id = $2`, userID, guideID)
			if err != nil {
				return err
			}
			if ct.RowsAffected() > 0 {
				result.Removed = true
				return nil
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO favorites (user_id, guide_id) VALUES ($1, $2)`, userID, guideID); err != nil {
				return err
			}
			result.Added = true
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle favorite: %w", err)
	}
	return &result, nil
}

// IsFavorite reports whether the user has saved the guide.
func (r *FavoriteRepo) IsFavorite(ctx context.Context, userID, guideID string) (bool, error) {
	var exists bool
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND guide_id = $2)`,
			userID, guideID).Scan(&exists)
	})
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return exists, nil
}

// ListByUser returns the favorite rows of a user, newest first.
func (r *FavoriteRepo) ListByUser(ctx context.Context, userID string) ([]*model.Favorite, error) {
	var rowsOut []model.Favorite
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, user_id, guide_id, created_at
			FROM favorites
			WHERE user_id = $1
			ORDER BY created_at DESC`, userID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Favorite])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	res := make([]*model.Favorite, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// ListGuidesByUser returns the full guide profiles a user has saved,
// newest save first.
func (r *FavoriteRepo) ListGuidesByUser(ctx context.Context, userID string) ([]*model.Guide, error) {
	var rowsOut []guideRow
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT g.id, g.user_id, g.name, g.email, g.location, g.languages, g.specialties,
			       g.cadastur_number, g.social_links, g.rating, g.created_at, g.updated_at
			FROM guides g
			JOIN favorites f ON f.guide_id = g.id
			WHERE f.user_id = $1
			ORDER BY f.created_at DESC`, userID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[guideRow])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list favorite guides: %w", err)
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
