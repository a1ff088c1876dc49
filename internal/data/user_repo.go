package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/guiatur/guiatur-api/internal/core"
	"github.com/guiatur/guiatur-api/internal/data/pgxutil"
	domainauth "github.com/guiatur/guiatur-api/internal/domain/auth"
	"github.com/guiatur/guiatur-api/internal/domain/model"
	"github.com/guiatur/guiatur-api/internal/ports"
)

// UserRepo provides database operations for user accounts. Besides the
// CRUD contract it verifies password sign-ins and resolves stored roles,
// so a single repo backs both registration and the login flow.
type UserRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewUserRepo creates a new UserRepo with real time provider.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewUserRepoWithTimeProvider creates a new UserRepo with a custom time provider (useful for tests).
func NewUserRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *UserRepo {
	return &UserRepo{DB: db, timeProvider: tp}
}

// userCredentials carries the columns needed for a password check.
type userCredentials struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
}

// Create inserts a new user with the given bcrypt hash.
func (r *UserRepo) Create(ctx context.Context, params core.CreateUserParams) (*model.User, error) {
	if strings.TrimSpace(params.PasswordHash) == "" {
		return nil, errors.New("password hash is required")
	}
	if !params.Type.Valid() {
		return nil, errors.New("user type must be tourist or guide")
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO users (name, email, password_hash, type, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, name, email, type, created_at, updated_at
		`,
			strings.TrimSpace(params.Name),
			domainauth.NormalizeEmail(params.Email),
			params.PasswordHash,
			params.Type,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.getByQuery(ctx, userGetByIDQuery, "failed to get user by ID", id)
}

// GetByEmail retrieves a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getByQuery(ctx, userGetByEmailQuery, "failed to get user by email",
		domainauth.NormalizeEmail(email))
}

// List retrieves users with pagination.
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*model.User, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, userListQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	res := make([]*model.User, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// UpdatePassword replaces the stored hash for a user.
func (r *UserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) (bool, error) {
	if strings.TrimSpace(passwordHash) == "" {
		return false, errors.New("password hash is required")
	}

	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx,
			`UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`,
			passwordHash, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to update password: %w", err)
	}
	return rows > 0, nil
}

// Delete deletes a user by ID.
func (r *UserRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}
	return rows > 0, nil
}

// Authenticate verifies a password sign-in against the stored bcrypt
// hash. Unknown email and wrong password both return
// ErrInvalidCredentials. A bcrypt compare runs even when the email is
// unknown so both paths cost roughly the same.
func (r *UserRepo) Authenticate(ctx context.Context, creds ports.Credentials) (domainauth.Identity, error) {
	email := domainauth.NormalizeEmail(creds.Email)

	var uc userCredentials
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT id, name, email, password_hash FROM users WHERE email = $1`, email)
		if err != nil {
			return err
		}
		defer rows.Close()
		uc, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[userCredentials])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(creds.Password))
			return domainauth.Identity{}, ErrInvalidCredentials
		}
		return domainauth.Identity{}, fmt.Errorf("failed to load credentials: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(uc.PasswordHash), []byte(creds.Password)); err != nil {
		return domainauth.Identity{}, ErrInvalidCredentials
	}

	return domainauth.Identity{
		UserID: uc.ID,
		Name:   uc.Name,
		Email:  uc.Email,
	}, nil
}

// RoleByID returns the stored role of a user. The admin role is never
// stored; callers derive it from the allow-list.
func (r *UserRepo) RoleByID(ctx context.Context, userID string) (domainauth.Role, error) {
	var userType model.UserType
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx,
			`SELECT type FROM users WHERE id = $1`, userID).Scan(&userType)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to get user role: %w", err)
	}

	switch userType {
	case model.UserTypeGuide:
		return domainauth.RoleGuide, nil
	default:
		return domainauth.RoleTourist, nil
	}
}

// dummyHash is a valid bcrypt hash of an unguessable string, compared
// against when the email is unknown to keep timing uniform.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// getByQuery is a helper function to execute a query and return a single user.
// Uses variadic args to avoid slice allocation at call sites.
func (r *UserRepo) getByQuery(
	ctx context.Context,
	q string,
	errMsg string,
	args ...any,
) (*model.User, error) {
	var user model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		user, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return &user, nil
}

// SQL query constants for static queries (no dynamic WHERE/ORDER BY).
const (
	userGetByIDQuery = `
		SELECT id, name, email, type, created_at, updated_at
		FROM users
		WHERE id = $1`

	userGetByEmailQuery = `
		SELECT id, name, email, type, created_at, updated_at
		FROM users
		WHERE email = $1`

	userListQuery = `
		SELECT id, name, email, type, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
)
