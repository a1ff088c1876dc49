package data

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Shared sentinel errors for data-layer repositories.
var (
	// User repository sentinels.
	ErrUserNotFound    = errors.New("user not found")
	ErrUserEmailExists = errors.New("email already registered")
	// ErrInvalidCredentials is returned on any email/password mismatch. The
	// message never reveals which of the two was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Guide repository sentinels.
	ErrGuideNotFound       = errors.New("guide not found")
	ErrGuideCadasturExists = errors.New("cadastur number already registered")

	// Tour repository sentinels.
	ErrTourNotFound = errors.New("tour not found")

	// Booking repository sentinels.
	ErrBookingNotFound = errors.New("booking not found")
)

// isUniqueViolation reports whether err is a PostgreSQL unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
