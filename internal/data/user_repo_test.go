package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/guiatur/guiatur-api/internal/core"
	"github.com/guiatur/guiatur-api/internal/domain/model"
	"github.com/guiatur/guiatur-api/internal/ports"
	"github.com/guiatur/guiatur-api/internal/testutil"
)

func hashForTest(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func createTestUser(t *testing.T, db *sql.DB, email string, userType model.UserType) *model.User {
	t.Helper()
	repo := NewUserRepo(db)
	u, err := repo.Create(context.Background(), core.CreateUserParams{
		Name:         "Test User",
		Email:        email,
		PasswordHash: hashForTest(t, "Sup3r@Secret"),
		Type:         userType,
	})
	require.NoError(t, err)
	return u
}

func TestUserRepo_Create_Get_List_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)

		email := fmt.Sprintf("ana-%d@example.com", time.Now().UnixNano())
		u, err := repo.Create(ctx, core.CreateUserParams{
			Name:         "Ana Souza",
			Email:        " " + email + " ", // normalized on insert
			PasswordHash: hashForTest(t, "Sup3r@Secret"),
			Type:         model.UserTypeTourist,
		})
		require.NoError(t, err)
		require.NotEmpty(t, u.ID)
		assert.Equal(t, email, u.Email)
		assert.Equal(t, model.UserTypeTourist, u.Type)
		assert.NotZero(t, u.CreatedAt)

		got, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, u.Email, got.Email)

		byEmail, err := repo.GetByEmail(ctx, "  "+email+"  ")
		require.NoError(t, err)
		assert.Equal(t, u.ID, byEmail.ID)

		lst, err := repo.List(ctx, 10, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(lst), 1)

		deleted, err := repo.Delete(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, u.ID)
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)

		email := fmt.Sprintf("dup-%d@example.com", time.Now().UnixNano())
		createTestUser(t, db, email, model.UserTypeTourist)

		_, err := repo.Create(ctx, core.CreateUserParams{
			Name:         "Second",
			Email:        email,
			PasswordHash: hashForTest(t, "Sup3r@Secret"),
			Type:         model.UserTypeTourist,
		})
		require.ErrorIs(t, err, ErrUserEmailExists)
	})
}

func TestUserRepo_Create_ValidationErrors(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)

		// missing hash
		_, err := repo.Create(ctx, core.CreateUserParams{
			Name:  "Ana",
			Email: "ana@example.com",
			Type:  model.UserTypeTourist,
		})
		require.Error(t, err)

		// admin is never stored as a user type
		_, err = repo.Create(ctx, core.CreateUserParams{
			Name:         "Ana",
			Email:        "ana@example.com",
			PasswordHash: hashForTest(t, "Sup3r@Secret"),
			Type:         model.UserType("admin"),
		})
		require.Error(t, err)
	})
}

func TestUserRepo_Authenticate(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)

		email := fmt.Sprintf("auth-%d@example.com", time.Now().UnixNano())
		u := createTestUser(t, db, email, model.UserTypeTourist)

		id, err := repo.Authenticate(ctx, ports.Credentials{Email: email, Password: "Sup3r@Secret"})
		require.NoError(t, err)
		assert.Equal(t, u.ID, id.UserID)
		assert.Equal(t, email, id.Email)

		// wrong password and unknown email return the same sentinel
		_, err = repo.Authenticate(ctx, ports.Credentials{Email: email, Password: "wrong"})
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = repo.Authenticate(ctx, ports.Credentials{Email: "nobody@example.com", Password: "Sup3r@Secret"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserRepo_UpdatePassword(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)

		email := fmt.Sprintf("pw-%d@example.com", time.Now().UnixNano())
		u := createTestUser(t, db, email, model.UserTypeTourist)

		ok, err := repo.UpdatePassword(ctx, u.ID, hashForTest(t, "N3w@Secret!"))
		require.NoError(t, err)
		assert.True(t, ok)

		_, err = repo.Authenticate(ctx, ports.Credentials{Email: email, Password: "Sup3r@Secret"})
		require.ErrorIs(t, err, ErrInvalidCredentials)

		id, err := repo.Authenticate(ctx, ports.Credentials{Email: email, Password: "N3w@Secret!"})
		require.NoError(t, err)
		assert.Equal(t, u.ID, id.UserID)

		// unknown user reports no rows
		ok, err = repo.UpdatePassword(ctx, "00000000-0000-0000-0000-000000000000", hashForTest(t, "N3w@Secret!"))
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestUserRepo_RoleByID(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)

		tourist := createTestUser(t, db, fmt.Sprintf("t-%d@example.com", time.Now().UnixNano()), model.UserTypeTourist)
		guide := createTestUser(t, db, fmt.Sprintf("g-%d@example.com", time.Now().UnixNano()), model.UserTypeGuide)

		role, err := repo.RoleByID(ctx, tourist.ID)
		require.NoError(t, err)
		assert.Equal(t, "tourist", string(role))

		role, err = repo.RoleByID(ctx, guide.ID)
		require.NoError(t, err)
		assert.Equal(t, "guide", string(role))

		_, err = repo.RoleByID(ctx, "00000000-0000-0000-0000-000000000000")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
