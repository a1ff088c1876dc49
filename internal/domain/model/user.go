//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxUserNameLen  = 120
	minPasswordLen  = 8
	maxUserEmailLen = 255
)

// emailPattern is intentionally permissive; the definitive check is the
// unique, lowercased column in the users table.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserType mirrors the `type` column of the users table. Admin is never
// stored; it is derived from the admin allow-list at role resolution time.
type UserType string

const (
	UserTypeTourist UserType = "tourist"
	UserTypeGuide   UserType = "guide"
)

// Valid reports whether the user type is supported for storage.
func (t UserType) Valid() bool {
	switch t {
	case UserTypeTourist, UserTypeGuide:
		return true
	default:
		return false
	}
}

// User represents a registered account profile.
type User struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	Email     string    `json:"email"      db:"email"`
	Type      UserType  `json:"type"       db:"type"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateUserRequest represents parameters to create a user profile with
// credentials.
type CreateUserRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Type     UserType `json:"type"`
}

// Validate validates CreateUserRequest.
func (r *CreateUserRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxUserNameLen {
		return errors.New("name cannot exceed 120 characters")
	}
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	if err := ValidatePassword(r.Password); err != nil {
		return err
	}
	if !r.Type.Valid() {
		return errors.New("type must be tourist or guide")
	}
	return nil
}

// ValidateEmail checks basic address shape and length.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email is required")
	}
	if utf8.RuneCountInString(email) > maxUserEmailLen {
		return errors.New("email cannot exceed 255 characters")
	}
	if !emailPattern.MatchString(email) {
		return errors.New("email format is invalid")
	}
	return nil
}

// ValidatePassword enforces the registration password policy: minimum
// length plus at least one uppercase, lowercase, digit, and special
// character.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLen {
		return errors.New("password must be at least 8 characters")
	}
	var upper, lower, digit, special bool
	for _, c := range password {
		switch {
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= '0' && c <= '9':
			digit = true
		case strings.ContainsRune(`!@#$%^&*(),.?":{}|<>`, c):
			special = true
		}
	}
	switch {
	case !upper:
		return errors.New("password must contain an uppercase letter")
	case !lower:
		return errors.New("password must contain a lowercase letter")
	case !digit:
		return errors.New("password must contain a digit")
	case !special:
		return errors.New("password must contain a special character")
	}
	return nil
}
