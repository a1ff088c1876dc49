package core

import (
	"context"
	"time"

	"github.com/guiatur/guiatur-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// CreateUserParams groups parameters for UserRepository.Create to keep param count ≤3.
// PasswordHash is the bcrypt hash computed by the service layer; the raw
// password never reaches the repository.
type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash string
	Type         model.UserType
}

// UserRepository defines the interface for user account data operations.
type UserRepository interface {
	Create(ctx context.Context, params CreateUserParams) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, limit, offset int) ([]*model.User, error)
	// UpdatePassword replaces the stored hash. Returns false when the user does not exist.
	UpdatePassword(ctx context.Context, id, passwordHash string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// GuideRepository defines the interface for guide profile data operations.
type GuideRepository interface {
	Create(ctx context.Context, req *model.CreateGuideRequest) (*model.Guide, error)
	GetByID(ctx context.Context, id string) (*model.Guide, error)
	GetByUserID(ctx context.Context, userID string) (*model.Guide, error)
	List(ctx context.Context, opts *model.GuidesListOptions) ([]*model.Guide, error)
	Count(ctx context.Context, opts *model.GuidesListOptions) (int, error)
	UpdateRating(ctx context.Context, id string, rating float64) error
	Delete(ctx context.Context, id string) (bool, error)
}

// TourRepository defines the interface for tour catalog data operations.
type TourRepository interface {
	Create(ctx context.Context, req *model.CreateTourRequest) (*model.Tour, error)
	GetByID(ctx context.Context, id string) (*model.Tour, error)
	List(ctx context.Context, opts *model.ToursListOptions) ([]*model.Tour, error)
	Count(ctx context.Context, opts *model.ToursListOptions) (int, error)
	Delete(ctx context.Context, id string) (bool, error)

	// ListLocations returns the browsable destinations for the search surface.
	ListLocations(ctx context.Context) ([]*model.Location, error)
	// ListTourismTypes returns the tour categories for the search surface.
	ListTourismTypes(ctx context.Context) ([]*model.TourismType, error)
}

// BookingRepository defines the interface for reservation data operations.
type BookingRepository interface {
	// Create persists a booking in pending status. TotalPrice is computed
	// by the service from the tour price and participant count.
	Create(ctx context.Context, req *model.CreateBookingRequest, totalPrice float64) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context, opts *model.BookingsListOptions) ([]*model.Booking, error)
	// UpdateStatus transitions a booking and returns the updated row.
	UpdateStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error)
}

// FavoriteRepository defines the interface for saved-guide data operations.
type FavoriteRepository interface {
	// Toggle adds the (user, guide) pair when absent and removes it when present.
	Toggle(ctx context.Context, userID, guideID string) (*model.ToggleResult, error)
	IsFavorite(ctx context.Context, userID, guideID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Favorite, error)
	// ListGuidesByUser returns the full guide profiles a user has saved.
	ListGuidesByUser(ctx context.Context, userID string) ([]*model.Guide, error)
}

// BookingNotification groups the fields of a booking confirmation email.
type BookingNotification struct {
	GuideName    string
	GuideEmail   string
	TouristName  string
	TouristEmail string
	TourName     string
	Date         time.Time
	Participants int
	TotalPrice   float64
}

// BookingNotifier delivers booking notifications to the guide. Delivery is
// best effort; a failed send never rolls back the booking.
type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, n BookingNotification) error
}

// PasswordResetNotification groups the fields of a reset email. ResetURL
// carries the single-use token back into the app.
type PasswordResetNotification struct {
	Name     string
	Email    string
	ResetURL string
}

// PasswordResetNotifier delivers the password reset link to the account
// owner. Unlike booking notifications, a failed send is an error: without
// the email the flow cannot continue.
type PasswordResetNotifier interface {
	NotifyPasswordReset(ctx context.Context, n PasswordResetNotification) error
}
