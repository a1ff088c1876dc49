//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// BookingStatus tracks the lifecycle of a reservation.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether the booking status is supported.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// Booking represents a reservation of a guide (optionally for a specific
// tour) on a given date.
type Booking struct {
	ID           string        `json:"id"                db:"id"`
	UserID       string        `json:"user_id"           db:"user_id"`
	GuideID      string        `json:"guide_id"          db:"guide_id"`
	TourID       *string       `json:"tour_id,omitempty" db:"tour_id"`
	Date         time.Time     `json:"date"              db:"date"`
	Participants int           `json:"participants"      db:"participants"`
	TotalPrice   float64       `json:"total_price"       db:"total_price"`
	Status       BookingStatus `json:"status"            db:"status"`
	CreatedAt    time.Time     `json:"created_at"        db:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"        db:"updated_at"`
}

// CreateBookingRequest represents parameters to create a Booking. UserID
// is taken from the authenticated session, never from the request body.
type CreateBookingRequest struct {
	UserID       string    `json:"-"`
	GuideID      string    `json:"guide_id"`
	TourID       *string   `json:"tour_id,omitempty"`
	Date         time.Time `json:"date"`
	Participants int       `json:"participants"`
}

// Validate validates CreateBookingRequest against the provided current time.
func (r *CreateBookingRequest) Validate(now time.Time) error {
	if strings.TrimSpace(r.UserID) == "" {
		return errors.New("user_id is required")
	}
	if strings.TrimSpace(r.GuideID) == "" {
		return errors.New("guide_id is required")
	}
	if r.Date.IsZero() {
		return errors.New("date is required")
	}
	if r.Date.Before(now) {
		return errors.New("date must be in the future")
	}
	if r.Participants <= 0 {
		return errors.New("participants must be greater than zero")
	}
	return nil
}

// BookingsListOptions controls paging and filtering for listing bookings.
type BookingsListOptions struct {
	Limit   int
	Offset  int
	UserID  *string
	GuideID *string
	Status  *BookingStatus
}
