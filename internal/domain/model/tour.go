//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxTourNameLen = 255

// Tour represents a bookable experience offered by a guide.
type Tour struct {
	ID          string    `json:"id"                    db:"id"`
	GuideID     string    `json:"guide_id"              db:"guide_id"`
	Name        string    `json:"name"                  db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	Location    string    `json:"location"              db:"location"`
	Photo       *string   `json:"photo,omitempty"       db:"photo"`
	Price       float64   `json:"price"                 db:"price"`
	Rating      float64   `json:"rating"                db:"rating"`
	CreatedAt   time.Time `json:"created_at"            db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"            db:"updated_at"`
}

// CreateTourRequest represents parameters to create a Tour.
type CreateTourRequest struct {
	GuideID     string  `json:"guide_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Location    string  `json:"location"`
	Photo       *string `json:"photo,omitempty"`
	Price       float64 `json:"price"`
}

// Validate validates CreateTourRequest.
func (r *CreateTourRequest) Validate() error {
	if strings.TrimSpace(r.GuideID) == "" {
		return errors.New("guide_id is required")
	}
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxTourNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	if strings.TrimSpace(r.Location) == "" {
		return errors.New("location is required")
	}
	if r.Price < 0 {
		return errors.New("price cannot be negative")
	}
	return nil
}

// ToursListOptions controls paging and filtering for listing tours.
// Q matches name or location via ILIKE substring.
type ToursListOptions struct {
	Limit    int
	Offset   int
	Q        *string
	GuideID  *string
	Location *string
	MaxPrice *float64
}

// Location is a browsable destination used by the search surface.
type Location struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	State     string    `json:"state"      db:"state"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TourismType is a category such as adventure, gastronomy, or culture.
type TourismType struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
