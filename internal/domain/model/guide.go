//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const maxGuideLocationLen = 255

// cadasturPattern validates the federal tour-guide registry number:
// alphanumeric, at least six characters.
var cadasturPattern = regexp.MustCompile(`^[a-zA-Z0-9]{6,}$`)

// SocialLinks carries optional profile links shown on a guide page.
type SocialLinks struct {
	Tripadvisor string `json:"tripadvisor,omitempty"`
	Instagram   string `json:"instagram,omitempty"`
}

// Guide represents a registered tour guide profile.
type Guide struct {
	ID             string      `json:"id"              db:"id"`
	UserID         string      `json:"user_id"         db:"user_id"`
	Name           string      `json:"name"            db:"name"`
	Email          string      `json:"email"           db:"email"`
	Location       string      `json:"location"        db:"location"`
	Languages      []string    `json:"languages"       db:"languages"`
	Specialties    []string    `json:"specialties"     db:"specialties"`
	CadasturNumber string      `json:"cadastur_number" db:"cadastur_number"`
	SocialLinks    SocialLinks `json:"social_links"    db:"social_links"`
	Rating         float64     `json:"rating"          db:"rating"`
	CreatedAt      time.Time   `json:"created_at"      db:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"      db:"updated_at"`
}

// CreateGuideRequest represents parameters to create a guide profile
// attached to an existing user.
type CreateGuideRequest struct {
	UserID         string      `json:"user_id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Location       string      `json:"location"`
	Languages      []string    `json:"languages"`
	Specialties    []string    `json:"specialties"`
	CadasturNumber string      `json:"cadastur_number"`
	SocialLinks    SocialLinks `json:"social_links"`
}

// Validate validates CreateGuideRequest.
func (r *CreateGuideRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return errors.New("user_id is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required and cannot be empty")
	}
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	location := strings.TrimSpace(r.Location)
	if location == "" {
		return errors.New("location is required")
	}
	if utf8.RuneCountInString(location) > maxGuideLocationLen {
		return errors.New("location cannot exceed 255 characters")
	}
	if !cadasturPattern.MatchString(strings.TrimSpace(r.CadasturNumber)) {
		return errors.New("cadastur_number must be alphanumeric with at least 6 characters")
	}
	return nil
}

// Sanitize trims free-text fields ahead of persistence.
func (r *CreateGuideRequest) Sanitize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Location = strings.TrimSpace(r.Location)
	r.CadasturNumber = strings.TrimSpace(r.CadasturNumber)
	r.SocialLinks.Tripadvisor = strings.TrimSpace(r.SocialLinks.Tripadvisor)
	r.SocialLinks.Instagram = strings.TrimSpace(r.SocialLinks.Instagram)
	r.Languages = trimAll(r.Languages)
	r.Specialties = trimAll(r.Specialties)
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// GuidesListOptions controls paging and filtering for listing guides.
// Q matches name or location via ILIKE substring.
type GuidesListOptions struct {
	Limit    int
	Offset   int
	Q        *string
	Location *string
}
