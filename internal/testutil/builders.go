// Package testutil provides testing utilities and helpers for the guiatur marketplace.
package testutil

import (
	"time"

	"github.com/guiatur/guiatur-api/internal/domain/model"
)

// UserRequestBuilder provides a fluent interface for building CreateUserRequest objects for testing.
type UserRequestBuilder struct {
	req *model.CreateUserRequest
}

// NewUserRequest creates a new UserRequestBuilder with sensible defaults.
func NewUserRequest() *UserRequestBuilder {
	return &UserRequestBuilder{
		req: &model.CreateUserRequest{
			Name:     "Ana Souza",
			Email:    "ana@example.com",
			Password: "Sup3r@Secret",
			Type:     model.UserTypeTourist,
		},
	}
}

// WithName sets the display name.
func (b *UserRequestBuilder) WithName(name string) *UserRequestBuilder {
	b.req.Name = name
	return b
}

// WithEmail sets the email address.
func (b *UserRequestBuilder) WithEmail(email string) *UserRequestBuilder {
	b.req.Email = email
	return b
}

// WithPassword sets the plaintext password.
func (b *UserRequestBuilder) WithPassword(password string) *UserRequestBuilder {
	b.req.Password = password
	return b
}

// WithType sets the account type.
func (b *UserRequestBuilder) WithType(userType model.UserType) *UserRequestBuilder {
	b.req.Type = userType
	return b
}

// Build returns the constructed CreateUserRequest.
func (b *UserRequestBuilder) Build() *model.CreateUserRequest {
	return b.req
}

// GuideRequestBuilder provides a fluent interface for building CreateGuideRequest objects for testing.
type GuideRequestBuilder struct {
	req *model.CreateGuideRequest
}

// NewGuideRequest creates a new GuideRequestBuilder with sensible defaults.
func NewGuideRequest(userID string) *GuideRequestBuilder {
	return &GuideRequestBuilder{
		req: &model.CreateGuideRequest{
			UserID:         userID,
			Name:           "Carlos Lima",
			Email:          "carlos@example.com",
			Location:       "Salvador",
			Languages:      []string{"portugues", "ingles"},
			Specialties:    []string{"aventura"},
			CadasturNumber: "CAD123456",
		},
	}
}

// WithName sets the guide name.
func (b *GuideRequestBuilder) WithName(name string) *GuideRequestBuilder {
	b.req.Name = name
	return b
}

// WithEmail sets the guide contact email.
func (b *GuideRequestBuilder) WithEmail(email string) *GuideRequestBuilder {
	b.req.Email = email
	return b
}

// WithLocation sets the guide base location.
func (b *GuideRequestBuilder) WithLocation(location string) *GuideRequestBuilder {
	b.req.Location = location
	return b
}

// WithCadastur sets the federal registry number.
func (b *GuideRequestBuilder) WithCadastur(number string) *GuideRequestBuilder {
	b.req.CadasturNumber = number
	return b
}

// WithLanguages sets the spoken languages.
func (b *GuideRequestBuilder) WithLanguages(languages ...string) *GuideRequestBuilder {
	b.req.Languages = languages
	return b
}

// WithSpecialties sets the guide specialties.
func (b *GuideRequestBuilder) WithSpecialties(specialties ...string) *GuideRequestBuilder {
	b.req.Specialties = specialties
	return b
}

// WithSocialLinks sets the profile links.
func (b *GuideRequestBuilder) WithSocialLinks(links model.SocialLinks) *GuideRequestBuilder {
	b.req.SocialLinks = links
	return b
}

// Build returns the constructed CreateGuideRequest.
func (b *GuideRequestBuilder) Build() *model.CreateGuideRequest {
	return b.req
}

// TourRequestBuilder provides a fluent interface for building CreateTourRequest objects for testing.
type TourRequestBuilder struct {
	req *model.CreateTourRequest
}

// NewTourRequest creates a new TourRequestBuilder with sensible defaults.
func NewTourRequest(guideID string) *TourRequestBuilder {
	return &TourRequestBuilder{
		req: &model.CreateTourRequest{
			GuideID:  guideID,
			Name:     "Passeio no Pelourinho",
			Location: "Salvador",
			Price:    150,
		},
	}
}

// WithName sets the tour name.
func (b *TourRequestBuilder) WithName(name string) *TourRequestBuilder {
	b.req.Name = name
	return b
}

// WithDescription sets the tour description.
func (b *TourRequestBuilder) WithDescription(description string) *TourRequestBuilder {
	b.req.Description = &description
	return b
}

// WithLocation sets the tour location.
func (b *TourRequestBuilder) WithLocation(location string) *TourRequestBuilder {
	b.req.Location = location
	return b
}

// WithPrice sets the per-person price.
func (b *TourRequestBuilder) WithPrice(price float64) *TourRequestBuilder {
	b.req.Price = price
	return b
}

// Build returns the constructed CreateTourRequest.
func (b *TourRequestBuilder) Build() *model.CreateTourRequest {
	return b.req
}

// BookingRequestBuilder provides a fluent interface for building CreateBookingRequest objects for testing.
type BookingRequestBuilder struct {
	req *model.CreateBookingRequest
}

// NewBookingRequest creates a new BookingRequestBuilder with sensible defaults.
// The date defaults to thirty days out so validation against "now" passes.
func NewBookingRequest(userID, guideID string) *BookingRequestBuilder {
	return &BookingRequestBuilder{
		req: &model.CreateBookingRequest{
			UserID:       userID,
			GuideID:      guideID,
			Date:         time.Now().AddDate(0, 0, 30).Truncate(time.Hour),
			Participants: 2,
		},
	}
}

// WithTour attaches the booking to a specific tour.
func (b *BookingRequestBuilder) WithTour(tourID string) *BookingRequestBuilder {
	b.req.TourID = &tourID
	return b
}

// WithDate sets the booking date.
func (b *BookingRequestBuilder) WithDate(date time.Time) *BookingRequestBuilder {
	b.req.Date = date
	return b
}

// WithParticipants sets the party size.
func (b *BookingRequestBuilder) WithParticipants(participants int) *BookingRequestBuilder {
	b.req.Participants = participants
	return b
}

// Build returns the constructed CreateBookingRequest.
func (b *BookingRequestBuilder) Build() *model.CreateBookingRequest {
	return b.req
}
