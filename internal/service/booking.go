package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/guiatur/guiatur-api/internal/core"
	"github.com/guiatur/guiatur-api/internal/data"
	"github.com/guiatur/guiatur-api/internal/domain/model"
	apperrors "github.com/guiatur/guiatur-api/internal/errors"
)

// notifyTimeout bounds the booking email send so a slow provider cannot
// hold the request open.
const notifyTimeout = 10 * time.Second

// BookingServiceOptions groups dependencies for BookingService.
type BookingServiceOptions struct {
	Bookings core.BookingRepository
	Guides   core.GuideRepository
	Tours    core.TourRepository
	Users    core.UserRepository
	Notifier core.BookingNotifier
	Logger   *slog.Logger
	Now      func() time.Time
}

// BookingService orchestrates reservations: pricing, persistence, and the
// best-effort confirmation email to the guide.
type BookingService struct {
	bookings core.BookingRepository
	guides   core.GuideRepository
	tours    core.TourRepository
	users    core.UserRepository
	notifier core.BookingNotifier
	logger   *slog.Logger
	now      func() time.Time
}

// NewBookingService constructs a new BookingService.
func NewBookingService(opts BookingServiceOptions) *BookingService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &BookingService{
		bookings: opts.Bookings,
		guides:   opts.Guides,
		tours:    opts.Tours,
		users:    opts.Users,
		notifier: opts.Notifier,
		logger:   logger,
		now:      now,
	}
}

// Create validates a booking request, prices it, persists it in pending
// status, and emails the guide. A failed email never rolls back the booking.
func (s *BookingService) Create(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error) {
	if err := req.Validate(s.now()); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	guide, err := s.guides.GetByID(ctx, req.GuideID)
	if err != nil {
		if errors.Is(err, data.ErrGuideNotFound) {
			return nil, apperrors.ValidationField("guide_id", "Guide not found")
		}
		return nil, apperrors.MapDBError(err)
	}

	tourName, unitPrice, err := s.resolvePrice(ctx, req, guide)
	if err != nil {
		return nil, err
	}
	totalPrice := unitPrice * float64(req.Participants)

	booking, err := s.bookings.Create(ctx, req, totalPrice)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	s.notifyGuide(ctx, booking, guide, tourName)

	return booking, nil
}

// resolvePrice returns the tour name and per-participant price. A booking
// without a tour is a direct guide hire and carries no tour pricing.
func (s *BookingService) resolvePrice(ctx context.Context, req *model.CreateBookingRequest, guide *model.Guide) (string, float64, error) {
	if req.TourID == nil {
		return "Reserva direta com " + guide.Name, 0, nil
	}
	tour, err := s.tours.GetByID(ctx, *req.TourID)
	if err != nil {
		if errors.Is(err, data.ErrTourNotFound) {
			return "", 0, apperrors.ValidationField("tour_id", "Tour not found")
		}
		return "", 0, apperrors.MapDBError(err)
	}
	if tour.GuideID != req.GuideID {
		return "", 0, apperrors.ValidationField("tour_id", "Tour does not belong to this guide")
	}
	return tour.Name, tour.Price, nil
}

func (s *BookingService) notifyGuide(ctx context.Context, booking *model.Booking, guide *model.Guide, tourName string) {
	if s.notifier == nil {
		return
	}

	tourist, err := s.users.GetByID(ctx, booking.UserID)
	if err != nil {
		s.logger.WarnContext(ctx, "skipping booking notification, tourist lookup failed",
			"booking_id", booking.ID, "error", err)
		return
	}

	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	notification := core.BookingNotification{
		GuideName:    guide.Name,
		GuideEmail:   guide.Email,
		TouristName:  tourist.Name,
		TouristEmail: tourist.Email,
		TourName:     tourName,
		Date:         booking.Date,
		Participants: booking.Participants,
		TotalPrice:   booking.TotalPrice,
	}
	if err := s.notifier.NotifyBookingCreated(notifyCtx, notification); err != nil {
		s.logger.WarnContext(ctx, "booking notification failed",
			"booking_id", booking.ID, "guide_id", guide.ID, "error", err)
	}
}

// GetByID retrieves a booking. Only the booking tourist or the booked guide's
// user account may read it; ownership is checked by the caller via the
// returned row.
func (s *BookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrBookingNotFound) {
			return nil, apperrors.NotFound("Booking not found")
		}
		return nil, apperrors.MapDBError(err)
	}
	return booking, nil
}

// ListByUser returns a tourist's own bookings, newest first.
func (s *BookingService) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*model.Booking, error) {
	opts := normalizeBookingsListOptions(model.BookingsListOptions{Limit: limit, Offset: offset, UserID: &userID})
	return s.bookings.List(ctx, &opts)
}

// ListByGuide returns the bookings received by a guide, newest first.
func (s *BookingService) ListByGuide(ctx context.Context, guideID string, limit, offset int) ([]*model.Booking, error) {
	opts := normalizeBookingsListOptions(model.BookingsListOptions{Limit: limit, Offset: offset, GuideID: &guideID})
	return s.bookings.List(ctx, &opts)
}

// List returns a page of bookings across all accounts, newest first. It
// backs the admin surface; the optional filters narrow the page.
func (s *BookingService) List(ctx context.Context, opts model.BookingsListOptions) ([]*model.Booking, error) {
	normalized := normalizeBookingsListOptions(opts)
	return s.bookings.List(ctx, &normalized)
}

// UpdateStatusInput carries a status transition and the acting guide.
type UpdateStatusInput struct {
	BookingID string
	GuideID   string
	Status    model.BookingStatus
}

// UpdateStatus confirms or cancels a booking. Only the booked guide may
// change the status, and a cancelled booking stays cancelled.
func (s *BookingService) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*model.Booking, error) {
	if !input.Status.Valid() {
		return nil, apperrors.ValidationField("status", "Unknown booking status")
	}

	booking, err := s.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.GuideID != input.GuideID {
		return nil, apperrors.AuthRejected("Booking belongs to another guide", nil)
	}
	if booking.Status == model.BookingStatusCancelled {
		return nil, apperrors.Conflict("Booking is already cancelled")
	}

	updated, err := s.bookings.UpdateStatus(ctx, input.BookingID, input.Status)
	if err != nil {
		if errors.Is(err, data.ErrBookingNotFound) {
			return nil, apperrors.NotFound("Booking not found")
		}
		return nil, apperrors.MapDBError(err)
	}
	return updated, nil
}

// Cancel lets the booking tourist cancel their own reservation.
func (s *BookingService) Cancel(ctx context.Context, bookingID, userID string) (*model.Booking, error) {
	booking, err := s.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, apperrors.AuthRejected("Booking belongs to another user", nil)
	}
	if booking.Status == model.BookingStatusCancelled {
		return booking, nil
	}

	updated, err := s.bookings.UpdateStatus(ctx, bookingID, model.BookingStatusCancelled)
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return updated, nil
}

func normalizeBookingsListOptions(opts model.BookingsListOptions) model.BookingsListOptions {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	return opts
}
