package httpx

import (
	"errors"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/guiatur/guiatur-api/internal/domain/model"
	"github.com/guiatur/guiatur-api/internal/service"
)

var errUnknownBookingStatus = errors.New("status must be pending, confirmed, or cancelled")

// AdminHandlers provides HTTP handlers for the admin surface. Routing
// guards every handler here with the admin role.
type AdminHandlers struct {
	Users    *service.UserService
	Bookings *service.BookingService
}

// ListUsers returns a page of registered accounts.
// GET /api/admin/users.
func (h *AdminHandlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, DefaultPageLimit, MaxPageLimit)

	users, err := h.Users.List(r.Context(), limit, offset)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"users":  users,
		"limit":  limit,
		"offset": offset,
	})
}

// ListBookings returns a page of bookings across all accounts, optionally
// filtered by status.
// GET /api/admin/bookings?status=.
func (h *AdminHandlers) ListBookings(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, DefaultPageLimit, MaxPageLimit)

	opts := model.BookingsListOptions{Limit: limit, Offset: offset}
	if raw := queryStringPtr(r, "status"); raw != nil {
		status := model.BookingStatus(*raw)
		if !status.Valid() {
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "validation",
				Err:     errUnknownBookingStatus,
			})
			return
		}
		opts.Status = &status
	}

	bookings, err := h.Bookings.List(r.Context(), opts)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"bookings": bookings,
		"limit":    limit,
		"offset":   offset,
	})
}

// Overview backs the admin landing page with recent accounts and bookings
// loaded in parallel.
// GET /admin.
func (h *AdminHandlers) Overview(w http.ResponseWriter, r *http.Request) {
	var (
		users    []*model.User
		bookings []*model.Booking
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		users, err = h.Users.List(ctx, DefaultPageLimit, 0)
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = h.Bookings.List(ctx, model.BookingsListOptions{Limit: DefaultPageLimit})
		return err
	})
	if err := g.Wait(); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"page":            "admin",
		"recent_users":    users,
		"recent_bookings": bookings,
	})
}
