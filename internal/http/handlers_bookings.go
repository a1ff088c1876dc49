package httpx

import (
	"net/http"

	"github.com/guiatur/guiatur-api/internal/domain/model"
	"github.com/guiatur/guiatur-api/internal/service"
)

// BookingHandlers provides HTTP handlers for reservations.
type BookingHandlers struct {
	Svc    *service.BookingService
	Guides *service.GuideService
}

// Create books a guide (optionally a specific tour) for the signed-in
// tourist. The booking owner comes from the session, never from the body.
// POST /api/bookings.
func (h *BookingHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		writeAuthRequired(w)
		return
	}

	var req *model.CreateBookingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	req.UserID = session.UserID

	booking, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, booking)
}

// ListMine returns the signed-in tourist's own bookings.
// GET /api/bookings.
func (h *BookingHandlers) ListMine(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		writeAuthRequired(w)
		return
	}

	limit, offset := ParseLimitOffset(r, DefaultPageLimit, MaxPageLimit)
	bookings, err := h.Svc.ListByUser(r.Context(), session.UserID, limit, offset)
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

// ListForGuide returns the bookings received by the signed-in guide.
// GET /api/guides/me/bookings.
func (h *BookingHandlers) ListForGuide(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		writeAuthRequired(w)
		return
	}

	guide, err := h.Guides.GetByUserID(r.Context(), session.UserID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	limit, offset := ParseLimitOffset(r, DefaultPageLimit, MaxPageLimit)
	bookings, err := h.Svc.ListByGuide(r.Context(), guide.ID, limit, offset)
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

type updateBookingStatusRequest struct {
	Status model.BookingStatus `json:"status"`
}

// UpdateStatus lets the booked guide confirm or cancel a reservation.
// PATCH /api/bookings/{id}/status.
func (h *BookingHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		writeAuthRequired(w)
		return
	}

	guide, err := h.Guides.GetByUserID(r.Context(), session.UserID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	var req updateBookingStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	booking, err := h.Svc.UpdateStatus(r.Context(), service.UpdateStatusInput{
		BookingID: r.PathValue("id"),
		GuideID:   guide.ID,
		Status:    req.Status,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, booking)
}

// Cancel lets the booking tourist cancel their own reservation.
// POST /api/bookings/{id}/cancel.
func (h *BookingHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		writeAuthRequired(w)
		return
	}

	booking, err := h.Svc.Cancel(r.Context(), r.PathValue("id"), session.UserID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, booking)
}
