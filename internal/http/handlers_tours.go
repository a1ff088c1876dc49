package httpx

import (
	"errors"
	"net/http"

	"github.com/guiatur/guiatur-api/internal/domain/model"
	"github.com/guiatur/guiatur-api/internal/service"
)

// TourHandlers provides HTTP handlers for the tour catalog and the search
// vocabulary endpoints.
type TourHandlers struct {
	Svc    *service.TourService
	Guides *service.GuideService
}

// List returns a filtered page of tours.
// GET /api/tours?q=&guide_id=&location=&max_price=&limit=&offset=.
func (h *TourHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, DefaultPageLimit, MaxPageLimit)

	page, err := h.Svc.List(r.Context(), model.ToursListOptions{
		Limit:    limit,
		Offset:   offset,
		Q:        queryStringPtr(r, "q"),
		GuideID:  queryStringPtr(r, "guide_id"),
		Location: queryStringPtr(r, "location"),
		MaxPrice: queryFloatPtr(r, "max_price"),
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"tours":  page.Tours,
		"total":  page.Total,
		"limit":  limit,
		"offset": offset,
	})
}

// Get returns a single tour by ID.
// GET /api/tours/{id}.
func (h *TourHandlers) Get(w http.ResponseWriter, r *http.Request) {
	tour, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, tour)
}

// Create adds a tour to the signed-in guide's catalog. The owning guide is
// derived from the session, never from the request body.
// POST /api/tours.
func (h *TourHandlers) Create(w http.ResponseWriter, r *http.Request) {
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

	var req *model.CreateTourRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	req.GuideID = guide.ID

	tour, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, tour)
}

// Delete removes a tour owned by the signed-in guide.
// DELETE /api/tours/{id}.
func (h *TourHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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

	deleted, err := h.Svc.Delete(r.Context(), r.PathValue("id"), guide.ID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errors.New("tour not found")})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Locations returns the browsable destinations for the search surface.
// GET /api/locations.
func (h *TourHandlers) Locations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.Svc.ListLocations(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{"locations": locations})
}

// TourismTypes returns the tour categories for the search surface.
// GET /api/tourism-types.
func (h *TourHandlers) TourismTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Svc.ListTourismTypes(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{"tourism_types": types})
}
