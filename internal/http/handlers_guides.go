package httpx

import (
	"net/http"

	"github.com/guiatur/guiatur-api/internal/domain/model"
	"github.com/guiatur/guiatur-api/internal/service"
)

// GuideHandlers provides HTTP handlers for the public guide catalog.
type GuideHandlers struct {
	Svc *service.GuideService
}

// List returns a filtered page of guide profiles.
// GET /api/guides?q=&location=&limit=&offset=.
func (h *GuideHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, DefaultPageLimit, MaxPageLimit)

	page, err := h.Svc.List(r.Context(), model.GuidesListOptions{
		Limit:    limit,
		Offset:   offset,
		Q:        queryStringPtr(r, "q"),
		Location: queryStringPtr(r, "location"),
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"guides": page.Guides,
		"total":  page.Total,
		"limit":  limit,
		"offset": offset,
	})
}

// Get returns a single guide profile by ID.
// GET /api/guides/{id}.
func (h *GuideHandlers) Get(w http.ResponseWriter, r *http.Request) {
	guide, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, guide)
}
