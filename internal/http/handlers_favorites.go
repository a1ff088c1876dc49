package httpx

import (
	"net/http"

	"github.com/guiatur/guiatur-api/internal/service"
)

// FavoriteHandlers provides HTTP handlers for the favorites list.
type FavoriteHandlers struct {
	Svc *service.FavoriteService
}

// Toggle flips the favorite mark on a guide for the signed-in user.
// POST /api/favorites/{guideId}.
func (h *FavoriteHandlers) Toggle(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		writeAuthRequired(w)
		return
	}

	result, err := h.Svc.Toggle(r.Context(), session.UserID, r.PathValue("guideId"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// List returns the signed-in user's favorite guides.
// GET /api/favorites.
func (h *FavoriteHandlers) List(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		writeAuthRequired(w)
		return
	}

	guides, err := h.Svc.ListGuides(r.Context(), session.UserID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{"guides": guides})
}
