package httpx

import (
	"net/http"
	"regexp"

	"github.com/guiatur/guiatur-api/internal/domain/model"
	"github.com/guiatur/guiatur-api/internal/http/validation"
	"github.com/guiatur/guiatur-api/internal/service"
)

// cadasturPattern matches the registration number issued by the federal
// tourism board: letters and digits, no separators.
var cadasturPattern = regexp.MustCompile(`^[A-Za-z0-9]{5,20}$`)

// UserHandlers provides HTTP handlers for account registration and profile reads.
type UserHandlers struct {
	Users *service.UserService
}

// RegisterTourist creates a tourist account.
// POST /api/users/tourist.
func (h *UserHandlers) RegisterTourist(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateUserRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.Users.RegisterTourist(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, user)
}

type registerGuideRequest struct {
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Password       string            `json:"password"`
	Location       string            `json:"location"`
	Languages      []string          `json:"languages"`
	Specialties    []string          `json:"specialties"`
	CadasturNumber string            `json:"cadastur_number"`
	SocialLinks    model.SocialLinks `json:"social_links"`
}

// RegisterGuide creates a guide account and its public profile in one step.
// POST /api/users/guide.
func (h *UserHandlers) RegisterGuide(w http.ResponseWriter, r *http.Request) {
	var req registerGuideRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	// Field-level pre-checks so the client gets a per-field error map; the
	// service layer revalidates before anything is written.
	fieldErrs := validation.New().
		Validate("name", req.Name, validation.Required("Name", 120)).
		Validate("location", req.Location, validation.Required("Location", 120)).
		Validate("cadastur_number", req.CadasturNumber, validation.Pattern("Cadastur number", cadasturPattern)).
		Errors()
	if len(fieldErrs) > 0 {
		WriteJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation",
			"errors": fieldErrs,
		})
		return
	}

	result, err := h.Users.RegisterGuide(r.Context(), service.RegisterGuideInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Location:       req.Location,
		Languages:      req.Languages,
		Specialties:    req.Specialties,
		CadasturNumber: req.CadasturNumber,
		SocialLinks:    req.SocialLinks,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"user":  result.User,
		"guide": result.Guide,
	})
}

// Me returns the signed-in account profile.
// GET /api/users/me.
func (h *UserHandlers) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		writeAuthRequired(w)
		return
	}

	user, err := h.Users.GetByID(r.Context(), session.UserID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, user)
}
