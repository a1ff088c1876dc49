package httpx

import (
	"html/template"
	"net/http"

	"github.com/guiatur/guiatur-api/internal/domain/model"
	"github.com/guiatur/guiatur-api/internal/service"
)

// PageHandlers serves the browser entry points. The client renders the
// pages; these handlers return the data each page needs.
type PageHandlers struct {
	Users    *service.UserService
	Guides   *service.GuideService
	Tours    *service.TourService
	Bookings *service.BookingService
}

// Home serves the landing payload.
// GET /.
func (h *PageHandlers) Home(w http.ResponseWriter, r *http.Request) {
	payload := map[string]interface{}{"page": "home"}
	if erro := r.URL.Query().Get("erro"); erro != "" {
		payload["erro"] = erro
	}
	if session, ok := GetUserSessionFromContext(r.Context()); ok {
		payload["user"] = sessionPayload(*session)
	}
	WriteJSON(w, http.StatusOK, payload)
}

var loginPageTemplate = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>Entrar | Guiatur</title></head>
<body>
<main>
  <h1>Entrar</h1>
  <form id="login-form" data-endpoint="/api/auth/login"{{if .RedirectTo}} data-redirect-to="{{.RedirectTo}}"{{end}}>
    <label>E-mail <input type="email" name="email" required></label>
    <label>Senha <input type="password" name="password" required></label>
    <button type="submit">Entrar</button>
  </form>
</main>
</body>
</html>
`))

// LoginPage serves the sign-in form. A redirectTo query param is stashed so
// a successful sign-in can send the visitor back where they started.
// GET /login.
func (h *PageHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	redirectTo := safeRedirectPath(r.URL.Query().Get("redirectTo"))
	if redirectTo != "/" {
		StashRedirect(w, r, redirectTo)
	} else {
		redirectTo = ""
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := loginPageTemplate.Execute(w, struct{ RedirectTo string }{RedirectTo: redirectTo}); err != nil {
		// Headers are already out; nothing useful left to send.
		return
	}
}

var resetPasswordPageTemplate = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>Redefinir senha | Guiatur</title></head>
<body>
<main>
  <h1>Redefinir senha</h1>
  <form id="reset-password-form" data-endpoint="/api/auth/password/reset"{{if .Token}} data-token="{{.Token}}"{{end}}>
    <label>Nova senha <input type="password" name="new_password" required></label>
    <button type="submit">Redefinir</button>
  </form>
</main>
</body>
</html>
`))

// ResetPasswordPage serves the form the emailed reset link lands on. The
// token rides along so the client can post it back with the new password.
// GET /reset-password?token=.
func (h *PageHandlers) ResetPasswordPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct{ Token string }{Token: r.URL.Query().Get("token")}
	if err := resetPasswordPageTemplate.Execute(w, data); err != nil {
		// Headers are already out; nothing useful left to send.
		return
	}
}

// Search serves the search page payload: a filtered guide and tour listing
// plus the filter vocabulary.
// GET /search?q=&location=.
func (h *PageHandlers) Search(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, DefaultPageLimit, MaxPageLimit)
	q := queryStringPtr(r, "q")
	location := queryStringPtr(r, "location")

	guides, err := h.Guides.List(r.Context(), model.GuidesListOptions{
		Limit:    limit,
		Offset:   offset,
		Q:        q,
		Location: location,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	tours, err := h.Tours.List(r.Context(), model.ToursListOptions{
		Limit:    limit,
		Offset:   offset,
		Q:        q,
		Location: location,
		MaxPrice: queryFloatPtr(r, "max_price"),
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	locations, err := h.Tours.ListLocations(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	types, err := h.Tours.ListTourismTypes(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"page":          "search",
		"guides":        guides.Guides,
		"guides_total":  guides.Total,
		"tours":         tours.Tours,
		"tours_total":   tours.Total,
		"locations":     locations,
		"tourism_types": types,
	})
}

// TourPage serves a tour detail payload with its guide.
// GET /tour/{id}.
func (h *PageHandlers) TourPage(w http.ResponseWriter, r *http.Request) {
	tour, err := h.Tours.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	guide, err := h.Guides.GetByID(r.Context(), tour.GuideID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"page":  "tour",
		"tour":  tour,
		"guide": guide,
	})
}

// BookingPage serves the booking entry payload: the guide and their tours.
// The page itself is public; submitting the booking requires sign-in.
// GET /booking/{guideId}.
func (h *PageHandlers) BookingPage(w http.ResponseWriter, r *http.Request) {
	guide, err := h.Guides.GetByID(r.Context(), r.PathValue("guideId"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	guideID := guide.ID
	tours, err := h.Tours.List(r.Context(), model.ToursListOptions{GuideID: &guideID})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	payload := map[string]interface{}{
		"page":  "booking",
		"guide": guide,
		"tours": tours.Tours,
	}
	if session, ok := GetUserSessionFromContext(r.Context()); ok {
		payload["user"] = sessionPayload(*session)
	}
	WriteJSON(w, http.StatusOK, payload)
}

// GuideDashboard serves the partner dashboard payload: the guide profile,
// catalog, and received bookings.
// GET /dashboard and GET /parceiro/dashboard.
func (h *PageHandlers) GuideDashboard(w http.ResponseWriter, r *http.Request) {
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

	guideID := guide.ID
	tours, err := h.Tours.List(r.Context(), model.ToursListOptions{GuideID: &guideID})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	bookings, err := h.Bookings.ListByGuide(r.Context(), guide.ID, DefaultPageLimit, 0)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"page":     "dashboard",
		"guide":    guide,
		"tours":    tours.Tours,
		"bookings": bookings,
	})
}

// Profile serves the signed-in account payload, including the guide
// profile when the account has one.
// GET /perfil.
func (h *PageHandlers) Profile(w http.ResponseWriter, r *http.Request) {
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

	payload := map[string]interface{}{
		"page": "profile",
		"user": user,
	}
	if user.Type == model.UserTypeGuide {
		if guide, guideErr := h.Guides.GetByUserID(r.Context(), session.UserID); guideErr == nil {
			payload["guide"] = guide
		}
	}
	WriteJSON(w, http.StatusOK, payload)
}

// Reservations serves the signed-in tourist's bookings page payload.
// GET /reservas.
func (h *PageHandlers) Reservations(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		writeAuthRequired(w)
		return
	}

	limit, offset := ParseLimitOffset(r, DefaultPageLimit, MaxPageLimit)
	bookings, err := h.Bookings.ListByUser(r.Context(), session.UserID, limit, offset)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"page":     "reservations",
		"bookings": bookings,
	})
}
