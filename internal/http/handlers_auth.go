package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainauth "github.com/guiatur/guiatur-api/internal/domain/auth"
	"github.com/guiatur/guiatur-api/internal/service"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	SignIn(ctx context.Context, input service.SignInInput) (*service.SignInResult, error)
	BeginLogin(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	CompleteLogin(ctx context.Context, input service.CompleteLoginInput) (*service.SignInResult, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	RefreshSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	SignOut(ctx context.Context, sessionID string) error
}

// PasswordChanger covers the credential management operations: in-session
// password changes plus the emailed reset flow.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, input service.ChangePasswordInput) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input service.ResetPasswordInput) error
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	Passwords    PasswordChanger
	CookieDomain string
	Logger       *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles password sign-in.
// POST /api/auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.SignIn(r.Context(), service.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	h.setSessionCookie(w, r, result.Session)

	// A stashed pre-login destination wins over the role landing page.
	// The stash is cleared either way so it cannot replay.
	redirectTo := ConsumeRedirect(w, r)
	if redirectTo == "" {
		redirectTo = result.LandingPath
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "success",
		"redirect_to": redirectTo,
		"user":        sessionPayload(result.Session),
	})
}

// BeginLogin starts the federated sign-in flow and bounces the browser to
// the identity provider. The post-login destination travels in the one-shot
// redirect stash; state and nonce wait in short-lived cookies for Callback.
// GET /auth/login?redirectTo=<optional_path>.
func (h *AuthHandlers) BeginLogin(w http.ResponseWriter, r *http.Request) {
	redirectTo := safeRedirectPath(r.URL.Query().Get("redirectTo"))

	result, err := h.Svc.BeginLogin(r.Context(), redirectTo)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "login_failed",
			Err:     err,
		})
		return
	}

	h.setOAuthCookie(w, r, OAuthStateCookie, result.State)
	h.setOAuthCookie(w, r, OAuthNonceCookie, result.Nonce)
	StashRedirect(w, r, redirectTo)

	http.Redirect(w, r, result.AuthURL, http.StatusFound)
}

// Callback finishes the federated sign-in flow. The provider sends the
// browser back with code and state; state must match the cookie written by
// BeginLogin before the code is exchanged for a session.
// GET /auth/callback?code=<code>&state=<state>.
func (h *AuthHandlers) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_code",
			Err:     errors.New("authorization code is required"),
		})
		return
	}
	if state == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_state",
			Err:     errors.New("state parameter is required"),
		})
		return
	}

	stateCookie, err := r.Cookie(OAuthStateCookie)
	if err != nil || stateCookie.Value != state {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_state",
			Err:     errors.New("invalid or missing state parameter"),
		})
		return
	}
	nonceCookie, err := r.Cookie(OAuthNonceCookie)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_nonce",
			Err:     errors.New("missing nonce parameter"),
		})
		return
	}

	result, err := h.Svc.CompleteLogin(r.Context(), service.CompleteLoginInput{
		Code:  code,
		State: state,
		Nonce: nonceCookie.Value,
	})
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "login_completion_failed",
			Err:     err,
		})
		return
	}

	h.setSessionCookie(w, r, result.Session)
	h.clearCookie(w, r, OAuthStateCookie)
	h.clearCookie(w, r, OAuthNonceCookie)

	redirectTo := ConsumeRedirect(w, r)
	if redirectTo == "" {
		redirectTo = result.LandingPath
	}
	http.Redirect(w, r, redirectTo, http.StatusSeeOther)
}

// Logout handles the logout endpoint.
// POST /api/auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	// Get session ID from cookie and invalidate the server-side session if present
	if sessionCookie, err := r.Cookie(SessionCookie); err == nil {
		if logoutErr := h.Svc.SignOut(r.Context(), sessionCookie.Value); logoutErr != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", logoutErr)
		}
	}

	// Clear session cookie on the client. A stashed pre-login destination
	// belongs to the old session, so it goes too.
	h.clearCookie(w, r, SessionCookie)
	clearRedirectStash(w, r)

	// AJAX requests get a JSON payload; regular requests redirect home
	isAJAX := strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest")
	if isAJAX {
		WriteJSON(w, http.StatusOK, map[string]string{
			"status":      "success",
			"redirect_to": "/",
		})
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Status returns the current authentication status.
// GET /api/auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie(SessionCookie)
	if err != nil {
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"authenticated": false,
		})
		return
	}

	session, err := h.Svc.GetSession(r.Context(), sessionCookie.Value)
	if err != nil {
		// Session is invalid or expired, clear the cookie
		h.clearCookie(w, r, SessionCookie)
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"authenticated": false,
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"user":          sessionPayload(*session),
		"expires_at":    session.ExpiresAt,
	})
}

// Refresh extends the current session lifetime and rewrites the cookie.
// POST /api/auth/refresh.
func (h *AuthHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie(SessionCookie)
	if err != nil {
		writeAuthRequired(w)
		return
	}

	session, err := h.Svc.RefreshSession(r.Context(), sessionCookie.Value)
	if err != nil {
		h.clearCookie(w, r, SessionCookie)
		writeAuthRequired(w)
		return
	}

	h.setSessionCookie(w, r, *session)
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "success",
		"expires_at": session.ExpiresAt,
	})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword replaces the signed-in account's password.
// POST /api/auth/password.
func (h *AuthHandlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		writeAuthRequired(w)
		return
	}

	var req changePasswordRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	err := h.Passwords.ChangePassword(r.Context(), service.ChangePasswordInput{
		UserID:          session.UserID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

type resetRequestRequest struct {
	Email string `json:"email"`
}

// RequestPasswordReset emails a single-use reset link. The response is the
// same whether or not the account exists.
// POST /api/auth/password/reset-request.
func (h *AuthHandlers) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req resetRequestRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Passwords.RequestPasswordReset(r.Context(), req.Email); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ResetPassword replaces the password of the account a reset token was
// issued for.
// POST /api/auth/password/reset.
func (h *AuthHandlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	err := h.Passwords.ResetPassword(r.Context(), service.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func sessionPayload(s domainauth.Session) map[string]interface{} {
	return map[string]interface{}{
		"id":    s.UserID,
		"name":  s.Name,
		"email": s.Email,
		"role":  s.Role,
	}
}

// clearCookie clears a cookie by setting it to expire immediately.
// It mirrors key attributes (Secure, Path, Domain, SameSite) used when setting cookies
// to maximize compatibility across browsers during deletion.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	cd := h.CookieDomain
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   cd,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// setOAuthCookie stores a state or nonce value for the callback leg.
func (h *AuthHandlers) setOAuthCookie(w http.ResponseWriter, r *http.Request, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   oauthCookieMaxAge,
	})
}

// setSessionCookie writes the session cookie based on the session's expiry.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	cd := h.CookieDomain
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    s.ID,
		Path:     "/",
		Domain:   cd,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
	})
}
