package httpx

import (
	"net/http"
)

// StashRedirect stores the path a visitor was trying to reach before being
// sent to the login page. The stash is a short-lived cookie consumed exactly
// once on the next successful login.
func StashRedirect(w http.ResponseWriter, r *http.Request, path string) {
	path = safeRedirectPath(path)
	if path == "/" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     RedirectStashCookie,
		Value:    path,
		Path:     "/",
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   redirectStashMaxAge,
	})
}

// ConsumeRedirect returns the stashed redirect path and clears the cookie.
// It returns "" when no usable stash exists.
func ConsumeRedirect(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(RedirectStashCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}
	clearRedirectStash(w, r)

	path := safeRedirectPath(cookie.Value)
	if path == "/" {
		return ""
	}
	return path
}

func clearRedirectStash(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     RedirectStashCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}
