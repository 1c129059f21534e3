package handler

import (
	"gallery/internal/core"
	"net/http"
	"time"
)

const sessionCookieName = "gallery_session"

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// currentIdentity resolves the session cookie to the authenticated user.
// Protected handlers call this before any other validation.
func (h *GalleryHandler) currentIdentity(r *http.Request) (core.Identity, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return core.Identity{}, core.ErrInvalidSession
	}

	return h.gallery.CurrentUser(cookie.Value)
}
