package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/mentem-portal/models"
)

const sessionCookieName = "mentem_session"

// setSession hands the token to both kinds of client: browsers keep the
// HttpOnly cookie, the terminal client reads the Authorization header.
func (h *Handler) setSession(w http.ResponseWriter, token models.SessionToken) {
	w.Header().Set("Authorization", "Bearer "+token.String())

	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	if expires := token.ExpiresAt(); !expires.IsZero() {
		cookie.Expires = expires
		cookie.MaxAge = int(time.Until(expires).Seconds())
	}
	http.SetCookie(w, cookie)
}

func (h *Handler) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}
