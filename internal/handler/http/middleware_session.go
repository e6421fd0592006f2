// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/mentem-portal/internal/gate"
	"github.com/MKhiriev/mentem-portal/internal/logger"
	"github.com/MKhiriev/mentem-portal/internal/utils"
)

// withSession resolves the caller's session once per request. The token is
// taken from the session cookie, falling back to the Authorization header
// used by non-browser clients; a cookie that does not parse does not hide a
// valid header. A missing or invalid token is not an error here: the request
// simply continues without claims and the gate or the API guards decide what
// happens.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		for _, tokenString := range sessionTokensFromRequest(r) {
			token, err := h.services.AuthService.ParseToken(ctx, tokenString)
			if err != nil {
				logger.FromRequest(r).Debug().Err(err).Msg("ignoring invalid session token")
				continue
			}

			next.ServeHTTP(w, r.WithContext(utils.WithSessionClaims(ctx, token.Claims)))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// sessionTokensFromRequest returns the candidate tokens in the order they are
// tried: cookie first, then bearer header.
func sessionTokensFromRequest(r *http.Request) []string {
	var tokens []string
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		tokens = append(tokens, cookie.Value)
	}
	if header := r.Header.Get("Authorization"); header != "" {
		if token, err := utils.ParseBearerToken(header); err == nil {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// consentGate applies the gate's decision to page routes. Excluded prefixes
// such as /api/ pass through untouched.
func (h *Handler) consentGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.gate.Guards(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		claims, _ := utils.GetSessionClaimsFromContext(r.Context())
		state := gate.StateOf(claims)
		decision := h.gate.Evaluate(state, r.URL.Path)

		if decision.Action == gate.Redirect {
			h.metrics.gate.WithLabelValues(state.String(), "redirect").Inc()
			logger.FromRequest(r).Debug().
				Str("state", state.String()).
				Str("location", decision.Location).
				Msg("consent gate redirect")
			http.Redirect(w, r, decision.Location, http.StatusTemporaryRedirect)
			return
		}

		h.metrics.gate.WithLabelValues(state.String(), "allow").Inc()
		next.ServeHTTP(w, r)
	})
}

// requireSession rejects API calls without a valid session with 401.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
			logger.FromRequest(r).Debug().Err(ErrNoSession).Send()
			writeError(w, ErrNoSession)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireConsent answers 401 without a session and 403 without consent.
func (h *Handler) requireConsent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ := utils.GetSessionClaimsFromContext(r.Context())
		switch gate.StateOf(claims) {
		case gate.Unauthenticated:
			writeError(w, ErrNoSession)
		case gate.AuthenticatedNoConsent:
			logger.FromRequest(r).Debug().Str("user_id", claims.UserID()).Err(ErrNoConsent).Send()
			writeError(w, ErrNoConsent)
		default:
			next.ServeHTTP(w, r)
		}
	})
}
