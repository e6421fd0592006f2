// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/mentem-portal/models"
)

// ─────────────────────────────────────────────
// consent gate on page routes
// ─────────────────────────────────────────────

func TestConsentGate_Redirects(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		token        string
		wantLocation string
	}{
		{"anonymous root goes to login with callback", "/", "", "/login?callbackUrl=%2F"},
		{"anonymous deep path keeps callback", "/settings/profile", "", "/login?callbackUrl=%2Fsettings%2Fprofile"},
		{"invalid token is anonymous", "/", invalidToken, "/login?callbackUrl=%2F"},
		{"no consent on root goes to login", "/", noConsentToken, "/login"},
		{"no consent on other path goes to login", "/settings", noConsentToken, "/login"},
		{"consented on login goes to root", "/login", consentedToken, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			expectSessions(m)

			rr := serve(h, newRequest(t, http.MethodGet, tt.path, nil, tt.token))

			assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)
			assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
		})
	}
}

func TestConsentGate_ExcludedPathsAreNotRedirected(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, path := range []string{"/api/unknown", "/static/app.js", "/favicon.ico", "/healthz"} {
		rr := serve(h, newRequest(t, http.MethodGet, path, nil, ""))
		assert.NotEqual(t, http.StatusTemporaryRedirect, rr.Code, path)
	}
}

func TestConsentGate_AllowedUnknownPathIs404(t *testing.T) {
	h, m := newTestHandler(t)
	expectSessions(m)

	rr := serve(h, newRequest(t, http.MethodGet, "/settings", nil, consentedToken))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestLoginPage_Views(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		token        string
		wantView     string
		wantCallback string
		wantUser     bool
	}{
		{"anonymous sees login", "/login", "", models.ViewLogin, "", false},
		{"anonymous keeps safe callback", "/login?callbackUrl=%2Fsettings", "", models.ViewLogin, testCallbackPath, false},
		{"anonymous drops foreign callback", "/login?callbackUrl=https%3A%2F%2Fevil.example", "", models.ViewLogin, "", false},
		{"invalid token sees login", "/login", invalidToken, models.ViewLogin, "", false},
		{"no consent sees consent form", "/login", noConsentToken, models.ViewConsent, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			expectSessions(m)

			rr := serve(h, newRequest(t, http.MethodGet, tt.target, nil, tt.token))

			require.Equal(t, http.StatusOK, rr.Code)
			view := decodeBody[models.PageView](t, rr)
			assert.Equal(t, tt.wantView, view.View)
			assert.Equal(t, tt.wantCallback, view.CallbackURL)
			assert.Equal(t, tt.wantUser, view.User != nil)
		})
	}
}

func TestChatPage_ConsentedSeesChat(t *testing.T) {
	h, m := newTestHandler(t)
	expectSessions(m)
	sessions := []models.SessionSummary{{SessionID: "s-2", Timestamp: "2026-03-02T10:00:00Z"}}
	m.chat.EXPECT().ListSessions(gomock.Any(), testUserID).Return(sessions, nil)
	m.chat.EXPECT().NewSessionID(gomock.Any()).Return(testSessionID)

	rr := serve(h, newRequest(t, http.MethodGet, "/", nil, consentedToken))

	require.Equal(t, http.StatusOK, rr.Code)
	view := decodeBody[models.PageView](t, rr)
	assert.Equal(t, models.ViewChat, view.View)
	assert.Equal(t, testSessionID, view.SessionID)
	require.NotNil(t, view.User)
	assert.Equal(t, testUserID, view.User.ID)
	require.Len(t, view.Sessions, 1)
	assert.Equal(t, "s-2", view.Sessions[0].SessionID)
}

func TestChatPage_UpstreamDownStillRenders(t *testing.T) {
	h, m := newTestHandler(t)
	expectSessions(m)
	m.chat.EXPECT().ListSessions(gomock.Any(), testUserID).Return(nil, assert.AnError)
	m.chat.EXPECT().NewSessionID(gomock.Any()).Return(testSessionID)

	rr := serve(h, newRequest(t, http.MethodGet, "/", nil, consentedToken))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decodeBody[models.PageView](t, rr).Sessions)
}

// ─────────────────────────────────────────────
// session resolution
// ─────────────────────────────────────────────

func TestWithSession_CookieWinsOverHeader(t *testing.T) {
	h, m := newTestHandler(t)
	expectSessions(m)

	req := newRequest(t, http.MethodGet, "/login", nil, consentedToken)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: noConsentToken})

	rr := serve(h, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.ViewConsent, decodeBody[models.PageView](t, rr).View)
}

func TestWithSession_InvalidCookieFallsBackToHeader(t *testing.T) {
	h, m := newTestHandler(t)
	expectSessions(m)

	req := newRequest(t, http.MethodGet, "/login", nil, consentedToken)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: invalidToken})

	rr := serve(h, req)

	require.Equal(t, http.StatusTemporaryRedirect, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestWithSession_InvalidCookieAndNoHeader(t *testing.T) {
	h, m := newTestHandler(t)
	expectSessions(m)

	req := newRequest(t, http.MethodGet, "/", nil, "")
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: invalidToken})

	rr := serve(h, req)

	require.Equal(t, http.StatusTemporaryRedirect, rr.Code)
	assert.Equal(t, "/login?callbackUrl=%2F", rr.Header().Get("Location"))
}

func TestSessionTokensFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		header string
		want   []string
	}{
		{"nothing", "", "", nil},
		{"cookie only", "c", "", []string{"c"}},
		{"header only", "", "Bearer h", []string{"h"}},
		{"malformed header", "", "Basic h", nil},
		{"both, cookie first", "c", "Bearer h", []string{"c", "h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(t, http.MethodGet, "/", nil, "")
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			assert.Equal(t, tt.want, sessionTokensFromRequest(req))
		})
	}
}

// ─────────────────────────────────────────────
// API guards
// ─────────────────────────────────────────────

func TestRequireConsent(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantStatus int
		wantError  string
	}{
		{"no session", "", http.StatusUnauthorized, "token is expired or invalid"},
		{"invalid token", invalidToken, http.StatusUnauthorized, "token is expired or invalid"},
		{"no consent", noConsentToken, http.StatusForbidden, "consent is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			expectSessions(m)

			rr := serve(h, newRequest(t, http.MethodGet, "/api/chat/sessions", nil, tt.token))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantError, errorBody(t, rr))
		})
	}
}

func TestRequireSession_AllowsNoConsent(t *testing.T) {
	h, m := newTestHandler(t)
	expectSessions(m)
	m.auth.EXPECT().RefreshToken(gomock.Any(), testUserID).Return(testToken("refreshed", false), nil)

	rr := serve(h, newRequest(t, http.MethodPost, "/api/auth/session", nil, noConsentToken))

	assert.Equal(t, http.StatusOK, rr.Code)
}
