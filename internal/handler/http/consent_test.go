package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/mentem-portal/internal/store"
	"github.com/MKhiriev/mentem-portal/models"
)

func TestSubmitConsent_RefreshesSessionBeforeResponding(t *testing.T) {
	h, m := newTestHandler(t)
	expectSessions(m)
	m.consent.EXPECT().SubmitConsent(gomock.Any(), testUserID).Return(testToken(consentedToken, true), nil)

	router := h.Init()
	rr := serveWith(router, newRequest(t, http.MethodPost, "/api/consent", nil, noConsentToken))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.ConsentResult{Success: true, Message: "consent recorded"}, decodeBody[models.ConsentResult](t, rr))
	assert.Equal(t, "Bearer "+consentedToken, rr.Header().Get("Authorization"))

	cookie := sessionCookie(rr)
	require.NotNil(t, cookie)
	assert.Equal(t, consentedToken, cookie.Value)

	// the next page request with the new cookie passes the gate
	m.chat.EXPECT().ListSessions(gomock.Any(), testUserID).Return(nil, nil)
	m.chat.EXPECT().NewSessionID(gomock.Any()).Return(testSessionID)

	next := newRequest(t, http.MethodGet, "/", nil, "")
	next.AddCookie(cookie)
	rr = serveWith(router, next)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.ViewChat, decodeBody[models.PageView](t, rr).View)
}

func TestSubmitConsent_FailureKeepsOldToken(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"user gone", fmt.Errorf("updating consent: %w", store.ErrNoUserWasFound), http.StatusNotFound},
		{"write failed", fmt.Errorf("updating consent: %w", store.ErrExecutingQuery), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			expectSessions(m)
			m.consent.EXPECT().SubmitConsent(gomock.Any(), testUserID).Return(models.SessionToken{}, tt.err)

			rr := serve(h, newRequest(t, http.MethodPost, "/api/consent", nil, noConsentToken))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Nil(t, sessionCookie(rr))
			assert.Empty(t, rr.Header().Get("Authorization"))
		})
	}
}

func TestSubmitConsent_RequiresSession(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, newRequest(t, http.MethodPost, "/api/consent", nil, ""))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
