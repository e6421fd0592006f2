package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/mentem-portal/internal/config"
	"github.com/MKhiriev/mentem-portal/internal/logger"
	"github.com/MKhiriev/mentem-portal/models"
)

func newTestPortalAdapter(t *testing.T, serverURL string) *httpPortalAdapter {
	t.Helper()
	a, err := NewHTTPPortalAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpPortalAdapter)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://portal.example.com/", want: "https://portal.example.com"},
		{raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPPortalAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPPortalAdapter(config.ClientAdapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

// ── Login / Logout ──────────────────────────────────────────────────────────

func TestPortalLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "jane@example.com", creds.Email)

		w.Header().Set("Authorization", "Bearer header.payload.sig")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"redirect":"/login","user":{"id":"u1","email":"jane@example.com","name":"Jane","consent_given":false}}`))
	}))
	defer srv.Close()

	a := newTestPortalAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Credentials{Email: "jane@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "/login", got.Redirect)
	assert.Equal(t, "u1", got.User.ID)
	assert.Equal(t, "header.payload.sig", a.Token())
}

func TestPortalLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("login failed"))
	}))
	defer srv.Close()

	a := newTestPortalAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "x@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestPortalLogin_MissingHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := newTestPortalAdapter(t, srv.URL).Login(context.Background(), models.Credentials{})
	assert.Error(t, err)
}

// ── Signup ──────────────────────────────────────────────────────────────────

func TestPortalSignup_Created(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/signup", r.URL.Path)

		var req models.SignupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Jane", req.FirstName)
		assert.Equal(t, "jane@example.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"u1","email":"jane@example.com","name":"Jane","consent_given":false}`))
	}))
	defer srv.Close()

	a := newTestPortalAdapter(t, srv.URL)
	got, err := a.Signup(context.Background(), models.SignupRequest{FirstName: "Jane", Email: "jane@example.com", Password: "secret12"})

	require.NoError(t, err)
	assert.Equal(t, models.Identity{ID: "u1", Email: "jane@example.com", Name: "Jane"}, got)
	assert.Empty(t, a.Token())
}

func TestPortalSignup_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"email already registered"}`))
	}))
	defer srv.Close()

	_, err := newTestPortalAdapter(t, srv.URL).Signup(context.Background(), models.SignupRequest{})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestPortalLogout_ClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/logout", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestPortalAdapter(t, srv.URL)
	a.SetToken("tok")

	require.NoError(t, a.Logout(context.Background()))
	assert.Empty(t, a.Token())
}

// ── Consent ─────────────────────────────────────────────────────────────────

func TestPortalSubmitConsent_RefreshesToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/consent", r.URL.Path)
		assert.Equal(t, "Bearer old", r.Header.Get("Authorization"))

		w.Header().Set("Authorization", "Bearer new")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"consent recorded"}`))
	}))
	defer srv.Close()

	a := newTestPortalAdapter(t, srv.URL)
	a.SetToken("old")

	got, err := a.SubmitConsent(context.Background())
	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, "new", a.Token())
}

func TestPortalSubmitConsent_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestPortalAdapter(t, srv.URL)
	a.SetToken("old")

	_, err := a.SubmitConsent(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "old", a.Token())
}

// ── Chat ────────────────────────────────────────────────────────────────────

func TestPortalChat_Endpoints(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/chat/sessions":
			_, _ = w.Write([]byte(`{"sessions":[{"session_id":"s2","timestamp":"2026-01-02T00:00:00Z"}]}`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/chat/sessions":
			_, _ = w.Write([]byte(`{"session_id":"fresh"}`))
		case r.URL.Path == "/api/chat/history":
			var req models.HistoryRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "s2", req.SessionID)
			_, _ = w.Write([]byte(`{"session_id":"s2","read_only":true,"turns":[{"id":1,"sender":"user","text":"hi","status":"delivered"}]}`))
		case r.URL.Path == "/api/chat/messages":
			var msg models.ChatMessage
			require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
			assert.Equal(t, models.ChatMessage{Message: "hello", SessionID: "fresh"}, msg)
			_, _ = w.Write([]byte(`{"message":"hi there"}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	a := newTestPortalAdapter(t, srv.URL)
	a.SetToken("tok")
	ctx := context.Background()

	sessions, err := a.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "s2", sessions[0].SessionID)

	fresh, err := a.NewSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fresh", fresh.SessionID)

	history, err := a.History(ctx, "s2")
	require.NoError(t, err)
	assert.True(t, history.ReadOnly)
	require.Len(t, history.Turns, 1)
	assert.Equal(t, models.SenderUser, history.Turns[0].Sender)

	reply, err := a.SendMessage(ctx, models.ChatMessage{Message: "hello", SessionID: "fresh"})
	require.NoError(t, err)
	assert.Equal(t, "hi there", reply.Message)
}

func TestPortalSendMessage_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"conversational backend unavailable"}`))
	}))
	defer srv.Close()

	_, err := newTestPortalAdapter(t, srv.URL).SendMessage(context.Background(), models.ChatMessage{Message: "x", SessionID: "s"})
	assert.ErrorIs(t, err, ErrBadGateway)
}
