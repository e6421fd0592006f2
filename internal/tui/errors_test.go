package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/mentem-portal/internal/adapter"
	"github.com/MKhiriev/mentem-portal/internal/app"
	"github.com/MKhiriev/mentem-portal/internal/service"
	"github.com/MKhiriev/mentem-portal/internal/store"
)

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", want: ""},
		{
			name: "rate limited",
			err:  fmt.Errorf("%w: %s", service.ErrLoginFailed, app.MsgTooManyLoginAttempts),
			want: "Too many login attempts. Wait a moment and try again.",
		},
		{name: "login failed", err: service.ErrLoginFailed, want: "Login failed. Try again."},
		{name: "email taken", err: store.ErrEmailAlreadyExists, want: "An account with this email already exists."},
		{name: "expired", err: service.ErrTokenIsExpiredOrInvalid, want: "Your session has expired. Log in again."},
		{name: "no consent", err: service.ErrConsentRequired, want: "Consent is required to use the chat."},
		{
			name: "upstream wrapped",
			err:  fmt.Errorf("start conversation: %w", adapter.ErrUpstream),
			want: "The assistant is unavailable right now.",
		},
		{
			name: "refused",
			err:  errors.New(`Post "http://localhost:8080/api/auth/login": dial tcp 127.0.0.1:8080: connect: connection refused`),
			want: "The portal is unreachable or the network is down.",
		},
		{
			name: "deadline",
			err:  errors.New("context deadline exceeded (Client.Timeout exceeded while awaiting headers)"),
			want: "The portal is unreachable or the network is down.",
		},
		{name: "anything else", err: errors.New("unexpected end of JSON input"), want: "unexpected end of JSON input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
