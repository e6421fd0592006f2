// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/mentem-portal/internal/adapter"
	"github.com/MKhiriev/mentem-portal/internal/app"
	"github.com/MKhiriev/mentem-portal/internal/service"
	"github.com/MKhiriev/mentem-portal/internal/store"
)

var (
	// ErrUserQuit is returned when the user leaves with ctrl+c or the
	// program is interrupted.
	ErrUserQuit = errors.New("user quit")

	// ErrConsentDeclined is returned by [TUI.LoginFlow] when the user logged
	// in but refused consent.
	ErrConsentDeclined = errors.New("consent declined")
)

// humanizeError turns service and transport errors into the sentences shown
// on screen.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrLoginFailed) && strings.Contains(err.Error(), app.MsgTooManyLoginAttempts):
		return "Too many login attempts. Wait a moment and try again."
	case errors.Is(err, service.ErrLoginFailed):
		return "Login failed. Try again."
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return "An account with this email already exists."
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Your session has expired. Log in again."
	case errors.Is(err, service.ErrConsentRequired):
		return "Consent is required to use the chat."
	case errors.Is(err, adapter.ErrUpstream):
		return "The assistant is unavailable right now."
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "The portal is unreachable or the network is down."
	}

	return err.Error()
}
