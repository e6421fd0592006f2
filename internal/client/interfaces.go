// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/mentem-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until the user quits or
	// ctx is cancelled.
	Run(ctx context.Context) error
}

// UI is the interactive part of the client, implemented by tui.TUI.
type UI interface {
	// LoginFlow returns once the user is logged in with consent. It also
	// returns the identity alongside tui.ErrUserQuit or
	// tui.ErrConsentDeclined when a session had already been opened.
	LoginFlow(ctx context.Context) (models.Identity, error)

	// MainLoop runs the chat. logout reports that the user asked to log out
	// rather than quit.
	MainLoop(ctx context.Context, identity models.Identity) (logout bool, err error)
}
