// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound HTTP transports.
//
// [ConversationAdapter] talks to the external conversational backend on
// behalf of the portal server. [PortalAdapter] is used by the terminal client
// to talk to the portal API. Both are built on resty and translate non-2xx
// responses into the sentinel errors of errors.go so callers can use
// [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/mentem-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ConversationAdapter forwards chat traffic to the conversational backend.
type ConversationAdapter interface {
	// SendMessage posts one user message and returns the reply. The shared
	// secret is filled in by the adapter. Transport failures and non-2xx
	// responses are wrapped with [ErrUpstream].
	SendMessage(ctx context.Context, req models.SendMessageRequest) (models.SendMessageResponse, error)

	// SessionHistory returns the stored rows of one conversation. A non-200
	// response yields an empty history and no error.
	SessionHistory(ctx context.Context, req models.HistoryRequest) ([]models.HistoryRow, error)

	// ListSessions returns the user's past conversations in upstream order.
	// A non-200 response yields an empty list and no error.
	ListSessions(ctx context.Context, req models.SessionsRequest) ([]models.SessionSummary, error)
}

// PortalAdapter is the terminal client's view of the portal API.
type PortalAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Signup creates an account. It does not log in; the token is untouched.
	Signup(ctx context.Context, req models.SignupRequest) (models.Identity, error)

	// Login posts credentials and keeps the bearer token from the response.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// Logout ends the session on the server and forgets the token.
	Logout(ctx context.Context) error

	// SubmitConsent records consent and keeps the refreshed token.
	SubmitConsent(ctx context.Context) (models.ConsentResult, error)

	// ListSessions returns past conversations, newest first.
	ListSessions(ctx context.Context) ([]models.SessionSummary, error)

	// NewSession asks the portal for a fresh conversation id.
	NewSession(ctx context.Context) (models.NewSession, error)

	// History loads the transcript of a past conversation.
	History(ctx context.Context, sessionID string) (models.History, error)

	// SendMessage relays one message and returns the bot reply.
	SendMessage(ctx context.Context, msg models.ChatMessage) (models.SendMessageResponse, error)
}
