package service

import (
	"context"

	"github.com/MKhiriev/mentem-portal/models"
)

// ClientAuthService is the terminal client's login and consent flow.
type ClientAuthService interface {
	// Login authenticates against the portal. The returned identity tells
	// whether consent still has to be given.
	Login(ctx context.Context, creds models.Credentials) (models.Identity, error)

	// Signup creates an account without logging in. An email that is already
	// registered yields store.ErrEmailAlreadyExists.
	Signup(ctx context.Context, req models.SignupRequest) (models.Identity, error)

	// SubmitConsent records consent and keeps the refreshed session.
	SubmitConsent(ctx context.Context) error

	Logout(ctx context.Context) error
}

// ClientChatService drives conversations from the terminal client. All
// conversation state lives in the [Conversation] values it returns.
type ClientChatService interface {
	// Start opens a new, writable conversation.
	Start(ctx context.Context) (*Conversation, error)

	// Open loads sessionID. A session from the user's list comes back with its
	// history and read-only; an unknown id gives an empty writable one.
	Open(ctx context.Context, sessionID string) (*Conversation, error)

	// Sessions lists past conversations, newest first.
	Sessions(ctx context.Context) ([]models.SessionSummary, error)

	// Send appends text as a pending turn, relays it and reconciles the
	// transcript with the outcome. The returned turn is the bot reply.
	Send(ctx context.Context, conv *Conversation, text string) (models.Turn, error)
}
