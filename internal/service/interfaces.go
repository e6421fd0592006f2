package service

import (
	"context"

	"github.com/MKhiriev/mentem-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ChatServiceWrapper

// AuthService verifies credentials, registers accounts and manages session
// tokens.
type AuthService interface {
	// Signup creates an account. A taken email yields
	// store.ErrEmailAlreadyExists and nothing is written.
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)

	// VerifyCredentials returns the identity behind creds or [ErrLoginFailed].
	VerifyCredentials(ctx context.Context, creds models.Credentials) (models.Identity, error)

	// IssueToken signs a session token for identity.
	IssueToken(ctx context.Context, identity models.Identity) (models.SessionToken, error)

	// RefreshToken re-reads the user and signs a token with the current
	// consent flag and name.
	RefreshToken(ctx context.Context, userID string) (models.SessionToken, error)

	// ParseToken validates a signed token.
	ParseToken(ctx context.Context, tokenString string) (models.SessionToken, error)
}

// ConsentService records the consent action.
type ConsentService interface {
	// SubmitConsent stores consent for userID and returns the refreshed
	// token. On a failed write no token is issued.
	SubmitConsent(ctx context.Context, userID string) (models.SessionToken, error)
}

// ChatService relays chat traffic to the conversational backend.
type ChatService interface {
	SendMessage(ctx context.Context, req models.SendMessageRequest) (models.SendMessageResponse, error)
	FetchHistory(ctx context.Context, req models.HistoryRequest) (models.History, error)
	ListSessions(ctx context.Context, userID string) ([]models.SessionSummary, error)
	NewSessionID(ctx context.Context) string
}

// ChatServiceWrapper decorates a ChatService, for example with validation.
type ChatServiceWrapper interface {
	Wrap(ChatService) ChatService
}

// AppInfoService reports what build is running.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
