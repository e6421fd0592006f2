package tui

import (
	"github.com/MKhiriev/mentem-portal/internal/service"
	"github.com/MKhiriev/mentem-portal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks [RootModel] to switch pages. A non-nil Payload is
// delivered to the new page in place of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login page once the portal answered.
type LoginResult struct {
	Identity models.Identity
	Err      error
}

// RegisterResult is produced by the signup page once the portal answered.
type RegisterResult struct {
	Email string
	Err   error
}

// RegisterSuccessNotice is handed to the menu after a successful signup.
type RegisterSuccessNotice struct {
	Email string
}

// ConsentResult is produced when the consent submission finished.
type ConsentResult struct {
	Err error
}

type consentPrompt struct {
	identity models.Identity
}

type consentDeclinedMsg struct{}

type conversationMsg struct {
	conv *service.Conversation
	err  error
}

type sessionsLoadedMsg struct {
	sessions []models.SessionSummary
	err      error
}

type replyMsg struct {
	conv *service.Conversation
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
