package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/mentem-portal/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const consentText = `Before you can chat, please confirm that you understand:
  the assistant does not replace a licensed clinician,
  your messages are stored to continue the conversation later,
  in an emergency you call your local emergency number.`

// ConsentModel asks a logged-in user for consent. y submits it, n ends the
// flow with [ErrConsentDeclined].
type ConsentModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	name       string
	submitting bool
	errMsg     string
}

func NewConsentModel(ctx context.Context, auth service.ClientAuthService) *ConsentModel {
	return &ConsentModel{ctx: ctx, auth: auth}
}

func (m *ConsentModel) Init() tea.Cmd {
	return nil
}

func (m *ConsentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case consentPrompt:
		m.name = msg.identity.Name
		m.errMsg = ""
		return m, nil
	case ConsentResult:
		m.submitting = false
		m.errMsg = humanizeError(msg.Err)
		return m, nil
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.yes, keys.enter):
			m.submitting = true
			m.errMsg = ""
			return m, m.cmdSubmit()
		case key.Matches(msg, keys.no, keys.esc):
			return m, func() tea.Msg { return consentDeclinedMsg{} }
		}
	}

	return m, nil
}

func (m *ConsentModel) View() string {
	var b strings.Builder
	if m.name != "" {
		b.WriteString("Hello " + m.name + ".\n\n")
	}

	content := consentText + "\n\n"
	if m.submitting {
		content += "saving..."
	} else {
		content += "y agree    n decline"
	}
	b.WriteString(overlayBoxStyle.Render(content))

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error:"))
		b.WriteString(" ")
		b.WriteString(m.errMsg)
	}

	return renderPage("CONSENT", b.String(), "y: agree │ n: decline")
}

func (m *ConsentModel) cmdSubmit() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return ConsentResult{Err: auth.SubmitConsent(ctx)}
	}
}
