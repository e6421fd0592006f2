package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/mentem-portal/models"
)

// sessionsModel is the list of past conversations.
type sessionsModel struct {
	items   []models.SessionSummary
	idx     int
	loading bool
	opening bool
}

func newSessionsModel() sessionsModel {
	return sessionsModel{loading: true}
}

func (m sessionsModel) current() (models.SessionSummary, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.SessionSummary{}, false
	}
	return m.items[m.idx], true
}

func sessionTime(s models.SessionSummary) string {
	if !s.At.IsZero() {
		return s.At.Local().Format("2006-01-02 15:04")
	}
	return s.Timestamp
}

func (m sessionsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.items) == 0:
		b.WriteString("No past conversations\n")
	default:
		for i, s := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s%2d. %-16s  %s\n", cursor, i+1, sessionTime(s), helpStyle.Render(fitText(s.SessionID, 36)))
		}
	}

	if m.opening {
		b.WriteString("\nOpening...\n")
	}

	return renderPage("PAST CONVERSATIONS", strings.TrimRight(b.String(), "\n"), "enter: open (read-only) │ ↑/↓: move │ esc: back")
}
