package tui

import (
	"strings"

	"github.com/MKhiriev/mentem-portal/internal/service"
	"github.com/MKhiriev/mentem-portal/models"
)

func renderTurn(turn models.Turn) string {
	switch {
	case turn.Sender == models.SenderBot:
		return botStyle.Render("assistant:") + " " + turn.Text
	case turn.Status == models.TurnFailed:
		return userStyle.Render("you:") + " " + turn.Text + " " + errorStyle.Render("[not delivered: "+turn.Error+"]")
	case turn.Status == models.TurnPending:
		return userStyle.Render("you:") + " " + turn.Text + " " + pendingStyle.Render("[sending]")
	default:
		return userStyle.Render("you:") + " " + turn.Text
	}
}

func renderTranscript(turns []models.Turn) string {
	lines := make([]string, 0, len(turns))
	for _, turn := range turns {
		lines = append(lines, renderTurn(turn))
	}
	return strings.Join(lines, "\n")
}

// lastReply returns the newest assistant turn of conv.
func lastReply(conv *service.Conversation) (string, bool) {
	if conv == nil || conv.Transcript == nil {
		return "", false
	}

	turns := conv.Transcript.Turns()
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Sender == models.SenderBot && turns[i].Text != "" {
			return turns[i].Text, true
		}
	}
	return "", false
}
