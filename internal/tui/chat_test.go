package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/mentem-portal/internal/adapter"
	"github.com/MKhiriev/mentem-portal/internal/logger"
	"github.com/MKhiriev/mentem-portal/internal/mock"
	"github.com/MKhiriev/mentem-portal/internal/service"
	"github.com/MKhiriev/mentem-portal/models"
)

func newTestChat(t *testing.T) (chatModel, *mock.MockPortalAdapter) {
	t.Helper()
	portal := mock.NewMockPortalAdapter(gomock.NewController(t))
	return newChatModel(context.Background(), service.NewClientChatService(portal), consentedJane, logger.Nop()), portal
}

func updateChat(t *testing.T, m chatModel, msg tea.Msg) (chatModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	chat, ok := next.(chatModel)
	require.True(t, ok, "want chatModel, got %T", next)
	return chat, cmd
}

// startedChat returns a model with a fresh conversation s1 open.
func startedChat(t *testing.T) (chatModel, *mock.MockPortalAdapter) {
	t.Helper()
	m, portal := newTestChat(t)
	portal.EXPECT().NewSession(gomock.Any()).Return(models.NewSession{SessionID: "s1"}, nil)

	assert.Contains(t, m.View(), "Starting a conversation...")
	m, _ = updateChat(t, m, msgOf[conversationMsg](t, m.Init()))
	require.NotNil(t, m.conv)
	return m, portal
}

func typeAndSend(t *testing.T, m chatModel, text string) (chatModel, tea.Cmd) {
	t.Helper()
	m, _ = updateChat(t, m, runes(text))
	return updateChat(t, m, press(tea.KeyEnter))
}

func TestChatModel_Start(t *testing.T) {
	m, _ := startedChat(t)

	assert.Equal(t, "s1", m.conv.SessionID)
	assert.False(t, m.starting)
	view := m.View()
	assert.Contains(t, view, "CHAT │ Jane Doe")
	assert.Contains(t, view, "s1")
	assert.Contains(t, view, "No messages yet. Say hello.")
}

func TestChatModel_StartFailed(t *testing.T) {
	m, portal := newTestChat(t)
	portal.EXPECT().NewSession(gomock.Any()).Return(models.NewSession{}, fmt.Errorf("%w: upstream down", adapter.ErrBadGateway))

	m, _ = updateChat(t, m, msgOf[conversationMsg](t, m.Init()))
	assert.Nil(t, m.conv)
	assert.True(t, m.showError)
	assert.Contains(t, m.View(), "The assistant is unavailable right now.")

	// any key is swallowed until the overlay is closed
	m, cmd := updateChat(t, m, press(tea.KeyCtrlN))
	assert.Nil(t, cmd)
	m, _ = updateChat(t, m, press(tea.KeyEnter))
	assert.False(t, m.showError)
	assert.Contains(t, m.View(), "No conversation. Press ctrl+n to start one.")

	portal.EXPECT().NewSession(gomock.Any()).Return(models.NewSession{SessionID: "s2"}, nil)
	m, cmd = updateChat(t, m, press(tea.KeyCtrlN))
	assert.True(t, m.starting)
	m, _ = updateChat(t, m, msgOf[conversationMsg](t, cmd))
	assert.Equal(t, "s2", m.conv.SessionID)
}

func TestChatModel_Send(t *testing.T) {
	m, portal := startedChat(t)
	portal.EXPECT().SendMessage(gomock.Any(), models.ChatMessage{Message: "hello", SessionID: "s1"}).
		Return(models.SendMessageResponse{Message: "hi there"}, nil)

	m, cmd := typeAndSend(t, m, "  hello ")
	require.NotNil(t, cmd)
	assert.True(t, m.sending)
	assert.Empty(t, m.input.Value())
	assert.Contains(t, m.View(), "sending...")

	// a second enter while sending does nothing
	m, again := typeAndSend(t, m, "more")
	assert.Nil(t, again)

	m, _ = updateChat(t, m, msgOf[replyMsg](t, cmd))
	assert.False(t, m.sending)

	turns := m.conv.Transcript.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, models.TurnDelivered, turns[0].Status)
	view := m.View()
	assert.Contains(t, view, "you: hello")
	assert.Contains(t, view, "assistant: hi there")
	assert.NotContains(t, view, "sending...")
}

func TestChatModel_SendFailedStaysInTranscript(t *testing.T) {
	m, portal := startedChat(t)
	portal.EXPECT().SendMessage(gomock.Any(), gomock.Any()).
		Return(models.SendMessageResponse{}, fmt.Errorf("%w: timeout", adapter.ErrBadGateway))

	m, cmd := typeAndSend(t, m, "hello")
	reply := msgOf[replyMsg](t, cmd)
	require.ErrorIs(t, reply.err, adapter.ErrUpstream)

	m, _ = updateChat(t, m, reply)
	turns := m.conv.Transcript.Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, models.TurnFailed, turns[0].Status)
	assert.Contains(t, m.View(), "[not delivered: "+adapter.ErrUpstream.Error()+"]")

	// the next message goes out on its own; the failed one is not resent
	portal.EXPECT().SendMessage(gomock.Any(), models.ChatMessage{Message: "again", SessionID: "s1"}).
		Return(models.SendMessageResponse{Message: "ok"}, nil)
	m, cmd = typeAndSend(t, m, "again")
	m, _ = updateChat(t, m, msgOf[replyMsg](t, cmd))
	assert.Len(t, m.conv.Transcript.Turns(), 3)
}

func TestChatModel_EmptyInputNotSent(t *testing.T) {
	m, _ := startedChat(t)

	m, cmd := typeAndSend(t, m, "   ")
	assert.Nil(t, cmd)
	assert.False(t, m.sending)
}

func TestChatModel_SpinnerStopsWithSending(t *testing.T) {
	m, _ := startedChat(t)

	_, cmd := updateChat(t, m, m.spinner.Tick())
	assert.Nil(t, cmd)
}

func TestChatModel_PastConversationIsReadOnly(t *testing.T) {
	m, portal := startedChat(t)
	past := []models.SessionSummary{
		{SessionID: "old-2", Timestamp: "2026-10-02 09:00:00"},
		{SessionID: "old-1", Timestamp: "2026-10-01 10:00:00"},
	}
	portal.EXPECT().ListSessions(gomock.Any()).Return(past, nil).Times(2)
	portal.EXPECT().History(gomock.Any(), "old-1").Return(models.History{
		SessionID: "old-1",
		ReadOnly:  true,
		Turns: []models.Turn{
			{ID: 1, Sender: models.SenderUser, Text: "I slept badly", Status: models.TurnDelivered},
			{ID: 2, Sender: models.SenderBot, Text: "Tell me more", Status: models.TurnDelivered},
		},
	}, nil)

	m, cmd := updateChat(t, m, press(tea.KeyCtrlO))
	require.Equal(t, screenSessions, m.screen)
	assert.Contains(t, m.View(), "Loading...")

	m, _ = updateChat(t, m, msgOf[sessionsLoadedMsg](t, cmd))
	view := m.View()
	assert.Contains(t, view, "PAST CONVERSATIONS")
	assert.Contains(t, view, "old-2")
	assert.Contains(t, view, "old-1")

	m, _ = updateChat(t, m, press(tea.KeyDown))
	m, cmd = updateChat(t, m, press(tea.KeyEnter))
	assert.True(t, m.sessions.opening)

	m, _ = updateChat(t, m, msgOf[conversationMsg](t, cmd))
	require.Equal(t, screenChat, m.screen)
	assert.True(t, m.conv.ReadOnly)
	view = m.View()
	assert.Contains(t, view, "you: I slept badly")
	assert.Contains(t, view, "assistant: Tell me more")
	assert.Contains(t, view, "read-only conversation")

	m, cmd = typeAndSend(t, m, "hello")
	assert.Nil(t, cmd)
	assert.Empty(t, m.input.Value())
}

func TestChatModel_SessionsEscBack(t *testing.T) {
	m, portal := startedChat(t)
	portal.EXPECT().ListSessions(gomock.Any()).Return(nil, nil)

	m, cmd := updateChat(t, m, press(tea.KeyCtrlO))
	m, _ = updateChat(t, m, msgOf[sessionsLoadedMsg](t, cmd))
	assert.Contains(t, m.View(), "No past conversations")

	m, cmd = updateChat(t, m, press(tea.KeyEnter))
	assert.Nil(t, cmd)

	m, _ = updateChat(t, m, press(tea.KeyEsc))
	assert.Equal(t, screenChat, m.screen)
	assert.Equal(t, "s1", m.conv.SessionID)
}

func TestChatModel_SessionsLoadFailed(t *testing.T) {
	m, portal := startedChat(t)
	portal.EXPECT().ListSessions(gomock.Any()).
		Return(nil, fmt.Errorf(`%w: {"error":"token expired"}`, adapter.ErrUnauthorized))

	m, cmd := updateChat(t, m, press(tea.KeyCtrlO))
	m, _ = updateChat(t, m, msgOf[sessionsLoadedMsg](t, cmd))

	assert.Equal(t, screenChat, m.screen)
	assert.True(t, m.showError)
	assert.Contains(t, m.View(), "Your session has expired. Log in again.")

	m, _ = updateChat(t, m, press(tea.KeyEsc))
	assert.False(t, m.showError)
}

func TestChatModel_QuitAndLogout(t *testing.T) {
	m, _ := startedChat(t)

	quit, cmd := updateChat(t, m, press(tea.KeyCtrlC))
	assert.False(t, quit.logout)
	requireQuit(t, cmd)

	out, cmd := updateChat(t, m, press(tea.KeyCtrlL))
	assert.True(t, out.logout)
	requireQuit(t, cmd)
}

func TestChatModel_CopyStatus(t *testing.T) {
	m, _ := startedChat(t)

	// nothing to copy yet
	_, cmd := updateChat(t, m, press(tea.KeyCtrlY))
	assert.Nil(t, cmd)

	m, cmd = updateChat(t, m, copiedMsg{})
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Copied!")

	m, _ = updateChat(t, m, clearStatusMsg{})
	assert.NotContains(t, m.View(), "Copied!")

	m, _ = updateChat(t, m, copiedMsg{err: errors.New("copy to clipboard: no clipboard utility")})
	assert.True(t, m.showError)
	assert.Contains(t, m.View(), "no clipboard utility")
}

func TestChatModel_Resize(t *testing.T) {
	m, _ := startedChat(t)

	m, _ = updateChat(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 112, m.viewport.Width)
	assert.Equal(t, 40-chromeHeight, m.viewport.Height)

	m, _ = updateChat(t, m, tea.WindowSizeMsg{Width: 10, Height: 5})
	assert.Equal(t, 20, m.viewport.Width)
	assert.Equal(t, 3, m.viewport.Height)
}
