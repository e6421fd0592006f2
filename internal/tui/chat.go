// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/mentem-portal/internal/logger"
	"github.com/MKhiriev/mentem-portal/internal/service"
	"github.com/MKhiriev/mentem-portal/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type chatScreen int

const (
	screenChat chatScreen = iota
	screenSessions
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// rows taken by the page frame, status and input around the transcript
	chromeHeight = 14
)

// chatModel is the main loop: the open conversation with its input, and the
// list of past conversations. A conversation opened from the list is shown
// read-only.
type chatModel struct {
	ctx      context.Context
	chat     service.ClientChatService
	identity models.Identity
	logger   *logger.Logger

	screen   chatScreen
	conv     *service.Conversation
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	sending  bool
	starting bool

	sessions sessionsModel

	status       string
	showError    bool
	errorOverlay errorOverlayModel

	logout bool
}

func newChatModel(ctx context.Context, chat service.ClientChatService, identity models.Identity, logger *logger.Logger) chatModel {
	input := textinput.New()
	input.Placeholder = "type a message"
	input.CharLimit = 4000
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	vp := viewport.New(defaultWidth, defaultHeight-chromeHeight)
	vp.KeyMap = viewport.KeyMap{PageUp: keys.pageUp, PageDown: keys.pageDown}

	m := chatModel{
		ctx:      ctx,
		chat:     chat,
		identity: identity,
		logger:   logger,
		input:    input,
		viewport: vp,
		spinner:  s,
		starting: true,
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

func (m chatModel) Init() tea.Cmd {
	return m.cmdStart()
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.refreshTranscript()
		return m, nil
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.logout):
			m.logout = true
			return m, tea.Quit
		}
	case conversationMsg:
		m.starting = false
		m.sessions.opening = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.conv = msg.conv
		m.screen = screenChat
		m.input.Reset()
		m.refreshTranscript()
		return m, nil
	case sessionsLoadedMsg:
		m.sessions.loading = false
		if msg.err != nil {
			m.screen = screenChat
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.sessions.items = msg.sessions
		m.sessions.idx = 0
		return m, nil
	case replyMsg:
		m.sending = false
		if msg.err != nil {
			m.logger.Err(msg.err).Str("session_id", msg.conv.SessionID).Msg("message not delivered")
		}
		if msg.conv == m.conv {
			m.refreshTranscript()
		}
		return m, nil
	case spinner.TickMsg:
		if !m.sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refreshTranscript()
		return m, cmd
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	switch m.screen {
	case screenSessions:
		return m.updateSessions(msg)
	default:
		return m.updateChat(msg)
	}
}

func (m chatModel) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.newChat):
			if m.starting {
				return m, nil
			}
			m.starting = true
			return m, m.cmdStart()
		case key.Matches(keyMsg, keys.sessions):
			m.screen = screenSessions
			m.sessions = newSessionsModel()
			return m, m.cmdLoadSessions()
		case key.Matches(keyMsg, keys.copy):
			text, ok := lastReply(m.conv)
			if !ok {
				return m, nil
			}
			return m, cmdCopyToClipboard(text)
		case key.Matches(keyMsg, keys.pageUp, keys.pageDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		case key.Matches(keyMsg, keys.enter):
			return m.submit()
		}
	}

	if !m.canType() {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) updateSessions(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.sessions.opening {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenChat
	case key.Matches(keyMsg, keys.up):
		if m.sessions.idx > 0 {
			m.sessions.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.sessions.idx < len(m.sessions.items)-1 {
			m.sessions.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		item, ok := m.sessions.current()
		if !ok {
			return m, nil
		}
		m.sessions.opening = true
		return m, m.cmdOpen(item.SessionID)
	}

	return m, nil
}

// submit relays the input as one message. The transcript records the turn
// as pending right away; the spinner keeps the view refreshing until the
// reply or the failure lands.
func (m chatModel) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.sending || !m.canType() {
		return m, nil
	}

	m.input.Reset()
	m.sending = true
	return m, tea.Batch(m.spinner.Tick, m.cmdSend(m.conv, text))
}

func (m chatModel) canType() bool {
	return m.conv != nil && !m.conv.ReadOnly
}

func (m chatModel) View() string {
	if m.screen == screenSessions {
		body := m.sessions.View()
		if m.showError {
			body += "\n\n" + m.errorOverlay.View()
		}
		return appStyle.Render(body)
	}

	var b strings.Builder
	switch {
	case m.conv == nil && m.starting:
		b.WriteString("Starting a conversation...")
	case m.conv == nil:
		b.WriteString("No conversation. Press ctrl+n to start one.")
	case len(m.conv.Transcript.Turns()) == 0:
		b.WriteString(helpStyle.Render("No messages yet. Say hello."))
	default:
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n\n")

	switch {
	case m.sending:
		b.WriteString(m.spinner.View() + " sending...")
	case m.status != "":
		b.WriteString(m.status)
	}
	b.WriteString("\n")

	if m.conv != nil && m.conv.ReadOnly {
		b.WriteString(helpStyle.Render("read-only conversation │ ctrl+n: start a new one"))
	} else {
		b.WriteString("> " + m.input.View())
	}

	title := "CHAT"
	if m.identity.Name != "" {
		title += " │ " + m.identity.Name
	}
	if m.conv != nil {
		title += " " + helpStyle.Render(fitText(m.conv.SessionID, 36))
	}

	body := renderPage(title, b.String(), "enter: send │ ctrl+n: new │ ctrl+o: past conversations │ ctrl+y: copy reply │ ctrl+l: log out")
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}
	return appStyle.Render(body)
}

func (m *chatModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *chatModel) resize(width, height int) {
	w := max(width-8, 20)
	h := max(height-chromeHeight, 3)
	m.viewport.Width = w
	m.viewport.Height = h
	m.input.Width = max(w-4, 10)
}

func (m *chatModel) refreshTranscript() {
	if m.conv == nil {
		m.viewport.SetContent("")
		return
	}

	wrap := lipgloss.NewStyle().Width(m.viewport.Width)
	m.viewport.SetContent(wrap.Render(renderTranscript(m.conv.Transcript.Turns())))
	m.viewport.GotoBottom()
}

func (m chatModel) cmdStart() tea.Cmd {
	ctx, chat := m.ctx, m.chat
	return func() tea.Msg {
		conv, err := chat.Start(ctx)
		if err != nil {
			err = fmt.Errorf("start conversation: %w", err)
		}
		return conversationMsg{conv: conv, err: err}
	}
}

func (m chatModel) cmdOpen(sessionID string) tea.Cmd {
	ctx, chat := m.ctx, m.chat
	return func() tea.Msg {
		conv, err := chat.Open(ctx, sessionID)
		return conversationMsg{conv: conv, err: err}
	}
}

func (m chatModel) cmdLoadSessions() tea.Cmd {
	ctx, chat := m.ctx, m.chat
	return func() tea.Msg {
		sessions, err := chat.Sessions(ctx)
		return sessionsLoadedMsg{sessions: sessions, err: err}
	}
}

// cmdSend leaves the outcome in conv's transcript; a failed turn stays
// there marked as not delivered and is never resent.
func (m chatModel) cmdSend(conv *service.Conversation, text string) tea.Cmd {
	ctx, chat := m.ctx, m.chat
	return func() tea.Msg {
		_, err := chat.Send(ctx, conv, text)
		return replyMsg{conv: conv, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
