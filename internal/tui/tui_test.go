package tui

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_LoginFlow_CtrlC(t *testing.T) {
	ui, _ := newTestTUI(t, tea.WithInput(strings.NewReader("\x03")), tea.WithOutput(io.Discard))

	identity, err := ui.LoginFlow(context.Background())
	require.ErrorIs(t, err, ErrUserQuit)
	assert.Empty(t, identity.ID)
}

func TestTUI_LoginFlow_CancelledContext(t *testing.T) {
	ui, _ := newTestTUI(t, tea.WithInput(strings.NewReader("")), tea.WithOutput(io.Discard))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ui.LoginFlow(ctx)
	require.ErrorIs(t, err, ErrUserQuit)
}
