package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/mentem-portal/internal/logger"
	"github.com/MKhiriev/mentem-portal/internal/service"
	"github.com/MKhiriev/mentem-portal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the full-screen client. The login flow and the chat are separate
// programs so the caller can log out between them.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	options   []tea.ProgramOption
}

// New builds a TUI. options are passed to every program it starts, which is
// how the caller picks the alt screen or tests redirect input and output.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger, options ...tea.ProgramOption) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger, options: options}
}

// LoginFlow shows the start menu with login and signup, and the consent
// screen when the session still lacks consent. The identity is returned with
// ErrUserQuit or ErrConsentDeclined too when the user had already logged in,
// so the caller can end that session.
func (t *TUI) LoginFlow(ctx context.Context) (models.Identity, error) {
	finalModel, err := t.run(ctx, t.newLoginFlowModel(ctx))
	if err != nil {
		return models.Identity{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Identity{}, tea.ErrProgramKilled
	}
	switch {
	case result.quitByUser:
		return result.identity, ErrUserQuit
	case result.declined:
		return result.identity, ErrConsentDeclined
	}

	return result.identity, nil
}

func (t *TUI) newLoginFlowModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
		pageConsent:  NewConsentModel(ctx, t.services.AuthService),
	}
	return NewRootModel(pages, pageMenu, t.buildInfo)
}

// MainLoop runs the chat until the user quits or logs out.
func (t *TUI) MainLoop(ctx context.Context, identity models.Identity) (logout bool, err error) {
	finalModel, err := t.run(ctx, newChatModel(ctx, t.services.ChatService, identity, t.logger))
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(chatModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

// run maps an interrupt or a cancelled ctx to ErrUserQuit.
func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)

	finalModel, err := tea.NewProgram(model, options...).Run()
	if errors.Is(err, tea.ErrInterrupted) || (errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		return nil, ErrUserQuit
	}
	return finalModel, err
}
