package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/mentem-portal/internal/logger"
	"github.com/MKhiriev/mentem-portal/internal/service"
	"github.com/MKhiriev/mentem-portal/internal/tui"
)

const logoutTimeout = 5 * time.Second

type App struct {
	auth   service.ClientAuthService
	ui     UI
	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) *App {
	return &App{auth: services.AuthService, ui: ui, logger: logger}
}

// Run alternates between the login flow and the chat until the user quits.
// Every opened session is logged out before Run returns or the login flow
// starts again.
func (a *App) Run(ctx context.Context) error {
	for {
		identity, err := a.ui.LoginFlow(ctx)
		switch {
		case errors.Is(err, tui.ErrUserQuit):
			if identity.ID != "" {
				a.logout(ctx)
			}
			return nil
		case errors.Is(err, tui.ErrConsentDeclined):
			a.logger.Info().Str("user_id", identity.ID).Msg("consent declined")
			a.logout(ctx)
			return nil
		case err != nil:
			return fmt.Errorf("login flow: %w", err)
		}
		a.logger.Info().Str("user_id", identity.ID).Msg("logged in")

		logout, err := a.ui.MainLoop(ctx, identity)
		a.logout(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}
		a.logger.Info().Str("user_id", identity.ID).Msg("logged out")
	}
}

// logout still runs after ctx was cancelled by a signal.
func (a *App) logout(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), logoutTimeout)
	defer cancel()

	if err := a.auth.Logout(ctx); err != nil {
		a.logger.Err(err).Msg("logout failed")
	}
}
