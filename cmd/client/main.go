package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/mentem-portal/internal/adapter"
	"github.com/MKhiriev/mentem-portal/internal/client"
	"github.com/MKhiriev/mentem-portal/internal/config"
	"github.com/MKhiriev/mentem-portal/internal/logger"
	"github.com/MKhiriev/mentem-portal/internal/service"
	"github.com/MKhiriev/mentem-portal/internal/tui"
	"github.com/MKhiriev/mentem-portal/models"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "mentem-client needs an interactive terminal")
		os.Exit(1)
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewFileLogger("mentem-client", cfg.Adapter.LogFile)

	portal, err := adapter.NewHTTPPortalAdapter(cfg.Adapter, log)
	if err != nil {
		log.Err(err).Msg("create portal adapter")
		fmt.Fprintf(os.Stderr, "invalid portal address: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services := service.NewClientServices(portal)
	ui := tui.New(services, build, log, tea.WithAltScreen())

	var app client.Client = client.NewApp(services, ui, log)
	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		stop()
		os.Exit(1)
	}
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.Version)
	fmt.Printf("Build date: %s\n", build.Date)
	fmt.Printf("Build commit: %s\n", build.Commit)
}
