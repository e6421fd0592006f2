package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/mentem-portal/internal/adapter"
	"github.com/MKhiriev/mentem-portal/internal/config"
	"github.com/MKhiriev/mentem-portal/internal/handler"
	"github.com/MKhiriev/mentem-portal/internal/logger"
	"github.com/MKhiriev/mentem-portal/internal/server"
	"github.com/MKhiriev/mentem-portal/internal/service"
	"github.com/MKhiriev/mentem-portal/internal/store"
	"github.com/MKhiriev/mentem-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("mentem-portal")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = build.Version
	}
	cfg.App.BuildDate, cfg.App.BuildCommit = build.Date, build.Commit

	// the full config holds the signing key and the relay secret
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Stringer("relay", cfg.Relay).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	relay := adapter.NewHTTPConversationAdapter(cfg.Relay, log)

	services, err := service.NewServices(storages, relay, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.Version)
	fmt.Printf("Build date: %s\n", build.Date)
	fmt.Printf("Build commit: %s\n", build.Commit)
}
