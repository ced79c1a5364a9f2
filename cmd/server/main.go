package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-rest-session/internal/config"
	"github.com/MKhiriev/go-rest-session/internal/handler/http"
	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/internal/server"
	"github.com/MKhiriev/go-rest-session/internal/service"
	"github.com/MKhiriev/go-rest-session/internal/store"
	"github.com/MKhiriev/go-rest-session/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-rest-session-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).
		Dur("access_token_duration", cfg.Auth.AccessTokenDuration).
		Dur("refresh_token_duration", cfg.Auth.RefreshTokenDuration).
		Msg("received configs")

	ctx := context.Background()

	storages := store.NewServerStorages()
	if cfg.Server.DatabaseDSN != "" {
		storages, err = store.NewPostgresServerStorages(ctx, cfg.Server.DatabaseDSN, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating storages")
		}
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, buildVersion, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.Seed(ctx, cfg.Auth); err != nil {
		log.Fatal().Err(err).Msg("error seeding demo data")
	}

	router := http.NewHandler(services, log).Init(cfg.Server.RequestTimeout)
	bg := workers.NewWorkers(
		workers.NewRefreshSessionSweeper(storages.RefreshSessionRepository, workers.DefaultSweepInterval, log),
	)

	srv, err := server.NewServer(router, bg, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
