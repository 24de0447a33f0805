package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/snapback/internal/adapter"
	"github.com/MKhiriev/snapback/internal/config"
	"github.com/MKhiriev/snapback/internal/handler"
	"github.com/MKhiriev/snapback/internal/logger"
	"github.com/MKhiriev/snapback/internal/server"
	"github.com/MKhiriev/snapback/internal/service"
	"github.com/MKhiriev/snapback/internal/store"
	"github.com/MKhiriev/snapback/internal/telemetry"
	"github.com/MKhiriev/snapback/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.New(os.Stdout, "snapback-node", logger.ParseLevel(cfg.App.LogLevel))
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	provider, err := telemetry.NewProvider(cfg.Telemetry.MetricsEnabled)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating metrics provider")
	}
	defer func() {
		if err := provider.Shutdown(ctx); err != nil {
			log.Err(err).Msg("error shutting down metrics provider")
		}
	}()

	metrics, err := telemetry.NewSyncModeMetrics(provider)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating sync mode metrics")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	peers := adapter.NewHTTPReplicaAdapter(cfg.Adapter, log)

	services, err := service.NewServices(storages, peers, metrics, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, provider.Handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
