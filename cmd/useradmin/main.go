package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-identity/internal/admin"
	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/internal/store"
)

func main() {
	cfg, err := config.GetAdminConfig()
	level := ""
	if cfg != nil {
		level = cfg.App.LogLevel
	}
	log := logger.NewConsoleLogger("identity-admin", level)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	tool := admin.New(services, admin.NewTermPrompter(os.Stdin, os.Stderr), os.Stdout, log)
	if err = tool.Run(ctx, cfg.Args); err != nil {
		log.Error().Err(err).Msg("command failed")
		storages.Close()
		os.Exit(1)
	}
}
