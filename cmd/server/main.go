package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-nft-market/internal/config"
	"github.com/MKhiriev/go-nft-market/internal/handler"
	"github.com/MKhiriev/go-nft-market/internal/logger"
	"github.com/MKhiriev/go-nft-market/internal/server"
	"github.com/MKhiriev/go-nft-market/internal/service"
	"github.com/MKhiriev/go-nft-market/internal/store"
	"github.com/MKhiriev/go-nft-market/internal/workers"
	"github.com/MKhiriev/go-nft-market/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("nft-market-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.PrintVersion {
		os.Exit(0)
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Int("hash_pool_size", cfg.Workers.HashPoolSize).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	pool, err := workers.NewPool(cfg.Workers.HashPoolSize, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating hashing pool")
	}

	services, err := service.NewServices(storages, pool, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log,
		server.Cleanup{Name: "hashing pool", Fn: pool.Shutdown},
		server.Cleanup{Name: "storages", Fn: func(context.Context) error { return storages.Close() }},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.Version)
	fmt.Printf("Build date: %s\n", build.Date)
	fmt.Printf("Build commit: %s\n", build.Commit)
}
