package main

import (
	"context"
	"fmt"

	"github.com/thirstydigital/django/internal/config"
	myHTTP "github.com/thirstydigital/django/internal/handler/http"
	"github.com/thirstydigital/django/internal/logger"
	"github.com/thirstydigital/django/internal/server"
	"github.com/thirstydigital/django/internal/service"
	"github.com/thirstydigital/django/internal/store"
	"github.com/thirstydigital/django/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("django-server")

	settings, err := config.GetSettings()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", settings).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, settings.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, settings.Auth, log)

	handler := myHTTP.NewHandler(settings, services, storages.SessionStore, log)

	srv, err := server.NewServer(handler.Init(), settings.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(settings.Workers, storages, log).Run(ctx)

	srv.RunServer()
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
