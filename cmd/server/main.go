// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/MKhiriev/go-stop-report/internal/config"
	"github.com/MKhiriev/go-stop-report/internal/handler"
	"github.com/MKhiriev/go-stop-report/internal/hub"
	"github.com/MKhiriev/go-stop-report/internal/logger"
	"github.com/MKhiriev/go-stop-report/internal/server"
	"github.com/MKhiriev/go-stop-report/internal/service"
	"github.com/MKhiriev/go-stop-report/internal/workers"
	"github.com/MKhiriev/go-stop-report/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger("stop-report-server", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	feedHub := hub.New(log)

	services, err := service.NewServices(feedHub, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, feedHub, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stop := server.WithShutdownSignals(context.Background())
	defer stop()

	background := workers.NewWorkers(
		feedHub,
		workers.NewDemoEmitter(services.FeedService, cfg.Server.DemoInterval, log.Component("demo")),
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		background.Run(ctx)
	}()

	if err := srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		stop()
	}

	wg.Wait()
	log.Info().Msg("feed server exited")
}
