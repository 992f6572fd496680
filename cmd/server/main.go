// Yatra - Rule-Based Trip Planning for Tamil Nadu Tourism
// Copyright 2026 Kavin V. (kavinvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kavinvel/yatra

// Command server runs the Yatra trip planning HTTP service.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/kavinvel/yatra/internal/api"
	"github.com/kavinvel/yatra/internal/catalog"
	"github.com/kavinvel/yatra/internal/config"
	"github.com/kavinvel/yatra/internal/logging"
	"github.com/kavinvel/yatra/internal/metrics"
	"github.com/kavinvel/yatra/internal/planner"
	"github.com/kavinvel/yatra/internal/supervisor"
	"github.com/kavinvel/yatra/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Bool("sample_catalog", cfg.Catalog.UseSample).
		Msg("Starting Yatra")

	metrics.AppInfo.WithLabelValues(api.Version, runtime.Version()).Set(1)

	// Destination catalog.
	store := catalog.NewStore(logging.WithComponent("catalog"))
	if cfg.Catalog.UseSample {
		store.LoadSample()
		metrics.RecordCatalogLoad(store.Count(), nil)
	} else {
		err := store.LoadFile(cfg.Catalog.Path)
		metrics.RecordCatalogLoad(store.Count(), err)
		if err != nil {
			logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load catalog")
		}
	}
	logging.Info().Int("destinations", store.Count()).Msg("Catalog loaded")

	// Planning engine, tuned from config.
	plannerCfg := planner.DefaultConfig()
	plannerCfg.Cache.Enabled = cfg.Planner.CacheEnabled
	plannerCfg.Cache.TTL = cfg.Planner.CacheTTL
	plannerCfg.Cache.MaxEntries = cfg.Planner.CacheMaxEntries
	plannerCfg.Seed = cfg.Planner.Seed
	if cfg.Planner.RelaxedPerDay > 0 {
		plannerCfg.Pacing.RelaxedPerDay = cfg.Planner.RelaxedPerDay
	}
	if cfg.Planner.PackedPerDay > 0 {
		plannerCfg.Pacing.PackedPerDay = cfg.Planner.PackedPerDay
	}
	plannerCfg.Travel.FixedTransferMinutes = cfg.Planner.FixedTransferMinutes
	plannerCfg.Limits.DefaultQuickLimit = cfg.API.DefaultPageSize
	plannerCfg.Limits.MaxQuickLimit = cfg.API.MaxPageSize

	engine, err := planner.New(plannerCfg, store, logging.WithComponent("planner"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create planning engine")
	}

	// HTTP routing.
	handler := api.NewHandler(engine, store, cfg)
	chimw := api.NewChiMiddlewareFromConfig(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, chimw)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Supervisor tree.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	if !cfg.Catalog.UseSample {
		tree.AddDataService(services.NewCatalogReloadService(store, cfg.Catalog.Path, time.Minute))
		logging.Info().Str("path", cfg.Catalog.Path).Msg("Catalog reload service added")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor closes the channel.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
