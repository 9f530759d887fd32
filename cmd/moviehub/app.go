package main

import (
	"context"
	"time"

	"github.com/amaumene/moviehub/internal/config"
	"github.com/amaumene/moviehub/internal/constants"
	"github.com/amaumene/moviehub/internal/handlers"
	"github.com/amaumene/moviehub/internal/services"
	"github.com/amaumene/moviehub/internal/session"
	"github.com/amaumene/moviehub/pkg/httputil"
	"github.com/amaumene/moviehub/pkg/logger"
	"github.com/amaumene/moviehub/pkg/ratelimiter"
	"github.com/amaumene/moviehub/pkg/security"
)

var (
	Logger           logger.Logger
	cfg              *config.Config
	sessionStore     *session.Store
	handler          *handlers.Handler
	serviceContainer *services.Container
)

func InitializeConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		// The logger is not configured yet; fall back to the environment level.
		logger.New().Fatalf("[App] %v", err)
	}
}

func InitializeLogger() {
	Logger = logger.NewWithLevel(logger.ParseLevel(cfg.LogLevel))

	// Log level validation (for user feedback)
	if !logger.IsKnownLevel(cfg.LogLevel) {
		Logger.Warnf("[App] warning: unknown log level '%s', defaulting to info", cfg.LogLevel)
	}
}

func InitializeServices(ctx context.Context) {
	validator := security.NewAPIKeyValidator()
	if cfg.OMDbAPIKey == "" {
		Logger.Warnf("[App] OMDB_API_KEY is not set; every search will report a network error")
	} else {
		Logger.Infof("[App] using OMDb key %s", validator.MaskAPIKey(cfg.OMDbAPIKey))
	}

	httpClient := httputil.NewHTTPClient(time.Duration(cfg.RequestTimeout))
	omdb := services.NewOMDb(cfg.OMDbAPIKey, cfg.OMDbBaseURL, httpClient, Logger)
	if cfg.OMDbRateLimit > 0 {
		omdb.SetRateLimiter(ratelimiter.NewTokenBucket(cfg.OMDbRateBurst, cfg.OMDbRateLimit))
		Logger.Infof("[App] OMDb calls limited to %d/s (burst %d)", cfg.OMDbRateLimit, cfg.OMDbRateBurst)
	}

	sessionStore = session.NewStore(omdb, cfg.SessionCapacity, time.Duration(cfg.SessionTTL), Logger)
	sessionStore.StartCleanup(ctx, constants.SessionCleanupInterval)

	// Initialize services container
	serviceContainer = &services.Container{
		Catalog:  omdb,
		Sessions: sessionStore,
		Logger:   Logger,
		Config:   cfg,
	}

	// Initialize handler
	handler = handlers.New(serviceContainer, cfg)

	Logger.Infof("[App] services initialized successfully")
}
