package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"errand-planner/config"
	_ "errand-planner/docs" // Swagger docs
	"errand-planner/internal/errand/repository"
	"errand-planner/internal/errand/usecase"
	"errand-planner/internal/extractor"
	"errand-planner/internal/httpserver"
	"errand-planner/internal/middleware"
	"errand-planner/internal/optimizer"
	"errand-planner/internal/resolver"
	"errand-planner/pkg/directions"
	"errand-planner/pkg/foursquare"
	"errand-planner/pkg/gcalendar"
	"errand-planner/pkg/llmprovider"
	"errand-planner/pkg/log"
)

// @title       Errand Planner API
// @description Turns a free-form errand list into an ordered trip of nearby places.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Errand Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Task extraction (LLM chain, keyword fallback)
	var llm extractor.Generator
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "No LLM provider available, keyword extraction only: %v", err)
	} else {
		for _, p := range providers {
			logger.Infof(ctx, "LLM provider: %s (%s)", p.Name(), p.Model())
		}
		llm = llmprovider.NewManager(providers, llmprovider.ManagerConfig(&cfg.LLM), logger)
	}
	taskExtractor := extractor.New(llm, logger)

	// 4. Place resolution
	var places foursquare.IFoursquare
	if cfg.Places.APIKey != "" {
		places, err = foursquare.New(foursquare.Config{APIKey: cfg.Places.APIKey, BaseURL: cfg.Places.BaseURL})
		if err != nil {
			logger.Errorf(ctx, "Failed to initialize places client: %v", err)
			return
		}
	} else {
		logger.Warn(ctx, "FOURSQUARE_API_KEY missing: place search will return nothing")
	}
	placeResolver := resolver.New(places, resolver.Config{
		Radius:    cfg.Places.Radius,
		Limit:     cfg.Places.Limit,
		Timeout:   cfg.Places.Timeout,
		CacheSize: cfg.Places.CacheSize,
		CacheTTL:  cfg.Places.CacheTTL,
	}, logger)

	// 5. Route optimization
	var dir directions.IDirections
	if cfg.Routing.APIKey != "" {
		dir, err = directions.New(directions.Config{APIKey: cfg.Routing.APIKey, BaseURL: cfg.Routing.BaseURL})
		if err != nil {
			logger.Errorf(ctx, "Failed to initialize directions client: %v", err)
			return
		}
	} else {
		logger.Info(ctx, "No routing key: routes use the local distance sort")
	}
	routeOptimizer := optimizer.New(dir, cfg.Routing.Timeout, logger)

	// 6. History store
	store, db, closeStore, err := openHistoryStore(ctx, cfg.History, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open history store: %v", err)
		return
	}
	defer closeStore()
	repo := repository.New(store, logger)

	// 7. Google Calendar (optional)
	var cal gcalendar.ICalendar
	if cfg.Calendar.Enabled && cfg.Calendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.Calendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			cal = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 8. Errand UseCase
	errandUC := usecase.New(logger, taskExtractor, placeResolver, routeOptimizer, repo, cal, usecase.Config{
		ParallelResolve: cfg.Pipeline.ParallelResolve,
		MaxConcurrency:  cfg.Pipeline.MaxConcurrency,
		CalendarID:      cfg.Calendar.CalendarID,
		Timezone:        cfg.Calendar.Timezone,
	})

	// 9. HTTP Server
	srvCfg := httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware:      middleware.New(logger, cfg),
		ErrandUseCase:   errandUC,
	}
	if db != nil {
		srvCfg.DB = db
	}
	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
