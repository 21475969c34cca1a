package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mvolkov/kinobot/internal/api"
	"github.com/mvolkov/kinobot/internal/cache"
	"github.com/mvolkov/kinobot/internal/config"
	"github.com/mvolkov/kinobot/internal/controllers"
	"github.com/mvolkov/kinobot/internal/models"
	"github.com/mvolkov/kinobot/internal/presenter"
	"github.com/mvolkov/kinobot/internal/scheduler"
	"github.com/mvolkov/kinobot/internal/search"
	"github.com/mvolkov/kinobot/internal/services/tmdb"
	"github.com/mvolkov/kinobot/internal/services/translate"
	"github.com/mvolkov/kinobot/internal/session"
	"github.com/mvolkov/kinobot/internal/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Setup logger
	logger := utils.NewLogger(cfg.LogLevel)
	logger.Info("Starting Kinobot")
	logger.WithField("config_dir", filepath.Dir(cfg.CacheFile)).Info("Configuration loaded")

	// 3. Initialize persistent detail cache
	db, err := models.NewDatabase(cfg.CacheFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()
	logger.Info("Database initialized")

	cacheTTL := time.Duration(cfg.CacheExpirationSeconds) * time.Second

	// 4. Initialize services
	tmdbClient, err := tmdb.NewClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize TMDB client: %w", err)
	}
	logger.Info("TMDB client initialized")

	translateModel := translate.NewHTTPModel(cfg.TranslateURL, logger)
	translator := translate.NewService(translateModel, logger)
	logger.Info("Translation service initialized")

	results := cache.NewResultCache(cacheTTL)
	searchSvc := search.NewService(tmdbClient, results, db, cacheTTL, logger)

	// 5. Initialize presentation and controllers
	pres := presenter.NewPresenter(searchSvc, translator, cfg.ItemsPerPage, cfg.MaxDescriptionLength, logger)
	sessions := session.NewManager()

	searchCtrl := controllers.NewSearchController(searchSvc, sessions, pres, logger)
	filterCtrl := controllers.NewFilterController(searchSvc, sessions, pres, logger)
	logger.Info("Controllers initialized")

	// 6. Initialize scheduler
	sched := scheduler.NewScheduler(db, cacheTTL, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	// 7. Initialize HTTP server
	server := api.NewServer(cfg, searchCtrl, filterCtrl, logger)

	// Start server in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverErrChan := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil {
			serverErrChan <- err
		}
	}()

	// 8. Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	logger.Info("Kinobot is running")

	select {
	case err := <-serverErrChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		logger.WithField("signal", sig).Info("Received shutdown signal")
		cancel()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.WithError(err).Error("Error during server shutdown")
		}
	}

	logger.Info("Kinobot stopped")
	return nil
}
