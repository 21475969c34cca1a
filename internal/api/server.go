package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mvolkov/kinobot/internal/api/handlers"
	"github.com/mvolkov/kinobot/internal/api/middleware"
	"github.com/mvolkov/kinobot/internal/config"
	"github.com/mvolkov/kinobot/internal/controllers"
)

// Server represents the HTTP server
type Server struct {
	server     *http.Server
	searchCtrl *controllers.SearchController
	filterCtrl *controllers.FilterController
	logger     *logrus.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, searchCtrl *controllers.SearchController, filterCtrl *controllers.FilterController, logger *logrus.Logger) *Server {
	s := &Server{
		searchCtrl: searchCtrl,
		filterCtrl: filterCtrl,
		logger:     logger,
	}

	mux := http.NewServeMux()
	s.setupRoutes(mux)

	s.server = &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      middleware.Logging(mux, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(mux *http.ServeMux) {
	// Health check
	healthHandler := handlers.NewHealthHandler(s.logger)
	mux.HandleFunc("/health", healthHandler.ServeHTTP)

	// Inbound text messages
	messageHandler := handlers.NewMessageHandler(s.searchCtrl, s.logger)
	mux.HandleFunc("/api/message", messageHandler.ServeHTTP)

	// Button presses
	callbackHandler := handlers.NewCallbackHandler(s.searchCtrl, s.filterCtrl, s.logger)
	mux.HandleFunc("/api/callback", callbackHandler.ServeHTTP)
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	s.logger.WithField("port", s.server.Addr).Info("Starting HTTP server")

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
