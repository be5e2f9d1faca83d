package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/artfolio/artfolio-api/internal/adapter"
	"github.com/artfolio/artfolio-api/internal/api/middleware"
	"github.com/artfolio/artfolio-api/internal/api/rest"
	"github.com/artfolio/artfolio-api/internal/api/shared/executor"
	"github.com/artfolio/artfolio-api/internal/cache"
	"github.com/artfolio/artfolio-api/internal/identity"
	"github.com/artfolio/artfolio-api/internal/logger"
	"github.com/artfolio/artfolio-api/internal/marketplace"
	"github.com/artfolio/artfolio-api/internal/registry"
	"github.com/artfolio/artfolio-api/internal/store"
	"github.com/artfolio/artfolio-api/internal/voting"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	APIKeys      []string
}

// Server wraps the HTTP server and its dependencies
type Server struct {
	config      Config
	store       store.Store
	cache       cache.Cache
	marketplace marketplace.Client
	voting      voting.Service
	verifier    identity.Verifier
	featured    registry.FeaturedRegistry
	json        adapter.JSON
	httpServer  *http.Server
}

// New creates a new API server
func New(
	cfg Config,
	store store.Store,
	cache cache.Cache,
	marketplaceClient marketplace.Client,
	votingService voting.Service,
	verifier identity.Verifier,
	featured registry.FeaturedRegistry,
	json adapter.JSON,
) *Server {
	return &Server{
		config:      cfg,
		store:       store,
		cache:       cache,
		marketplace: marketplaceClient,
		voting:      votingService,
		verifier:    verifier,
		featured:    featured,
		json:        json,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	// Create shared executor (business logic behind every route)
	exec := executor.NewExecutor(s.store, s.cache, s.marketplace, s.voting, s.featured, s.json)

	// Create REST handler
	restHandler := rest.NewHandler(exec)

	// Setup REST routes
	rest.SetupRoutes(router, restHandler, s.verifier, middleware.AuthConfig{APIKeys: s.config.APIKeys})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
