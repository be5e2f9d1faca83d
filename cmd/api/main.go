package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"github.com/artfolio/artfolio-api/internal/adapter"
	"github.com/artfolio/artfolio-api/internal/api/server"
	"github.com/artfolio/artfolio-api/internal/cache"
	"github.com/artfolio/artfolio-api/internal/config"
	"github.com/artfolio/artfolio-api/internal/identity"
	"github.com/artfolio/artfolio-api/internal/logger"
	"github.com/artfolio/artfolio-api/internal/marketplace"
	"github.com/artfolio/artfolio-api/internal/ratelimit"
	"github.com/artfolio/artfolio-api/internal/registry"
	"github.com/artfolio/artfolio-api/internal/store"
	"github.com/artfolio/artfolio-api/internal/voting"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Artfolio API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Route aggregation reads to the replica when one is configured
	if cfg.Database.HasReadReplica() {
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.Open(cfg.Database.ReadDSN())},
		}))
		if err != nil {
			logger.FatalCtx(ctx, "Failed to register read replica", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Registered read replica", zap.String("host", cfg.Database.ReadHost))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Apply schema migrations
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize the response cache; without redis the cache is in-process
	var responseCache cache.Cache
	if cfg.Redis.Addr != "" {
		responseCache = cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		logger.InfoCtx(ctx, "Connected to redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		responseCache = cache.NewMemory()
		logger.Warn("Redis not configured, using in-process cache")
	}

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	marketplaceHTTP := adapter.NewHTTPClient(cfg.Marketplace.RequestTimeout)
	identityHTTP := adapter.NewHTTPClient(cfg.Identity.RequestTimeout)

	// Rate-limit proxy fronting upstream marketplace calls
	rateLimitProxy, err := ratelimit.NewProxy(ratelimit.Config{
		RequestsPerSecond: cfg.Marketplace.RequestsPerSecond,
		Burst:             cfg.Marketplace.Burst,
		MaxQueueTime:      cfg.Marketplace.MaxQueueTime,
		MaxWorkers:        cfg.Marketplace.MaxWorkers,
		MaxQueueSize:      cfg.Marketplace.MaxQueueSize,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limit proxy", zap.Error(err))
	}
	defer rateLimitProxy.Close()

	// Upstream clients
	marketplaceClient := marketplace.NewClient(marketplaceHTTP, rateLimitProxy, cfg.Marketplace.APIURL, cfg.Marketplace.APIKey, jsonAdapter)
	verifier := identity.NewVerifier(identityHTTP, cfg.Identity.VerifierURL, jsonAdapter)

	// Voting service
	votingService := voting.NewService(dataStore, responseCache)

	// Load the featured registry
	var featured registry.FeaturedRegistry
	if cfg.FeaturedPath != "" {
		featured, err = registry.LoadFeatured(cfg.FeaturedPath)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to load featured registry",
				zap.Error(err),
				zap.String("path", cfg.FeaturedPath))
		}
		logger.InfoCtx(ctx, "Loaded featured registry", zap.String("path", cfg.FeaturedPath))
	} else {
		featured = registry.NewFeatured(nil)
		logger.Warn("Featured registry path not configured, featured list is empty")
	}

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		APIKeys:      cfg.Auth.APIKeys,
	}

	// Create and start server
	srv := server.New(serverConfig, dataStore, responseCache, marketplaceClient, votingService, verifier, featured, jsonAdapter)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
