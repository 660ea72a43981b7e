package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agri-works/internal/auth"
	"agri-works/internal/cache"
	"agri-works/internal/config"
	"agri-works/internal/database"
	"agri-works/internal/handler"
	"agri-works/internal/metrics"
	"agri-works/internal/repository"
	"agri-works/internal/router"
	"agri-works/internal/service"
	"agri-works/internal/storage"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting agri-works API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(pool, logger); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	enquiryRepo := repository.NewEnquiryRepository(pool, logger)

	// Initialize route cache, Redis when configured and in-memory otherwise
	routeCache, closeCache, err := newRouteCache(ctx, cfg.Cache, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize route cache: %w", err)
	}
	defer closeCache()

	// Initialize image storage
	imageStore, err := storage.NewS3Store(ctx, cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize image storage: %w", err)
	}

	authenticator, err := auth.NewAuthenticator(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize authenticator: %w", err)
	}

	// Initialize services
	productService := service.NewProductService(productRepo, routeCache, logger)
	enquiryService := service.NewEnquiryService(enquiryRepo, routeCache, logger)
	dashboardService := service.NewDashboardService(productService, enquiryService)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Product: handler.NewProductHandler(productService, logger),
		Catalog: handler.NewCatalogHandler(productService, logger),
		Enquiry: handler.NewEnquiryHandler(enquiryService, logger),
		Admin:   handler.NewAdminHandler(authenticator, dashboardService, logger),
		Upload:  handler.NewUploadHandler(imageStore, logger),
	}

	// Initialize router
	mux := router.New(handlers, router.Deps{
		Auth:    authenticator,
		Cache:   routeCache,
		Metrics: metrics.New(),
		Logger:  logger,
	})

	// Create HTTP server. The write timeout leaves room for 10 MB uploads.
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newRouteCache returns the Redis-backed cache when an address is configured.
// A Redis server that does not answer at startup is an error.
func newRouteCache(ctx context.Context, cfg config.CacheConfig, logger zerolog.Logger) (cache.RouteCache, func(), error) {
	if cfg.RedisAddr == "" {
		logger.Info().Msg("using in-memory route cache")
		return cache.NewMemoryCache(cfg.TTL, logger), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.RedisAddr, err)
	}

	logger.Info().Str("addr", cfg.RedisAddr).Msg("using redis route cache")
	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close redis client")
		}
	}
	return cache.NewRedisCache(client, cfg.TTL, logger), closeFn, nil
}
