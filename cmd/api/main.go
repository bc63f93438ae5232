// ABOUTME: Main entry point for the LocalPulse API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"localpulse-api/api"
	"localpulse-api/api/handlers"
	"localpulse-api/core/domain"
	"localpulse-api/core/feeds"
	"localpulse-api/core/geocode"
	"localpulse-api/core/interfaces"
	"localpulse-api/core/reader"
	"localpulse-api/core/scheduler"
	"localpulse-api/infrastructure/cache/memory"
	"localpulse-api/infrastructure/cache/redis"
	"localpulse-api/infrastructure/cache/sqlite"
	stdhttp "localpulse-api/infrastructure/http/standard"
	logrusadapter "localpulse-api/infrastructure/logger/logrus"
	"localpulse-api/pkg/config"
	"localpulse-api/pkg/featureflags"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logrusadapter.NewLogrusLogger(cfg.LogLevel)
	logger.Info("Starting LocalPulse API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	cache := buildCache(cfg, logger)

	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Build the per-domain pipelines, applying any feed URL overrides.
	sources := feeds.DefaultSources()
	for d, url := range cfg.FeedURLs {
		if src, ok := sources[domain.FeedDomain(d)]; ok {
			src.URL = url
			sources[domain.FeedDomain(d)] = src
		}
	}
	if err := feeds.ValidateSources(sources); err != nil {
		log.Fatalf("Invalid feed sources: %v (set FEED_URL_<DOMAIN>)", err)
	}

	flags := featureflags.NewEnvManager("")

	var geocoder interfaces.Geocoder
	if flags.IsEnabled(context.Background(), featureflags.GeocodeEnabled) {
		geocoder = geocode.NewService(deps, cfg.Geocoder.BaseURL)
	}
	registry := feeds.NewRegistry(sources, deps, geocoder)
	readerService := reader.NewService(cache, logger)

	// Schedule periodic refreshes; each pipeline runs on its own interval.
	sched := scheduler.New()
	if flags.IsEnabled(context.Background(), featureflags.SchedulerEnabled) {
		scheduleRefreshes(sched, registry, logger)
	}

	apiConfig := api.APIConfig{
		Logger: logger,
	}
	if flags.IsEnabled(context.Background(), featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = 100 // per minute
		apiConfig.RateWindow = time.Minute
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	pipelines := make(map[domain.FeedDomain]handlers.FeedPipeline)
	for _, svc := range registry.All() {
		pipelines[svc.Domain()] = svc
	}

	feedHandler := handlers.NewFeedHandler(pipelines)
	feedHandler.RegisterRoutes(humaAPI)

	discoverHandler := handlers.NewDiscoverHandler(httpClient)
	discoverHandler.RegisterRoutes(humaAPI)

	validateHandler := handlers.NewValidateHandler(httpClient)
	validateHandler.RegisterRoutes(humaAPI)

	readerHandler := handlers.NewReaderHandler(readerService)
	readerHandler.RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	sched.StopAll()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// scheduleRefreshes starts a periodic refresh task per pipeline.
func scheduleRefreshes(sched *scheduler.Scheduler, registry *feeds.Registry, logger interfaces.Logger) {
	for _, svc := range registry.All() {
		svc := svc
		sched.Every(svc.Interval(), func(ctx context.Context) {
			if err := svc.Refresh(ctx); err != nil {
				logger.Warn("Scheduled refresh failed", map[string]interface{}{
					"domain": string(svc.Domain()),
					"error":  err.Error(),
				})
			}
		})
	}
}

// buildCache selects the cache backend from configuration, falling back to
// memory when the configured backend cannot be created.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	}

	logger.Info("Using memory cache", nil)
	expiration := time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second
	return memory.NewMemoryCache(expiration, 10*time.Minute)
}
