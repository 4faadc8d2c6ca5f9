package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/shortscout/shorts-discovery-go/internal/cache"
	"github.com/shortscout/shorts-discovery-go/internal/config"
	"github.com/shortscout/shorts-discovery-go/internal/handler"
	"github.com/shortscout/shorts-discovery-go/internal/middleware"
	"github.com/shortscout/shorts-discovery-go/internal/service"
	"github.com/shortscout/shorts-discovery-go/internal/service/youtube"
	"github.com/shortscout/shorts-discovery-go/pkg/logger"
)

func main() {
	// .env is optional; real deployments set environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.YouTube.APIKey == "" {
		logger.Log.Fatal("YouTube API key not configured (APP_YOUTUBE_APIKEY)")
	}

	ctx := context.Background()

	store, cleanup, err := newCacheStore(ctx, cfg)
	if err != nil {
		logger.Log.Fatal("failed to initialize cache backend", zap.Error(err))
	}
	defer cleanup()

	gateway, err := youtube.NewClient(ctx, cfg.YouTube.APIKey, store,
		cfg.YouTube.CacheTTL, cfg.YouTube.RequestTimeout)
	if err != nil {
		logger.Log.Fatal("failed to initialize YouTube client", zap.Error(err))
	}

	discoveryService := service.NewDiscoveryService(gateway, cfg.YouTube.KeywordDelay)

	router := newRouter(cfg, discoveryService)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Log.Info("server starting",
			zap.Int("port", cfg.Server.Port),
			zap.String("cache_backend", cfg.Cache.Backend),
		)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Log.Fatal("server error", zap.Error(err))
	case sig := <-shutdown:
		logger.Log.Info("shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Log.Error("graceful shutdown failed", zap.Error(err))
			if err := server.Close(); err != nil {
				logger.Log.Error("failed to close server", zap.Error(err))
			}
			os.Exit(1)
		}

		logger.Log.Info("server stopped gracefully")
	}
}

// newCacheStore builds the configured gateway cache backend. The
// cleanup function is a no-op for the in-memory backend.
func newCacheStore(ctx context.Context, cfg *config.Config) (cache.Cache, func(), error) {
	switch cfg.Cache.Backend {
	case "redis":
		redisCache, err := cache.NewRedisCache(ctx, cfg.Cache.RedisAddr,
			cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return redisCache, func() {
			if err := redisCache.Close(); err != nil {
				logger.Log.Error("failed to close redis cache", zap.Error(err))
			}
		}, nil
	case "memory":
		return cache.NewMemoryCache(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown cache backend: %s", cfg.Cache.Backend)
}

func newRouter(cfg *config.Config, discoveryService *service.DiscoveryService) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	discoveryHandler := handler.NewDiscoveryHandler(discoveryService)
	catalogHandler := handler.NewCatalogHandler()
	authMiddleware := middleware.NewAPIKeyAuth(cfg.Server.APIKeys)

	router.GET("/health", catalogHandler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1", authMiddleware.Middleware())
	{
		api.POST("/discoveries", discoveryHandler.HandleDiscovery)
		api.POST("/discoveries/export", discoveryHandler.HandleExport)
		api.GET("/niches", catalogHandler.HandleNiches)
		api.GET("/regions", catalogHandler.HandleRegions)
	}

	return router
}
