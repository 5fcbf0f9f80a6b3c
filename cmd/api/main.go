// Command api runs the Dishcovery REST API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dishcovery/dishcovery/backend/config"
	"github.com/dishcovery/dishcovery/backend/internal/api"
	"github.com/dishcovery/dishcovery/backend/internal/cache"
	"github.com/dishcovery/dishcovery/backend/internal/database"
	"github.com/dishcovery/dishcovery/backend/internal/middleware"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// The recipe cache is best-effort: run without it if Redis is down
	// or not configured.
	var recipeCache cache.RecipeCache
	redisClient, err := database.NewRedisClient(cfg, logger)
	if err != nil {
		logger.Warn("continuing without recipe cache", zap.Error(err))
	} else if redisClient != nil {
		recipeCache = cache.NewRedisCache(redisClient, logger)
	}

	router := gin.Default()
	router.Use(middleware.CORS(cfg.AllowedOrigin))
	router.Use(middleware.Metrics())

	api.SetupAPI(router, db, recipeCache, cfg)

	srv := &http.Server{
		Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		errChan <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.Stringer("signal", sig))
	}

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
