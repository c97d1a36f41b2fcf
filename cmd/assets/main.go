package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/branch-locator/app/config"
	"github.com/branch-locator/app/controllers"
	"github.com/branch-locator/routes"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("APP_CONFIG"))
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Cannot initialize logger: %v", err)
	}
	defer logger.Sync()

	assetController := controllers.NewAssetController(cfg.Assets.Dir, cfg.Data.File, logger)

	router := gin.New()
	router.Use(gin.Logger())
	routes.SetupAllRoutes(router, assetController)

	srv := &http.Server{
		Addr:              ":" + cfg.Assets.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Asset host starting",
			zap.String("port", cfg.Assets.Port),
			zap.String("dir", cfg.Assets.Dir),
			zap.String("file", cfg.Data.File))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down asset host...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
	logger.Info("Asset host exited")
}
