// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/storefront-bff/internal/config"
	"github.com/your-org/storefront-bff/internal/erp"
	"github.com/your-org/storefront-bff/internal/infrastructure/cache"
	httpserver "github.com/your-org/storefront-bff/internal/interfaces/http"
	"github.com/your-org/storefront-bff/internal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg)
	log.WithField("version", cfg.App.Version).Info("starting storefront service")

	cacheClient, err := cache.NewConnection(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to Redis")
	}
	defer cacheClient.Close()

	erpClient := erp.NewClient(cfg, log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if !erpClient.TestConnection(ctx) {
		log.Warn("upstream ERP unreachable at startup, continuing anyway")
	}
	cancel()

	server := httpserver.NewServer(cfg, erpClient, cacheClient, log)

	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}

	log.Info("storefront service stopped")
}
