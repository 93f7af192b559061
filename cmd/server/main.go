// Package main is the entry point for the aktiva API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"aktiva/internal/domain/asset"
	"aktiva/internal/domain/inventory"
	"aktiva/internal/domain/maintenance"
	v1 "aktiva/internal/infrastructure/http/v1"
	"aktiva/internal/infrastructure/storage/jsonfile"
	"aktiva/pkg/logger"
)

func main() {
	// Load .env if present; real environment always wins
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting aktiva server")

	// --- Storage ---
	dataDir := getEnv("DATA_DIR", "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalw("failed to create data directory", "dir", dataDir, "error", err)
	}

	// One long-lived repository per entity type: each is the sole writer to
	// its backing document for the lifetime of the process.
	assetRepo, err := jsonfile.NewRepository(ctx, jsonfile.NewStore(filepath.Join(dataDir, "assets.json")),
		func() *asset.Asset { return &asset.Asset{} })
	if err != nil {
		log.Fatalw("failed to load assets", "error", err)
	}
	maintenanceRepo, err := jsonfile.NewRepository(ctx, jsonfile.NewStore(filepath.Join(dataDir, "maintenances.json")),
		func() *maintenance.Maintenance { return &maintenance.Maintenance{} })
	if err != nil {
		log.Fatalw("failed to load maintenance records", "error", err)
	}
	inventoryRepo, err := jsonfile.NewRepository(ctx, jsonfile.NewStore(filepath.Join(dataDir, "inventory.json")),
		func() *inventory.Item { return &inventory.Item{} })
	if err != nil {
		log.Fatalw("failed to load inventory", "error", err)
	}

	log.Infow("collections loaded", "data_dir", dataDir)

	// --- Services ---
	assetService := asset.NewService(assetRepo)
	maintenanceService := maintenance.NewService(maintenanceRepo)
	inventoryService := inventory.NewService(inventoryRepo)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Logger:             log,
		AssetService:       assetService,
		MaintenanceService: maintenanceService,
		InventoryService:   inventoryService,
		DataDir:            dataDir,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
