// Package main provides a CLI tool for seeding the data directory with demo records.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"aktiva/internal/core/types"
	"aktiva/internal/domain/asset"
	"aktiva/internal/domain/inventory"
	"aktiva/internal/domain/maintenance"
	"aktiva/internal/infrastructure/storage/jsonfile"
	"aktiva/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalw("failed to create data directory", "dir", dataDir, "error", err)
	}

	if err := seed(ctx, dataDir, log); err != nil {
		log.Fatalw("seeding failed", "error", err)
	}

	log.Infow("seeding complete", "data_dir", dataDir)
}

func seed(ctx context.Context, dataDir string, log *logger.Logger) error {
	assetRepo, err := jsonfile.NewRepository(ctx, jsonfile.NewStore(filepath.Join(dataDir, "assets.json")),
		func() *asset.Asset { return &asset.Asset{} })
	if err != nil {
		return err
	}
	maintenanceRepo, err := jsonfile.NewRepository(ctx, jsonfile.NewStore(filepath.Join(dataDir, "maintenances.json")),
		func() *maintenance.Maintenance { return &maintenance.Maintenance{} })
	if err != nil {
		return err
	}
	inventoryRepo, err := jsonfile.NewRepository(ctx, jsonfile.NewStore(filepath.Join(dataDir, "inventory.json")),
		func() *inventory.Item { return &inventory.Item{} })
	if err != nil {
		return err
	}

	assetService := asset.NewService(assetRepo)
	maintenanceService := maintenance.NewService(maintenanceRepo)
	inventoryService := inventory.NewService(inventoryRepo)

	// Demo asset: a laptop three years into service
	laptop := asset.New(
		"Company Laptop",
		types.NewDate(2023, time.January, 1),
		types.MustMoney("1500.00"),
		"Main Office",
		"IT Equipment",
		3,
	)
	laptop.SalvageValue = types.MustMoney("300.00")
	if err := assetService.Create(ctx, laptop); err != nil {
		return err
	}
	log.Infow("added asset", "name", laptop.Name, "id", laptop.ID)

	// Depreciate it to the end of its first year
	if err := assetService.RevalueAll(ctx, types.NewDate(2023, time.December, 31)); err != nil {
		return err
	}
	log.Infow("revalued assets", "laptop_value", laptop.CurrentValue)

	// Maintenance history for the laptop
	checkup := maintenance.New(
		laptop.ID,
		types.NewDate(2023, time.June, 15),
		"Annual checkup and software update",
		types.MustMoney("150.00"),
		"IT Department",
		maintenance.TypePreventive,
	)
	if err := maintenanceService.Create(ctx, checkup); err != nil {
		return err
	}
	log.Infow("added maintenance record", "asset_id", checkup.AssetID)

	// Spare parts in stock
	charger := inventory.New("Spare Laptop Charger", 50, types.MustMoney("25.00"))
	if err := inventoryService.Create(ctx, charger); err != nil {
		return err
	}
	log.Infow("added inventory item", "name", charger.Name)

	return nil
}
