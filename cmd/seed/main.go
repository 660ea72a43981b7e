// Command seed loads a sample catalogue into an empty database for local
// development.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"agri-works/internal/config"
	"agri-works/internal/database"
	"agri-works/internal/model"
	"agri-works/internal/repository"
)

var sampleProducts = []model.ProductInput{
	{
		Name:        "Hydraulic Trolley",
		Description: "Heavy-duty hydraulic tipping trolley built for maximum load capacity and effortless unloading.",
		Price:       285000,
		Category:    model.CategoryTrolleys,
		ImageURL:    "https://images.unsplash.com/photo-1500937386664-56d1dfef3854?q=80&w=2069&auto=format&fit=crop",
	},
	{
		Name:        "9-Tyne Cultivator",
		Description: "Precision-engineered cultivator with 9 spring-loaded tynes for superior soil preparation.",
		Price:       48000,
		Category:    model.CategoryCultivators,
		ImageURL:    "https://images.unsplash.com/photo-1592860956971-555f653a63e7?q=80&w=2070&auto=format&fit=crop",
	},
	{
		Name:        "Heavy Duty Rotavator",
		Description: "Commercial-grade rotavator with reinforced blades for deep tillage across all soil types.",
		Price:       135000,
		Category:    model.CategoryRotavators,
		ImageURL:    "https://images.unsplash.com/photo-1595181775791-7667ff46949b?q=80&w=2070&auto=format&fit=crop",
	},
	{
		Name:      "Reversible MB Plough",
		Price:     92000,
		Category:  model.CategoryPloughs,
		BuildType: model.BuildMechanical,
	},
	{
		Name:     "Multi-Crop Seed Drill",
		Price:    76000,
		Category: model.CategorySeedDrills,
		Status:   model.StatusOutOfStock,
	},
	{
		Name:      "Tractor Mounted Harvester",
		Price:     450000,
		Category:  model.CategoryHarvesters,
		BuildType: model.BuildHeavyDuty,
		Capacity:  model.CapacityOver10,
	},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dbConfig, loggerConfig := config.LoadDatabase()
	logger := config.NewLogger(loggerConfig)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPool(ctx, dbConfig, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	products := repository.NewProductRepository(pool, logger)

	existing, err := products.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}
	if len(existing) > 0 {
		logger.Info().Int("products", len(existing)).Msg("catalogue is not empty, skipping seed")
		return nil
	}

	for _, input := range sampleProducts {
		if input.Status == "" {
			input.Status = model.StatusActive
		}
		product, err := products.Create(ctx, input)
		if err != nil {
			return fmt.Errorf("failed to create %q: %w", input.Name, err)
		}
		logger.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("product seeded")
	}

	return nil
}
