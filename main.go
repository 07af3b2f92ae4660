package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Sami-Mannila/webscraper/config"
	"github.com/Sami-Mannila/webscraper/repositories"
	"github.com/Sami-Mannila/webscraper/services"
)

func main() {
	// .env is optional; deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()

	renderer := repositories.NewChromeRenderer(ctx, cfg.Headless,
		repositories.WithRenderTimeout(cfg.RenderTimeout),
		repositories.WithSettleTimeout(cfg.SettleTimeout),
		repositories.WithPollInterval(cfg.PollInterval),
	)
	defer renderer.Close()

	discovery := services.NewDiscoveryService(
		services.WithRenderer(renderer),
		services.WithBaseURL(cfg.SearchURL),
		services.WithPageSize(cfg.PageSize),
	)

	sinks := []services.PropertySink{
		repositories.NewCSVRepository(cfg.OutCSV, cfg.CSVDelimiter),
	}
	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to connect to db: %v", err)
		}
		sinks = append(sinks, repositories.NewDBRepository(db, cfg.DBBatchSize))
	}

	pipeline := services.NewPipelineService(
		services.WithDiscoverer(discovery),
		services.WithPageFetcher(repositories.NewPageFetcher()),
		services.WithExtractor(services.NewExtractorService()),
		services.WithSinks(sinks...),
	)

	log.Println("Listings worker started")

	properties, err := pipeline.Run(ctx)
	if err != nil {
		log.Fatalf("crawl run failed: %v", err)
	}

	log.Printf("Run finished with %d properties", len(properties))
}
