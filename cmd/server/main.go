package main

import (
	"log"

	"worklog-report/internal/api"
	"worklog-report/internal/config"
	"worklog-report/internal/fetch"
	"worklog-report/internal/normalize"
	"worklog-report/internal/services"
	"worklog-report/internal/validation"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the record validator
	validator, err := validation.NewRecordValidator()
	if err != nil {
		log.Fatalf("Failed to load record schema: %v", err)
	}

	// Initialize services
	fetchClient := fetch.NewClient(cfg.Fetch)
	cache := fetch.NewResultCache(cfg.Cache.TTL)
	normalizer := normalize.NewNormalizer(validator)
	dashboardService := services.NewDashboardService(fetchClient, cache, normalizer, cfg.Source.DataSource)

	// Initialize handlers
	handlers := api.NewHandlers(dashboardService)

	// Setup routes
	router := api.SetupRoutes(handlers)

	// Start server
	addr := cfg.Server.Host + ":" + cfg.Server.Port
	log.Printf("Server starting on %s (source: %s)", addr, fetch.ResolveSourceURL(cfg.Source.DataSource))
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
