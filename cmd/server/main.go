package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/projectcart/backend/config"
	httpDelivery "github.com/projectcart/backend/internal/delivery/http"
	"github.com/projectcart/backend/internal/infrastructure/cache"
	"github.com/projectcart/backend/internal/infrastructure/gemini"
	"github.com/projectcart/backend/internal/infrastructure/serper"
	"github.com/projectcart/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ProjectCart Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()

	serperClient := serper.NewClient(cfg.Serper.APIKey, cfg.Serper.BaseURL, cfg.Serper.Country)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		serperClient.SetDebug(true)
		log.Printf("Serper client debug mode enabled")
	}

	log.Printf("Serper API configured: %s (country: %s)", cfg.Serper.BaseURL, cfg.Serper.Country)

	// Checklist generation is optional; without a Gemini key only product
	// search is served
	var checklistService *usecase.ChecklistService
	if cfg.Gemini.APIKey != "" {
		geminiClient, err := gemini.NewClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
		if cfg.Server.Environment == "development" {
			geminiClient.SetDebug(true)
		}
		checklistService = usecase.NewChecklistService(geminiClient)
		log.Printf("Gemini API configured: model %s", cfg.Gemini.Model)
	} else {
		log.Printf("WARNING: Gemini API key not configured - checklist generation disabled")
	}

	// Initialize usecase layer
	searchService := usecase.NewProductSearchService(
		memoryCache,
		serperClient,
		usecase.ProductSearchConfig{
			MaxOffers:     cfg.Search.MaxOffers,
			MaxConcurrent: cfg.Search.MaxConcurrent,
			ItemTimeout:   cfg.Search.ItemTimeout,
			MaxBundles:    cfg.Search.MaxBundles,
			CacheTTL:      cfg.Cache.TTL,
		},
	)

	log.Printf("Search: offers=%d, concurrency=%d, timeout=%s, bundles=%d",
		cfg.Search.MaxOffers,
		cfg.Search.MaxConcurrent,
		cfg.Search.ItemTimeout,
		cfg.Search.MaxBundles)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(searchService, checklistService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
