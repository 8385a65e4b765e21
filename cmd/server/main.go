package main

import (
	"fmt"
	"log"
	"os"

	"github.com/priceboard/backend/config"
	httpDelivery "github.com/priceboard/backend/internal/delivery/http"
	"github.com/priceboard/backend/internal/infrastructure/store"
	"github.com/priceboard/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PriceBoard Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	supplierStore := store.NewMemoryStore()

	// Initialize usecase layer
	searchService := usecase.NewSearchService(usecase.SearchConfig{
		MinScoreThreshold:  cfg.Matching.MinScoreThreshold,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	})

	log.Printf("Matching: threshold=%.0f%%, debug=%v",
		cfg.Matching.MinScoreThreshold,
		cfg.Matching.EnableDebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(searchService, supplierStore)

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
