package main

import (
	"fmt"
	"log"
	"os"

	"github.com/partscout/backend/config"
	httpDelivery "github.com/partscout/backend/internal/delivery/http"
	"github.com/partscout/backend/internal/domain"
	"github.com/partscout/backend/internal/infrastructure/cache"
	"github.com/partscout/backend/internal/infrastructure/connector"
	"github.com/partscout/backend/internal/infrastructure/ollama"
	"github.com/partscout/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PartScout Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)

	// Every supported site needs a URL template before we serve traffic.
	if err := domain.ValidateSiteRegistry(); err != nil {
		log.Fatalf("Site registry incomplete: %v", err)
	}
	log.Printf("Site registry: %d sites", len(domain.SupportedSites))

	// Initialize infrastructure dependencies
	var cacheRepo domain.CacheRepository
	switch cfg.Cache.Type {
	case "file":
		fileCache, err := cache.NewFileCache(cfg.Cache.Dir)
		if err != nil {
			log.Fatalf("Failed to open cache directory: %v", err)
		}
		log.Printf("Cache dir: %s", cfg.Cache.Dir)
		cacheRepo = fileCache
	default:
		log.Printf("Cache TTL: %s", cfg.Cache.TTL)
		cacheRepo = cache.NewMemoryCache(cfg.Cache.TTL)
	}

	var chatClient domain.ChatClient
	if cfg.Ollama.Enabled {
		client := ollama.NewClient(cfg.Ollama.BaseURL, cfg.Ollama.Model, cfg.Ollama.Timeout)
		if cfg.Server.Environment == "development" {
			client.SetDebug(true)
			log.Printf("Ollama client debug mode enabled")
		}
		log.Printf("Ollama configured: %s (model: %s, mode: %s)", cfg.Ollama.BaseURL, cfg.Ollama.Model, cfg.Ollama.Mode)
		chatClient = client
	} else {
		log.Printf("WARNING: Ollama disabled - queries will not be normalized by the model")
	}

	normalizer := usecase.NewQueryNormalizer(chatClient, cfg.Ollama.Mode, cfg.Search.EnableDebugLogging)

	// Initialize usecase layer
	searchService := usecase.NewSearchService(
		normalizer,
		cacheRepo,
		connector.NewSynthetic(),
		usecase.SearchServiceConfig{
			PriceWeight:        cfg.Search.PriceWeight,
			RatingWeight:       cfg.Search.RatingWeight,
			EnableDebugLogging: cfg.Search.EnableDebugLogging,
		},
	)

	log.Printf("Scoring: price=%.0f%%, rating=%.0f%%",
		cfg.Search.PriceWeight*100,
		cfg.Search.RatingWeight*100)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(searchService)

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
