package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("PARTSCOUT_SERVER_PORT")
		os.Unsetenv("PARTSCOUT_SERVER_ENVIRONMENT")
		os.Unsetenv("PARTSCOUT_OLLAMA_ENABLED")
		os.Unsetenv("PARTSCOUT_OLLAMA_BASE_URL")
		os.Unsetenv("PARTSCOUT_OLLAMA_MODEL")
		os.Unsetenv("PARTSCOUT_OLLAMA_MODE")
		os.Unsetenv("PARTSCOUT_OLLAMA_TIMEOUT")
		os.Unsetenv("PARTSCOUT_CACHE_TYPE")
		os.Unsetenv("PARTSCOUT_CACHE_DIR")
		os.Unsetenv("PARTSCOUT_CACHE_TTL")
		os.Unsetenv("PARTSCOUT_SEARCH_PRICE_WEIGHT")
		os.Unsetenv("PARTSCOUT_SEARCH_RATING_WEIGHT")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if !cfg.Ollama.Enabled {
			t.Error("Ollama.Enabled = false, want true")
		}
		if cfg.Ollama.BaseURL != "http://localhost:11434" {
			t.Errorf("Ollama.BaseURL = %s, want http://localhost:11434", cfg.Ollama.BaseURL)
		}
		if cfg.Ollama.Model != "llama3" {
			t.Errorf("Ollama.Model = %s, want llama3", cfg.Ollama.Model)
		}
		if cfg.Ollama.Mode != "structured" {
			t.Errorf("Ollama.Mode = %s, want structured", cfg.Ollama.Mode)
		}
		if cfg.Ollama.Timeout != 30*time.Second {
			t.Errorf("Ollama.Timeout = %v, want 30s", cfg.Ollama.Timeout)
		}
		if cfg.Cache.Type != "file" {
			t.Errorf("Cache.Type = %s, want file", cfg.Cache.Type)
		}
		if cfg.Cache.Dir != "cache" {
			t.Errorf("Cache.Dir = %s, want cache", cfg.Cache.Dir)
		}
		if cfg.Cache.TTL != 0 {
			t.Errorf("Cache.TTL = %v, want 0", cfg.Cache.TTL)
		}
		if cfg.Search.PriceWeight != 0.6 {
			t.Errorf("Search.PriceWeight = %v, want 0.6", cfg.Search.PriceWeight)
		}
		if cfg.Search.RatingWeight != 0.4 {
			t.Errorf("Search.RatingWeight = %v, want 0.4", cfg.Search.RatingWeight)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("PARTSCOUT_SERVER_PORT", "9090")
		os.Setenv("PARTSCOUT_OLLAMA_MODE", "freetext")
		os.Setenv("PARTSCOUT_OLLAMA_MODEL", "mistral")
		os.Setenv("PARTSCOUT_CACHE_TYPE", "memory")
		os.Setenv("PARTSCOUT_CACHE_TTL", "24h")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Ollama.Mode != "freetext" {
			t.Errorf("Ollama.Mode = %s, want freetext", cfg.Ollama.Mode)
		}
		if cfg.Ollama.Model != "mistral" {
			t.Errorf("Ollama.Model = %s, want mistral", cfg.Ollama.Model)
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
	})

	t.Run("rejects invalid ollama mode", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("PARTSCOUT_OLLAMA_MODE", "chat")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want invalid mode error")
		}
	})

	t.Run("rejects invalid cache type", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("PARTSCOUT_CACHE_TYPE", "redis")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want invalid cache type error")
		}
	})

	t.Run("rejects weights that do not sum to 1", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("PARTSCOUT_SEARCH_PRICE_WEIGHT", "0.9")
		os.Setenv("PARTSCOUT_SEARCH_RATING_WEIGHT", "0.4")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want weight validation error")
		}
	})
}
