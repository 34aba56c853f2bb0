package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Ollama OllamaConfig
	Cache  CacheConfig
	Search SearchConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OllamaConfig holds language-model configuration
type OllamaConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Mode    string        `mapstructure:"mode"` // "structured" or "freetext"
	Timeout time.Duration `mapstructure:"timeout"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type string        `mapstructure:"type"` // "file" or "memory"
	Dir  string        `mapstructure:"dir"`
	TTL  time.Duration `mapstructure:"ttl"` // memory cache only; 0 = no expiry
}

// SearchConfig holds scoring configuration
type SearchConfig struct {
	PriceWeight        float64 `mapstructure:"price_weight"`
	RatingWeight       float64 `mapstructure:"rating_weight"`
	EnableDebugLogging bool    `mapstructure:"enable_debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/partscout/")

	// Environment variable settings
	v.SetEnvPrefix("PARTSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Ollama defaults
	v.SetDefault("ollama.enabled", true)
	v.SetDefault("ollama.base_url", "http://localhost:11434")
	v.SetDefault("ollama.model", "llama3")
	v.SetDefault("ollama.mode", "structured")
	v.SetDefault("ollama.timeout", "30s")

	// Cache defaults
	v.SetDefault("cache.type", "file")
	v.SetDefault("cache.dir", "cache")
	v.SetDefault("cache.ttl", "0")

	// Search defaults
	v.SetDefault("search.price_weight", 0.6)
	v.SetDefault("search.rating_weight", 0.4)
	v.SetDefault("search.enable_debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Ollama.Mode != "structured" && config.Ollama.Mode != "freetext" {
		return fmt.Errorf("ollama mode must be 'structured' or 'freetext', got: %s", config.Ollama.Mode)
	}

	if config.Cache.Type != "file" && config.Cache.Type != "memory" {
		return fmt.Errorf("cache type must be 'file' or 'memory', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "file" && config.Cache.Dir == "" {
		return fmt.Errorf("cache dir is required when cache type is 'file'")
	}

	if config.Search.PriceWeight < 0 || config.Search.RatingWeight < 0 {
		return fmt.Errorf("score weights must be non-negative")
	}
	if sum := config.Search.PriceWeight + config.Search.RatingWeight; math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("score weights must sum to 1, got: %v", sum)
	}

	return nil
}
