package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Serper SerperConfig
	Gemini GeminiConfig
	Search SearchConfig
	Cache  CacheConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SerperConfig holds Serper shopping API configuration
type SerperConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Country string `mapstructure:"country"`
}

// GeminiConfig holds Gemini API configuration for checklist generation.
// An empty API key disables the checklist endpoint; product search still works.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// SearchConfig holds per-item search pipeline configuration
type SearchConfig struct {
	MaxOffers     int           `mapstructure:"max_offers"`     // offers requested per item
	MaxConcurrent int           `mapstructure:"max_concurrent"` // in-flight item searches
	ItemTimeout   time.Duration `mapstructure:"item_timeout"`
	MaxBundles    int           `mapstructure:"max_bundles"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type string        `mapstructure:"type"` // "memory" (redis reserved for future use)
	TTL  time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/projectcart/")

	// Environment variable settings
	v.SetEnvPrefix("PROJECTCART")
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

	// Serper defaults. The API key has no sensible default but the key must
	// be registered with viper so env-only values survive Unmarshal.
	v.SetDefault("serper.api_key", "")
	v.SetDefault("serper.base_url", "https://google.serper.dev")
	v.SetDefault("serper.country", "us")

	// Gemini defaults
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash")

	// Search pipeline defaults: 9 offers = 3 per price tier
	v.SetDefault("search.max_offers", 9)
	v.SetDefault("search.max_concurrent", 8)
	v.SetDefault("search.item_timeout", "15s")
	v.SetDefault("search.max_bundles", 5)

	// Cache defaults: retail prices drift, keep the TTL short
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "15m")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Serper.APIKey == "" {
		return fmt.Errorf("Serper API key is required (set PROJECTCART_SERPER_API_KEY)")
	}

	if config.Cache.Type != "memory" {
		return fmt.Errorf("cache type must be 'memory', got: %s", config.Cache.Type)
	}

	if config.Search.MaxOffers <= 0 {
		return fmt.Errorf("search.max_offers must be positive, got: %d", config.Search.MaxOffers)
	}

	if config.Search.MaxConcurrent <= 0 {
		return fmt.Errorf("search.max_concurrent must be positive, got: %d", config.Search.MaxConcurrent)
	}

	return nil
}
