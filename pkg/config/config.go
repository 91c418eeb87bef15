package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// App
	Port string
	Env  string

	// EpiGraphDB REST API
	APIURL         string
	HTTPTimeout    time.Duration
	MaxRetries     int
	PvalThreshold  float64

	// Direct Bolt access (optional; the REST /cypher endpoint covers most uses)
	BoltURI      string
	BoltUser     string
	BoltPassword string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		APIURL:        getEnv("EPIGRAPHDB_API_URL", "https://api.epigraphdb.org"),
		HTTPTimeout:   time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		MaxRetries:    getEnvInt("MAX_RETRIES", 3),
		PvalThreshold: getEnvFloat("PVAL_THRESHOLD", 1e-5),
		BoltURI:       getEnv("EPIGRAPHDB_BOLT_URI", ""),
		BoltUser:      getEnv("EPIGRAPHDB_BOLT_USER", "neo4j"),
		BoltPassword:  getEnv("EPIGRAPHDB_BOLT_PASSWORD", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("EPIGRAPHDB_API_URL is required")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT_SECONDS must be positive")
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("MAX_RETRIES must be at least 1")
	}
	// Bolt credentials are only required when a Bolt URI is configured
	if c.BoltURI != "" && c.BoltUser == "" {
		return fmt.Errorf("EPIGRAPHDB_BOLT_USER is required when EPIGRAPHDB_BOLT_URI is set")
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		var result float64
		if _, err := fmt.Sscanf(value, "%f", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
