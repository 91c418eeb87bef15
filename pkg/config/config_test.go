package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.APIURL != "https://api.epigraphdb.org" {
		t.Errorf("Unexpected default API URL %s", cfg.APIURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("Unexpected default timeout %v", cfg.HTTPTimeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("Unexpected default retries %d", cfg.MaxRetries)
	}
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Errorf("Expected development mode by default, env %s", cfg.Env)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("EPIGRAPHDB_API_URL", "http://localhost:9000")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "5")
	t.Setenv("MAX_RETRIES", "1")
	t.Setenv("ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.APIURL != "http://localhost:9000" {
		t.Errorf("Unexpected API URL %s", cfg.APIURL)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("Unexpected timeout %v", cfg.HTTPTimeout)
	}
	if cfg.MaxRetries != 1 {
		t.Errorf("Unexpected retries %d", cfg.MaxRetries)
	}
	if !cfg.IsProduction() {
		t.Error("Expected production mode")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{APIURL: "", HTTPTimeout: time.Second, MaxRetries: 1}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for missing API URL")
	}

	cfg = &Config{APIURL: "https://api.epigraphdb.org", HTTPTimeout: 0, MaxRetries: 1}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for non-positive timeout")
	}

	cfg = &Config{APIURL: "https://api.epigraphdb.org", HTTPTimeout: time.Second, MaxRetries: 1, BoltURI: "bolt://localhost:7687", BoltUser: ""}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for Bolt URI without user")
	}
}
