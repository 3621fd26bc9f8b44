package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected defaults to load, got %v", err)
	}

	if cfg.Server.Port != "4000" {
		t.Fatalf("expected default port 4000, got %s", cfg.Server.Port)
	}
	if cfg.LivePollInterval != defaultLivePollInterval {
		t.Fatalf("expected default poll interval %s, got %s", defaultLivePollInterval, cfg.LivePollInterval)
	}
	if cfg.Backend.Timeout != defaultBackendTimeout {
		t.Fatalf("expected default backend timeout %s, got %s", defaultBackendTimeout, cfg.Backend.Timeout)
	}
	if cfg.Backend.ReadRetries != 0 {
		t.Fatalf("expected no read retries by default, got %d", cfg.Backend.ReadRetries)
	}
	if got := cfg.Backend.APIBaseURL(); got != "http://localhost:8080/api/v2" {
		t.Fatalf("expected v2 dev backend by default, got %s", got)
	}
	if cfg.TOTS.UseMock {
		t.Fatal("expected TOTS mock disabled by default")
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9090" {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected cors defaults %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv(envLivePollInterval, "45s")
	t.Setenv(envBackendTimeout, "3s")
	t.Setenv("BACKEND_READ_RETRIES", "2")
	t.Setenv("TOTS_USE_MOCK", "true")
	t.Setenv("TOTS_MOCK_DSN", "file:tots.db")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected overrides to load, got %v", err)
	}

	if cfg.Server.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Server.Port)
	}
	if cfg.LivePollInterval != 45*time.Second {
		t.Fatalf("expected poll interval 45s, got %s", cfg.LivePollInterval)
	}
	if cfg.Backend.Timeout != 3*time.Second {
		t.Fatalf("expected backend timeout 3s, got %s", cfg.Backend.Timeout)
	}
	if cfg.Backend.ReadRetries != 2 {
		t.Fatalf("expected 2 read retries, got %d", cfg.Backend.ReadRetries)
	}
	if !cfg.TOTS.UseMock || cfg.TOTS.MockDSN != "file:tots.db" {
		t.Fatalf("unexpected tots config %+v", cfg.TOTS)
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Fatalf("expected two cors origins, got %v", cfg.Server.AllowedOrigins)
	}
}

func TestAPIBaseURLSelection(t *testing.T) {
	cases := []struct {
		name     string
		cfg      BackendConfig
		expected string
	}{
		{"production", BackendConfig{NodeEnv: "production", ProdURL: "https://prod", DevURL: "dev", DevPartialURL: "partial"}, "https://prod"},
		{"production mixed case", BackendConfig{NodeEnv: "Production", ProdURL: "https://prod"}, "https://prod"},
		{"dev partial", BackendConfig{NodeEnv: "development", DevMode: "partial", DevURL: "dev", DevPartialURL: "partial"}, "partial"},
		{"dev v2", BackendConfig{NodeEnv: "development", DevMode: "v2", DevURL: "dev", DevPartialURL: "partial"}, "dev"},
		{"dev unset mode", BackendConfig{DevURL: "dev", DevPartialURL: "partial"}, "dev"},
	}
	for _, tc := range cases {
		if got := tc.cfg.APIBaseURL(); got != tc.expected {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.expected, got)
		}
	}
}

func TestLoadProductionRequiresProdURL(t *testing.T) {
	t.Setenv(envNodeEnv, "production")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), envProdAPIURL) {
		t.Fatalf("expected missing prod url error, got %v", err)
	}
}

func TestLoadProductionUsesProdURL(t *testing.T) {
	t.Setenv(envNodeEnv, "production")
	t.Setenv(envProdAPIURL, "https://api.prod.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if cfg.Backend.APIBaseURL() != "https://api.prod.example" {
		t.Fatalf("expected prod url, got %s", cfg.Backend.APIBaseURL())
	}
}

func TestLoadRejectsMalformedBool(t *testing.T) {
	t.Setenv("TOTS_USE_MOCK", "maybe")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed boolean")
	}
}

func TestLoadRejectsOutOfRangeFinalizeHour(t *testing.T) {
	t.Setenv("TOTS_FINALIZE_HOUR", "24")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for out-of-range hour")
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envLivePollInterval, "not-a-duration")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cfg.LivePollInterval != defaultLivePollInterval {
		t.Fatalf("expected default poll interval on invalid value, got %s", cfg.LivePollInterval)
	}
}
