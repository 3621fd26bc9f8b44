package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// ServerConfig holds the HTTP surface settings.
type ServerConfig struct {
	Port           string   `envconfig:"PORT" default:"4000"`
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// LogConfig mirrors logging.Config without importing it.
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

// Config holds runtime configuration for the server.
type Config struct {
	Server           ServerConfig
	Log              LogConfig
	LivePollInterval Duration
	Backend          BackendConfig
	Metrics          MetricsConfig
	TOTS             TOTSConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	var cfg Config
	sections := []any{&cfg.Server, &cfg.Log, &cfg.Backend, &cfg.Metrics, &cfg.TOTS}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}

	cfg.LivePollInterval = durationEnvOrDefault(envLivePollInterval, defaultLivePollInterval)
	cfg.Backend.Timeout = durationEnvOrDefault(envBackendTimeout, defaultBackendTimeout)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Backend.APIBaseURL() == "" {
		if c.Backend.IsProduction() {
			return fmt.Errorf("config: %s is required when %s=%s", envProdAPIURL, envNodeEnv, envProduction)
		}
		return errors.New("config: no backend API URL configured")
	}
	if c.Backend.ReadRetries < 0 {
		return errors.New("config: BACKEND_READ_RETRIES must not be negative")
	}
	if c.TOTS.FinalizeHourUTC < 0 || c.TOTS.FinalizeHourUTC > 23 {
		return fmt.Errorf("config: TOTS_FINALIZE_HOUR must be 0-23, got %d", c.TOTS.FinalizeHourUTC)
	}
	return nil
}
