package config

import "strings"

// BackendConfig controls how we reach the remote sports REST API.
type BackendConfig struct {
	NodeEnv       string `envconfig:"NODE_ENV" default:"development"`
	ProdURL       string `envconfig:"NEXT_PUBLIC_PROD_API_URL"`
	DevURL        string `envconfig:"NEXT_PUBLIC_DEV_API_URL" default:"http://localhost:8080/api/v2"`
	DevPartialURL string `envconfig:"NEXT_PUBLIC_DEV_PARTIAL_API_URL" default:"http://localhost:8080/api"`
	DevMode       string `envconfig:"NEXT_PUBLIC_DEV_MODE"`
	ReadRetries   int    `envconfig:"BACKEND_READ_RETRIES" default:"0"`

	// Timeout is read leniently via durationEnvOrDefault.
	Timeout Duration `ignored:"true"`
}

// IsProduction reports whether NODE_ENV selects the production backend.
func (b BackendConfig) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(b.NodeEnv), envProduction)
}

// APIBaseURL picks the backend: production uses the prod URL; in development
// NEXT_PUBLIC_DEV_MODE=partial selects the partial backend, anything else the v2 one.
func (b BackendConfig) APIBaseURL() string {
	if b.IsProduction() {
		return b.ProdURL
	}
	if strings.EqualFold(strings.TrimSpace(b.DevMode), devModePartial) {
		return b.DevPartialURL
	}
	return b.DevURL
}
