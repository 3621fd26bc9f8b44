package config

import "time"

const (
	envLivePollInterval = "LIVE_POLL_INTERVAL"
	envBackendTimeout   = "BACKEND_TIMEOUT"

	envNodeEnv    = "NODE_ENV"
	envProdAPIURL = "NEXT_PUBLIC_PROD_API_URL"

	// Live admin screens refresh roughly twice a minute.
	defaultLivePollInterval = 30 * Duration(time.Second)
	defaultBackendTimeout   = 10 * Duration(time.Second)

	envProduction  = "production"
	devModePartial = "partial"
)
