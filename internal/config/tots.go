package config

// TOTSConfig controls the Team of the Season voting backend.
type TOTSConfig struct {
	// UseMock swaps the remote API for a development-only local store.
	UseMock bool `envconfig:"TOTS_USE_MOCK" default:"false"`
	// MockDSN points the local store at a SQLite file; empty keeps it in memory.
	MockDSN          string `envconfig:"TOTS_MOCK_DSN"`
	ResultsDir       string `envconfig:"TOTS_RESULTS_DIR" default:"data/tots"`
	RetentionDays    int    `envconfig:"TOTS_RESULTS_RETENTION_DAYS" default:"365"`
	FinalizeHourUTC  int    `envconfig:"TOTS_FINALIZE_HOUR" default:"2"`
	FinalizerEnabled bool   `envconfig:"TOTS_FINALIZER_ENABLED" default:"true"`
}
