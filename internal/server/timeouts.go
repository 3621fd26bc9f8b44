package server

import "time"

const (
	readTimeout = 10 * time.Second
	// writeTimeout leaves room for one backend call at the default BACKEND_TIMEOUT
	// plus the roster refetch that follows a mutation.
	writeTimeout = 25 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 15 * time.Second
