package backend

import "time"

const (
	defaultHTTPTimeout  = 10 * time.Second
	defaultRetryBackoff = 200 * time.Millisecond
	maxResponseBytes    = 4 << 20

	msgNetworkFailure    = "Unable to reach the server. Please try again."
	msgUnexpectedPayload = "Unexpected response from the server."
)
