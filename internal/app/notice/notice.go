// Package notice carries user-facing success/error messages produced by
// mutating operations.
package notice

import "github.com/preston-bernstein/football-admin-service/internal/envelope"

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notice is a short message shown to the admin after an action.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func Success(message string) Notice { return Notice{Kind: KindSuccess, Message: message} }

func Error(message string) Notice { return Notice{Kind: KindError, Message: message} }

// FromEnvelope maps "00" to success and anything else to error. fallback is
// used when the backend sent no message.
func FromEnvelope[T any](resp envelope.Response[T], fallback string) Notice {
	msg := resp.Message
	if msg == "" {
		msg = fallback
	}
	if resp.Success() {
		return Success(msg)
	}
	return Error(msg)
}

// OK reports whether n is a success notice.
func (n Notice) OK() bool { return n.Kind == KindSuccess }
