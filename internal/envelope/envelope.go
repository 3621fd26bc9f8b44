// Package envelope implements the {code, message, data} response convention
// shared by the remote backend and this service's own HTTP surface.
package envelope

import (
	"encoding/json"
	"strings"
)

const (
	CodeSuccess = "00"
	CodeFailure = "99"
)

// Response is the uniform envelope. Data is only meaningful when Code is CodeSuccess.
type Response[T any] struct {
	Code    string
	Message string
	Data    T
}

// OK builds a success envelope.
func OK[T any](message string, data T) Response[T] {
	return Response[T]{Code: CodeSuccess, Message: message, Data: data}
}

// Failure builds a failure envelope; data always serializes as null.
func Failure[T any](message string) Response[T] {
	if strings.TrimSpace(message) == "" {
		message = "request failed"
	}
	return Response[T]{Code: CodeFailure, Message: message}
}

// Success reports whether the envelope carries code "00".
func (r Response[T]) Success() bool {
	return r.Code == CodeSuccess
}

type wire struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// MarshalJSON writes data:null for failures regardless of T.
func (r Response[T]) MarshalJSON() ([]byte, error) {
	out := wire{Code: r.Code, Message: r.Message, Data: json.RawMessage("null")}
	if r.Success() {
		data, err := json.Marshal(r.Data)
		if err != nil {
			return nil, err
		}
		out.Data = data
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts numeric or string codes and tolerates a missing data field.
// Any code other than "00" is normalized to "99".
func (r *Response[T]) UnmarshalJSON(b []byte) error {
	var raw struct {
		Code    json.RawMessage `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	r.Message = raw.Message
	r.Code = CodeFailure
	if normalizeCode(raw.Code) == CodeSuccess {
		r.Code = CodeSuccess
	}

	var zero T
	r.Data = zero
	if r.Success() && len(raw.Data) > 0 && string(raw.Data) != "null" {
		if err := json.Unmarshal(raw.Data, &r.Data); err != nil {
			return err
		}
	}
	return nil
}

func normalizeCode(raw json.RawMessage) string {
	code := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if code == "0" {
		return CodeSuccess
	}
	return code
}

// Map converts a success payload to another type, keeping code and message.
func Map[T, U any](r Response[T], fn func(T) U) Response[U] {
	if !r.Success() {
		return Failure[U](r.Message)
	}
	return OK(r.Message, fn(r.Data))
}
