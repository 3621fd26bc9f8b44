package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/football-admin-service/internal/envelope"
	"github.com/preston-bernstein/football-admin-service/internal/logging"
	"github.com/preston-bernstein/football-admin-service/internal/metrics"
)

// Config controls how the client reaches the sports backend.
type Config struct {
	BaseURL     string
	HTTPClient  *http.Client
	Timeout     time.Duration
	ReadRetries int
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
}

// Client issues one HTTP call per exported function and always answers with an
// envelope: transport and decoding failures become code "99".
type Client struct {
	baseURL     string
	httpClient  httpDoer
	readRetries int
	newBackOff  func() backoff.BackOff
	logger      *slog.Logger
	metrics     *metrics.Recorder
}

// NewClient constructs a backend client with the provided configuration.
func NewClient(cfg Config) *Client {
	retries := cfg.ReadRetries
	if retries < 0 {
		retries = 0
	}
	return &Client{
		baseURL:     normalizeBaseURL(cfg.BaseURL),
		httpClient:  resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		readRetries: retries,
		newBackOff:  defaultBackOff,
		logger:      cfg.Logger,
		metrics:     cfg.Metrics,
	}
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = defaultRetryBackoff
	return b
}

// Ack is the payload of calls whose data is irrelevant (deletes, resends).
type Ack = struct{}

type request struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
}

// statusError marks a 5xx answer so reads can be retried; the body is kept so the
// final attempt's message still reaches the caller.
type statusError struct {
	status  int
	payload []byte
}

func (e *statusError) Error() string {
	return fmt.Sprintf("backend: status %d", e.status)
}

func call[T any](ctx context.Context, c *Client, r request) envelope.Response[T] {
	start := time.Now()
	status, payload, err := c.roundTrip(ctx, r)
	result := decode[T](status, payload, err)
	c.observe(ctx, r, time.Since(start), result.Code, result.Message, status, err)
	return result
}

func decode[T any](status int, payload []byte, err error) envelope.Response[T] {
	if err != nil {
		return envelope.Failure[T](msgNetworkFailure)
	}

	var resp envelope.Response[T]
	if jsonErr := json.Unmarshal(payload, &resp); jsonErr != nil {
		if status >= http.StatusBadRequest {
			return envelope.Failure[T](fmt.Sprintf("Request failed with status %d.", status))
		}
		return envelope.Failure[T](msgUnexpectedPayload)
	}
	if status >= http.StatusBadRequest && resp.Success() {
		return envelope.Failure[T](resp.Message)
	}
	return resp
}

func (c *Client) roundTrip(ctx context.Context, r request) (int, []byte, error) {
	if r.method != http.MethodGet || c.readRetries == 0 {
		return c.do(ctx, r)
	}

	var (
		status  int
		payload []byte
	)
	operation := func() error {
		s, p, err := c.do(ctx, r)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		if s >= http.StatusInternalServerError {
			return &statusError{status: s, payload: p}
		}
		status, payload = s, p
		return nil
	}
	notify := func(err error, delay time.Duration) {
		c.metrics.RecordBackendRetry(r.op)
		logging.Debug(logging.FromContext(ctx, c.logger), "backend read retry",
			slog.String(logging.FieldOperation, r.op),
			slog.Int64(logging.FieldDurationMS, delay.Milliseconds()),
			slog.Any("error", err),
		)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), uint64(c.readRetries)), ctx)
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		var se *statusError
		if errors.As(err, &se) {
			return se.status, se.payload, nil
		}
		return 0, nil, err
	}
	return status, payload, nil
}

func (c *Client) do(ctx context.Context, r request) (int, []byte, error) {
	req, err := c.buildRequest(ctx, r)
	if err != nil {
		return 0, nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, payload, nil
}

func (c *Client) buildRequest(ctx context.Context, r request) (*http.Request, error) {
	var body io.Reader
	if r.body != nil {
		encoded, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("backend: encode %s body: %w", r.op, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, body)
	if err != nil {
		return nil, err
	}
	if len(r.query) > 0 {
		req.URL.RawQuery = r.query.Encode()
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	CredentialsFrom(ctx).apply(req)
	return req, nil
}

func (c *Client) observe(ctx context.Context, r request, duration time.Duration, code, message string, status int, err error) {
	failed := code != envelope.CodeSuccess
	c.metrics.RecordBackendCall(r.op, duration, failed)
	if !failed {
		return
	}
	logger := logging.FromContext(ctx, c.logger)
	args := []any{
		slog.String(logging.FieldOperation, r.op),
		slog.String(logging.FieldMethod, r.method),
		slog.String(logging.FieldPath, r.path),
		slog.String("message", message),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	}
	if status > 0 {
		args = append(args, slog.Int(logging.FieldStatusCode, status))
	}
	if err != nil {
		args = append(args, slog.Any("error", err))
	}
	logging.Warn(logger, "backend call failed", args...)
}

func queryOf(pairs ...string) url.Values {
	q := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			q.Set(pairs[i], pairs[i+1])
		}
	}
	return q
}
