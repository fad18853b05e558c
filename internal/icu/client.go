// Package icu is the Intervals.icu REST client: auth, retries, rate limiting
// and error classification live here so the tool layer only deals with
// decoded JSON.
package icu

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"intervals-mcp/internal/observability"
)

const (
	// Intervals.icu authenticates with HTTP Basic where the username is the
	// literal string "API_KEY" and the password is the key itself.
	basicAuthUser = "API_KEY"

	maxAttempts = 4
	retryBase   = 250 * time.Millisecond
	retryCap    = 4 * time.Second
	clientName  = "intervals-mcp/1.0"
)

// Param is one query parameter. Params preserve insertion order so request
// URLs are reproducible.
type Param struct {
	Key   string
	Value string
}

func encodeParams(params []Param) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

type Client struct {
	HTTP    *http.Client
	BaseURL string
	APIKey  string
	Limiter *rate.Limiter
	Logger  zerolog.Logger
}

func NewClient(apiKey string, logger zerolog.Logger) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		BaseURL: "https://intervals.icu/api/v1",
		APIKey:  apiKey,
		Limiter: rate.NewLimiter(rate.Limit(10), 10),
		Logger:  logger,
	}
}

// Get fetches path and decodes the JSON response. An empty apiKey falls back
// to the client default.
func (c *Client) Get(ctx context.Context, path string, params []Param, apiKey string) (any, error) {
	return c.Do(ctx, http.MethodGet, path, params, nil, apiKey)
}

func (c *Client) Post(ctx context.Context, path string, body any, apiKey string) (any, error) {
	return c.Do(ctx, http.MethodPost, path, nil, body, apiKey)
}

func (c *Client) Put(ctx context.Context, path string, body any, apiKey string) (any, error) {
	return c.Do(ctx, http.MethodPut, path, nil, body, apiKey)
}

func (c *Client) Delete(ctx context.Context, path string, params []Param, apiKey string) (any, error) {
	return c.Do(ctx, http.MethodDelete, path, params, nil, apiKey)
}

// Do performs one logical request with retries. 429 and 5xx responses and
// connection errors are retried with exponential backoff and jitter; other
// failures are terminal and come back as *APIError.
func (c *Client) Do(ctx context.Context, method, path string, params []Param, body any, apiKey string) (any, error) {
	if apiKey == "" {
		apiKey = c.APIKey
	}

	fullURL := c.BaseURL + path
	if len(params) > 0 {
		fullURL += "?" + encodeParams(params)
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, &APIError{Kind: KindDecode, Message: fmt.Sprintf("encode request body: %v", err)}
		}
	}

	requestID := uuid.NewString()
	start := time.Now()

	var lastErr *APIError
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx); err != nil {
				return nil, &APIError{Kind: KindTransport, Message: err.Error()}
			}
		}

		result, apiErr := c.attempt(ctx, method, fullURL, payload, apiKey, requestID)
		c.Logger.Debug().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Int("attempt", attempt).
			Err(errOrNil(apiErr)).
			Msg("api request")

		if apiErr == nil {
			observability.ObserveRequest(method, "ok", time.Since(start))
			return result, nil
		}
		lastErr = apiErr

		if !retryable(apiErr) || attempt == maxAttempts {
			break
		}
		if err := sleepBackoff(ctx, attempt); err != nil {
			return nil, &APIError{Kind: KindTransport, Message: err.Error()}
		}
	}

	observability.ObserveRequest(method, string(lastErr.Kind), time.Since(start))
	c.Logger.Warn().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Int("status", lastErr.Status).
		Str("kind", string(lastErr.Kind)).
		Msg("api request failed")
	return nil, lastErr
}

func (c *Client) attempt(ctx context.Context, method, fullURL string, payload []byte, apiKey, requestID string) (any, *APIError) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, &APIError{Kind: KindTransport, Message: err.Error()}
	}
	req.SetBasicAuth(basicAuthUser, apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", clientName)
	req.Header.Set("X-Request-Id", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &APIError{Kind: KindTransport, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Kind: KindTransport, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Kind:    kindForStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: errorMessage(raw, resp.StatusCode),
		}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &APIError{Kind: KindDecode, Message: fmt.Sprintf("decode response: %v", err)}
	}
	return decoded, nil
}

// errorMessage pulls a human-readable message out of an error response body.
func errorMessage(raw []byte, status int) string {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err == nil {
		for _, key := range []string{"message", "error"} {
			if s, ok := body[key].(string); ok && s != "" {
				return s
			}
		}
	}
	if msg := strings.TrimSpace(string(raw)); msg != "" && len(msg) < 200 {
		return msg
	}
	return http.StatusText(status)
}

func retryable(e *APIError) bool {
	if e.Kind == KindTransport {
		return true
	}
	return e.Status == 429 || e.Status >= 500
}

func sleepBackoff(ctx context.Context, attempt int) error {
	delay := retryBase << (attempt - 1)
	if delay > retryCap {
		delay = retryCap
	}
	// ±50% jitter
	jittered := time.Duration(float64(delay) * (0.5 + rand.Float64()))
	timer := time.NewTimer(jittered)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func errOrNil(e *APIError) error {
	if e == nil {
		return nil
	}
	return e
}

// IsNotFound reports whether err is a terminal 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}
