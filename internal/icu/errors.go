package icu

import "fmt"

// Kind classifies a terminal request failure.
type Kind string

const (
	KindAuth        Kind = "auth"
	KindNotFound    Kind = "not_found"
	KindRateLimited Kind = "rate_limited"
	KindUpstream    Kind = "upstream"
	KindTransport   Kind = "transport"
	KindDecode      Kind = "decode"
)

// APIError is a terminal request failure after retries are exhausted.
// Status is 0 for transport and decode failures.
type APIError struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("intervals.icu: %s (HTTP %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("intervals.icu: %s: %s", e.Kind, e.Message)
}

func kindForStatus(status int) Kind {
	switch {
	case status == 401 || status == 403:
		return KindAuth
	case status == 404:
		return KindNotFound
	case status == 429:
		return KindRateLimited
	default:
		return KindUpstream
	}
}
