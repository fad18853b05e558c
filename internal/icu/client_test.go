package icu

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func testClient(srv *httptest.Server) *Client {
	return &Client{
		HTTP:    srv.Client(),
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Limiter: rate.NewLimiter(rate.Inf, 1),
		Logger:  zerolog.Nop(),
	}
}

func TestGetSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/athlete/i123/activities", r.URL.Path)
		w.Write([]byte(`[{"id": 1}]`))
	}))
	defer srv.Close()

	result, err := testClient(srv).Get(context.Background(), ActivitiesPath("i123"), nil, "")
	require.NoError(t, err)
	list, ok := result.([]any)
	require.True(t, ok)
	assert.Len(t, list, 1)
}

func TestBasicAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "API_KEY", user)
		assert.Equal(t, "override-key", pass)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).Get(context.Background(), "/athlete/i1", nil, "override-key")
	require.NoError(t, err)
}

func TestDefaultKeyWhenNoOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, pass, _ := r.BasicAuth()
		assert.Equal(t, "test-key", pass)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).Get(context.Background(), "/athlete/i1", nil, "")
	require.NoError(t, err)
}

func TestQueryParamOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "oldest=2024-01-01&newest=2024-01-31&category=SEASON_START", r.URL.RawQuery)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	params := []Param{
		{"oldest", "2024-01-01"},
		{"newest", "2024-01-31"},
		{"category", "SEASON_START"},
	}
	_, err := testClient(srv).Get(context.Background(), "/athlete/i1/events", params, "")
	require.NoError(t, err)
}

func TestRetryOnServerError(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"id": "i1"}`))
	}))
	defer srv.Close()

	result, err := testClient(srv).Get(context.Background(), "/athlete/i1", nil, "")
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	obj, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "i1", obj["id"])
}

func TestRetryOn429ThenGiveUp(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv).Get(context.Background(), "/athlete/i1", nil, "")
	require.Error(t, err)
	assert.Equal(t, maxAttempts, calls)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, KindRateLimited, apiErr.Kind)
	assert.Equal(t, 429, apiErr.Status)
}

func TestNoRetryOnNotFound(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "not found", "message": "Activity not found"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).Get(context.Background(), "/activity/999", nil, "")
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, apiErr.Kind)
	assert.Equal(t, "Activity not found", apiErr.Message)
	assert.True(t, IsNotFound(err))
}

func TestNoRetryOnAuthFailure(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := testClient(srv).Get(context.Background(), "/athlete/i1", nil, "")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, KindAuth, err.(*APIError).Kind)
}

func TestPostSendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		w.Write([]byte(`{"id": 5}`))
	}))
	defer srv.Close()

	body := map[string]any{"name": "Test", "category": "NOTE"}
	result, err := testClient(srv).Post(context.Background(), "/athlete/i1/events", body, "")
	require.NoError(t, err)
	obj := result.(map[string]any)
	assert.Equal(t, 5.0, obj["id"])
}

func TestEmptyResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	result, err := testClient(srv).Delete(context.Background(), "/athlete/i1/events/9", nil, "")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	_, err := testClient(srv).Get(context.Background(), "/athlete/i1", nil, "")
	require.Error(t, err)
	assert.Equal(t, KindDecode, err.(*APIError).Kind)
}

func TestContextCancelDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := testClient(srv).Get(ctx, "/athlete/i1", nil, "")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}
