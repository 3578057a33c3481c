package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotaskboard/internal/board/adapters/rest"
	restPort "gotaskboard/internal/board/ports/rest"
	"gotaskboard/internal/board/resilience"
)

// newTestClient создает клиент с короткими таймаутами для тестов.
func newTestClient(t *testing.T) *rest.Client {
	t.Helper()
	return rest.NewClient(rest.Options{
		Timeout:    time.Second,
		MaxRetries: 3,
		Backoff:    10 * time.Millisecond,
	})
}

func TestClient_Request_Success(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t)
	body, err := client.Request(context.Background(), restPort.RequestOptions{
		Method: http.MethodGet,
		URL:    server.URL,
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
	assert.Equal(t, int32(1), attempts.Load(), "no retry on success")
}

func TestClient_Request_DefaultHeadersAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "custom-value", r.Header.Get("X-Custom"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "hello", payload["title"])

		_, _ = w.Write([]byte(`{"done":true}`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t)
	_, err := client.Request(context.Background(), restPort.RequestOptions{
		Method:  http.MethodPost,
		URL:     server.URL,
		Headers: map[string]string{"X-Custom": "custom-value"},
		Body:    map[string]string{"title": "hello"},
	})

	require.NoError(t, err)
}

func TestClient_Request_StatusErrorIsNotRetried(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t)
	_, err := client.Request(context.Background(), restPort.RequestOptions{
		Method: http.MethodGet,
		URL:    server.URL,
	})

	require.Error(t, err)

	var statusErr *restPort.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Status)
	assert.Equal(t, server.URL, statusErr.URL)
	assert.Equal(t, int32(1), attempts.Load(), "non-2xx must not be retried")
	assert.NotErrorIs(t, err, resilience.ErrRetriesExhausted)
}

func TestClient_Request_ServerErrorIsNotRetried(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t)
	_, err := client.Request(context.Background(), restPort.RequestOptions{
		Method: http.MethodGet,
		URL:    server.URL,
	})

	var statusErr *restPort.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Status)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestClient_Request_RetriesNetworkFailure(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			// Обрыв соединения имитирует транспортный сбой.
			hijacker, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hijacker.Hijack()
			require.NoError(t, err)
			_ = conn.Close()
			return
		}
		_, _ = w.Write([]byte(`{"recovered":true}`))
	}))
	t.Cleanup(server.Close)

	backoff := 10 * time.Millisecond
	client := rest.NewClient(rest.Options{
		Timeout:    time.Second,
		MaxRetries: 3,
		Backoff:    backoff,
	})

	started := time.Now()
	body, err := client.Request(context.Background(), restPort.RequestOptions{
		Method: http.MethodGet,
		URL:    server.URL,
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"recovered":true}`, string(body))
	assert.Equal(t, int32(3), attempts.Load())
	assert.GreaterOrEqual(t, time.Since(started), 2*backoff)
}

func TestClient_Request_ExhaustsRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	client := rest.NewClient(rest.Options{
		Timeout:    time.Second,
		MaxRetries: 2,
		Backoff:    time.Millisecond,
	})

	_, err := client.Request(context.Background(), restPort.RequestOptions{
		Method: http.MethodGet,
		URL:    url,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, resilience.ErrRetriesExhausted)
	assert.ErrorIs(t, err, restPort.ErrNetworkFailure)
}

func TestClient_Request_TimeoutIsClassified(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	client := rest.NewClient(rest.Options{
		Timeout:    50 * time.Millisecond,
		MaxRetries: 1,
		Backoff:    time.Millisecond,
	})

	_, err := client.Request(context.Background(), restPort.RequestOptions{
		Method: http.MethodGet,
		URL:    server.URL,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, restPort.ErrTimeout)
	assert.NotErrorIs(t, err, restPort.ErrNetworkFailure)
}

func TestClient_Request_PerCallNoRetry(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		hijacker, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, _, err := hijacker.Hijack()
		require.NoError(t, err)
		_ = conn.Close()
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t)
	_, err := client.Request(context.Background(), restPort.RequestOptions{
		Method:     http.MethodGet,
		URL:        server.URL,
		MaxRetries: restPort.NoRetry,
	})

	require.Error(t, err)
	assert.Equal(t, int32(1), attempts.Load(), "per-call NoRetry must disable retries")
}

func TestClient_Request_CanceledContextIsNotRetried(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
	}))
	t.Cleanup(server.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(t)
	_, err := client.Request(ctx, restPort.RequestOptions{
		Method: http.MethodGet,
		URL:    server.URL,
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, restPort.ErrNetworkFailure)
	assert.NotErrorIs(t, err, restPort.ErrTimeout)
}

func TestIsTransient(t *testing.T) {
	assert.True(t, restPort.IsTransient(restPort.ErrTimeout))
	assert.True(t, restPort.IsTransient(restPort.ErrNetworkFailure))
	assert.False(t, restPort.IsTransient(&restPort.StatusError{Status: 404}))
	assert.False(t, restPort.IsTransient(context.Canceled))
}
