package anthropic_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warmlinehq/warmline"
	"github.com/warmlinehq/warmline/anthropic"
)

func TestCompleter_Complete(t *testing.T) {
	t.Parallel()

	t.Run("returns completion text", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/messages", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
			assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, anthropic.DefaultModel, req["model"])
			assert.Equal(t, float64(anthropic.DefaultMaxTokens), req["max_tokens"])

			_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"[]"}],"stop_reason":"end_turn"}`))
		}))
		defer server.Close()

		completer := anthropic.NewCompleter("test-key", anthropic.WithBaseURL(server.URL))
		comp, err := completer.Complete(context.Background(), "find people")
		require.NoError(t, err)
		assert.Equal(t, "[]", comp.Text)
		assert.False(t, comp.Truncated)
	})

	t.Run("concatenates text blocks", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"[{\"name\":"},{"type":"text","text":"\"Ada\"}]"}],"stop_reason":"end_turn"}`))
		}))
		defer server.Close()

		completer := anthropic.NewCompleter("test-key", anthropic.WithBaseURL(server.URL))
		comp, err := completer.Complete(context.Background(), "find people")
		require.NoError(t, err)
		assert.Equal(t, `[{"name":"Ada"}]`, comp.Text)
	})

	t.Run("flags truncated responses", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"[{\"name\":\"A"}],"stop_reason":"max_tokens"}`))
		}))
		defer server.Close()

		completer := anthropic.NewCompleter("test-key", anthropic.WithBaseURL(server.URL))
		comp, err := completer.Complete(context.Background(), "find people")
		require.NoError(t, err)
		assert.True(t, comp.Truncated)
	})

	t.Run("returns ECOMPLETION with status for non-200", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_error"}}`))
		}))
		defer server.Close()

		completer := anthropic.NewCompleter("test-key", anthropic.WithBaseURL(server.URL))
		_, err := completer.Complete(context.Background(), "find people")
		require.Error(t, err)
		assert.Equal(t, warmline.ECOMPLETION, warmline.ErrorCode(err))
		assert.Contains(t, warmline.ErrorMessage(err), "429")
	})

	t.Run("returns ECOMPLETION for empty content", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"content":[],"stop_reason":"end_turn"}`))
		}))
		defer server.Close()

		completer := anthropic.NewCompleter("test-key", anthropic.WithBaseURL(server.URL))
		_, err := completer.Complete(context.Background(), "find people")
		require.Error(t, err)
		assert.Equal(t, warmline.ECOMPLETION, warmline.ErrorCode(err))
	})

	t.Run("returns ECONFIG without network call when key missing", func(t *testing.T) {
		t.Parallel()

		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		completer := anthropic.NewCompleter("", anthropic.WithBaseURL(server.URL))
		_, err := completer.Complete(context.Background(), "find people")
		require.Error(t, err)
		assert.Equal(t, warmline.ECONFIG, warmline.ErrorCode(err))
		assert.False(t, called)
	})
}
