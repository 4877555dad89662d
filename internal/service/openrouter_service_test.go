package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentmatch/backend/internal/config"
	"go.uber.org/zap"
)

func testLLMConfig(baseURL string) *config.LLMConfig {
	return &config.LLMConfig{
		Provider:    "openrouter",
		APIKey:      "test-key",
		BaseURL:     baseURL,
		Model:       "deepseek-chat",
		Temperature: 0.3,
		TopP:        0.9,
		MaxTokens:   1000,
		Timeout:     2 * time.Second,
	}
}

func TestCompleteReturnsMessageContent(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)

		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"fields\":[]}"}}]}`))
	}))
	defer server.Close()

	svc := NewOpenRouterService(testLLMConfig(server.URL), zap.NewNop())
	content, err := svc.Complete(context.Background(), "system prompt", "user text")

	require.NoError(t, err)
	assert.Equal(t, `{"fields":[]}`, content)

	// Fixed sampling parameters go out on every call.
	assert.Equal(t, "deepseek-chat", gotBody["model"])
	assert.InDelta(t, 0.3, gotBody["temperature"], 0.001)
	assert.InDelta(t, 0.9, gotBody["top_p"], 0.001)
	assert.InDelta(t, 1000, gotBody["max_tokens"], 0.001)
	assert.Equal(t, false, gotBody["stream"])
	respFormat, ok := gotBody["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_object", respFormat["type"])

	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
}

func TestCompleteFailsOnNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer server.Close()

	svc := NewOpenRouterService(testLLMConfig(server.URL), zap.NewNop())
	_, err := svc.Complete(context.Background(), "s", "u")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestCompleteFailsOnEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	svc := NewOpenRouterService(testLLMConfig(server.URL), zap.NewNop())
	_, err := svc.Complete(context.Background(), "s", "u")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content")
}

func TestCompleteFailsWhenServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	svc := NewOpenRouterService(testLLMConfig(server.URL), zap.NewNop())
	_, err := svc.Complete(context.Background(), "s", "u")

	require.Error(t, err)
}
