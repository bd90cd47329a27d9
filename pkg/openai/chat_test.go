package openai

import (
	"Fintar/pkg/completion"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

const okBody = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1760000000,
  "model": "test-model",
  "choices": [{"index": 0, "message": {"role": "assistant", "content": "  {\"hasTransactions\": false, \"message\": \"hai\"}  "}, "finish_reason": "stop"}]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) completion.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{
		Provider: ProviderOpenRouter,
		APIKey:   "test-key",
		BaseURL:  srv.URL,
		Model:    "test-model",
		Referer:  "https://fintar.test",
		Title:    "Fintar",
		Timeout:  5 * time.Second,
	})
	require.NoError(t, err)
	return client
}

func TestCompleteSendsPromptAndHeaders(t *testing.T) {
	var (
		got     map[string]interface{}
		headers http.Header
	)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		headers = r.Header.Clone()
		body, _ := io.ReadAll(r.Body)
		_ = jsoniter.Unmarshal(body, &got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, okBody)
	})

	reply, err := client.Complete(context.Background(), completion.Request{
		SystemPrompt: "system",
		UserMessage:  "halo",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"hasTransactions": false, "message": "hai"}`, reply)

	assert.Equal(t, "Bearer test-key", headers.Get("Authorization"))
	assert.Equal(t, "https://fintar.test", headers.Get("HTTP-Referer"))
	assert.Equal(t, "Fintar", headers.Get("X-Title"))

	assert.Equal(t, "test-model", got["model"])
	messages, ok := got["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]interface{})["role"])
	assert.Equal(t, "halo", messages[1].(map[string]interface{})["content"])
}

func TestCompleteMapsAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error": {"message": "quota exceeded", "type": "rate_limit_error", "code": "rate_limit"}}`)
	})

	_, err := client.Complete(context.Background(), completion.Request{SystemPrompt: "s", UserMessage: "u"})
	require.Error(t, err)

	var svcErr *completion.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, ProviderOpenRouter, svcErr.Provider)
	assert.Equal(t, http.StatusTooManyRequests, svcErr.Status)
	assert.Equal(t, "quota exceeded", svcErr.Message)
	assert.NotContains(t, err.Error(), "test-key")
}

func TestCompleteEmptyContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id": "x", "object": "chat.completion", "model": "m", "choices": [{"index": 0, "message": {"role": "assistant", "content": "  "}}]}`)
	})

	_, err := client.Complete(context.Background(), completion.Request{SystemPrompt: "s", UserMessage: "u"})
	assert.ErrorIs(t, err, completion.ErrEmptyResponse)
}

func TestNewDefaults(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)

	client, err := New(Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenRouter, client.Provider())
	assert.Equal(t, DefaultOpenRouterModel, client.Model())

	client, err = New(Config{APIKey: "k", Provider: ProviderOpenAI})
	require.NoError(t, err)
	assert.Equal(t, DefaultOpenAIModel, client.Model())
}
