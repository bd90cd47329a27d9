package config

import (
	"Fintar/internal/api/chat"
	"Fintar/pkg/openai"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

func TestLoadChatConfigDefaults(t *testing.T) {
	for _, env := range []string{
		"CHAT_AUTO_EXPENSE", "COMPLETION_PROVIDER", "COMPLETION_MODEL", "APP_TIMEZONE",
		"COMPLETION_TIMEOUT", "COMPLETION_CACHE_TTL", "CHAT_REQUEST_TIMEOUT", "ADVISORY_EXPENSE_THRESHOLD",
	} {
		t.Setenv(env, "")
	}

	cfg, err := LoadChatConfig(NewValidator())
	require.NoError(t, err)
	assert.Equal(t, chat.DefaultConfig(), cfg)
}

func TestLoadChatConfigOverrides(t *testing.T) {
	t.Setenv("CHAT_AUTO_EXPENSE", "true")
	t.Setenv("COMPLETION_PROVIDER", "Gemini")
	t.Setenv("COMPLETION_MODEL", "gemini-1.5-flash")
	t.Setenv("APP_TIMEZONE", "Asia/Makassar")
	t.Setenv("COMPLETION_TIMEOUT", "10s")
	t.Setenv("COMPLETION_CACHE_TTL", "0s")
	t.Setenv("CHAT_REQUEST_TIMEOUT", "1m")
	t.Setenv("ADVISORY_EXPENSE_THRESHOLD", "5000000")

	cfg, err := LoadChatConfig(NewValidator())
	require.NoError(t, err)

	assert.True(t, cfg.AutoExpenseDefault)
	assert.Equal(t, "gemini", cfg.CompletionProvider)
	assert.Equal(t, "gemini-1.5-flash", cfg.CompletionModel)
	assert.Equal(t, "Asia/Makassar", cfg.Timezone)
	assert.Equal(t, 10*time.Second, cfg.CompletionTimeout)
	assert.Zero(t, cfg.CacheTTL)
	assert.Equal(t, time.Minute, cfg.RequestTimeout)
	assert.EqualValues(t, 5_000_000, cfg.AdvisoryExpenseThreshold)
}

func TestLoadChatConfigRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"CHAT_AUTO_EXPENSE":          "maybe",
		"COMPLETION_TIMEOUT":         "soon",
		"ADVISORY_EXPENSE_THRESHOLD": "10jt",
		"COMPLETION_PROVIDER":        "anthropic",
	}
	for env, value := range cases {
		t.Run(env, func(t *testing.T) {
			t.Setenv(env, value)
			_, err := LoadChatConfig(NewValidator())
			assert.Error(t, err)
		})
	}
}

func TestNewCompletionClientWithoutKey(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	t.Setenv("OPENROUTER_API_KEY", "")
	cfg := chat.DefaultConfig()
	client, err := NewCompletionClient(context.Background(), cfg, nil, logger)
	require.NoError(t, err)
	assert.Nil(t, client)

	cfg.CompletionProvider = "unknown"
	_, err = NewCompletionClient(context.Background(), cfg, nil, logger)
	assert.Error(t, err)
}

func TestNewCompletionClientOpenRouter(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	t.Setenv("OPENROUTER_API_KEY", "sk-test")
	cfg := chat.DefaultConfig()
	client, err := NewCompletionClient(context.Background(), cfg, nil, logger)
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, openai.ProviderOpenRouter, client.Provider())
	assert.Equal(t, openai.DefaultOpenRouterModel, client.Model())
}
