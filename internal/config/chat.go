package config

import (
	"Fintar/internal/api/chat"
	"Fintar/pkg/completion"
	"Fintar/pkg/gemini"
	"Fintar/pkg/openai"
	"Fintar/pkg/redis"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// LoadChatConfig reads the chat settings once at startup. Unset variables
// keep their defaults.
func LoadChatConfig(validate *validator.Validate) (chat.Config, error) {
	cfg := chat.DefaultConfig()

	if v := os.Getenv("CHAT_AUTO_EXPENSE"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("CHAT_AUTO_EXPENSE: %w", err)
		}
		cfg.AutoExpenseDefault = enabled
	}
	if v := os.Getenv("COMPLETION_PROVIDER"); v != "" {
		cfg.CompletionProvider = strings.ToLower(v)
	}
	cfg.CompletionModel = os.Getenv("COMPLETION_MODEL")
	if v := os.Getenv("APP_TIMEZONE"); v != "" {
		cfg.Timezone = v
	}

	durations := []struct {
		env string
		dst *time.Duration
	}{
		{"COMPLETION_TIMEOUT", &cfg.CompletionTimeout},
		{"COMPLETION_CACHE_TTL", &cfg.CacheTTL},
		{"CHAT_REQUEST_TIMEOUT", &cfg.RequestTimeout},
	}
	for _, d := range durations {
		v := os.Getenv(d.env)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", d.env, err)
		}
		*d.dst = parsed
	}

	if v := os.Getenv("ADVISORY_EXPENSE_THRESHOLD"); v != "" {
		threshold, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("ADVISORY_EXPENSE_THRESHOLD: %w", err)
		}
		cfg.AdvisoryExpenseThreshold = threshold
	}

	if err := validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid chat config: %w", err)
	}

	return cfg, nil
}

// NewCompletionClient builds the client for the configured provider and wraps
// it with the reply cache when a cache and a positive TTL are given. A
// missing API key yields a nil client.
func NewCompletionClient(ctx context.Context, cfg chat.Config, cache redis.ICache, log *logrus.Logger) (completion.Client, error) {
	var (
		client completion.Client
		err    error
	)

	switch cfg.CompletionProvider {
	case gemini.Provider:
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			log.Warn("GEMINI_API_KEY is not set, completion fallback disabled")
			return nil, nil
		}
		client, err = gemini.NewGeminiClient(ctx, apiKey, cfg.CompletionModel)

	case openai.ProviderOpenAI, openai.ProviderOpenRouter:
		keyEnv := "OPENROUTER_API_KEY"
		if cfg.CompletionProvider == openai.ProviderOpenAI {
			keyEnv = "OPENAI_API_KEY"
		}
		apiKey := os.Getenv(keyEnv)
		if apiKey == "" {
			log.Warnf("%s is not set, completion fallback disabled", keyEnv)
			return nil, nil
		}

		title := os.Getenv("APP_NAME")
		if title == "" {
			title = "Fintar"
		}
		client, err = openai.New(openai.Config{
			Provider: cfg.CompletionProvider,
			APIKey:   apiKey,
			BaseURL:  os.Getenv("COMPLETION_BASE_URL"),
			Model:    cfg.CompletionModel,
			Referer:  os.Getenv("APP_URL"),
			Title:    title,
			Timeout:  cfg.CompletionTimeout,
		})

	default:
		return nil, fmt.Errorf("unknown completion provider %q", cfg.CompletionProvider)
	}
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"provider": client.Provider(),
		"model":    client.Model(),
	}).Info("Completion client ready")

	if cache != nil && cfg.CacheTTL > 0 {
		client = completion.NewCachedClient(client, cache, cfg.CacheTTL, log)
	}

	return client, nil
}
