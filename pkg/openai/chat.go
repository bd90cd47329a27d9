package openai

import (
	"Fintar/pkg/completion"
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/net/context"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderOpenAI     = "openai"

	OpenRouterBaseURL      = "https://openrouter.ai/api/v1"
	DefaultOpenRouterModel = "deepseek/deepseek-chat-v3.1:free"
	DefaultOpenAIModel     = openai.GPT4oMini
)

type Config struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
	// Referer and Title are sent as HTTP-Referer and X-Title, which
	// OpenRouter uses for attribution.
	Referer string
	Title   string
	Timeout time.Duration
}

type chatClient struct {
	client   *openai.Client
	provider string
	model    string
}

func New(cfg Config) (completion.Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("completion API key is required")
	}

	if cfg.Provider == "" {
		cfg.Provider = ProviderOpenRouter
	}
	if cfg.Model == "" {
		cfg.Model = DefaultOpenAIModel
		if cfg.Provider == ProviderOpenRouter {
			cfg.Model = DefaultOpenRouterModel
		}
	}
	if cfg.BaseURL == "" && cfg.Provider == ProviderOpenRouter {
		cfg.BaseURL = OpenRouterBaseURL
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{
		Timeout: cfg.Timeout,
		Transport: &headerTransport{
			base: http.DefaultTransport,
			headers: map[string]string{
				"HTTP-Referer": cfg.Referer,
				"X-Title":      cfg.Title,
			},
		},
	}

	return &chatClient{
		client:   openai.NewClientWithConfig(clientConfig),
		provider: cfg.Provider,
		model:    cfg.Model,
	}, nil
}

func (c *chatClient) Provider() string { return c.provider }
func (c *chatClient) Model() string    { return c.model }

func (c *chatClient) Complete(ctx context.Context, req completion.Request) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserMessage},
		},
		// A zero temperature would be dropped by omitempty.
		Temperature: math.SmallestNonzeroFloat32,
	})
	if err != nil {
		return "", c.serviceError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &completion.ServiceError{
			Provider: c.provider,
			Status:   http.StatusOK,
			Message:  "response has no choices",
			Err:      completion.ErrEmptyResponse,
		}
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", &completion.ServiceError{
			Provider: c.provider,
			Status:   http.StatusOK,
			Message:  "response has no content",
			Err:      completion.ErrEmptyResponse,
		}
	}

	return content, nil
}

func (c *chatClient) serviceError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &completion.ServiceError{
			Provider: c.provider,
			Status:   apiErr.HTTPStatusCode,
			Message:  apiErr.Message,
			Err:      err,
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		message := http.StatusText(reqErr.HTTPStatusCode)
		if reqErr.Err != nil {
			message = reqErr.Err.Error()
		}
		return &completion.ServiceError{
			Provider: c.provider,
			Status:   reqErr.HTTPStatusCode,
			Message:  message,
			Err:      err,
		}
	}

	return &completion.ServiceError{
		Provider: c.provider,
		Message:  err.Error(),
		Err:      err,
	}
}

type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, v := range t.headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}
	return t.base.RoundTrip(req)
}
