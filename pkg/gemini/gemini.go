package gemini

import (
	"Fintar/pkg/completion"
	"errors"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/net/context"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	Provider     = "gemini"
	DefaultModel = "gemini-1.5-flash"
)

type geminiClient struct {
	modelName string
	client    *genai.Client
}

func NewGeminiClient(ctx context.Context, apiKey string, modelName string) (completion.Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	if modelName == "" {
		modelName = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		modelName: modelName,
		client:    client,
	}, nil
}

func (g *geminiClient) Provider() string { return Provider }
func (g *geminiClient) Model() string    { return g.modelName }

func (g *geminiClient) Complete(ctx context.Context, req completion.Request) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SetTemperature(0)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(req.SystemPrompt)},
	}

	res, err := model.GenerateContent(ctx, genai.Text(req.UserMessage))
	if err != nil {
		return "", serviceError(err)
	}

	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return "", &completion.ServiceError{
			Provider: Provider,
			Status:   http.StatusOK,
			Message:  "no candidates in response",
			Err:      completion.ErrEmptyResponse,
		}
	}

	var sb strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	content := strings.TrimSpace(sb.String())
	if content == "" {
		return "", &completion.ServiceError{
			Provider: Provider,
			Status:   http.StatusOK,
			Message:  "response has no text parts",
			Err:      completion.ErrEmptyResponse,
		}
	}

	return content, nil
}

func (g *geminiClient) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func serviceError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &completion.ServiceError{
			Provider: Provider,
			Status:   apiErr.Code,
			Message:  apiErr.Message,
			Err:      err,
		}
	}

	return &completion.ServiceError{
		Provider: Provider,
		Message:  err.Error(),
		Err:      err,
	}
}
