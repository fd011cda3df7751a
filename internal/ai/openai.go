package ai

import (
	"context"
	"net/http"
	"time"

	apierrors "github.com/biblestudio/bible-studio-api/internal/errors"
)

const openAIEndpoint = "https://api.openai.com/v1/chat/completions"

// OpenAIProvider calls the OpenAI chat completions endpoint. The system
// prompt travels as a separate system message.
type OpenAIProvider struct {
	apiKey     string
	opts       Options
	endpoint   string
	httpClient *http.Client
}

// NewOpenAIProvider creates an OpenAI provider.
func NewOpenAIProvider(apiKey string, opts Options) *OpenAIProvider {
	return &OpenAIProvider{
		apiKey:     apiKey,
		opts:       opts,
		endpoint:   openAIEndpoint,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string { return string(ProviderOpenAI) }

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Generate implements Provider. A missing API key fails before any
// network call.
func (p *OpenAIProvider) Generate(ctx context.Context, systemPrompt string, req Request) (*Response, error) {
	if p.apiKey == "" {
		return nil, apierrors.MissingAPIKey("OpenAI")
	}

	payload := openAIRequest{
		Model: p.opts.Model,
		Messages: []openAIMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: composeUserContent(req)},
		},
		Temperature: p.opts.temperature(req),
		MaxTokens:   p.opts.maxTokens(req),
	}

	headers := map[string]string{"Authorization": "Bearer " + p.apiKey}

	var decoded openAIResponse
	if err := postJSON(ctx, p.httpClient, p.endpoint, headers, payload, &decoded, "OpenAI"); err != nil {
		return nil, err
	}

	if len(decoded.Choices) == 0 {
		return nil, apierrors.Provider("OpenAI returned no choices")
	}

	return &Response{
		Content: decoded.Choices[0].Message.Content,
		Usage: &Usage{
			PromptTokens:     decoded.Usage.PromptTokens,
			CompletionTokens: decoded.Usage.CompletionTokens,
			TotalTokens:      decoded.Usage.TotalTokens,
		},
	}, nil
}
