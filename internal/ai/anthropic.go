package ai

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	apierrors "github.com/biblestudio/bible-studio-api/internal/errors"
)

// AnthropicProvider calls the Anthropic Messages API through the
// official SDK. The API takes the system prompt as a separate field.
type AnthropicProvider struct {
	client anthropic.Client
	opts   Options
	hasKey bool
}

// NewAnthropicProvider creates an Anthropic provider.
func NewAnthropicProvider(apiKey string, opts Options) *AnthropicProvider {
	return &AnthropicProvider{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		opts:   opts,
		hasKey: apiKey != "",
	}
}

// Name implements Provider.
func (p *AnthropicProvider) Name() string { return string(ProviderAnthropic) }

// Generate implements Provider. A missing API key fails before any
// network call.
func (p *AnthropicProvider) Generate(ctx context.Context, systemPrompt string, req Request) (*Response, error) {
	if !p.hasKey {
		return nil, apierrors.MissingAPIKey("Anthropic")
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(p.opts.Model),
		MaxTokens:   int64(p.opts.maxTokens(req)),
		Temperature: anthropic.Float(p.opts.temperature(req)),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(composeUserContent(req))),
		},
	}

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, apierrors.Provider(fmt.Sprintf("Anthropic: %v", err))
	}

	if len(message.Content) == 0 {
		return nil, apierrors.Provider("Anthropic returned no content blocks")
	}
	block := message.Content[0]
	if block.Type != "text" {
		return nil, apierrors.Provider(fmt.Sprintf("Anthropic returned a non-text block (type=%s)", block.Type))
	}

	return &Response{
		Content: block.Text,
		Usage: &Usage{
			PromptTokens:     int(message.Usage.InputTokens),
			CompletionTokens: int(message.Usage.OutputTokens),
			TotalTokens:      int(message.Usage.InputTokens + message.Usage.OutputTokens),
		},
	}, nil
}
