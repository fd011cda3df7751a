// Package ai provides a uniform request/response abstraction over
// interchangeable AI backends. Providers handle transport and response
// normalization only; they never interpret content.
package ai

import (
	"context"
	"fmt"
	"strings"
)

// Request is a single generation request. Zero MaxTokens or Temperature
// means "use the provider's configured default".
type Request struct {
	Prompt      string
	Context     string
	MaxTokens   int
	Temperature float64
}

// Usage reports token counts when the backend returns them.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is a normalized generation result.
type Response struct {
	Content string `json:"content"`
	Usage   *Usage `json:"usage,omitempty"`
}

// Provider is one AI backend. The system prompt is passed per call
// because it is sourced from the prompt store, never hard-coded.
type Provider interface {
	Name() string
	Generate(ctx context.Context, systemPrompt string, req Request) (*Response, error)
}

// Options carries the generation parameters shared by every provider.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

func (o Options) temperature(req Request) float64 {
	if req.Temperature > 0 {
		return req.Temperature
	}
	return o.Temperature
}

func (o Options) maxTokens(req Request) int {
	if req.MaxTokens > 0 {
		return req.MaxTokens
	}
	return o.MaxTokens
}

// ProviderKind tags the provider variants.
type ProviderKind string

const (
	ProviderGoogle    ProviderKind = "google"
	ProviderOpenAI    ProviderKind = "openai"
	ProviderAnthropic ProviderKind = "anthropic"
	ProviderOllama    ProviderKind = "ollama"
)

// Settings is the flat provider selection as persisted in the settings
// blob. NewProvider is the boundary adapter that picks the variant and
// hands each constructor only the fields it needs.
type Settings struct {
	Kind        ProviderKind `json:"provider"`
	Model       string       `json:"model"`
	Temperature float64      `json:"temperature"`
	MaxTokens   int          `json:"max_tokens"`
	APIKey      string       `json:"api_key,omitempty"`
	BaseURL     string       `json:"base_url,omitempty"`
}

// NewProvider constructs the provider variant selected by the settings.
func NewProvider(s Settings) (Provider, error) {
	opts := Options{
		Model:       s.Model,
		Temperature: s.Temperature,
		MaxTokens:   s.MaxTokens,
	}

	switch s.Kind {
	case ProviderGoogle:
		return NewGoogleProvider(s.APIKey, opts), nil
	case ProviderOpenAI:
		return NewOpenAIProvider(s.APIKey, opts), nil
	case ProviderAnthropic:
		return NewAnthropicProvider(s.APIKey, opts), nil
	case ProviderOllama:
		return NewOllamaProvider(s.BaseURL, opts), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %q", s.Kind)
	}
}

// composeUserContent builds the user-facing part of a request: the
// optional context block followed by the prompt.
func composeUserContent(req Request) string {
	if req.Context == "" {
		return req.Prompt
	}
	return "컨텍스트: " + req.Context + "\n\n" + req.Prompt
}

// composeSinglePrompt flattens system prompt, context, and request into
// one text block for backends without a separate system field.
func composeSinglePrompt(systemPrompt string, req Request) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\n")
	if req.Context != "" {
		b.WriteString("컨텍스트: ")
		b.WriteString(req.Context)
		b.WriteString("\n\n")
	}
	b.WriteString("요청: ")
	b.WriteString(req.Prompt)
	return b.String()
}
