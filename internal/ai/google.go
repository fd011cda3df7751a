package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	apierrors "github.com/biblestudio/bible-studio-api/internal/errors"
)

const googleBaseURL = "https://generativelanguage.googleapis.com"

// GoogleProvider calls the Google AI Studio generateContent endpoint.
// The API has no separate system field, so the system prompt is folded
// into the single text part.
type GoogleProvider struct {
	apiKey     string
	opts       Options
	baseURL    string
	httpClient *http.Client
}

// NewGoogleProvider creates a Google AI Studio provider.
func NewGoogleProvider(apiKey string, opts Options) *GoogleProvider {
	return &GoogleProvider{
		apiKey:     apiKey,
		opts:       opts,
		baseURL:    googleBaseURL,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// Name implements Provider.
func (p *GoogleProvider) Name() string { return string(ProviderGoogle) }

type googleRequest struct {
	Contents         []googleContent        `json:"contents"`
	GenerationConfig googleGenerationConfig `json:"generationConfig"`
}

type googleContent struct {
	Parts []googlePart `json:"parts"`
}

type googlePart struct {
	Text string `json:"text"`
}

type googleGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
}

type googleResponse struct {
	Candidates []struct {
		Content struct {
			Parts []googlePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

// Generate implements Provider. A missing API key fails before any
// network call.
func (p *GoogleProvider) Generate(ctx context.Context, systemPrompt string, req Request) (*Response, error) {
	if p.apiKey == "" {
		return nil, apierrors.MissingAPIKey("Google AI Studio")
	}

	payload := googleRequest{
		Contents: []googleContent{
			{Parts: []googlePart{{Text: composeSinglePrompt(systemPrompt, req)}}},
		},
		GenerationConfig: googleGenerationConfig{
			Temperature:     p.opts.temperature(req),
			MaxOutputTokens: p.opts.maxTokens(req),
			TopP:            0.8,
			TopK:            10,
		},
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", p.baseURL, p.opts.Model, p.apiKey)

	var decoded googleResponse
	if err := postJSON(ctx, p.httpClient, url, nil, payload, &decoded, "Google AI"); err != nil {
		return nil, err
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return nil, apierrors.Provider("Google AI returned no candidates")
	}

	return &Response{
		Content: decoded.Candidates[0].Content.Parts[0].Text,
		Usage: &Usage{
			PromptTokens:     decoded.UsageMetadata.PromptTokenCount,
			CompletionTokens: decoded.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      decoded.UsageMetadata.TotalTokenCount,
		},
	}, nil
}

// postJSON issues a JSON POST and decodes the response body. Non-2xx
// responses are surfaced with the provider's own error message when the
// body carries one.
func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, payload, out any, providerLabel string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return apierrors.Unreachable(fmt.Sprintf("%s request failed: %v", providerLabel, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		msg := resp.Status
		if json.NewDecoder(resp.Body).Decode(&errBody) == nil && errBody.Error.Message != "" {
			msg = errBody.Error.Message
		}
		return apierrors.Provider(fmt.Sprintf("%s: %s", providerLabel, msg))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", providerLabel, err)
	}
	return nil
}
