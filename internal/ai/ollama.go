package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	apierrors "github.com/biblestudio/bible-studio-api/internal/errors"
)

const defaultOllamaBaseURL = "http://localhost:11434"

// OllamaProvider calls a locally-hosted Ollama server over plain HTTP.
// No credential is involved. Because "the server is not running" is by
// far the most common failure, every generation is preceded by a cheap
// reachability probe so that case gets its own distinct error instead
// of a generic network failure.
type OllamaProvider struct {
	baseURL     string
	opts        Options
	httpClient  *http.Client
	probeClient *http.Client
}

// NewOllamaProvider creates an Ollama provider. An empty baseURL falls
// back to the standard local port.
func NewOllamaProvider(baseURL string, opts Options) *OllamaProvider {
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}
	return &OllamaProvider{
		baseURL: baseURL,
		opts:    opts,
		// Local generation can be slow on modest hardware.
		httpClient:  &http.Client{Timeout: 10 * time.Minute},
		probeClient: &http.Client{Timeout: 3 * time.Second},
	}
}

// Name implements Provider.
func (p *OllamaProvider) Name() string { return string(ProviderOllama) }

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

// Generate implements Provider.
func (p *OllamaProvider) Generate(ctx context.Context, systemPrompt string, req Request) (*Response, error) {
	if err := p.checkReachable(ctx); err != nil {
		return nil, err
	}

	payload := ollamaRequest{
		Model:  p.opts.Model,
		Prompt: composeSinglePrompt(systemPrompt, req),
		Stream: false,
		Options: ollamaOptions{
			Temperature: p.opts.temperature(req),
			NumPredict:  p.opts.maxTokens(req),
		},
	}

	var decoded ollamaResponse
	if err := postJSON(ctx, p.httpClient, p.baseURL+"/api/generate", nil, payload, &decoded, "Ollama"); err != nil {
		return nil, err
	}

	if decoded.Response == "" {
		return nil, apierrors.Provider("Ollama returned an empty response")
	}

	// Ollama does not report token usage.
	return &Response{Content: decoded.Response}, nil
}

// checkReachable probes the tags endpoint before generating.
func (p *OllamaProvider) checkReachable(ctx context.Context) error {
	probe, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/tags", nil)
	if err != nil {
		return fmt.Errorf("build probe request: %w", err)
	}

	resp, err := p.probeClient.Do(probe)
	if err != nil {
		return apierrors.Unreachable(fmt.Sprintf(
			"Ollama server is not reachable at %s; make sure it is running", p.baseURL))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apierrors.Unreachable(fmt.Sprintf(
			"Ollama server at %s answered the probe with %s", p.baseURL, resp.Status))
	}
	return nil
}
