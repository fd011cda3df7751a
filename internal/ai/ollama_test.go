package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/biblestudio/bible-studio-api/internal/errors"
)

func TestOllamaGenerate(t *testing.T) {
	var captured ollamaRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tags":
			w.WriteHeader(http.StatusOK)
		case "/api/generate":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			_ = json.NewEncoder(w).Encode(ollamaResponse{Response: "생성된 본문"})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	provider := NewOllamaProvider(srv.URL, Options{Model: "llama3", Temperature: 0.7, MaxTokens: 500})
	resp, err := provider.Generate(context.Background(), "시스템 프롬프트", Request{
		Prompt:  "요청 내용",
		Context: "이전 섹션",
	})
	require.NoError(t, err)

	assert.Equal(t, "생성된 본문", resp.Content)
	assert.Nil(t, resp.Usage, "Ollama reports no token usage")

	assert.Equal(t, "llama3", captured.Model)
	assert.False(t, captured.Stream)
	assert.Equal(t, 0.7, captured.Options.Temperature)
	assert.Equal(t, 500, captured.Options.NumPredict)
	// System prompt, context, and request are folded into one prompt.
	assert.Contains(t, captured.Prompt, "시스템 프롬프트")
	assert.Contains(t, captured.Prompt, "컨텍스트: 이전 섹션")
	assert.Contains(t, captured.Prompt, "요청: 요청 내용")
}

func TestOllamaUnreachable(t *testing.T) {
	// A closed port: the probe fails before any generation attempt.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	provider := NewOllamaProvider(srv.URL, Options{Model: "llama3"})
	_, err := provider.Generate(context.Background(), "", Request{Prompt: "요청"})
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierrors.CodeUnreachable, apiErr.Code)
	assert.Contains(t, apiErr.Message, "not reachable")
}

func TestOllamaEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			w.WriteHeader(http.StatusOK)
			return
		}
		_ = json.NewEncoder(w).Encode(ollamaResponse{Response: ""})
	}))
	defer srv.Close()

	provider := NewOllamaProvider(srv.URL, Options{Model: "llama3"})
	_, err := provider.Generate(context.Background(), "", Request{Prompt: "요청"})
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierrors.CodeProvider, apiErr.Code)
}

func TestGoogleGenerateMissingAPIKey(t *testing.T) {
	provider := NewGoogleProvider("", Options{Model: "gemini-2.0-flash"})
	_, err := provider.Generate(context.Background(), "", Request{Prompt: "요청"})
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierrors.CodeMissingAPIKey, apiErr.Code)
}

func TestGoogleGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var payload googleRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Contents, 1)
		assert.Equal(t, 0.8, payload.GenerationConfig.TopP)
		assert.Equal(t, 10, payload.GenerationConfig.TopK)

		_, _ = w.Write([]byte(`{
			"candidates": [{"content": {"parts": [{"text": "응답 본문"}]}}],
			"usageMetadata": {"promptTokenCount": 10, "candidatesTokenCount": 5, "totalTokenCount": 15}
		}`))
	}))
	defer srv.Close()

	provider := NewGoogleProvider("test-key", Options{Model: "gemini-2.0-flash", MaxTokens: 300})
	provider.baseURL = srv.URL

	resp, err := provider.Generate(context.Background(), "시스템", Request{Prompt: "요청"})
	require.NoError(t, err)
	assert.Equal(t, "응답 본문", resp.Content)
	require.NotNil(t, resp.Usage)
	assert.Equal(t, 10, resp.Usage.PromptTokens)
	assert.Equal(t, 15, resp.Usage.TotalTokens)
}

func TestGoogleGenerateProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"message": "API key not valid"}}`))
	}))
	defer srv.Close()

	provider := NewGoogleProvider("bad-key", Options{Model: "gemini-2.0-flash"})
	provider.baseURL = srv.URL

	_, err := provider.Generate(context.Background(), "", Request{Prompt: "요청"})
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierrors.CodeProvider, apiErr.Code)
	assert.Contains(t, apiErr.Message, "API key not valid")
}

func TestOpenAIGenerateMissingAPIKey(t *testing.T) {
	provider := NewOpenAIProvider("", Options{Model: "gpt-4o-mini"})
	_, err := provider.Generate(context.Background(), "", Request{Prompt: "요청"})
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierrors.CodeMissingAPIKey, apiErr.Code)
}

func TestAnthropicGenerateMissingAPIKey(t *testing.T) {
	provider := NewAnthropicProvider("", Options{Model: "claude-sonnet-4-20250514"})
	_, err := provider.Generate(context.Background(), "", Request{Prompt: "요청"})
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierrors.CodeMissingAPIKey, apiErr.Code)
}
