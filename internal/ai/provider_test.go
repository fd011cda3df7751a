package ai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblestudio/bible-studio-api/internal/ai"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		kind ai.ProviderKind
		name string
	}{
		{ai.ProviderGoogle, "google"},
		{ai.ProviderOpenAI, "openai"},
		{ai.ProviderAnthropic, "anthropic"},
		{ai.ProviderOllama, "ollama"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			provider, err := ai.NewProvider(ai.Settings{Kind: tt.kind, Model: "m"})
			require.NoError(t, err)
			assert.Equal(t, tt.name, provider.Name())
		})
	}
}

func TestNewProviderUnknownKind(t *testing.T) {
	_, err := ai.NewProvider(ai.Settings{Kind: "grok"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported AI provider")
}
