package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblestudio/bible-studio-api/internal/ai"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.json"))

	loaded, found, err := store.Load()
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, Default(), loaded)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	store := NewStore(path)

	saved := &Settings{
		AI: ai.Settings{
			Kind:        ai.ProviderAnthropic,
			Model:       "claude-sonnet-4-20250514",
			Temperature: 0.7,
			MaxTokens:   1500,
			APIKey:      "sk-test",
		},
		Theme:    "dark",
		Language: "ko",
		FontSize: 16,
		Autosave: true,
		OutlineTemplates: []OutlineTemplate{
			{Name: "삼대지", Sections: []string{"서론", "본론", "결론"}},
		},
	}
	require.NoError(t, store.Save(saved))

	loaded, found, err := store.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, saved, loaded)
}

func TestSaveReplacesExistingBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	store := NewStore(path)

	require.NoError(t, store.Save(&Settings{Theme: "light"}))
	require.NoError(t, store.Save(&Settings{Theme: "dark"}))

	loaded, _, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "dark", loaded.Theme)

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLoadCorruptBlobFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{truncated"), 0o644))

	_, _, err := NewStore(path).Load()
	assert.Error(t, err)
}
