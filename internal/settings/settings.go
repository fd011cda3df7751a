// Package settings persists user preferences as a flat JSON blob on
// disk. The blob is read once at startup and written only on explicit
// save; there is no migration logic.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/biblestudio/bible-studio-api/internal/ai"
)

// OutlineTemplate is a user-defined outline preset.
type OutlineTemplate struct {
	Name     string   `json:"name"`
	Sections []string `json:"sections"`
}

// Settings is the full user settings blob.
type Settings struct {
	AI               ai.Settings       `json:"ai"`
	Theme            string            `json:"theme"`
	Language         string            `json:"language"`
	FontSize         int               `json:"font_size"`
	Autosave         bool              `json:"autosave"`
	OutlineTemplates []OutlineTemplate `json:"outline_templates"`
}

// Default returns the settings used when no blob exists yet.
func Default() *Settings {
	return &Settings{
		Theme:    "light",
		Language: "ko",
		FontSize: 14,
		Autosave: true,
	}
}

// Store reads and writes the settings blob.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store for the blob at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the blob. A missing file is not an error: it returns the
// defaults and found=false so the caller can seed from configuration.
func (s *Store) Load() (*Settings, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Default(), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read settings: %w", err)
	}

	var loaded Settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, false, fmt.Errorf("parse settings: %w", err)
	}
	return &loaded, true, nil
}

// Save writes the blob. The write goes through a temp file and rename
// so a crash mid-save never leaves a truncated blob.
func (s *Store) Save(settings *Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".settings-*.json")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close settings file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace settings file: %w", err)
	}
	return nil
}
