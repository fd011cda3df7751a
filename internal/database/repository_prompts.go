package database

import (
	"time"

	apierrors "github.com/biblestudio/bible-studio-api/internal/errors"
)

// Prompt template management. Templates live only in the store; there
// are no hard-coded defaults to fall back to, which is why reset is
// permanently unsupported.

// ErrPromptResetUnsupported is returned by ResetPrompt for every id.
var ErrPromptResetUnsupported = apierrors.Unsupported(
	"prompt reset is not available; edit the stored prompt content directly")

// ListPrompts returns all prompt templates ordered by category and name.
func (r *Repository) ListPrompts() ([]Prompt, error) {
	var prompts []Prompt
	err := r.db.Order("category, name").Find(&prompts).Error
	return prompts, err
}

// GetPrompt returns one prompt template, or gorm.ErrRecordNotFound.
// An absent row is a valid state; callers decide how to handle it.
func (r *Repository) GetPrompt(id string) (*Prompt, error) {
	var p Prompt
	err := r.db.Where("id = ?", id).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePrompt replaces the content of a prompt template. Returns true
// iff a row was updated.
func (r *Repository) UpdatePrompt(id, content string) (bool, error) {
	result := r.db.Model(&Prompt{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"content":    content,
			"updated_at": time.Now(),
		})
	return result.RowsAffected > 0, result.Error
}

// ResetPrompt always fails. Restoring a template to some original form
// would require hard-coded defaults, which were deliberately removed in
// favor of store-managed content only.
func (r *Repository) ResetPrompt(id string) error {
	return ErrPromptResetUnsupported
}
