package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/biblestudio/bible-studio-api/internal/database"
)

// PromptHandler handles stored AI prompt management
type PromptHandler struct {
	repo *database.CachedRepository
}

// NewPromptHandler creates a new prompt handler
func NewPromptHandler(repo *database.CachedRepository) *PromptHandler {
	return &PromptHandler{repo: repo}
}

type promptView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Variables   []string `json:"variables"`
}

func formatPrompt(p *database.Prompt) promptView {
	return promptView{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Content:     p.Content,
		Variables:   p.DecodeVariables(),
	}
}

// ListPrompts returns every stored prompt grouped by category.
func (h *PromptHandler) ListPrompts(c *gin.Context) {
	prompts, err := h.repo.ListPrompts()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch prompts")
		return
	}
	data := make([]promptView, len(prompts))
	for i := range prompts {
		data[i] = formatPrompt(&prompts[i])
	}
	respondOK(c, data)
}

// GetPrompt returns one stored prompt by id.
func (h *PromptHandler) GetPrompt(c *gin.Context) {
	prompt, err := h.repo.GetPrompt(c.Param("id"))
	if err != nil {
		respondAPIError(c, err, "Prompt not found")
		return
	}
	respondOK(c, formatPrompt(prompt))
}

type updatePromptRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdatePrompt replaces the content of a stored prompt.
func (h *PromptHandler) UpdatePrompt(c *gin.Context) {
	id := c.Param("id")
	var req updatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	updated, err := h.repo.UpdatePrompt(id, req.Content)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to update prompt")
		return
	}
	if !updated {
		respondError(c, http.StatusNotFound, "Prompt not found")
		return
	}
	respondOK(c, gin.H{"id": id})
}

// ResetPrompt would restore a prompt to factory content, but no
// factory copy is stored, so it always reports the operation as
// unsupported.
func (h *PromptHandler) ResetPrompt(c *gin.Context) {
	err := h.repo.ResetPrompt(c.Param("id"))
	respondAPIError(c, err, "Prompt reset is not available")
}
