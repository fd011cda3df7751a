package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/biblestudio/bible-studio-api/internal/database"
)

// BookHandler handles Bible book requests
type BookHandler struct {
	repo *database.CachedRepository
}

// NewBookHandler creates a new book handler
func NewBookHandler(repo *database.CachedRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

// ListBooks returns every book present in the corpus in canonical
// order, with its chapter count and testament.
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.repo.ListBooks()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch books")
		return
	}
	respondOK(c, books)
}
