package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/biblestudio/bible-studio-api/internal/database"
)

// CommentaryHandler handles commentary requests
type CommentaryHandler struct {
	repo *database.CachedRepository
}

// NewCommentaryHandler creates a new commentary handler
func NewCommentaryHandler(repo *database.CachedRepository) *CommentaryHandler {
	return &CommentaryHandler{repo: repo}
}

// ListCommentaries returns the commentary entries for one chapter,
// ordered by the first verse they cover. An optional verse parameter
// narrows the list to entries whose range covers that verse.
// Query: ?book=창세기&chapter=1&verse=3
func (h *CommentaryHandler) ListCommentaries(c *gin.Context) {
	book := strings.TrimSpace(c.Query("book"))
	if book == "" {
		respondError(c, http.StatusBadRequest, "Missing book parameter")
		return
	}
	chapter, ok := parseIntQuery(c, "chapter")
	if !ok {
		return
	}

	entries, err := h.repo.ListCommentaries(book, chapter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch commentaries")
		return
	}

	if raw := c.Query("verse"); raw != "" {
		verse, err := strconv.Atoi(raw)
		if err != nil || verse < 1 {
			respondError(c, http.StatusBadRequest, "Invalid verse parameter")
			return
		}
		covering := make([]database.Commentary, 0, len(entries))
		for _, entry := range entries {
			if entry.Covers(verse) {
				covering = append(covering, entry)
			}
		}
		entries = covering
	}

	respondOK(c, entries)
}
