package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/biblestudio/bible-studio-api/internal/bible"
	"github.com/biblestudio/bible-studio-api/internal/database"
)

// VerseHandler handles verse listing, lookup and search
type VerseHandler struct {
	repo *database.CachedRepository
}

// NewVerseHandler creates a new verse handler
func NewVerseHandler(repo *database.CachedRepository) *VerseHandler {
	return &VerseHandler{repo: repo}
}

// ListVerses returns every verse of one chapter in verse order.
// Query: ?book=창세기&chapter=1&version=korean-contemporary
func (h *VerseHandler) ListVerses(c *gin.Context) {
	book := strings.TrimSpace(c.Query("book"))
	if book == "" {
		respondError(c, http.StatusBadRequest, "Missing book parameter")
		return
	}
	chapter, ok := parseIntQuery(c, "chapter")
	if !ok {
		return
	}
	version := c.DefaultQuery("version", bible.DefaultVersion)

	verses, err := h.repo.ListVerses(book, chapter, version)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch verses")
		return
	}
	respondOK(c, verses)
}

// GetVerse returns a single verse.
// Query: ?book=창세기&chapter=1&verse=1&version=korean-contemporary
func (h *VerseHandler) GetVerse(c *gin.Context) {
	book := strings.TrimSpace(c.Query("book"))
	if book == "" {
		respondError(c, http.StatusBadRequest, "Missing book parameter")
		return
	}
	chapter, ok := parseIntQuery(c, "chapter")
	if !ok {
		return
	}
	verse, ok := parseIntQuery(c, "verse")
	if !ok {
		return
	}
	version := c.DefaultQuery("version", bible.DefaultVersion)

	v, err := h.repo.GetVerse(book, chapter, verse, version)
	if err != nil {
		respondAPIError(c, err, "Verse not found")
		return
	}
	respondOK(c, v)
}

// SearchVerses returns verses whose text contains the query string.
// The match is a case-sensitive substring match, capped at 50 results.
// Query: ?q=사랑&version=korean-contemporary
func (h *VerseHandler) SearchVerses(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		respondError(c, http.StatusBadRequest, "Missing q parameter")
		return
	}
	version := c.DefaultQuery("version", bible.DefaultVersion)

	verses, err := h.repo.SearchVerses(query, version)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to search verses")
		return
	}
	respondOK(c, verses)
}
