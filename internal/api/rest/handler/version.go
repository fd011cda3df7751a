package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/biblestudio/bible-studio-api/internal/database"
)

// VersionHandler handles translation version management
type VersionHandler struct {
	repo *database.CachedRepository
}

// NewVersionHandler creates a new version handler
func NewVersionHandler(repo *database.CachedRepository) *VersionHandler {
	return &VersionHandler{repo: repo}
}

// ListVersions returns every installed translation with its verse
// count and a sample verse, each resolved to a display name.
func (h *VersionHandler) ListVersions(c *gin.Context) {
	versions, err := h.repo.ListVersions()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch versions")
		return
	}
	for i := range versions {
		name, err := h.repo.GetDisplayName(versions[i].ID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to resolve display name")
			return
		}
		versions[i].DisplayName = name
	}
	respondOK(c, versions)
}

type addVersionRequest struct {
	ID     string           `json:"id" binding:"required"`
	Verses []database.Verse `json:"verses" binding:"required"`
}

// AddVersion imports a new translation in a single transaction. Any
// invalid verse rejects the whole batch.
func (h *VersionHandler) AddVersion(c *gin.Context) {
	var req addVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.repo.AddVersion(req.ID, req.Verses); err != nil {
		respondAPIError(c, err, "Failed to import version")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{"id": req.ID, "verse_count": len(req.Verses)},
	})
}

// DeleteVersion removes every verse of a translation.
func (h *VersionHandler) DeleteVersion(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.repo.DeleteVersion(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to delete version")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "Version not found")
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

type renameVersionRequest struct {
	NewID string `json:"new_id" binding:"required"`
}

// RenameVersion rewrites a translation's version id. There is no
// collision check on the target id; renaming onto an existing id
// merges the two translations, and callers are expected to check
// the version list first.
func (h *VersionHandler) RenameVersion(c *gin.Context) {
	id := c.Param("id")
	var req renameVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	newID := strings.TrimSpace(req.NewID)
	if newID == "" {
		respondError(c, http.StatusBadRequest, "New version id must not be empty")
		return
	}

	renamed, err := h.repo.RenameVersion(id, newID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to rename version")
		return
	}
	if !renamed {
		respondError(c, http.StatusNotFound, "Version not found")
		return
	}
	respondOK(c, gin.H{"id": newID})
}

// VersionStats returns per-book verse counts for one translation.
func (h *VersionHandler) VersionStats(c *gin.Context) {
	id := c.Param("id")
	stats, err := h.repo.VersionStats(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch version stats")
		return
	}
	if len(stats) == 0 {
		respondError(c, http.StatusNotFound, "Version not found")
		return
	}
	respondOK(c, stats)
}

// DatabaseInfo returns corpus-wide totals.
func (h *VersionHandler) DatabaseInfo(c *gin.Context) {
	info, err := h.repo.GetDatabaseInfo()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch database info")
		return
	}
	respondOK(c, info)
}

// ListDisplayNames returns every stored display-name override.
func (h *VersionHandler) ListDisplayNames(c *gin.Context) {
	names, err := h.repo.ListDisplayNames()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch display names")
		return
	}
	respondOK(c, names)
}

// GetDisplayName resolves one version id to a display name, falling
// back to the built-in defaults and then the raw id.
func (h *VersionHandler) GetDisplayName(c *gin.Context) {
	id := c.Param("id")
	name, err := h.repo.GetDisplayName(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to resolve display name")
		return
	}
	respondOK(c, gin.H{"version_id": id, "display_name": name})
}

type setDisplayNameRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
}

// SetDisplayName stores or replaces a display-name override.
func (h *VersionHandler) SetDisplayName(c *gin.Context) {
	id := c.Param("id")
	var req setDisplayNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.repo.SetDisplayName(id, req.DisplayName); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to set display name")
		return
	}
	respondOK(c, gin.H{"version_id": id, "display_name": req.DisplayName})
}

// RemoveDisplayName deletes an override, reverting the version to its
// default display name.
func (h *VersionHandler) RemoveDisplayName(c *gin.Context) {
	id := c.Param("id")
	removed, err := h.repo.RemoveDisplayName(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to remove display name")
		return
	}
	if !removed {
		respondError(c, http.StatusNotFound, "Display name not found")
		return
	}
	respondOK(c, gin.H{"removed": true})
}
