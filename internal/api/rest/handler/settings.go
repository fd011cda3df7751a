package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/biblestudio/bible-studio-api/internal/ai"
	"github.com/biblestudio/bible-studio-api/internal/logger"
	"github.com/biblestudio/bible-studio-api/internal/settings"
)

// SettingsHandler reads and writes the user settings blob.
type SettingsHandler struct {
	store *settings.Store
	svc   *ai.Service
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(store *settings.Store, svc *ai.Service) *SettingsHandler {
	return &SettingsHandler{store: store, svc: svc}
}

// GetSettings returns the stored settings, or the defaults when no
// blob has been saved yet.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	loaded, _, err := h.store.Load()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	respondOK(c, loaded)
}

// UpdateSettings replaces the whole settings blob and reconfigures
// the AI provider to match it. The blob is saved first; a provider
// the gateway does not know rejects the request before anything is
// written.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req settings.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	provider, err := ai.NewProvider(req.AI)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Save(&req); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	h.svc.UpdateProvider(provider)
	logger.Info("settings saved", zap.String("provider", provider.Name()))
	respondOK(c, req)
}
