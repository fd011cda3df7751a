package handler

import (
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/biblestudio/bible-studio-api/internal/ai"
	"github.com/biblestudio/bible-studio-api/internal/logger"
)

// imageDownloadLimit caps a fetched illustration at 20 MiB.
const imageDownloadLimit = 20 << 20

// SermonHandler drives the sermon drafting workflow over the
// configured AI provider.
type SermonHandler struct {
	svc         *ai.Service
	imageClient *http.Client
}

// NewSermonHandler creates a new sermon handler
func NewSermonHandler(svc *ai.Service) *SermonHandler {
	return &SermonHandler{
		svc:         svc,
		imageClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type topicsRequest struct {
	Verse string `json:"verse" binding:"required"`
}

// GenerateTopics asks the provider for sermon topics on a passage and
// returns the extracted list alongside the raw reply. An empty list
// with a 200 means the reply matched none of the known shapes.
func (h *SermonHandler) GenerateTopics(c *gin.Context) {
	var req topicsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	result, err := h.svc.GenerateTopics(c.Request.Context(), req.Verse)
	if err != nil {
		respondAPIError(c, err, "Failed to generate topics")
		return
	}
	respondOK(c, result)
}

type outlineRequest struct {
	Verse string `json:"verse" binding:"required"`
	Topic string `json:"topic" binding:"required"`
}

// GenerateOutline asks the provider for a sermon outline on a passage
// and topic.
func (h *SermonHandler) GenerateOutline(c *gin.Context) {
	var req outlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	result, err := h.svc.GenerateOutline(c.Request.Context(), req.Verse, req.Topic)
	if err != nil {
		respondAPIError(c, err, "Failed to generate outline")
		return
	}
	respondOK(c, result)
}

type sectionRequest struct {
	Verse   string `json:"verse" binding:"required"`
	Topic   string `json:"topic" binding:"required"`
	Part    string `json:"part" binding:"required"`
	Context string `json:"context"`
}

// GenerateSection drafts one outline section. Context carries the
// previously drafted sections so the new one follows on from them.
func (h *SermonHandler) GenerateSection(c *gin.Context) {
	var req sectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	content, err := h.svc.GenerateSermonPart(c.Request.Context(), req.Verse, req.Topic, req.Part, req.Context)
	if err != nil {
		respondAPIError(c, err, "Failed to generate section")
		return
	}
	respondOK(c, gin.H{"part": req.Part, "content": content})
}

type draftRequest struct {
	Verse   string   `json:"verse" binding:"required"`
	Topic   string   `json:"topic" binding:"required"`
	Outline []string `json:"outline" binding:"required"`
}

// GenerateDraft drafts every outline section in order, one provider
// call per section. If a call fails mid-way, the sections already
// drafted are returned with the error so the client can resume.
func (h *SermonHandler) GenerateDraft(c *gin.Context) {
	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Outline) == 0 {
		respondError(c, http.StatusBadRequest, "Outline must not be empty")
		return
	}

	sections, err := h.svc.GenerateDraft(c.Request.Context(), req.Verse, req.Topic, req.Outline)
	if err != nil {
		logger.Warn("draft generation stopped early",
			zap.Int("completed", len(sections)),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"error":    err.Error(),
			"sections": sections,
		})
		return
	}
	respondOK(c, gin.H{"sections": sections})
}

type imagePromptRequest struct {
	Verse string `json:"verse" binding:"required"`
	Topic string `json:"topic"`
	Part  string `json:"part"`
}

// GenerateImagePrompt produces an illustration prompt for a passage.
func (h *SermonHandler) GenerateImagePrompt(c *gin.Context) {
	var req imagePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	prompt, err := h.svc.GenerateImagePrompt(c.Request.Context(), req.Verse, req.Topic, req.Part)
	if err != nil {
		respondAPIError(c, err, "Failed to generate image prompt")
		return
	}
	respondOK(c, gin.H{"prompt": prompt})
}

type imageDownloadRequest struct {
	URL string `json:"url" binding:"required"`
}

// DownloadImage fetches a generated illustration server-side and
// streams it back, so the client never talks to the image host
// directly.
func (h *SermonHandler) DownloadImage(c *gin.Context) {
	var req imageDownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	parsed, err := url.Parse(req.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		respondError(c, http.StatusBadRequest, "URL must be http or https")
		return
	}

	httpReq, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, req.URL, nil)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid image URL")
		return
	}
	resp, err := h.imageClient.Do(httpReq)
	if err != nil {
		respondError(c, http.StatusBadGateway, "Failed to download image")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respondError(c, http.StatusBadGateway, "Image host returned "+resp.Status)
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, resp.ContentLength, contentType,
		io.LimitReader(resp.Body, imageDownloadLimit), nil)
}

// TestConnection checks whether the configured provider answers a
// trivial prompt.
func (h *SermonHandler) TestConnection(c *gin.Context) {
	ok := h.svc.TestConnection(c.Request.Context())
	respondOK(c, gin.H{"provider": h.svc.ProviderName(), "connected": ok})
}
