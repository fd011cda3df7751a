package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apierrors "github.com/biblestudio/bible-studio-api/internal/errors"
)

// respondError sends a JSON error response with the given status code and message.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondOK sends a JSON success response with the given data.
func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// respondAPIError maps an error to its HTTP shape. APIError values
// carry their own status and code; gorm's not-found becomes 404;
// anything else is a 500 with the fallback message.
func respondAPIError(c *gin.Context, err error, fallback string) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.HTTPStatus, gin.H{
			"error": apiErr.Message,
			"code":  apiErr.Code,
		})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, fallback)
		return
	}
	respondError(c, http.StatusInternalServerError, fallback)
}

// parseIntQuery extracts a positive integer query parameter.
// Returns the value and true, or sends a 400 and returns false.
func parseIntQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		respondError(c, http.StatusBadRequest, "Invalid "+name+" parameter")
		return 0, false
	}
	return v, true
}
