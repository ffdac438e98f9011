package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube/internal/domain"
	"videotube/internal/logger"
	"videotube/internal/middleware"
)

// respondError maps a service error to an HTTP status. The merged
// not-found-or-not-authorized outcome of owner-guarded mutations is served
// as a 500 with a generic message, so callers cannot probe for other users'
// content.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed",
			"request_id", middleware.GetRequestID(c),
			"path", c.FullPath(),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
