package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"videotube/internal/domain"
	"videotube/internal/middleware"
	"videotube/internal/service"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CommentResponse represents a comment in the API response.
type CommentResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	VideoID   string `json:"video_id"`
	OwnerID   string `json:"owner_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		VideoID:   c.VideoID,
		OwnerID:   c.OwnerID,
		CreatedAt: c.CreatedAt.Format(TimeFormat),
		UpdatedAt: c.UpdatedAt.Format(TimeFormat),
	}
}

// CommentPageResponse is one page of a video's comments.
type CommentPageResponse struct {
	Items      []domain.CommentView `json:"items"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}

type commentRequest struct {
	Content string `json:"content"`
}

// pagingParams reads page and limit query parameters with their defaults.
// Non-numeric values are a caller error.
func pagingParams(c *gin.Context) (page, limit int, ok bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a number"})
		return 0, 0, false
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a number"})
		return 0, 0, false
	}
	return page, limit, true
}

// List handles GET /api/v1/videos/:videoID/comments
func (h *CommentHandler) List(c *gin.Context) {
	page, limit, ok := pagingParams(c)
	if !ok {
		return
	}

	result, err := h.commentService.ListForVideo(c.Request.Context(), c.Param("videoID"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CommentPageResponse{
		Items:      result.Items,
		TotalCount: result.TotalCount,
		Page:       page,
		Limit:      limit,
	})
}

// Add handles POST /api/v1/videos/:videoID/comments
func (h *CommentHandler) Add(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := h.commentService.Add(c.Request.Context(), c.Param("videoID"), userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// Update handles PATCH /api/v1/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), c.Param("id"), userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCommentResponse(comment))
}

// Delete handles DELETE /api/v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}
