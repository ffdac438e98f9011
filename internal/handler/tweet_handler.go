package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube/internal/middleware"
	"videotube/internal/service"
)

// TweetHandler handles community post HTTP requests.
type TweetHandler struct {
	tweetService service.TweetServiceInterface
}

// NewTweetHandler creates a new TweetHandler.
func NewTweetHandler(tweetService service.TweetServiceInterface) *TweetHandler {
	return &TweetHandler{tweetService: tweetService}
}

type tweetRequest struct {
	Content string `json:"content"`
}

// Create handles POST /api/v1/tweets
func (h *TweetHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	tweet, err := h.tweetService.Create(c.Request.Context(), userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tweet)
}

// ListByUser handles GET /api/v1/tweets/user/:userID
func (h *TweetHandler) ListByUser(c *gin.Context) {
	tweets, err := h.tweetService.ListByUser(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tweets": tweets})
}

// Update handles PATCH /api/v1/tweets/:id
func (h *TweetHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	tweet, err := h.tweetService.Update(c.Request.Context(), c.Param("id"), userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tweet)
}

// Delete handles DELETE /api/v1/tweets/:id
func (h *TweetHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	if err := h.tweetService.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tweet deleted"})
}
