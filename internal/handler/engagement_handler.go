package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube/internal/domain"
	"videotube/internal/middleware"
	"videotube/internal/service"
)

// LikeHandler handles like toggles.
type LikeHandler struct {
	likeService service.LikeServiceInterface
}

// NewLikeHandler creates a new LikeHandler.
func NewLikeHandler(likeService service.LikeServiceInterface) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// Toggle handles POST /api/v1/likes/:target/:id where target names the kind
// of entity being liked.
func (h *LikeHandler) Toggle(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	target := domain.LikeTarget(c.Param("target"))
	if !domain.IsValidLikeTarget(target) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target must be one of: video, comment, tweet"})
		return
	}

	var (
		liked bool
		err   error
	)
	switch target {
	case domain.LikeTargetVideo:
		liked, err = h.likeService.ToggleVideo(c.Request.Context(), userID, c.Param("id"))
	case domain.LikeTargetComment:
		liked, err = h.likeService.ToggleComment(c.Request.Context(), userID, c.Param("id"))
	case domain.LikeTargetTweet:
		liked, err = h.likeService.ToggleTweet(c.Request.Context(), userID, c.Param("id"))
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// LikedVideos handles GET /api/v1/likes/videos
func (h *LikeHandler) LikedVideos(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	videos, err := h.likeService.LikedVideos(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

// SubscriptionHandler handles channel subscriptions.
type SubscriptionHandler struct {
	subscriptionService service.SubscriptionServiceInterface
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(subscriptionService service.SubscriptionServiceInterface) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Toggle handles POST /api/v1/subscriptions/:channelID
func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	subscribed, err := h.subscriptionService.Toggle(c.Request.Context(), userID, c.Param("channelID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribed": subscribed})
}

// Subscribers handles GET /api/v1/subscriptions/:channelID/subscribers
func (h *SubscriptionHandler) Subscribers(c *gin.Context) {
	profiles, err := h.subscriptionService.Subscribers(c.Request.Context(), c.Param("channelID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribers": profiles, "count": len(profiles)})
}
