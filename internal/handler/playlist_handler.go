package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube/internal/middleware"
	"videotube/internal/service"
)

// PlaylistHandler handles playlist HTTP requests.
type PlaylistHandler struct {
	playlistService service.PlaylistServiceInterface
}

// NewPlaylistHandler creates a new PlaylistHandler.
func NewPlaylistHandler(playlistService service.PlaylistServiceInterface) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

type playlistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create handles POST /api/v1/playlists
func (h *PlaylistHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req playlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	playlist, err := h.playlistService.Create(c.Request.Context(), userID, req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, playlist)
}

// ListByUser handles GET /api/v1/playlists/user/:userID
func (h *PlaylistHandler) ListByUser(c *gin.Context) {
	playlists, err := h.playlistService.ListByUser(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"playlists": playlists})
}

// Get handles GET /api/v1/playlists/:id
func (h *PlaylistHandler) Get(c *gin.Context) {
	playlist, err := h.playlistService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, playlist)
}

// AddVideo handles POST /api/v1/playlists/:id/videos/:videoID
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	if err := h.playlistService.AddVideo(c.Request.Context(), c.Param("id"), userID, c.Param("videoID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "video added"})
}

// RemoveVideo handles DELETE /api/v1/playlists/:id/videos/:videoID
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	if err := h.playlistService.RemoveVideo(c.Request.Context(), c.Param("id"), userID, c.Param("videoID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "video removed"})
}

// DashboardHandler serves the channel owner's dashboard.
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles GET /api/v1/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	stats, err := h.dashboardService.Stats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Videos handles GET /api/v1/dashboard/videos
func (h *DashboardHandler) Videos(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	videos, err := h.dashboardService.Videos(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"videos": videos})
}
