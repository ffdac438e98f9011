package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"videotube/internal/middleware"
	"videotube/internal/service"
)

// VideoHandler handles video HTTP requests.
type VideoHandler struct {
	videoService service.VideoServiceInterface
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(videoService service.VideoServiceInterface) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// Publish handles POST /api/v1/videos
func (h *VideoHandler) Publish(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	videoFile, videoHeader, err := c.Request.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video file is required"})
		return
	}
	defer videoFile.Close()

	thumbFile, thumbHeader, err := c.Request.FormFile("thumbnail")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "thumbnail file is required"})
		return
	}
	defer thumbFile.Close()

	duration, _ := strconv.ParseFloat(c.PostForm("duration"), 64)

	video, err := h.videoService.Publish(c.Request.Context(), userID, service.VideoUpload{
		Title:                c.PostForm("title"),
		Description:          c.PostForm("description"),
		Duration:             duration,
		VideoContentType:     videoHeader.Header.Get("Content-Type"),
		Video:                videoFile,
		ThumbnailContentType: thumbHeader.Header.Get("Content-Type"),
		Thumbnail:            thumbFile,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, video)
}

// List handles GET /api/v1/videos
func (h *VideoHandler) List(c *gin.Context) {
	page, limit, ok := pagingParams(c)
	if !ok {
		return
	}

	videos, err := h.videoService.List(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos, "page": page, "limit": limit})
}

// Get handles GET /api/v1/videos/:videoID
func (h *VideoHandler) Get(c *gin.Context) {
	viewerID, _ := middleware.GetUserID(c)

	detail, err := h.videoService.Get(c.Request.Context(), c.Param("videoID"), viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Delete handles DELETE /api/v1/videos/:videoID
func (h *VideoHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	if err := h.videoService.Delete(c.Request.Context(), c.Param("videoID"), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "video deleted"})
}

// UpdateThumbnail handles PATCH /api/v1/videos/:videoID/thumbnail
func (h *VideoHandler) UpdateThumbnail(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	file, header, err := c.Request.FormFile("thumbnail")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "thumbnail file is required"})
		return
	}
	defer file.Close()

	video, err := h.videoService.UpdateThumbnail(c.Request.Context(),
		c.Param("videoID"), userID, header.Header.Get("Content-Type"), file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}

type publishStateRequest struct {
	Published bool `json:"published"`
}

// SetPublished handles PATCH /api/v1/videos/:videoID/publish
func (h *VideoHandler) SetPublished(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req publishStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	video, err := h.videoService.SetPublished(c.Request.Context(), c.Param("videoID"), userID, req.Published)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, video)
}
