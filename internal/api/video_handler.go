package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/clipclass/internal/domain"
	"alcyxob/clipclass/internal/service"
)

// VideoHandler holds the catalog service dependency.
type VideoHandler struct {
	catalogService service.CatalogService
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(catalogService service.CatalogService) *VideoHandler {
	return &VideoHandler{catalogService: catalogService}
}

// --- Handler Methods ---

// ListVideos godoc
// @Summary Browse the catalog
// @Description Lists videos, optionally filtered by free text and exact category/difficulty ("all" means any).
// @Tags Videos
// @Produce json
// @Param q query string false "Substring matched against title, category, description and tags"
// @Param category query string false "Exact category"
// @Param difficulty query string false "beginner, intermediate or advanced"
// @Success 200 {array} domain.Video
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /videos [get]
func (h *VideoHandler) ListVideos(c *gin.Context) {
	filter := domain.SearchFilter{
		Query:      c.Query("q"),
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
	}
	videos, err := h.catalogService.SearchVideos(c.Request.Context(), filter)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

// GetVideo godoc
// @Summary Get a video
// @Tags Videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} domain.Video
// @Failure 404 {object} gin.H "Video not found"
// @Router /videos/{id} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	video, err := h.catalogService.GetVideo(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

// CreateVideo godoc
// @Summary Add a video
// @Description Adds a video to the catalog. The thumbnail is derived from the source link when omitted.
// @Tags Videos
// @Accept json
// @Produce json
// @Param video body domain.VideoInput true "Video details"
// @Success 201 {object} domain.Video "Video created successfully"
// @Failure 400 {object} gin.H "Invalid input, with the offending fields"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /videos [post]
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	var req domain.VideoInput
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	video, err := h.catalogService.AddVideo(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, video)
}

// UpdateVideo godoc
// @Summary Update a video
// @Description Merges the supplied fields into an existing video.
// @Tags Videos
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Param video body domain.VideoPatch true "Fields to change"
// @Success 200 {object} domain.Video
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Video not found"
// @Router /videos/{id} [patch]
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	var req domain.VideoPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	video, err := h.catalogService.UpdateVideo(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if video == nil {
		abortWithError(c, http.StatusNotFound, service.ErrVideoNotFound.Error())
		return
	}
	c.JSON(http.StatusOK, video)
}

// DeleteVideo godoc
// @Summary Delete a video
// @Description Removes a video. Deleting an unknown ID succeeds as well.
// @Tags Videos
// @Param id path string true "Video ID"
// @Success 204 "Deleted"
// @Router /videos/{id} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	if err := h.catalogService.DeleteVideo(c.Request.Context(), c.Param("id")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListCategories godoc
// @Summary Distinct categories
// @Tags Videos
// @Produce json
// @Success 200 {array} string
// @Router /categories [get]
func (h *VideoHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.Categories(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetStats godoc
// @Summary Catalog counters for the admin dashboard
// @Tags Videos
// @Produce json
// @Success 200 {object} domain.CatalogStats
// @Router /stats [get]
func (h *VideoHandler) GetStats(c *gin.Context) {
	stats, err := h.catalogService.Stats(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
