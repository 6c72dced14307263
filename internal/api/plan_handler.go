package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/clipclass/internal/service"
)

// PlanHandler serves generated workout plans and hand-picked classes.
type PlanHandler struct {
	catalogService service.CatalogService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(catalogService service.CatalogService) *PlanHandler {
	return &PlanHandler{catalogService: catalogService}
}

// --- DTOs ---

// GeneratePlanRequest is the body of POST /plans. An empty query is allowed
// and yields a beginner fallback plan.
type GeneratePlanRequest struct {
	Query string `json:"query"`
}

// ComposeClassRequest is the body of POST /classes.
type ComposeClassRequest struct {
	VideoIDs []string `json:"videoIds" binding:"required,min=1"`
}

// --- Handler Methods ---

// GeneratePlan godoc
// @Summary Generate a workout plan
// @Description Scores the catalog against a free-text request and returns the best matches with narration.
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body GeneratePlanRequest true "Workout request"
// @Success 200 {object} domain.WorkoutPlan
// @Failure 400 {object} gin.H "Invalid request body"
// @Router /plans [post]
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	plan, err := h.catalogService.GenerateWorkoutPlan(c.Request.Context(), req.Query)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// ComposeClass godoc
// @Summary Build a class from selected videos
// @Description Resolves the selected video IDs in order and totals their duration. Unknown IDs are reported, not fatal.
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body ComposeClassRequest true "Selected videos"
// @Success 200 {object} domain.ClassSummary
// @Failure 400 {object} gin.H "Invalid request body"
// @Router /classes [post]
func (h *PlanHandler) ComposeClass(c *gin.Context) {
	var req ComposeClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	summary, err := h.catalogService.ComposeClass(c.Request.Context(), req.VideoIDs)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
