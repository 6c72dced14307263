package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/clipclass/internal/narration"
)

// NarrationHandler drives the shared narration player.
type NarrationHandler struct {
	player *narration.Player
}

// NewNarrationHandler creates a new NarrationHandler.
func NewNarrationHandler(player *narration.Player) *NarrationHandler {
	return &NarrationHandler{player: player}
}

// SpeakRequest is the body of POST /narration/speak.
type SpeakRequest struct {
	Text string `json:"text" binding:"required"`
}

// Status godoc
// @Summary Narration state
// @Tags Narration
// @Produce json
// @Success 200 {object} narration.Status
// @Router /narration [get]
func (h *NarrationHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.player.Status())
}

// Speak godoc
// @Summary Speak a narration note
// @Description Starts speaking the text, cancelling any utterance in progress.
// @Tags Narration
// @Accept json
// @Produce json
// @Param request body SpeakRequest true "Text to speak"
// @Success 202 {object} narration.Status
// @Failure 400 {object} gin.H "Missing text"
// @Router /narration/speak [post]
func (h *NarrationHandler) Speak(c *gin.Context) {
	var req SpeakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if _, err := h.player.Speak(req.Text); err != nil {
		if errors.Is(err, narration.ErrEmptyUtterance) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, h.player.Status())
}

// Cancel godoc
// @Summary Stop the current narration
// @Tags Narration
// @Produce json
// @Success 200 {object} narration.Status
// @Router /narration/cancel [post]
func (h *NarrationHandler) Cancel(c *gin.Context) {
	h.player.Cancel()
	c.JSON(http.StatusOK, h.player.Status())
}
