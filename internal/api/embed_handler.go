package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/clipclass/internal/embed"
)

// DeriveEmbed godoc
// @Summary Derive player links from a YouTube link
// @Description Accepts watch, short, embed and shorts links or a bare 11 character ID.
// @Tags Embed
// @Produce json
// @Param url query string true "Source link"
// @Success 200 {object} embed.Links
// @Failure 422 {object} gin.H "No video identifier found"
// @Router /embed [get]
func DeriveEmbed(c *gin.Context) {
	links, ok := embed.Derive(c.Query("url"))
	if !ok {
		abortWithError(c, http.StatusUnprocessableEntity, "no video identifier")
		return
	}
	c.JSON(http.StatusOK, links)
}
