package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"alcyxob/clipclass/internal/logger"
	"alcyxob/clipclass/internal/narration"
	"alcyxob/clipclass/internal/service"
)

// NewRouter builds the engine with the standard middleware chain and all routes.
func NewRouter(corsOrigins []string, log *logger.Logger, catalogService service.CatalogService, player *narration.Player) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(log), Metrics())
	if len(corsOrigins) > 0 {
		router.Use(CORS(corsOrigins))
	}
	SetupRoutes(router, catalogService, player)
	return router
}

func SetupRoutes(
	router *gin.Engine,
	catalogService service.CatalogService,
	player *narration.Player,
) {
	videoHandler := NewVideoHandler(catalogService)
	planHandler := NewPlanHandler(catalogService)
	narrationHandler := NewNarrationHandler(player)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := router.Group("/api/v1")
	{
		// --- Catalog Routes ---
		videoGroup := apiV1.Group("/videos")
		{
			videoGroup.GET("", videoHandler.ListVideos)
			videoGroup.POST("", videoHandler.CreateVideo)
			videoGroup.GET("/:id", videoHandler.GetVideo)
			videoGroup.PATCH("/:id", videoHandler.UpdateVideo)
			videoGroup.DELETE("/:id", videoHandler.DeleteVideo)
		}
		apiV1.GET("/categories", videoHandler.ListCategories)
		apiV1.GET("/stats", videoHandler.GetStats)

		// --- Plan Routes ---
		apiV1.POST("/plans", planHandler.GeneratePlan)
		apiV1.POST("/classes", planHandler.ComposeClass)

		apiV1.GET("/embed", DeriveEmbed)

		// --- Narration Routes ---
		narrationGroup := apiV1.Group("/narration")
		{
			narrationGroup.GET("", narrationHandler.Status)
			narrationGroup.POST("/speak", narrationHandler.Speak)
			narrationGroup.POST("/cancel", narrationHandler.Cancel)
		}
	}
}
