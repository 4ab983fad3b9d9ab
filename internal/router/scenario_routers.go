package router

import (
	"github.com/gin-gonic/gin"
)

func registerScenarioRoutes(api *gin.RouterGroup, cfg *Config) {
	scenarios := api.Group("/scenarios")
	{
		scenarios.POST("", cfg.UploadLimiter, cfg.ScenarioHandler.Upload)
		scenarios.GET("", cfg.ScenarioHandler.List)
		scenarios.GET("/count", cfg.ScenarioHandler.Count)
		scenarios.GET("/live", cfg.LiveHandler.Serve)
		scenarios.DELETE("", cfg.ScenarioHandler.Clear)
	}

	// Indexed routes live under a singular group: gin's routing tree does
	// not allow ":index" next to the static /count and /live segments.
	scenario := api.Group("/scenario")
	{
		scenario.DELETE("/:index", cfg.ScenarioHandler.Remove)
		scenario.GET("/:index/series", cfg.ScenarioHandler.Series)
		scenario.GET("/:index/stats", cfg.ScenarioHandler.Stats)
	}
}
