package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AlexGerus/dolf-charts/internal/handler"
)

// Config carries the handlers and middleware the router wires together.
type Config struct {
	ScenarioHandler *handler.ScenarioHandler
	LiveHandler     *handler.LiveHandler
	UploadLimiter   gin.HandlerFunc
}

// NewRouter assembles the gin engine.
func NewRouter(cfg *Config) *gin.Engine {
	router := gin.Default()

	router.GET("/health", cfg.ScenarioHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/v1/")
	registerScenarioRoutes(api, cfg)

	return router
}
