package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/AlexGerus/dolf-charts/config"
	"github.com/AlexGerus/dolf-charts/internal/handler"
	"github.com/AlexGerus/dolf-charts/internal/router"
	"github.com/AlexGerus/dolf-charts/internal/scenario"
	"github.com/AlexGerus/dolf-charts/internal/store"
	"github.com/AlexGerus/dolf-charts/internal/upload"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if !cfg.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	scenarioStore := store.New()
	parser := scenario.NewParser()
	coordinator := upload.NewCoordinator(parser, scenarioStore, logger)

	scenarioHandler := handler.NewScenarioHandler(coordinator, scenarioStore, logger)
	liveHandler := handler.NewLiveHandler(scenarioStore, logger)

	uploadLimiter := rate.NewLimiter(rate.Limit(cfg.UploadRateLimit), cfg.UploadBurst)

	routerConfig := &router.Config{
		ScenarioHandler: scenarioHandler,
		LiveHandler:     liveHandler,
		UploadLimiter:   router.RateLimit(uploadLimiter),
	}

	r := router.NewRouter(routerConfig)

	logger.WithField("port", cfg.ServerPort).Info("Starting scenario chart service")
	if err := r.Run(fmt.Sprintf(":%s", cfg.ServerPort)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
