package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/iftikharqureshi/plain-english-explainer/internal/config"
	config_http "github.com/iftikharqureshi/plain-english-explainer/internal/features/config/presentation/http"
	"github.com/iftikharqureshi/plain-english-explainer/internal/features/explainer/application"
	"github.com/iftikharqureshi/plain-english-explainer/internal/features/explainer/infrastructure"
	explainer_http "github.com/iftikharqureshi/plain-english-explainer/internal/features/explainer/presentation/http"
	"github.com/iftikharqureshi/plain-english-explainer/internal/middleware"
	"github.com/iftikharqureshi/plain-english-explainer/web"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	r := gin.Default()
	r.Use(middleware.RequestID())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Embedded single-page UI
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.Index())
	})

	// Initialize services. The OpenAI client is resolved lazily per
	// request, so a missing credential is a per-action configuration
	// error instead of a startup crash.
	explainerService := application.NewExplainerService(infrastructure.SharedClient)
	appConfigService := config.NewAppConfigService("config/app_config.json")

	// Explainer API routes
	explainGroup := r.Group("/api")
	{
		handler := explainer_http.NewExplainerHandler(explainerService, appConfigService)
		explainGroup.POST("/explain", handler.ExplainHandler)
	}

	// Config API routes
	configGroup := r.Group("/api/config")
	{
		configGroup.GET("/app", config_http.NewAppConfigHandler(appConfigService).GetAppConfigHandler)
		configGroup.POST("/app", config_http.NewAppConfigHandler(appConfigService).SaveAppConfigHandler)
	}

	r.Run(":8080") // listen and serve on 0.0.0.0:8080
}
