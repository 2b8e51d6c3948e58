package http

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/solucoes-solares/shadow-api/internal/report"
	"github.com/solucoes-solares/shadow-api/internal/usecase"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(analysisUC *usecase.AnalysisUseCase, letterhead report.Letterhead, allowedOrigins string) *gin.Engine {

	router := gin.Default()

	// Setup CORS middleware. Default to allow all origins when no list is
	// configured.
	corsConfig := cors.DefaultConfig()
	if allowedOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	// Create handler.
	handler := NewHandler(analysisUC, letterhead)

	// API v1 routes.
	v1 := router.Group("/v1")
	shadows := v1.Group("/shadows")
	shadows.GET("/seasonal", handler.GetSeasonal)
	shadows.GET("/report", handler.GetReport)
	shadows.GET("/report.pdf", handler.GetReportPDF)

	// Health check.
	router.GET("/health", handler.HealthCheck)

	return router
}
