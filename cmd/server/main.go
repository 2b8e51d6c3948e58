// Package main provides the shadow analysis HTTP server.
package main

import (
	"flag"
	"fmt"

	"github.com/solucoes-solares/shadow-api/internal/adapter/seasonstore"
	"github.com/solucoes-solares/shadow-api/internal/config"
	httpHandler "github.com/solucoes-solares/shadow-api/internal/http"
	"github.com/solucoes-solares/shadow-api/internal/logger"
	"github.com/solucoes-solares/shadow-api/internal/report"
	"github.com/solucoes-solares/shadow-api/internal/usecase"
)

const version = "0.1.0"

func main() {
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}

	if *showVersion {
		fmt.Printf("shadow-api version %s\n", version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		// The logger is not up yet.
		fmt.Printf("failed to load configuration: %v\n", err)
		return
	}

	if err := logger.Init(cfg.Debug); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		return
	}
	defer logger.Sync()

	logger.Infof("Starting shadow analysis server...")
	logger.Infof("Site: %.6f, %.6f", cfg.Site.LatitudeDeg, cfg.Site.LongitudeDeg)
	logger.Infof("Obstacle height: %.2f m", cfg.Obstacle.HeightM)
	if cfg.SeasonsCSVPath != "" {
		logger.Infof("Season points override: %s", cfg.SeasonsCSVPath)
	}

	// Initialize the season point source and use case.
	seasons := seasonstore.NewStore(cfg.SeasonsCSVPath)
	analysisUC := usecase.NewAnalysisUseCase(cfg.Site, cfg.Obstacle, seasons)

	letterhead := report.Letterhead{
		Company:  cfg.Letterhead.Company,
		Tagline:  cfg.Letterhead.Tagline,
		WhatsApp: cfg.Letterhead.WhatsApp,
		Footer:   cfg.Letterhead.Footer,
	}

	// Setup router.
	router := httpHandler.SetupRouter(analysisUC, letterhead, cfg.CORSAllowedOrigins)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Infof("Server listening on %s", addr)
	logger.Infof("API endpoints:")
	logger.Infof("  - GET /v1/shadows/seasonal")
	logger.Infof("  - GET /v1/shadows/report")
	logger.Infof("  - GET /v1/shadows/report.pdf")

	if err := router.Run(addr); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}

// printUsage prints usage information.
func printUsage() {
	fmt.Printf("Shadow API Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  shadow-api [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PORT                  Server port (default: 8080)")
	fmt.Println("  SITE_LATITUDE         Site latitude in decimal degrees (default: reference site)")
	fmt.Println("  SITE_LONGITUDE        Site longitude in decimal degrees (default: reference site)")
	fmt.Println("  OBSTACLE_HEIGHT_M     Obstacle height in meters (default: 1.65)")
	fmt.Println("  SEASONS_CSV_PATH      Optional CSV overriding the season reference points")
	fmt.Println("  CORS_ALLOWED_ORIGINS  Comma-separated allowed origins (default: all origins)")
	fmt.Println("  COMPANY_NAME          Report letterhead company name")
	fmt.Println("  DEBUG                 Any value enables debug logging")
	fmt.Println()
	fmt.Println("A .env file in the working directory is loaded when present.")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET /health                  Health check")
	fmt.Println("  GET /v1/shadows/seasonal     Seasonal shadow analysis (JSON)")
	fmt.Println("  GET /v1/shadows/report       Self-contained HTML report with charts")
	fmt.Println("  GET /v1/shadows/report.pdf   PDF report")
	fmt.Println()
}
