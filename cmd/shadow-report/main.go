// Command shadow-report computes the seasonal shadow analysis for the
// configured site and writes the self-contained HTML report (or the PDF
// rendition) to a file.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/solucoes-solares/shadow-api/internal/adapter/seasonstore"
	"github.com/solucoes-solares/shadow-api/internal/config"
	"github.com/solucoes-solares/shadow-api/internal/domain"
	"github.com/solucoes-solares/shadow-api/internal/logger"
	"github.com/solucoes-solares/shadow-api/internal/report"
)

func main() {
	// Command line flags. Site parameters fall back to the environment
	// configuration, which falls back to the reference site.
	outPath := flag.String("out", "shadow-report.html", "Output file path")
	format := flag.String("format", "html", "Report format: html or pdf")
	lat := flag.Float64("lat", 0, "Site latitude in decimal degrees (overrides configuration)")
	height := flag.Float64("height", 0, "Obstacle height in meters (overrides configuration)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Debug); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if isFlagSet("lat") {
		cfg.Site.LatitudeDeg = *lat
	}
	if isFlagSet("height") {
		cfg.Obstacle.HeightM = *height
	}
	if cfg.Site.LatitudeDeg < -90 || cfg.Site.LatitudeDeg > 90 {
		logger.Fatalf("latitude must be between -90 and 90, got %g", cfg.Site.LatitudeDeg)
	}
	if cfg.Obstacle.HeightM <= 0 {
		logger.Fatalf("obstacle height must be positive, got %g", cfg.Obstacle.HeightM)
	}

	points, err := seasonstore.NewStore(cfg.SeasonsCSVPath).Points()
	if err != nil {
		logger.Fatalf("failed to load season reference points: %v", err)
	}

	shadows := domain.SeasonalShadows(cfg.Site, cfg.Obstacle, points)
	for _, s := range shadows {
		logger.Infof("%-28s day %3d  declination %6.2f  elevation %6.2f  shadow %s",
			s.Season.Label, s.Season.DayOfYear, s.DeclinationDeg, s.ElevationDeg, s.Shadow)
	}

	params := report.Params{
		Letterhead: report.Letterhead{
			Company:  cfg.Letterhead.Company,
			Tagline:  cfg.Letterhead.Tagline,
			WhatsApp: cfg.Letterhead.WhatsApp,
			Footer:   cfg.Letterhead.Footer,
		},
		Site:        cfg.Site,
		Obstacle:    cfg.Obstacle,
		Shadows:     shadows,
		GeneratedAt: time.Now(),
	}

	file, err := os.Create(*outPath)
	if err != nil {
		logger.Fatalf("failed to create %s: %v", *outPath, err)
	}
	defer func() { _ = file.Close() }()

	switch *format {
	case "html":
		err = report.RenderHTML(file, params)
	case "pdf":
		err = report.RenderPDF(file, params)
	default:
		logger.Fatalf("unknown format %q (want html or pdf)", *format)
	}
	if err != nil {
		logger.Fatalf("failed to render report: %v", err)
	}

	logger.Infof("Report written to %s", *outPath)
}

// isFlagSet reports whether the named flag was passed on the command line,
// distinguishing an explicit zero from an absent flag.
func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
