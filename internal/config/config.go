// Package config loads service configuration from environment variables,
// with optional .env file support and defaults matching the reference site
// the original shadow study was commissioned for.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/solucoes-solares/shadow-api/internal/domain"
)

// Letterhead is the company branding printed on generated reports.
type Letterhead struct {
	Company  string
	Tagline  string
	WhatsApp string
	Footer   string
}

// Config holds everything the server and the report CLI need.
type Config struct {
	Port               string
	CORSAllowedOrigins string // Comma-separated; empty allows all origins.
	SeasonsCSVPath     string // Optional override for the canonical points.
	Debug              bool

	Site       domain.Location
	Obstacle   domain.Obstacle
	Letterhead Letterhead
}

// Reference site: 21°44'21.3"S, 48°06'21.4"W, 1.65 m obstacle.
var defaultSite = domain.Location{
	LatitudeDeg:  domain.DMSToDecimal(21, 44, 21.3, "S"),
	LongitudeDeg: domain.DMSToDecimal(48, 6, 21.4, "W"),
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged in first when present; real environment variables win.
func Load() (Config, error) {
	// godotenv.Load never overrides variables already set in the environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", ""),
		SeasonsCSVPath:     getEnv("SEASONS_CSV_PATH", ""),
		Debug:              getEnv("DEBUG", "") != "",
		Site:               defaultSite,
		Obstacle:           domain.Obstacle{HeightM: 1.65},
		Letterhead: Letterhead{
			Company:  getEnv("COMPANY_NAME", "Soluções Solares LTDA"),
			Tagline:  getEnv("COMPANY_TAGLINE", "Delivering solar energy solutions since 2018"),
			WhatsApp: getEnv("COMPANY_WHATSAPP", "16 99630-2896"),
			Footer:   getEnv("COMPANY_FOOTER", "This report is an integral part of our maintenance plan."),
		},
	}

	var err error
	if cfg.Site.LatitudeDeg, err = getEnvFloat("SITE_LATITUDE", cfg.Site.LatitudeDeg); err != nil {
		return Config{}, err
	}
	if cfg.Site.LongitudeDeg, err = getEnvFloat("SITE_LONGITUDE", cfg.Site.LongitudeDeg); err != nil {
		return Config{}, err
	}
	if cfg.Obstacle.HeightM, err = getEnvFloat("OBSTACLE_HEIGHT_M", cfg.Obstacle.HeightM); err != nil {
		return Config{}, err
	}

	if cfg.Site.LatitudeDeg < -90 || cfg.Site.LatitudeDeg > 90 {
		return Config{}, fmt.Errorf("SITE_LATITUDE must be between -90 and 90, got %g", cfg.Site.LatitudeDeg)
	}
	if cfg.Obstacle.HeightM <= 0 {
		return Config{}, fmt.Errorf("OBSTACLE_HEIGHT_M must be positive, got %g", cfg.Obstacle.HeightM)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
