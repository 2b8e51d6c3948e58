// Package report renders the seasonal shadow study as a self-contained HTML
// document, and as a compact PDF. It is a pure presentation collaborator: it
// reads the domain results and never feeds anything back into the
// calculation.
package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"math"
	"time"

	"github.com/solucoes-solares/shadow-api/internal/chart"
	"github.com/solucoes-solares/shadow-api/internal/domain"
)

//go:embed report.tmpl
var templateFS embed.FS

// Letterhead is the branding block printed at the top and bottom of reports.
type Letterhead struct {
	Company  string
	Tagline  string
	WhatsApp string
	Footer   string
}

// Params bundles everything a report rendering needs.
type Params struct {
	Letterhead  Letterhead
	Site        domain.Location
	Obstacle    domain.Obstacle
	Shadows     []domain.SeasonShadow
	GeneratedAt time.Time
}

// templateData is Params plus derived presentation values. The chart fields
// are typed template.URL so html/template does not strip the data: scheme.
type templateData struct {
	Params
	LatDMS          string
	LonDMS          string
	ShadowChart     template.URL
	ElevationChart  template.URL
	LongestSeason   string
	LongestShadow   string
	ShortestSeason  string
	ShortestShadow  string
	FormulaFamily   string
	AnyInfinite     bool
	GeneratedAtText string
}

var reportTemplate = template.Must(template.New("report.tmpl").Funcs(template.FuncMap{
	"deg": func(v float64) string { return fmt.Sprintf("%.1f°", v) },
	"dec": func(v float64) string { return fmt.Sprintf("%.6f°", v) },
	"m":   func(v float64) string { return fmt.Sprintf("%.2f m", v) },
	"shadow": func(s domain.ShadowLength) string {
		if s.Infinite {
			return "infinite (sun at or below horizon)"
		}
		return fmt.Sprintf("%.2f m", s.Meters)
	},
}).ParseFS(templateFS, "report.tmpl"))

// RenderHTML writes the full HTML report, charts included, to w.
func RenderHTML(w io.Writer, p Params) error {
	shadowChart, err := chart.ShadowBarChart(p.Shadows, p.Obstacle)
	if err != nil {
		return fmt.Errorf("failed to render shadow chart: %w", err)
	}
	elevationChart, err := chart.ElevationBarChart(p.Shadows)
	if err != nil {
		return fmt.Errorf("failed to render elevation chart: %w", err)
	}

	data := templateData{
		Params:          p,
		LatDMS:          FormatDMS(p.Site.LatitudeDeg, true),
		LonDMS:          FormatDMS(p.Site.LongitudeDeg, false),
		ShadowChart:     template.URL("data:image/png;base64," + shadowChart),
		ElevationChart:  template.URL("data:image/png;base64," + elevationChart),
		FormulaFamily:   "Cooper (1969), degrees form",
		GeneratedAtText: p.GeneratedAt.Format("2006-01-02 15:04"),
	}
	data.LongestSeason, data.LongestShadow, data.ShortestSeason, data.ShortestShadow, data.AnyInfinite = extremes(p.Shadows)

	if err := reportTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute report template: %w", err)
	}
	return nil
}

// extremes finds the seasons with the longest and shortest shadows for the
// conclusion section. An infinite shadow counts as the longest.
func extremes(shadows []domain.SeasonShadow) (longestSeason, longestText, shortestSeason, shortestText string, anyInfinite bool) {
	if len(shadows) == 0 {
		return "", "", "", "", false
	}

	longest := math.Inf(-1)
	shortest := math.Inf(1)
	for _, s := range shadows {
		if s.Shadow.Infinite {
			anyInfinite = true
			longestSeason = s.Season.Label
			longestText = "unbounded"
			continue
		}
		if s.Shadow.Meters > longest {
			longest = s.Shadow.Meters
			if !anyInfinite {
				longestSeason = s.Season.Label
				longestText = fmt.Sprintf("%.2f m", s.Shadow.Meters)
			}
		}
		if s.Shadow.Meters < shortest {
			shortest = s.Shadow.Meters
			shortestSeason = s.Season.Label
			shortestText = fmt.Sprintf("%.2f m", s.Shadow.Meters)
		}
	}
	return longestSeason, longestText, shortestSeason, shortestText, anyInfinite
}

// FormatDMS formats a signed decimal coordinate as degrees/minutes/seconds
// with the hemisphere suffix, e.g. -21.739250 → 21°44'21.3"S.
func FormatDMS(decimal float64, isLatitude bool) string {
	suffix := "N"
	if isLatitude {
		if decimal < 0 {
			suffix = "S"
		}
	} else {
		suffix = "E"
		if decimal < 0 {
			suffix = "W"
		}
	}

	abs := math.Abs(decimal)
	deg := math.Floor(abs)
	minF := (abs - deg) * 60
	min := math.Floor(minF)
	sec := (minF - min) * 60

	return fmt.Sprintf("%.0f°%02.0f'%04.1f\"%s", deg, min, sec, suffix)
}
