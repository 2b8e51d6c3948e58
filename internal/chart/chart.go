// Package chart renders the report's charts as base64-encoded PNGs suitable
// for inline data-URI embedding in the HTML report.
package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/solucoes-solares/shadow-api/internal/domain"
)

var (
	obstacleColor = color.RGBA{R: 0x2E, G: 0x86, B: 0xAB, A: 0xFF}
	shadowColor   = color.RGBA{R: 0xA2, G: 0x3B, B: 0x72, A: 0xFF}
)

// ShadowBarChart renders a grouped bar chart comparing the obstacle height
// against the shadow length of each season. An unbounded shadow is drawn as
// a zero bar; the report table carries the "infinite" wording.
func ShadowBarChart(shadows []domain.SeasonShadow, obstacle domain.Obstacle) (string, error) {
	p := plot.New()
	p.Title.Text = "Obstacle Height vs Shadow Length"
	p.Y.Label.Text = "Distance (m)"

	heights := make(plotter.Values, len(shadows))
	lengths := make(plotter.Values, len(shadows))
	labels := make([]string, len(shadows))
	for i, s := range shadows {
		heights[i] = obstacle.HeightM
		if !s.Shadow.Infinite {
			lengths[i] = s.Shadow.Meters
		}
		labels[i] = s.Season.Label
	}

	w := vg.Points(18)

	obstacleBars, err := plotter.NewBarChart(heights, w)
	if err != nil {
		return "", fmt.Errorf("failed to build obstacle bars: %w", err)
	}
	obstacleBars.LineStyle.Width = 0
	obstacleBars.Color = obstacleColor
	obstacleBars.Offset = -w / 2

	shadowBars, err := plotter.NewBarChart(lengths, w)
	if err != nil {
		return "", fmt.Errorf("failed to build shadow bars: %w", err)
	}
	shadowBars.LineStyle.Width = 0
	shadowBars.Color = shadowColor
	shadowBars.Offset = w / 2

	p.Add(obstacleBars, shadowBars)
	p.Legend.Add("Obstacle height", obstacleBars)
	p.Legend.Add("Shadow length", shadowBars)
	p.Legend.Top = true
	p.NominalX(labels...)

	return encodePNG(p, 6*vg.Inch, 4*vg.Inch)
}

// ElevationBarChart renders the noon solar elevation of each season.
func ElevationBarChart(shadows []domain.SeasonShadow) (string, error) {
	p := plot.New()
	p.Title.Text = "Noon Solar Elevation by Season"
	p.Y.Label.Text = "Elevation (deg)"
	p.Y.Max = 90

	elevations := make(plotter.Values, len(shadows))
	labels := make([]string, len(shadows))
	for i, s := range shadows {
		elevations[i] = s.ElevationDeg
		labels[i] = s.Season.Label
	}

	bars, err := plotter.NewBarChart(elevations, vg.Points(28))
	if err != nil {
		return "", fmt.Errorf("failed to build elevation bars: %w", err)
	}
	bars.LineStyle.Width = 0
	bars.Color = obstacleColor

	p.Add(bars)
	p.NominalX(labels...)

	return encodePNG(p, 6*vg.Inch, 4*vg.Inch)
}

// encodePNG renders the plot to PNG and base64-encodes it.
func encodePNG(p *plot.Plot, width, height vg.Length) (string, error) {
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("failed to encode chart PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
