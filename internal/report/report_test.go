package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/solucoes-solares/shadow-api/internal/domain"
)

func testParams() Params {
	site := domain.Location{LatitudeDeg: -21.739250, LongitudeDeg: -48.105944}
	obstacle := domain.Obstacle{HeightM: 1.65}
	return Params{
		Letterhead: Letterhead{
			Company:  "Soluções Solares LTDA",
			Tagline:  "Delivering solar energy solutions since 2018",
			WhatsApp: "16 99630-2896",
			Footer:   "This report is an integral part of our maintenance plan.",
		},
		Site:        site,
		Obstacle:    obstacle,
		Shadows:     domain.SeasonalShadows(site, obstacle, domain.CanonicalSeasonPoints()),
		GeneratedAt: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	}
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, testParams()); err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	html := buf.String()

	// DMS strings contain quote characters that html/template escapes, so
	// match on the escape-free prefixes.
	for _, want := range []string{
		"<!DOCTYPE html>",
		"Soluções Solares LTDA",
		"Lat: 21°44",
		"Lon: 48°06",
		"Winter solstice (Jun 21)",
		"data:image/png;base64,",
		"Cooper (1969), degrees form",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("report HTML missing %q", want)
		}
	}

	// Both charts must be embedded.
	if strings.Count(html, "data:image/png;base64,") != 2 {
		t.Errorf("expected 2 embedded charts, found %d", strings.Count(html, "data:image/png;base64,"))
	}

	// The reference site's longest noon shadow is the winter solstice one.
	if !strings.Contains(html, "1.66 m") {
		t.Error("report HTML missing the winter shadow length 1.66 m")
	}
}

func TestRenderHTML_InfiniteShadow(t *testing.T) {
	p := testParams()
	p.Site = domain.Location{LatitudeDeg: 78}
	p.Shadows = domain.SeasonalShadows(p.Site, p.Obstacle, domain.CanonicalSeasonPoints())

	var buf bytes.Buffer
	if err := RenderHTML(&buf, p); err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if !strings.Contains(buf.String(), "infinite") {
		t.Error("report for a polar site should mention the infinite shadow")
	}
}

func TestRenderPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPDF(&buf, testParams()); err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("PDF output missing %PDF header")
	}
}

func TestFormatDMS(t *testing.T) {
	tests := []struct {
		decimal float64
		isLat   bool
		want    string
	}{
		{-21.739250, true, `21°44'21.3"S`},
		{-48.105944, false, `48°06'21.4"W`},
		{21.739250, true, `21°44'21.3"N`},
		{48.105944, false, `48°06'21.4"E`},
	}
	for _, tc := range tests {
		if got := FormatDMS(tc.decimal, tc.isLat); got != tc.want {
			t.Errorf("FormatDMS(%g, %v) = %q, want %q", tc.decimal, tc.isLat, got, tc.want)
		}
	}
}
