package chart

import (
	"encoding/base64"
	"testing"

	"github.com/solucoes-solares/shadow-api/internal/domain"
)

func testShadows() []domain.SeasonShadow {
	loc := domain.Location{LatitudeDeg: -21.739250}
	return domain.SeasonalShadows(loc, domain.Obstacle{HeightM: 1.65}, domain.CanonicalSeasonPoints())
}

func assertPNG(t *testing.T, encoded string) {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("chart is not valid base64: %v", err)
	}
	if len(raw) < 8 || string(raw[1:4]) != "PNG" {
		t.Fatal("chart does not start with a PNG signature")
	}
}

func TestShadowBarChart(t *testing.T) {
	encoded, err := ShadowBarChart(testShadows(), domain.Obstacle{HeightM: 1.65})
	if err != nil {
		t.Fatalf("ShadowBarChart: %v", err)
	}
	assertPNG(t, encoded)
}

func TestShadowBarChart_InfiniteShadow(t *testing.T) {
	// Polar night: the infinite shadow must render as a zero bar, not error.
	shadows := domain.SeasonalShadows(
		domain.Location{LatitudeDeg: 78},
		domain.Obstacle{HeightM: 1.0},
		domain.CanonicalSeasonPoints(),
	)
	encoded, err := ShadowBarChart(shadows, domain.Obstacle{HeightM: 1.0})
	if err != nil {
		t.Fatalf("ShadowBarChart: %v", err)
	}
	assertPNG(t, encoded)
}

func TestElevationBarChart(t *testing.T) {
	encoded, err := ElevationBarChart(testShadows())
	if err != nil {
		t.Fatalf("ElevationBarChart: %v", err)
	}
	assertPNG(t, encoded)
}
