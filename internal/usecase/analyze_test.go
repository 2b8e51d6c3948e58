package usecase

import (
	"fmt"
	"math"
	"testing"

	"github.com/solucoes-solares/shadow-api/internal/domain"
)

type staticSeasons struct {
	points []domain.SeasonPoint
	err    error
}

func (s staticSeasons) Points() ([]domain.SeasonPoint, error) { return s.points, s.err }

func newTestUseCase() *AnalysisUseCase {
	return NewAnalysisUseCase(
		domain.Location{LatitudeDeg: -21.739250, LongitudeDeg: -48.105944},
		domain.Obstacle{HeightM: 1.65},
		staticSeasons{points: domain.CanonicalSeasonPoints()},
	)
}

func TestExecute_Defaults(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(AnalysisRequest{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(resp.Seasons) != 4 {
		t.Fatalf("expected 4 seasons, got %d", len(resp.Seasons))
	}
	if resp.Site.LatitudeDeg != -21.739250 {
		t.Errorf("site latitude %.6f, expected -21.739250", resp.Site.LatitudeDeg)
	}
	if resp.Meta["declination_formula"] != FormulaFamily {
		t.Errorf("meta formula %q, expected %q", resp.Meta["declination_formula"], FormulaFamily)
	}

	// Canonical order: summer first, winter third.
	if resp.Seasons[0].DayOfYear != 355 || resp.Seasons[2].DayOfYear != 172 {
		t.Errorf("season order not preserved: %+v", resp.Seasons)
	}

	// Winter solstice values for the reference site.
	winter := resp.Seasons[2]
	if math.Abs(winter.ElevationDeg-44.81) > 0.1 {
		t.Errorf("winter elevation %.2f, expected ~44.81", winter.ElevationDeg)
	}
	if winter.ShadowLength.Infinite {
		t.Fatal("winter shadow unexpectedly infinite")
	}
	if math.Abs(winter.ShadowLength.Meters-1.661) > 0.01 {
		t.Errorf("winter shadow %.3f, expected ~1.661", winter.ShadowLength.Meters)
	}
}

func TestExecute_Overrides(t *testing.T) {
	uc := newTestUseCase()

	lat := 40.0
	height := 10.0
	resp, err := uc.Execute(AnalysisRequest{Lat: &lat, HeightM: &height})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.Site.LatitudeDeg != 40.0 {
		t.Errorf("site latitude %.2f, expected override 40.0", resp.Site.LatitudeDeg)
	}
	if resp.Site.ObstacleHeightM != 10.0 {
		t.Errorf("obstacle height %.2f, expected override 10.0", resp.Site.ObstacleHeightM)
	}
	// At 40N the December sun is low: day 355 shadow must be the longest.
	longest := resp.Seasons[0]
	for _, s := range resp.Seasons {
		if s.ShadowLength.Meters > longest.ShadowLength.Meters {
			longest = s
		}
	}
	if longest.DayOfYear != 355 {
		t.Errorf("longest shadow at day %d, expected 355 for a northern site", longest.DayOfYear)
	}
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase()

	bad := []AnalysisRequest{
		{Lat: f64(-90.5)},
		{Lat: f64(91)},
		{Lon: f64(-181)},
		{HeightM: f64(0)},
		{HeightM: f64(-1.65)},
	}
	for i, req := range bad {
		if _, err := uc.Execute(req); err == nil {
			t.Errorf("request %d: expected validation error, got nil", i)
		}
	}
}

func TestExecute_SeasonSourceError(t *testing.T) {
	uc := NewAnalysisUseCase(
		domain.Location{LatitudeDeg: -21.739250},
		domain.Obstacle{HeightM: 1.65},
		staticSeasons{err: fmt.Errorf("boom")},
	)
	if _, err := uc.Execute(AnalysisRequest{}); err == nil {
		t.Error("expected error from season source, got nil")
	}
}

func TestRoundToDecimal(t *testing.T) {
	tests := []struct {
		val       float64
		precision int
		want      float64
	}{
		{1.66092, 3, 1.661},
		{44.81097, 2, 44.81},
		{-23.44978, 2, -23.45},
		{0.04927, 3, 0.049},
	}
	for _, tc := range tests {
		if got := roundToDecimal(tc.val, tc.precision); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("roundToDecimal(%g, %d) = %g, want %g", tc.val, tc.precision, got, tc.want)
		}
	}
}

func f64(v float64) *float64 { return &v }
