package usecase

import (
	"fmt"

	"github.com/solucoes-solares/shadow-api/internal/domain"
)

// FormulaFamily names the declination approximation in use, surfaced in
// response metadata so consumers know which formula family produced the
// numbers (the degrees and radians forms diverge by a fraction of a degree).
const FormulaFamily = "cooper-1969-degrees"

// SeasonPointSource is the interface for loading season reference points.
type SeasonPointSource interface {
	Points() ([]domain.SeasonPoint, error)
}

// AnalysisRequest encapsulates a seasonal shadow analysis request.
// Nil optionals fall back to the configured site defaults.
type AnalysisRequest struct {
	Lat     *float64
	Lon     *float64
	HeightM *float64
}

// AnalysisResponse contains the seasonal shadow results.
type AnalysisResponse struct {
	Site    SiteInfo          `json:"site"`
	Seasons []SeasonResult    `json:"seasons"`
	Meta    map[string]string `json:"meta"`
}

// SiteInfo echoes the analyzed site parameters.
type SiteInfo struct {
	LatitudeDeg     float64 `json:"latitude_deg"`
	LongitudeDeg    float64 `json:"longitude_deg"`
	ObstacleHeightM float64 `json:"obstacle_height_m"`
}

// SeasonResult is one season's shadow analysis. ShadowLength marshals as a
// number of meters, or the string "infinite" when the sun is at or below the
// horizon at noon.
type SeasonResult struct {
	Season         string              `json:"season"`
	DayOfYear      int                 `json:"day_of_year"`
	DeclinationDeg float64             `json:"declination_deg"`
	ElevationDeg   float64             `json:"elevation_deg"`
	ShadowLength   domain.ShadowLength `json:"shadow_length_m"`
}

// AnalysisUseCase orchestrates the seasonal shadow analysis.
type AnalysisUseCase struct {
	site     domain.Location
	obstacle domain.Obstacle
	seasons  SeasonPointSource
}

// NewAnalysisUseCase creates the use case around the configured site defaults
// and a season point source.
func NewAnalysisUseCase(site domain.Location, obstacle domain.Obstacle, seasons SeasonPointSource) *AnalysisUseCase {
	return &AnalysisUseCase{
		site:     site,
		obstacle: obstacle,
		seasons:  seasons,
	}
}

// Validate checks if the request is valid. The domain itself never errors;
// malformed input is rejected here before it reaches the calculator.
func (r *AnalysisRequest) Validate() error {
	if r.Lat != nil && (*r.Lat < -90 || *r.Lat > 90) {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if r.Lon != nil && (*r.Lon < -180 || *r.Lon > 180) {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	if r.HeightM != nil && *r.HeightM <= 0 {
		return fmt.Errorf("obstacle height must be positive")
	}
	return nil
}

// Execute performs the seasonal shadow analysis.
func (uc *AnalysisUseCase) Execute(req AnalysisRequest) (*AnalysisResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	loc := uc.site
	if req.Lat != nil {
		loc.LatitudeDeg = *req.Lat
	}
	if req.Lon != nil {
		loc.LongitudeDeg = *req.Lon
	}
	obstacle := uc.obstacle
	if req.HeightM != nil {
		obstacle.HeightM = *req.HeightM
	}

	points, err := uc.seasons.Points()
	if err != nil {
		return nil, fmt.Errorf("failed to load season reference points: %w", err)
	}

	shadows := domain.SeasonalShadows(loc, obstacle, points)

	// Convert to response format, rounding for presentation. The domain
	// values stay unrounded; only the DTO is truncated.
	seasons := make([]SeasonResult, len(shadows))
	for i, s := range shadows {
		shadow := s.Shadow
		if !shadow.Infinite {
			shadow.Meters = roundToDecimal(shadow.Meters, 3)
		}
		seasons[i] = SeasonResult{
			Season:         s.Season.Label,
			DayOfYear:      s.Season.DayOfYear,
			DeclinationDeg: roundToDecimal(s.DeclinationDeg, 2),
			ElevationDeg:   roundToDecimal(s.ElevationDeg, 2),
			ShadowLength:   shadow,
		}
	}

	return &AnalysisResponse{
		Site: SiteInfo{
			LatitudeDeg:     loc.LatitudeDeg,
			LongitudeDeg:    loc.LongitudeDeg,
			ObstacleHeightM: obstacle.HeightM,
		},
		Seasons: seasons,
		Meta: map[string]string{
			"declination_formula": FormulaFamily,
			"model":               "noon_shadow_v1",
		},
	}, nil
}

// SeasonalShadows runs the analysis with the configured defaults and returns
// the raw domain results, for collaborators that render rather than serve
// JSON (the report package).
func (uc *AnalysisUseCase) SeasonalShadows() ([]domain.SeasonShadow, error) {
	points, err := uc.seasons.Points()
	if err != nil {
		return nil, fmt.Errorf("failed to load season reference points: %w", err)
	}
	return domain.SeasonalShadows(uc.site, uc.obstacle, points), nil
}

// Site returns the configured site location.
func (uc *AnalysisUseCase) Site() domain.Location { return uc.site }

// Obstacle returns the configured obstacle.
func (uc *AnalysisUseCase) Obstacle() domain.Obstacle { return uc.obstacle }

// Helper function to round to decimal places.
func roundToDecimal(val float64, precision int) float64 {
	multiplier := 1.0
	for i := 0; i < precision; i++ {
		multiplier *= 10
	}
	if val < 0 {
		return float64(int(val*multiplier-0.5)) / multiplier
	}
	return float64(int(val*multiplier+0.5)) / multiplier
}
