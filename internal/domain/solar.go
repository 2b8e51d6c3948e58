// Package domain implements the solar-position and shadow-length model: the
// approximate solar declination for a day of the year, the noon solar
// elevation at a latitude, and the horizontal shadow cast by a vertical
// obstacle. All functions are pure and total; the only distinguished outcome
// is the infinite-shadow sentinel when the sun is at or below the horizon.
package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// Location is a geographic site in signed decimal degrees
// (negative latitude = Southern hemisphere, negative longitude = West).
// Longitude is carried for display only; the noon elevation formula does not
// use it (the hour angle at solar noon is zero regardless of longitude).
type Location struct {
	LatitudeDeg  float64
	LongitudeDeg float64
}

// Obstacle is a vertical, planar, infinitely thin obstruction.
type Obstacle struct {
	HeightM float64
}

// ShadowLength is the horizontal projection of an obstacle's shadow.
// When the sun is at or below the horizon the shadow is unbounded and
// Infinite is set; Meters is meaningful only when Infinite is false.
type ShadowLength struct {
	Meters   float64
	Infinite bool
}

// ShadowResult holds the derived solar quantities for one day of the year.
type ShadowResult struct {
	DeclinationDeg float64
	ElevationDeg   float64
	Shadow         ShadowLength
}

// MarshalJSON encodes a finite shadow as a number and an unbounded one as the
// string "infinite", so downstream formatting never sees a float Inf or NaN.
func (s ShadowLength) MarshalJSON() ([]byte, error) {
	if s.Infinite {
		return json.Marshal("infinite")
	}
	return json.Marshal(s.Meters)
}

// UnmarshalJSON accepts the two encodings MarshalJSON produces.
func (s *ShadowLength) UnmarshalJSON(data []byte) error {
	if string(data) == `"infinite"` {
		*s = ShadowLength{Infinite: true}
		return nil
	}
	var meters float64
	if err := json.Unmarshal(data, &meters); err != nil {
		return fmt.Errorf("invalid shadow length %s: %w", data, err)
	}
	*s = ShadowLength{Meters: meters}
	return nil
}

func (s ShadowLength) String() string {
	if s.Infinite {
		return "infinite"
	}
	return fmt.Sprintf("%.2f m", s.Meters)
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func radToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }

// Declination returns the approximate solar declination in degrees for a day
// of the year (1 = January 1st) using the Cooper (1969) degrees-form
// approximation:
//
//	δ = 23.45° · sin(360°/365 · (284 + n))
//
// This is the formula family the rest of the model is built on. Accuracy is
// on the order of a degree, which is adequate for shadow planning.
func Declination(dayOfYear int) float64 {
	return 23.45 * math.Sin(degToRad(360.0/365.0*(284.0+float64(dayOfYear))))
}

// DeclinationRadiansForm returns the solar declination in degrees using the
// alternate radians-form approximation δ = 0.409·sin(2π/365·n − 1.39).
// It agrees with Declination to within about a degree over the year but is
// not bit-identical to it. It exists for cross-checking the primary formula
// (see cmd/formula-compare); SeasonalShadows does not use it.
func DeclinationRadiansForm(dayOfYear int) float64 {
	return radToDeg(0.409 * math.Sin(2.0*math.Pi/365.0*float64(dayOfYear)-1.39))
}

// Elevation returns the solar elevation angle in degrees:
//
//	sin(α) = sin(φ)·sin(δ) + cos(φ)·cos(δ)·cos(ω)
//
// The asin argument is clamped to [-1, 1] to absorb floating-point overshoot,
// making the function total over all real inputs. A negative result (sun
// below the horizon) is propagated; ShadowLengthFor owns that special case.
func Elevation(latitudeDeg, declinationDeg, hourAngleDeg float64) float64 {
	lat := degToRad(latitudeDeg)
	dec := degToRad(declinationDeg)
	ha := degToRad(hourAngleDeg)

	sinAlpha := math.Sin(lat)*math.Sin(dec) + math.Cos(lat)*math.Cos(dec)*math.Cos(ha)
	sinAlpha = math.Max(-1.0, math.Min(1.0, sinAlpha))

	return radToDeg(math.Asin(sinAlpha))
}

// NoonElevation returns the solar elevation at solar noon (hour angle zero),
// the only instant this model evaluates.
func NoonElevation(latitudeDeg, declinationDeg float64) float64 {
	return Elevation(latitudeDeg, declinationDeg, 0)
}

// ShadowLengthFor converts an obstacle height and a solar elevation into a
// shadow length, L = h/tan(α). At elevation ≤ 0 the shadow is unbounded and
// the infinite sentinel is returned instead of a division result. No
// rounding is applied; formatting is a presentation concern.
func ShadowLengthFor(heightM, elevationDeg float64) ShadowLength {
	if elevationDeg <= 0 {
		return ShadowLength{Infinite: true}
	}
	return ShadowLength{Meters: heightM / math.Tan(degToRad(elevationDeg))}
}

// DMSToDecimal converts degrees/minutes/seconds coordinates to signed decimal
// degrees. Direction "S" and "W" produce negative values.
func DMSToDecimal(degrees, minutes, seconds float64, direction string) float64 {
	decimal := degrees + minutes/60.0 + seconds/3600.0
	if direction == "S" || direction == "W" {
		return -decimal
	}
	return decimal
}
