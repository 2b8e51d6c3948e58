package domain

// SeasonPoint pairs a season label with the integer day-of-year approximating
// its solstice or equinox. The four canonical points are fixed calendar
// constants, not positions derived from an astronomical calendar.
type SeasonPoint struct {
	Label     string
	DayOfYear int
}

// SeasonShadow is the shadow analysis for one reference point.
type SeasonShadow struct {
	Season SeasonPoint
	ShadowResult
}

// CanonicalSeasonPoints returns the four Southern-hemisphere reference points
// in their display order. Callers get a fresh slice each time so the
// canonical constants cannot be mutated through a shared backing array.
func CanonicalSeasonPoints() []SeasonPoint {
	return []SeasonPoint{
		{Label: "Summer solstice (Dec 21)", DayOfYear: 355},
		{Label: "Autumn equinox (Mar 21)", DayOfYear: 80},
		{Label: "Winter solstice (Jun 21)", DayOfYear: 172},
		{Label: "Spring equinox (Sep 23)", DayOfYear: 266},
	}
}

// SeasonalShadows evaluates declination, noon elevation and shadow length for
// each reference point. The result preserves the input order, which is
// observable in report rendering but carries no other meaning. The function
// is pure: identical inputs produce bit-identical output.
func SeasonalShadows(loc Location, obstacle Obstacle, points []SeasonPoint) []SeasonShadow {
	results := make([]SeasonShadow, 0, len(points))
	for _, p := range points {
		decl := Declination(p.DayOfYear)
		elev := NoonElevation(loc.LatitudeDeg, decl)
		results = append(results, SeasonShadow{
			Season: p,
			ShadowResult: ShadowResult{
				DeclinationDeg: decl,
				ElevationDeg:   elev,
				Shadow:         ShadowLengthFor(obstacle.HeightM, elev),
			},
		})
	}
	return results
}
