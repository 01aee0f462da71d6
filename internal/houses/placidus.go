package houses

import (
	"math"

	"github.com/talgya/skyhouses/internal/angle"
)

// QuadrantLatitudeLimit is the largest |latitude| accepted by the time-based
// quadrant systems (Placidus, Koch, Morinus, Topocentric). The semi-arc
// construction is still defined a little beyond it; the limit is the
// conventional cut-off rather than the trigonometric one.
const QuadrantLatitudeLimit = 60.0

const (
	placidusMaxIterations = 100
	placidusTolerance     = 1e-10
)

func checkLatitudeLimit(s System, latitude float64) error {
	limit, ok := s.LatitudeLimit()
	if ok && math.Abs(latitude) > limit {
		return latitudeLimitExceeded(s, latitude)
	}
	return nil
}

// Placidus divides the diurnal and nocturnal semi-arcs into thirds: the
// cusp of house 11 is the ecliptic point a third of its own semi-arc past
// the meridian, house 12 two thirds, and likewise below the horizon for
// houses 2 and 3.
func Placidus(lst, latitude, obliquity float64) (CuspSet, error) {
	if err := checkLatitudeLimit(SystemPlacidus, latitude); err != nil {
		return CuspSet{}, err
	}
	return placidus(lst, latitude, obliquity), nil
}

// placidus is the unguarded construction shared with Topocentric.
func placidus(lst, latitude, obliquity float64) CuspSet {
	ramc := Midheaven(lst)
	return quadrantSet(
		Ascendant(ramc, latitude, obliquity),
		ramc,
		semiArcCusp(ramc, latitude, obliquity, 1.0/3, true),
		semiArcCusp(ramc, latitude, obliquity, 2.0/3, true),
		semiArcCusp(ramc, latitude, obliquity, 2.0/3, false),
		semiArcCusp(ramc, latitude, obliquity, 1.0/3, false),
	)
}

// semiArcCusp solves for the ecliptic point whose right ascension sits at
// fraction f of its diurnal semi-arc east of the meridian (diurnal) or of
// its nocturnal semi-arc west of the lower meridian.
//
// The first declination comes from the closed form
// asin(sin ε · sin(90°·f) / tan φ), clamped to ±90° when the quotient leaves
// [-1, 1]; the fixed point is then refined until it moves less than
// placidusTolerance.
func semiArcCusp(ramc, latitude, obliquity, f float64, diurnal bool) float64 {
	tanLat := angle.Tan(latitude)
	dec := angle.Asin(angle.Sin(obliquity) * angle.Sin(90*f) / tanLat)

	lon := math.NaN()
	for i := 0; i < placidusMaxIterations; i++ {
		// Ascensional difference: how far the semi-arc departs from 90°.
		ad := angle.Asin(tanLat * angle.Tan(dec))

		var ra float64
		if diurnal {
			ra = ramc + f*(90+ad)
		} else {
			ra = ramc + angle.HalfCircle - f*(90-ad)
		}

		next := raToLongitude(ra, obliquity)
		if !math.IsNaN(lon) && angle.ShortestDistance(lon, next) < placidusTolerance {
			return next
		}
		lon = next
		dec = declination(lon, obliquity)
	}
	return lon
}
