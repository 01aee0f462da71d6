package houses

import "github.com/talgya/skyhouses/internal/angle"

// Campanus divides the prime vertical into 30° arcs from the zenith. A house
// circle through prime-vertical angle H crosses the equator at
// atan2(sin H · cos φ, cos H) east of the meridian and stands at pole height
// asin(sin H · sin φ). No latitude limit.
func Campanus(lst, latitude, obliquity float64) CuspSet {
	ramc := Midheaven(lst)
	cosLat := angle.Cos(latitude)
	sinLat := angle.Sin(latitude)

	cusp := func(h float64) float64 {
		offset := angle.Atan2(angle.Sin(h)*cosLat, angle.Cos(h))
		pole := angle.Asin(angle.Sin(h) * sinLat)
		return poleCusp(ramc+offset, pole, obliquity)
	}

	return quadrantSet(
		Ascendant(ramc, latitude, obliquity),
		ramc,
		cusp(30),
		cusp(60),
		cusp(120),
		cusp(150),
	)
}
