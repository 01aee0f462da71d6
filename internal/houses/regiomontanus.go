package houses

import "github.com/talgya/skyhouses/internal/angle"

// Regiomontanus divides the celestial equator into 30° arcs from the
// meridian. Each house circle runs through the north and south points of
// the horizon; its pole height at equator offset H is atan(tan φ · sin H).
// No latitude limit: the arctangents stay finite up to the poles.
func Regiomontanus(lst, latitude, obliquity float64) CuspSet {
	ramc := Midheaven(lst)
	tanLat := angle.Tan(latitude)

	cusp := func(offset float64) float64 {
		pole := angle.Atan(tanLat * angle.Sin(offset))
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
