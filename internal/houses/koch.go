package houses

import "github.com/talgya/skyhouses/internal/angle"

// Koch places the intermediate cusps by interpolating right ascension in
// thirds between the Midheaven and the Ascendant (houses 11, 12) and between
// the Ascendant and the Nadir (houses 2, 3), then returning each to the
// ecliptic.
func Koch(lst, latitude, obliquity float64) (CuspSet, error) {
	if err := checkLatitudeLimit(SystemKoch, latitude); err != nil {
		return CuspSet{}, err
	}

	ramc := Midheaven(lst)
	asc := Ascendant(ramc, latitude, obliquity)
	raAsc := longitudeToRA(asc, obliquity)

	upper := angle.ForwardSeparation(ramc, raAsc)
	lower := angle.ForwardSeparation(raAsc, ramc+angle.HalfCircle)

	at := func(from, arc, fraction float64) float64 {
		return raToLongitude(from+arc*fraction, obliquity)
	}

	return quadrantSet(
		asc,
		ramc,
		at(ramc, upper, 1.0/3),
		at(ramc, upper, 2.0/3),
		at(raAsc, lower, 1.0/3),
		at(raAsc, lower, 2.0/3),
	), nil
}
