package houses

import "github.com/talgya/skyhouses/internal/angle"

// Morinus steps 30° of right ascension at a time from the meridian and
// carries each equator point to the ecliptic along its circle of longitude
// (through the ecliptic poles). The angles themselves come from the solver.
func Morinus(lst, latitude, obliquity float64) (CuspSet, error) {
	if err := checkLatitudeLimit(SystemMorinus, latitude); err != nil {
		return CuspSet{}, err
	}

	ramc := Midheaven(lst)
	project := func(offset float64) float64 {
		ra := ramc + offset
		return angle.Normalize(angle.Atan2(angle.Sin(ra)*angle.Cos(obliquity), angle.Cos(ra)))
	}

	return quadrantSet(
		Ascendant(ramc, latitude, obliquity),
		ramc,
		project(30),
		project(60),
		project(120),
		project(150),
	), nil
}
