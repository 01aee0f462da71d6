package houses

import "github.com/talgya/skyhouses/internal/angle"

// Ascendant returns the ecliptic longitude rising on the eastern horizon for
// local sidereal time lst (degrees), geographic latitude and obliquity.
//
// Near the poles the horizon relation can hand back the western
// intersection; the eastern one is then its opposite, so the result always
// lies within 180° ahead of the Midheaven.
func Ascendant(lst, latitude, obliquity float64) float64 {
	y := angle.Cos(lst)
	x := -(angle.Sin(lst)*angle.Cos(obliquity) + angle.Tan(latitude)*angle.Sin(obliquity))
	asc := angle.Normalize(angle.Atan2(y, x))

	if angle.ForwardSeparation(Midheaven(lst), asc) > angle.HalfCircle {
		asc = angle.Opposite(asc)
	}
	return asc
}

// Midheaven returns the culminating point, taken as the local sidereal time
// itself.
func Midheaven(lst float64) float64 {
	return angle.Normalize(lst)
}

// poleCusp returns the ecliptic longitude of a house circle that meets the
// equator at right ascension ra and is inclined at pole height pole.
// Ascendant is the case ra = lst+90, pole = latitude.
func poleCusp(ra, pole, obliquity float64) float64 {
	y := angle.Sin(ra)
	x := angle.Cos(ra)*angle.Cos(obliquity) - angle.Tan(pole)*angle.Sin(obliquity)
	return angle.Normalize(angle.Atan2(y, x))
}

// raToLongitude converts the right ascension of an ecliptic point to its
// longitude.
func raToLongitude(ra, obliquity float64) float64 {
	return angle.Normalize(angle.Atan2(angle.Sin(ra), angle.Cos(ra)*angle.Cos(obliquity)))
}

// longitudeToRA converts an ecliptic longitude to right ascension.
func longitudeToRA(longitude, obliquity float64) float64 {
	return angle.Normalize(angle.Atan2(angle.Sin(longitude)*angle.Cos(obliquity), angle.Cos(longitude)))
}

// declination returns the declination of an ecliptic point.
func declination(longitude, obliquity float64) float64 {
	return angle.Asin(angle.Sin(obliquity) * angle.Sin(longitude))
}
