// Package sky converts civil time and geographic position into the inputs of
// the house engine: local sidereal time and the obliquity of the ecliptic.
package sky

import (
	"math"
	"time"

	"github.com/talgya/skyhouses/internal/angle"
)

// J2000 is the Julian date of the 2000-01-01 12:00 TT epoch.
const J2000 = 2451545.0

// DaysPerCentury is the length of a Julian century.
const DaysPerCentury = 36525.0

// JulianDate returns the Julian date of t (Gregorian calendar, UTC).
func JulianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	dayFrac := (float64(t.Hour()) +
		float64(t.Minute())/60 +
		float64(t.Second())/3600 +
		float64(t.Nanosecond())/3600e9) / 24

	// January and February count as months 13 and 14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + b - 1524.5
}

// Centuries returns Julian centuries since J2000.
func Centuries(t time.Time) float64 {
	return (JulianDate(t) - J2000) / DaysPerCentury
}

// GreenwichSiderealTime returns Greenwich mean sidereal time in degrees
// (IAU 1982), in [0, 360).
func GreenwichSiderealTime(t time.Time) float64 {
	jd := JulianDate(t)
	T := (jd - J2000) / DaysPerCentury

	gmst := 280.46061837 +
		360.98564736629*(jd-J2000) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return angle.Normalize(gmst)
}

// LocalSiderealTime returns the sidereal time at east longitude lon, in
// degrees. West longitudes are negative.
func LocalSiderealTime(t time.Time, lon float64) float64 {
	return angle.Normalize(GreenwichSiderealTime(t) + lon)
}

// MeanObliquity returns the mean obliquity of the ecliptic of date, in
// degrees.
func MeanObliquity(t time.Time) float64 {
	T := Centuries(t)
	return 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T
}
