package houses

import (
	"math"

	"github.com/talgya/skyhouses/internal/angle"
)

// EarthRadius is the mean radius of the spherical Earth model, in metres.
const EarthRadius = 6371000.0

// Topocentric evaluates Placidus at the latitude seen by an observer raised
// altitude metres above a spherical Earth. The latitude limit applies to
// the adjusted latitude.
func Topocentric(lst, latitude, obliquity, altitude float64) (CuspSet, error) {
	adjusted := TopocentricLatitude(latitude, altitude)
	if err := checkLatitudeLimit(SystemTopocentric, adjusted); err != nil {
		return CuspSet{}, err
	}
	return placidus(lst, adjusted, obliquity), nil
}

// TopocentricLatitude applies the parallax correction: the dip of the
// horizon seen from altitude metres, scaled by cos φ, moves the latitude
// toward the equator. Non-positive altitudes leave it unchanged.
func TopocentricLatitude(latitude, altitude float64) float64 {
	if altitude <= 0 {
		return latitude
	}
	// Tangent distance to the geometric horizon.
	horizon := math.Sqrt(2*EarthRadius*altitude + altitude*altitude)
	dip := angle.Atan2(horizon, EarthRadius)
	correction := dip * angle.Cos(latitude)

	switch {
	case latitude > 0:
		return math.Max(0, latitude-correction)
	case latitude < 0:
		return math.Min(0, latitude+correction)
	}
	return latitude
}
