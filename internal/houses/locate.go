package houses

import "github.com/talgya/skyhouses/internal/angle"

// Body is a point on the ecliptic supplied by the caller, e.g. a planet.
type Body struct {
	Name      string  `json:"name"`
	Longitude float64 `json:"longitude"`
}

// Placement records which house a body falls in.
type Placement struct {
	Body  Body `json:"body"`
	House int  `json:"house"`
}

// Locate returns the house (1-12) whose half-open forward arc
// [cusp n, cusp n+1) contains longitude. Houses are tested in order from
// house 1 and the first match wins. A longitude that slips between arcs by
// rounding lands in house 1.
func Locate(longitude float64, cusps CuspSet) int {
	lon := angle.Normalize(longitude)
	for i := 0; i < HouseCount; i++ {
		start := cusps[i]
		end := cusps[(i+1)%HouseCount]
		if start <= end {
			if lon >= start && lon < end {
				return i + 1
			}
			continue
		}
		// Arc wraps through 0°.
		if lon >= start || lon < end {
			return i + 1
		}
	}
	return 1
}

// LocateAll places every body, preserving input order.
func LocateAll(bodies []Body, cusps CuspSet) []Placement {
	out := make([]Placement, 0, len(bodies))
	for _, b := range bodies {
		out = append(out, Placement{Body: b, House: Locate(b.Longitude, cusps)})
	}
	return out
}
