package houses

import (
	"log/slog"

	"github.com/talgya/skyhouses/internal/angle"
)

// House is one cusp broken down by sign.
type House struct {
	Number int     `json:"house"`
	Cusp   float64 `json:"cusp"`
	Sign   int     `json:"sign"`   // 0 = Aries … 11 = Pisces
	Degree float64 `json:"degree"` // degrees into the sign, [0, 30)
}

// SignName returns the name of the sign the cusp falls in.
func (h House) SignName() string {
	return SignName(h.Sign)
}

// AngularPoints names the angles by house number; they refer into
// Chart.Houses rather than duplicating the cusps.
type AngularPoints struct {
	Ascendant  int `json:"ascendant"`
	Midheaven  int `json:"midheaven"`
	Descendant int `json:"descendant"`
	Nadir      int `json:"nadir"`
}

var angularPoints = AngularPoints{
	Ascendant:  idxAscendant + 1,
	Midheaven:  idxMidheaven + 1,
	Descendant: idxDescendant + 1,
	Nadir:      idxNadir + 1,
}

// Chart is the formatted result of a calculation.
type Chart struct {
	System System            `json:"system"`
	Houses [HouseCount]House `json:"houses"`
	Angles AngularPoints     `json:"angles"`
}

// NewChart formats a cusp set.
func NewChart(system System, cusps CuspSet) *Chart {
	c := &Chart{System: system, Angles: angularPoints}
	for i, cusp := range cusps {
		cusp = angle.Normalize(cusp)
		c.Houses[i] = House{
			Number: i + 1,
			Cusp:   cusp,
			Sign:   SignOf(cusp),
			Degree: DegreeInSign(cusp),
		}
	}
	return c
}

// House returns house n (1-based).
func (c *Chart) House(n int) House {
	return c.Houses[((n-1)%HouseCount+HouseCount)%HouseCount]
}

// Ascendant returns the house-1 entry.
func (c *Chart) Ascendant() House { return c.House(c.Angles.Ascendant) }

// Midheaven returns the house-10 entry.
func (c *Chart) Midheaven() House { return c.House(c.Angles.Midheaven) }

// Descendant returns the house-7 entry.
func (c *Chart) Descendant() House { return c.House(c.Angles.Descendant) }

// Nadir returns the house-4 entry.
func (c *Chart) Nadir() House { return c.House(c.Angles.Nadir) }

// Cusps returns the raw cusp longitudes.
func (c *Chart) Cusps() CuspSet {
	var cs CuspSet
	for i, h := range c.Houses {
		cs[i] = h.Cusp
	}
	return cs
}

// Calculate parses the system tag, validates the inputs, computes the cusps
// and formats them. lst and latitude are in degrees; obliquity and altitude
// come from options.
func Calculate(system string, lst, latitude float64, opts ...Option) (*Chart, error) {
	sys, err := ParseSystem(system)
	if err != nil {
		return nil, err
	}
	return CalculateSystem(sys, applyOptions(lst, latitude, opts))
}

// CalculateSystem is Calculate for an already-parsed system.
func CalculateSystem(sys System, p Params) (*Chart, error) {
	cusps, err := CalculateCusps(sys, p)
	if err != nil {
		return nil, err
	}
	return NewChart(sys, cusps), nil
}

// CalculateCusps validates p and dispatches to the system's algorithm,
// returning the unformatted set. On error the set is the zero value.
func CalculateCusps(sys System, p Params) (CuspSet, error) {
	if _, ok := systemTags[sys]; !ok {
		return CuspSet{}, invalidSystem(sys.String())
	}
	if err := Validate(p); err != nil {
		return CuspSet{}, err
	}

	lst, lat, obl := p.LocalSiderealTime, p.Latitude, p.Obliquity
	slog.Debug("computing house cusps",
		"system", sys.String(),
		"lst", lst,
		"latitude", lat,
		"obliquity", obl,
	)

	switch sys {
	case SystemWholeSign:
		return WholeSign(Ascendant(lst, lat, obl)), nil
	case SystemEqual:
		return Equal(Ascendant(lst, lat, obl)), nil
	case SystemPorphyry:
		return Porphyry(Ascendant(lst, lat, obl), Midheaven(lst)), nil
	case SystemPlacidus:
		return Placidus(lst, lat, obl)
	case SystemKoch:
		return Koch(lst, lat, obl)
	case SystemMorinus:
		return Morinus(lst, lat, obl)
	case SystemRegiomontanus:
		return Regiomontanus(lst, lat, obl), nil
	case SystemCampanus:
		return Campanus(lst, lat, obl), nil
	case SystemTopocentric:
		return Topocentric(lst, lat, obl, p.Altitude)
	}
	return CuspSet{}, invalidSystem(sys.String())
}
