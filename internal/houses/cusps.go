package houses

import (
	"math"

	"github.com/talgya/skyhouses/internal/angle"
)

// HouseCount is the number of houses in every system.
const HouseCount = 12

// Indices of the angular houses within a CuspSet.
const (
	idxAscendant  = 0 // house 1
	idxNadir      = 3 // house 4
	idxDescendant = 6 // house 7
	idxMidheaven  = 9 // house 10
)

const (
	// spanTolerance bounds the rounding drift of a summed cusp cycle.
	spanTolerance = 1e-6
	// snapTolerance is the largest inversion treated as rounding.
	snapTolerance = 1e-9
)

// CuspSet holds the twelve cusp longitudes; index 0 is house 1.
type CuspSet [HouseCount]float64

// Cusp returns the cusp of house n (1-based). Out-of-range n wraps.
func (c CuspSet) Cusp(n int) float64 {
	i := ((n-1)%HouseCount + HouseCount) % HouseCount
	return c[i]
}

// Ascendant is the house-1 cusp.
func (c CuspSet) Ascendant() float64 { return c[idxAscendant] }

// Midheaven is the house-10 cusp.
func (c CuspSet) Midheaven() float64 { return c[idxMidheaven] }

// Descendant is the house-7 cusp.
func (c CuspSet) Descendant() float64 { return c[idxDescendant] }

// Nadir is the house-4 cusp (Imum Coeli).
func (c CuspSet) Nadir() float64 { return c[idxNadir] }

// Width returns the forward arc of house n (1-based).
func (c CuspSet) Width(n int) float64 {
	return angle.ForwardSeparation(c.Cusp(n), c.Cusp(n+1))
}

// Span sums the forward gaps between consecutive cusps around the full
// cycle. A well-formed set spans exactly one revolution.
func (c CuspSet) Span() float64 {
	total := 0.0
	for n := 1; n <= HouseCount; n++ {
		total += c.Width(n)
	}
	return total
}

// Valid reports whether every cusp is a normalized angle and the set spans
// one revolution.
func (c CuspSet) Valid() bool {
	for _, v := range c {
		if math.IsNaN(v) || v < 0 || v >= angle.FullCircle {
			return false
		}
	}
	return math.Abs(c.Span()-angle.FullCircle) < spanTolerance
}

// stepped builds a set of equal 30° houses starting at first.
func stepped(first float64) CuspSet {
	var c CuspSet
	for i := range c {
		c[i] = angle.Normalize(first + 30*float64(i))
	}
	return c
}

// quadrantSet assembles a quadrant-system set from its two angles and the
// four eastern intermediate cusps. Houses 4 to 9 follow by opposition.
// Intermediate cusps outside their quadrant (polar or near-degenerate
// geometry) are pulled onto the nearer boundary so the set stays ordered.
func quadrantSet(asc, mc, h11, h12, h2, h3 float64) CuspSet {
	asc = angle.Normalize(asc)
	mc = angle.Normalize(mc)
	ic := angle.Opposite(mc)

	h11 = clampToArc(h11, mc, asc)
	h12 = clampToArc(h12, h11, asc)
	h2 = clampToArc(h2, asc, ic)
	h3 = clampToArc(h3, h2, ic)

	var c CuspSet
	c[idxAscendant] = asc
	c[1] = h2
	c[2] = h3
	c[idxNadir] = ic
	c[idxMidheaven] = mc
	c[10] = h11
	c[11] = h12
	for i := 4; i <= 8; i++ {
		c[i] = angle.Opposite(c[(i+6)%HouseCount])
	}
	c.settle()
	return c
}

// settle removes rounding inversions: a cusp that trails its predecessor by
// less than snapTolerance is moved onto it. Two passes cover the wrap from
// house 12 back to house 1.
func (c *CuspSet) settle() {
	for pass := 0; pass < 2; pass++ {
		for i := range c {
			j := (i + 1) % HouseCount
			if angle.ForwardSeparation(c[i], c[j]) > angle.FullCircle-snapTolerance {
				c[j] = c[i]
			}
		}
	}
}

// clampToArc returns v if it lies on the forward arc start→end, otherwise
// whichever endpoint is closer.
func clampToArc(v, start, end float64) float64 {
	v = angle.Normalize(v)
	if angle.ForwardSeparation(start, v) <= angle.ForwardSeparation(start, end) {
		return v
	}
	if angle.ShortestDistance(v, start) <= angle.ShortestDistance(v, end) {
		return angle.Normalize(start)
	}
	return angle.Normalize(end)
}
