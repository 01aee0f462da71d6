package houses

import "github.com/talgya/skyhouses/internal/angle"

// Porphyry trisects each ecliptic quadrant between the angles. It takes the
// ascendant and midheaven longitudes directly and has no latitude limit.
func Porphyry(ascendant, midheaven float64) CuspSet {
	east := angle.ForwardSeparation(midheaven, ascendant)
	lower := angle.ForwardSeparation(ascendant, angle.Opposite(midheaven))

	return quadrantSet(
		ascendant,
		midheaven,
		midheaven+east/3,
		midheaven+2*east/3,
		ascendant+lower/3,
		ascendant+2*lower/3,
	)
}
