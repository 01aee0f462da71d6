package houses

import (
	"math"

	"github.com/talgya/skyhouses/internal/angle"
)

// WholeSign makes each sign one house, starting with the sign that holds
// the ascendant.
func WholeSign(ascendant float64) CuspSet {
	first := math.Floor(angle.Normalize(ascendant)/SignWidth) * SignWidth
	return stepped(first)
}

// Equal starts house 1 at the ascendant itself and adds 30° per house.
func Equal(ascendant float64) CuspSet {
	return stepped(ascendant)
}
