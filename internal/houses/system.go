// Package houses computes the twelve house cusps that map the ecliptic onto
// an observer's horizon, locates bodies within them and tallies occupancy.
//
// All functions are pure: no shared state, no I/O, safe for concurrent use.
package houses

import "strings"

// System identifies a house-division convention.
type System uint8

const (
	SystemWholeSign     System = iota + 1 // Sign boundaries from the rising sign
	SystemEqual                           // 30° steps from the ascendant
	SystemPlacidus                        // Semi-arc time trisection
	SystemKoch                            // Right-ascension interpolation between the angles
	SystemPorphyry                        // Ecliptic quadrant trisection
	SystemRegiomontanus                   // Equal division of the celestial equator
	SystemCampanus                        // Equal division of the prime vertical
	SystemMorinus                         // Equal right-ascension steps projected through the ecliptic poles
	SystemTopocentric                     // Placidus at the parallax-adjusted latitude
)

// Systems lists every supported convention in presentation order.
var Systems = []System{
	SystemWholeSign,
	SystemEqual,
	SystemPlacidus,
	SystemKoch,
	SystemPorphyry,
	SystemRegiomontanus,
	SystemCampanus,
	SystemMorinus,
	SystemTopocentric,
}

var systemTags = map[System]string{
	SystemWholeSign:     "whole_sign",
	SystemEqual:         "equal",
	SystemPlacidus:      "placidus",
	SystemKoch:          "koch",
	SystemPorphyry:      "porphyry",
	SystemRegiomontanus: "regiomontanus",
	SystemCampanus:      "campanus",
	SystemMorinus:       "morinus",
	SystemTopocentric:   "topocentric",
}

// String returns the external tag, e.g. "whole_sign".
func (s System) String() string {
	if tag, ok := systemTags[s]; ok {
		return tag
	}
	return "unknown"
}

// DisplayName returns a human-readable name.
func (s System) DisplayName() string {
	switch s {
	case SystemWholeSign:
		return "Whole Sign"
	case SystemEqual:
		return "Equal"
	case SystemPlacidus:
		return "Placidus"
	case SystemKoch:
		return "Koch"
	case SystemPorphyry:
		return "Porphyry"
	case SystemRegiomontanus:
		return "Regiomontanus"
	case SystemCampanus:
		return "Campanus"
	case SystemMorinus:
		return "Morinus"
	case SystemTopocentric:
		return "Topocentric"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the system as its external tag.
func (s System) MarshalText() ([]byte, error) {
	if _, ok := systemTags[s]; !ok {
		return nil, invalidSystem(s.String())
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes an external tag.
func (s *System) UnmarshalText(text []byte) error {
	parsed, err := ParseSystem(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSystem resolves an external tag. Matching ignores case and surrounding
// space; anything else unknown is an InvalidSystem error, never a fallback.
func ParseSystem(tag string) (System, error) {
	norm := strings.ToLower(strings.TrimSpace(tag))
	for s, t := range systemTags {
		if t == norm {
			return s, nil
		}
	}
	return 0, invalidSystem(tag)
}

// LatitudeLimit returns the largest |latitude| the system accepts and
// whether it has such a limit at all.
func (s System) LatitudeLimit() (float64, bool) {
	switch s {
	case SystemPlacidus, SystemKoch, SystemMorinus, SystemTopocentric:
		return QuadrantLatitudeLimit, true
	}
	return 0, false
}

// Quadrant reports whether the system divides the four angles independently
// of the ascendant's sign, i.e. everything but whole-sign and equal.
func (s System) Quadrant() bool {
	switch s {
	case SystemWholeSign, SystemEqual:
		return false
	}
	return true
}
