package houses

import (
	"math"

	"github.com/talgya/skyhouses/internal/angle"
)

// SignWidth is the ecliptic arc covered by one zodiac sign.
const SignWidth = 30.0

// Zodiac sign indices, counted from the vernal equinox.
const (
	SignAries = iota
	SignTaurus
	SignGemini
	SignCancer
	SignLeo
	SignVirgo
	SignLibra
	SignScorpio
	SignSagittarius
	SignCapricorn
	SignAquarius
	SignPisces
)

// SignOf returns the sign index (0-11) containing a longitude.
func SignOf(longitude float64) int {
	s := int(angle.Normalize(longitude) / SignWidth)
	if s >= HouseCount {
		s = HouseCount - 1
	}
	return s
}

// DegreeInSign returns how far into its sign a longitude lies, in [0, 30).
func DegreeInSign(longitude float64) float64 {
	return math.Mod(angle.Normalize(longitude), SignWidth)
}

// SignName returns a human-readable sign name.
func SignName(sign int) string {
	switch sign {
	case SignAries:
		return "Aries"
	case SignTaurus:
		return "Taurus"
	case SignGemini:
		return "Gemini"
	case SignCancer:
		return "Cancer"
	case SignLeo:
		return "Leo"
	case SignVirgo:
		return "Virgo"
	case SignLibra:
		return "Libra"
	case SignScorpio:
		return "Scorpio"
	case SignSagittarius:
		return "Sagittarius"
	case SignCapricorn:
		return "Capricorn"
	case SignAquarius:
		return "Aquarius"
	case SignPisces:
		return "Pisces"
	default:
		return "Unknown"
	}
}
