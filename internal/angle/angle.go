// Package angle provides degree-based circle arithmetic and trigonometry.
// Every angle handed back to callers lies in [0, 360).
package angle

import "math"

// FullCircle is the circumference of the circle in degrees.
const FullCircle = 360.0

// HalfCircle is the separation of two opposite points.
const HalfCircle = 180.0

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// Normalize maps any real angle onto [0, 360).
// NaN and ±Inf come back as NaN.
func Normalize(deg float64) float64 {
	r := math.Mod(deg, FullCircle)
	if r < 0 {
		r += FullCircle
	}
	// -1e-15 + 360 rounds to 360.
	if r >= FullCircle {
		r = 0
	}
	return r
}

// ForwardSeparation returns the gap travelling in increasing longitude
// from `from` to `to`, in [0, 360).
func ForwardSeparation(from, to float64) float64 {
	return Normalize(to - from)
}

// ShortestDistance returns the undirected gap between a and b, in [0, 180].
func ShortestDistance(a, b float64) float64 {
	d := Normalize(b - a)
	if d > HalfCircle {
		return FullCircle - d
	}
	return d
}

// Opposite returns the point 180° away.
func Opposite(deg float64) float64 {
	return Normalize(deg + HalfCircle)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * degToRad
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * radToDeg
}

// Sin returns the sine of an angle in degrees.
func Sin(deg float64) float64 { return math.Sin(deg * degToRad) }

// Cos returns the cosine of an angle in degrees.
func Cos(deg float64) float64 { return math.Cos(deg * degToRad) }

// Tan returns the tangent of an angle in degrees.
func Tan(deg float64) float64 { return math.Tan(deg * degToRad) }

// Atan returns the arctangent in degrees, in (-90, 90).
func Atan(x float64) float64 { return math.Atan(x) * radToDeg }

// Atan2 returns the quadrant-preserving arctangent of y/x in degrees,
// in (-180, 180]. Callers normalize when they need a longitude.
func Atan2(y, x float64) float64 { return math.Atan2(y, x) * radToDeg }

// Asin returns the arcsine in degrees. Arguments outside [-1, 1] are clamped,
// so an overshoot yields a right angle carrying the argument's sign instead
// of NaN.
func Asin(x float64) float64 {
	switch {
	case x >= 1:
		return 90
	case x <= -1:
		return -90
	}
	return math.Asin(x) * radToDeg
}
