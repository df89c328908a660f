package ascent

import "github.com/soniakeys/unit"

// DegToRad converts an angle in degrees to radians
func DegToRad(deg float64) float64 {
	return unit.AngleFromDeg(deg).Rad()
}

// CalculateAscentRadians returns the elevation change over a horizontal
// distance travelled at the given angle. Angles at odd multiples of π/2
// yield ±Inf or very large values rather than an error.
func CalculateAscentRadians(distance, angle float64) float64 {
	return distance * unit.Angle(angle).Tan()
}

// CalculateAscentDegrees is CalculateAscentRadians for an angle in degrees
func CalculateAscentDegrees(distance, angle float64) float64 {
	return CalculateAscentRadians(distance, DegToRad(angle))
}
