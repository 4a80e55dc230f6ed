// Package units provides semantic wrappers for the quantities the robot
// logs in non-obvious units: time in milliseconds and heading in
// centidegrees. Keeping the raw values typed prevents the divide-by-100
// and divide-by-1000 conversions from being lost or applied twice.
package units

import "math"

// Milliseconds is a duration as logged by the robot firmware.
type Milliseconds float64

// Seconds converts the logged millisecond value to seconds.
func (m Milliseconds) Seconds() float64 {
	return float64(m) / 1000.0
}

// Centidegrees is a heading as logged by the robot firmware
// (hundredths of a degree, counter-clockwise from the x axis).
type Centidegrees float64

// Degrees converts the logged heading to degrees.
func (c Centidegrees) Degrees() float64 {
	return float64(c) / 100.0
}

// Radians converts the logged heading to radians for trigonometric use.
func (c Centidegrees) Radians() float64 {
	return c.Degrees() * math.Pi / 180.0
}

// Display unit labels. Positions are logged in centimetres, so derived
// speeds are centimetres per second.
const (
	LengthUnit = "cm"
	SpeedUnit  = "cm/s"
)
