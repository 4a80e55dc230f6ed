package units

import (
	"math"
	"testing"
)

func TestMillisecondsSeconds(t *testing.T) {
	tests := []struct {
		name     string
		ms       Milliseconds
		expected float64
	}{
		{"one second", 1000, 1.0},
		{"zero", 0, 0.0},
		{"sub-second", 250, 0.25},
		{"two seconds", 2000, 2.0},
		{"fractional milliseconds", 1500.5, 1.5005},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ms.Seconds(); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Milliseconds(%v).Seconds() = %v, want %v", tt.ms, got, tt.expected)
			}
		})
	}
}

func TestCentidegreesDegrees(t *testing.T) {
	tests := []struct {
		name     string
		cd       Centidegrees
		expected float64
	}{
		{"right angle", 9000, 90.0},
		{"zero", 0, 0.0},
		{"full turn", 36000, 360.0},
		{"negative heading", -4500, -45.0},
		{"fractional degree", 150, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cd.Degrees(); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Centidegrees(%v).Degrees() = %v, want %v", tt.cd, got, tt.expected)
			}
		})
	}
}

func TestCentidegreesRadians(t *testing.T) {
	tests := []struct {
		name     string
		cd       Centidegrees
		expected float64
	}{
		{"right angle is pi over two", 9000, math.Pi / 2},
		{"straight angle is pi", 18000, math.Pi},
		{"zero", 0, 0.0},
		{"quarter of a degree", 25, 0.25 * math.Pi / 180.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cd.Radians(); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Centidegrees(%v).Radians() = %v, want %v", tt.cd, got, tt.expected)
			}
		})
	}
}
