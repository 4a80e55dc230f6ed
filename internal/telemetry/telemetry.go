// Package telemetry loads robot odometry logs and derives kinematic
// statistics from them.
//
// A log is a header-labelled CSV file with the columns Time, X, Y, Theta,
// Light and Dist (in any order). Rows are in temporal order; the firmware
// logs time in milliseconds and heading in centidegrees, which stay wrapped
// in their units types until a consumer needs seconds or degrees.
package telemetry

import (
	"github.com/banshee-data/odometry.report/internal/units"
)

// Sample is one logged row: the robot's estimated pose plus the two sensor
// readings captured at that instant.
type Sample struct {
	TimeMs units.Milliseconds
	X      float64 // cm
	Y      float64 // cm
	Theta  units.Centidegrees
	Light  int
	Dist   int // cm
}

// Series holds a full run as six parallel columns sharing index alignment.
// It is built once by Load and never mutated afterwards.
type Series struct {
	TimeMs []units.Milliseconds
	X      []float64
	Y      []float64
	Theta  []units.Centidegrees
	Light  []int
	Dist   []int
}

// Len returns the number of samples in the series.
func (s *Series) Len() int { return len(s.TimeMs) }

// At returns the i'th sample.
func (s *Series) At(i int) Sample {
	return Sample{
		TimeMs: s.TimeMs[i],
		X:      s.X[i],
		Y:      s.Y[i],
		Theta:  s.Theta[i],
		Light:  s.Light[i],
		Dist:   s.Dist[i],
	}
}

// First returns the first sample. The loader guarantees at least one row.
func (s *Series) First() Sample { return s.At(0) }

// Last returns the final sample.
func (s *Series) Last() Sample { return s.At(s.Len() - 1) }

// BelowLight returns the indices of samples whose light reading is strictly
// below threshold. The result is empty, never nil-panicking, when no sample
// qualifies.
func (s *Series) BelowLight(threshold int) []int {
	var idx []int
	for i, l := range s.Light {
		if l < threshold {
			idx = append(idx, i)
		}
	}
	return idx
}

// ElapsedSeconds returns per-sample time offsets from the first sample,
// converted to seconds, for time-axis plotting.
func (s *Series) ElapsedSeconds() []float64 {
	if s.Len() == 0 {
		return nil
	}
	t0 := s.TimeMs[0]
	out := make([]float64, s.Len())
	for i, t := range s.TimeMs {
		out[i] = units.Milliseconds(t - t0).Seconds()
	}
	return out
}
