package telemetry

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds the derived kinematic summary of one run. All values are
// pure functions of the Series they were derived from.
type Stats struct {
	Points         int
	PathLengthCm   float64
	ElapsedSeconds float64
	AvgSpeedCmPerS float64
	MinX, MaxX     float64
	MinY, MaxY     float64
	MeanLight      float64
	FinalDistCm    int
}

// Derive computes the run statistics for a series. A single-sample run has
// zero path length and zero elapsed time; average speed is defined as zero
// whenever elapsed time is zero rather than raising a division error.
func Derive(s *Series) Stats {
	if s == nil || s.Len() == 0 {
		return Stats{}
	}

	st := Stats{
		Points:      s.Len(),
		MinX:        floats.Min(s.X),
		MaxX:        floats.Max(s.X),
		MinY:        floats.Min(s.Y),
		MaxY:        floats.Max(s.Y),
		FinalDistCm: s.Dist[s.Len()-1],
	}

	for i := 1; i < s.Len(); i++ {
		dx := s.X[i] - s.X[i-1]
		dy := s.Y[i] - s.Y[i-1]
		st.PathLengthCm += math.Hypot(dx, dy)
	}

	st.ElapsedSeconds = (s.TimeMs[s.Len()-1] - s.TimeMs[0]).Seconds()
	if st.ElapsedSeconds > 0 {
		st.AvgSpeedCmPerS = st.PathLengthCm / st.ElapsedSeconds
	}

	light := make([]float64, s.Len())
	for i, l := range s.Light {
		light[i] = float64(l)
	}
	st.MeanLight = stat.Mean(light, nil)

	return st
}
