package telemetry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/banshee-data/odometry.report/internal/units"
)

func threeRowRun() *Series {
	return &Series{
		TimeMs: []units.Milliseconds{0, 1000, 2000},
		X:      []float64{0, 3, 3},
		Y:      []float64{0, 4, 4},
		Theta:  []units.Centidegrees{0, 0, 0},
		Light:  []int{50, 50, 50},
		Dist:   []int{10, 10, 10},
	}
}

func TestDeriveRoundTrip(t *testing.T) {
	st := Derive(threeRowRun())

	require.Equal(t, 3, st.Points)
	require.InDelta(t, 5.0, st.PathLengthCm, 1e-9)
	require.InDelta(t, 2.0, st.ElapsedSeconds, 1e-9)
	require.InDelta(t, 2.5, st.AvgSpeedCmPerS, 1e-9)
	require.InDelta(t, 50.0, st.MeanLight, 1e-9)
	require.Equal(t, 10, st.FinalDistCm)
	require.InDelta(t, 0.0, st.MinX, 1e-9)
	require.InDelta(t, 3.0, st.MaxX, 1e-9)
	require.InDelta(t, 0.0, st.MinY, 1e-9)
	require.InDelta(t, 4.0, st.MaxY, 1e-9)
}

func TestDerivePathLengthReversalInvariant(t *testing.T) {
	fwd := &Series{
		TimeMs: []units.Milliseconds{0, 500, 1500, 3000},
		X:      []float64{0, 1, 4, 4},
		Y:      []float64{0, 2, 2, -1},
		Theta:  []units.Centidegrees{0, 0, 0, 0},
		Light:  []int{50, 50, 50, 50},
		Dist:   []int{10, 10, 10, 10},
	}

	n := fwd.Len()
	rev := &Series{
		TimeMs: fwd.TimeMs, // monotone time is assumed, not verified
		Theta:  fwd.Theta,
		Light:  fwd.Light,
		Dist:   fwd.Dist,
	}
	for i := n - 1; i >= 0; i-- {
		rev.X = append(rev.X, fwd.X[i])
		rev.Y = append(rev.Y, fwd.Y[i])
	}

	require.InDelta(t, Derive(fwd).PathLengthCm, Derive(rev).PathLengthCm, 1e-12)
}

func TestDeriveZeroElapsedTime(t *testing.T) {
	s := &Series{
		TimeMs: []units.Milliseconds{500, 500, 500},
		X:      []float64{0, 3, 6},
		Y:      []float64{0, 0, 0},
		Theta:  []units.Centidegrees{0, 0, 0},
		Light:  []int{50, 50, 50},
		Dist:   []int{10, 10, 10},
	}

	st := Derive(s)
	require.InDelta(t, 6.0, st.PathLengthCm, 1e-9)
	require.Zero(t, st.ElapsedSeconds)
	require.Zero(t, st.AvgSpeedCmPerS, "speed must be exactly zero with no division error")
}

func TestDeriveSingleSample(t *testing.T) {
	s := &Series{
		TimeMs: []units.Milliseconds{1234},
		X:      []float64{7},
		Y:      []float64{-2},
		Theta:  []units.Centidegrees{9000},
		Light:  []int{33},
		Dist:   []int{99},
	}

	st := Derive(s)
	require.Equal(t, 1, st.Points)
	require.Zero(t, st.PathLengthCm)
	require.Zero(t, st.ElapsedSeconds)
	require.Zero(t, st.AvgSpeedCmPerS)
	require.InDelta(t, 7.0, st.MinX, 1e-9)
	require.InDelta(t, 7.0, st.MaxX, 1e-9)
	require.Equal(t, 99, st.FinalDistCm)
}

func TestDeriveEmptySeries(t *testing.T) {
	require.Zero(t, Derive(&Series{}))
	require.Zero(t, Derive(nil))
}

func TestElapsedSeconds(t *testing.T) {
	s := threeRowRun()
	require.Equal(t, []float64{0, 1, 2}, s.ElapsedSeconds())

	offset := &Series{TimeMs: []units.Milliseconds{5000, 5500, 7000}}
	require.Equal(t, []float64{0, 0.5, 2}, offset.ElapsedSeconds())
}
