package plotviz

import (
	"fmt"

	"github.com/banshee-data/odometry.report/internal/telemetry"
)

// StatsLines formats the derived statistics in the fixed layout of the
// dashboard's text panel, one entry per line.
func StatsLines(st telemetry.Stats) []string {
	return []string{
		fmt.Sprintf("Data Points: %d", st.Points),
		fmt.Sprintf("Total Distance: %.1f cm", st.PathLengthCm),
		fmt.Sprintf("Total Time: %.1f seconds", st.ElapsedSeconds),
		fmt.Sprintf("Average Speed: %.1f cm/s", st.AvgSpeedCmPerS),
		fmt.Sprintf("X Range: %.1f to %.1f cm", st.MinX, st.MaxX),
		fmt.Sprintf("Y Range: %.1f to %.1f cm", st.MinY, st.MaxY),
		fmt.Sprintf("Average Light: %.1f", st.MeanLight),
		fmt.Sprintf("Final Distance: %d cm", st.FinalDistCm),
	}
}
