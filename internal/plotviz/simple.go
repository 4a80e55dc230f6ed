package plotviz

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/banshee-data/odometry.report/internal/fsutil"
	"github.com/banshee-data/odometry.report/internal/telemetry"
)

// The simple plot uses fewer, larger arrows than the dashboard.
const (
	simpleArrowCount = 10
	simpleArrowLen   = 4 // cm
)

// RenderSimplePath draws the reduced single-panel path figure and writes
// it as a PNG to filename through fsys.
func RenderSimplePath(fsys fsutil.FileSystem, s *telemetry.Series, filename string) error {
	p := plot.New()
	p.Title.Text = "Robot Path"
	p.X.Label.Text = "X Position (cm)"
	p.Y.Label.Text = "Y Position (cm)"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pathXYs(s))
	if err != nil {
		return fmt.Errorf("path line: %w", err)
	}
	line.Color = pathBlue
	line.Width = vg.Points(2.5)
	p.Add(line)

	if err := addEndpoints(p, s); err != nil {
		return fmt.Errorf("endpoints: %w", err)
	}
	if err := addArrows(p, Arrows(s, simpleArrowCount, simpleArrowLen)); err != nil {
		return fmt.Errorf("arrows: %w", err)
	}

	applySquareRanges(p, s)
	p.Legend.Top = true

	img := vgimg.NewWith(vgimg.UseWH(10*vg.Inch, 10*vg.Inch), vgimg.UseDPI(dashboardDPI))
	dc := draw.New(img)
	p.Draw(dc)

	return writePNG(fsys, img, filename)
}
