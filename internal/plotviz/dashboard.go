package plotviz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/banshee-data/odometry.report/internal/fsutil"
	"github.com/banshee-data/odometry.report/internal/telemetry"
)

// Dashboard layout and cosmetic constants, matching the analysis figure
// the lab has always produced: two rows of three panels.
const (
	dashboardArrowCount = 15
	dashboardArrowLen   = 3 // cm
	dashboardDPI        = 300
)

// RenderDashboard draws the six-panel analysis figure for one run and
// writes it as a PNG to filename through fsys.
func RenderDashboard(fsys fsutil.FileSystem, s *telemetry.Series, st telemetry.Stats, filename string) error {
	pPath, err := pathPanel(s)
	if err != nil {
		return fmt.Errorf("path panel: %w", err)
	}
	pLight, pBar, err := lightPanel(s)
	if err != nil {
		return fmt.Errorf("light panel: %w", err)
	}
	pDark, err := thresholdPanel(s)
	if err != nil {
		return fmt.Errorf("threshold panel: %w", err)
	}
	pHeading, err := headingPanel(s)
	if err != nil {
		return fmt.Errorf("heading panel: %w", err)
	}
	pSensors, err := sensorsPanel(s)
	if err != nil {
		return fmt.Errorf("sensors panel: %w", err)
	}
	pStats, err := statsPanel(st)
	if err != nil {
		return fmt.Errorf("stats panel: %w", err)
	}

	img := vgimg.NewWith(vgimg.UseWH(16*vg.Inch, 10*vg.Inch), vgimg.UseDPI(dashboardDPI))
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows: 2, Cols: 3,
		PadX: vg.Millimeter * 5, PadY: vg.Millimeter * 5,
		PadTop: vg.Millimeter * 3, PadBottom: vg.Millimeter * 3,
		PadLeft: vg.Millimeter * 3, PadRight: vg.Millimeter * 3,
	}

	plots := [][]*plot.Plot{
		{pPath, pLight, pDark},
		{pHeading, pSensors, pStats},
	}
	canvases := plot.Align(plots, tiles, dc)

	for r := range plots {
		for c := range plots[r] {
			if r == 0 && c == 1 {
				// The light panel shares its tile with the colour bar strip.
				tile := canvases[r][c]
				barH := (tile.Max.Y - tile.Min.Y) * 0.18
				pLight.Draw(draw.Crop(tile, 0, 0, barH, 0))
				pBar.Draw(draw.Crop(tile, 0, 0, 0, barH-(tile.Max.Y-tile.Min.Y)))
				continue
			}
			plots[r][c].Draw(canvases[r][c])
		}
	}

	return writePNG(fsys, img, filename)
}

// pathPanel is the primary trajectory view: path line, start/end markers
// and sparse heading arrows.
func pathPanel(s *telemetry.Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Robot Path with Orientation"
	p.X.Label.Text = "X Position (cm)"
	p.Y.Label.Text = "Y Position (cm)"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pathXYs(s))
	if err != nil {
		return nil, err
	}
	line.Color = pathBlue
	line.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add("Robot Path", line)

	if err := addEndpoints(p, s); err != nil {
		return nil, err
	}
	if err := addArrows(p, Arrows(s, dashboardArrowCount, dashboardArrowLen)); err != nil {
		return nil, err
	}

	applySquareRanges(p, s)
	p.Legend.Top = true
	return p, nil
}

// lightPanel colours each path point by its light reading on a continuous
// scale and returns the panel plus its colour-bar strip.
func lightPanel(s *telemetry.Series) (*plot.Plot, *plot.Plot, error) {
	lo, hi := float64(s.Light[0]), float64(s.Light[0])
	for _, l := range s.Light {
		if float64(l) < lo {
			lo = float64(l)
		}
		if float64(l) > hi {
			hi = float64(l)
		}
	}
	if hi == lo {
		hi = lo + 1
	}

	cm := moreland.ExtendedKindlmann()
	cm.SetMin(lo)
	cm.SetMax(hi)

	p := plot.New()
	p.Title.Text = "Path with Light Sensor Data"
	p.X.Label.Text = "X Position (cm)"
	p.Y.Label.Text = "Y Position (cm)"
	p.Add(plotter.NewGrid())

	sc, err := plotter.NewScatter(pathXYs(s))
	if err != nil {
		return nil, nil, err
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		c, cerr := cm.At(float64(s.Light[i]))
		if cerr != nil {
			c = color.Gray{Y: 128}
		}
		return draw.GlyphStyle{Color: c, Radius: vg.Points(2.5), Shape: draw.CircleGlyph{}}
	}
	p.Add(sc)

	if err := addEndpoints(p, s); err != nil {
		return nil, nil, err
	}
	applySquareRanges(p, s)
	p.Legend.Top = true

	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: cm})
	bar.HideY()
	bar.X.Label.Text = "Light Sensor Value"
	return p, bar, nil
}

// thresholdPanel dims the full path and highlights the samples classified
// as dark surface. An empty dark subset simply draws no highlight.
func thresholdPanel(s *telemetry.Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Estimated Dark Line Shape"
	p.X.Label.Text = "X Position (cm)"
	p.Y.Label.Text = "Y Position (cm)"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pathXYs(s))
	if err != nil {
		return nil, err
	}
	line.Color = pathBlueFaint
	line.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add("Full Path", line)

	if dark := s.BelowLight(DarkLightThreshold); len(dark) > 0 {
		pts := make(plotter.XYs, len(dark))
		for i, idx := range dark {
			pts[i] = plotter.XY{X: s.X[idx], Y: s.Y[idx]}
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle = draw.GlyphStyle{Color: darkSquare, Radius: vg.Points(3), Shape: draw.SquareGlyph{}}
		p.Add(sc)
		p.Legend.Add("Dark Line Position", sc)
	}

	if err := addEndpoints(p, s); err != nil {
		return nil, err
	}
	applySquareRanges(p, s)
	p.Legend.Top = true
	return p, nil
}

// headingPanel plots the heading in degrees against elapsed seconds.
func headingPanel(s *telemetry.Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Robot Orientation vs Time"
	p.X.Label.Text = "Time (seconds)"
	p.Y.Label.Text = "Orientation (degrees)"
	p.Add(plotter.NewGrid())

	t := s.ElapsedSeconds()
	pts := make(plotter.XYs, s.Len())
	for i := range pts {
		pts[i] = plotter.XY{X: t[i], Y: s.Theta[i].Degrees()}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = headingPurple
	line.Width = vg.Points(1.5)
	p.Add(line)
	return p, nil
}

// sensorsPanel plots light and distance against elapsed time. gonum/plot
// has no secondary Y axis, so the distance series is mapped linearly into
// the light axis range and a right-edge scale shows the real distance
// values (DESIGN.md records this backend decision).
func sensorsPanel(s *telemetry.Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Sensor Readings vs Time"
	p.X.Label.Text = "Time (seconds)"
	p.Y.Label.Text = "Light Sensor Value"
	p.Add(plotter.NewGrid())

	t := s.ElapsedSeconds()
	n := s.Len()

	light := make([]float64, n)
	dist := make([]float64, n)
	for i := 0; i < n; i++ {
		light[i] = float64(s.Light[i])
		dist[i] = float64(s.Dist[i])
	}
	lLo, lHi := minMax(light)
	if lHi == lLo {
		lHi = lLo + 1
	}
	dLo, dHi := minMax(dist)

	lightPts := make(plotter.XYs, n)
	distPts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		lightPts[i] = plotter.XY{X: t[i], Y: light[i]}
		distPts[i] = plotter.XY{X: t[i], Y: mapRange(dist[i], dLo, dHi, lLo, lHi)}
	}

	lightLine, err := plotter.NewLine(lightPts)
	if err != nil {
		return nil, err
	}
	lightLine.Color = lightOrange
	lightLine.Width = vg.Points(1.5)
	p.Add(lightLine)
	p.Legend.Add("Light Sensor", lightLine)

	distLine, err := plotter.NewLine(distPts)
	if err != nil {
		return nil, err
	}
	distLine.Color = distCyan
	distLine.Width = vg.Points(1.5)
	p.Add(distLine)
	p.Legend.Add("Distance (cm, right scale)", distLine)

	// Right-edge tick labels for the mapped distance scale.
	tEnd := t[n-1]
	scale := plotter.XYLabels{
		XYs: plotter.XYs{
			{X: tEnd, Y: lLo},
			{X: tEnd, Y: (lLo + lHi) / 2},
			{X: tEnd, Y: lHi},
		},
		Labels: []string{
			fmt.Sprintf("%.0f", dLo),
			fmt.Sprintf("%.0f", (dLo+dHi)/2),
			fmt.Sprintf("%.0f", dHi),
		},
	}
	labels, err := plotter.NewLabels(scale)
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	p.Legend.Top = true
	return p, nil
}

// statsPanel renders the derived statistics as a plain text block with no
// plotted geometry.
func statsPanel(st telemetry.Stats) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Path Statistics"
	p.HideX()
	p.HideY()
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	lines := StatsLines(st)
	xys := make(plotter.XYs, len(lines))
	for i := range lines {
		xys[i] = plotter.XY{X: 0.08, Y: 0.92 - float64(i)*0.09}
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: lines})
	if err != nil {
		return nil, err
	}
	p.Add(labels)
	return p, nil
}

// addEndpoints marks the first and last sample with the start/end glyphs.
func addEndpoints(p *plot.Plot, s *telemetry.Series) error {
	first, last := s.First(), s.Last()

	start, err := plotter.NewScatter(plotter.XYs{{X: first.X, Y: first.Y}})
	if err != nil {
		return err
	}
	start.GlyphStyle = draw.GlyphStyle{Color: startGreen, Radius: vg.Points(5), Shape: draw.CircleGlyph{}}
	p.Add(start)
	p.Legend.Add("Start", start)

	end, err := plotter.NewScatter(plotter.XYs{{X: last.X, Y: last.Y}})
	if err != nil {
		return err
	}
	end.GlyphStyle = draw.GlyphStyle{Color: endRed, Radius: vg.Points(5), Shape: draw.CircleGlyph{}}
	p.Add(end)
	p.Legend.Add("End", end)
	return nil
}

// addArrows draws each directional arrow as its own thin polyline.
func addArrows(p *plot.Plot, arrows []Arrow) error {
	for _, a := range arrows {
		line, err := plotter.NewLine(a.segments())
		if err != nil {
			return err
		}
		line.Color = arrowRed
		line.Width = vg.Points(1)
		p.Add(line)
	}
	return nil
}

// applySquareRanges forces equal-aspect axis ranges on a path panel.
func applySquareRanges(p *plot.Plot, s *telemetry.Series) {
	p.X.Min, p.X.Max, p.Y.Min, p.Y.Max = squareRanges(s.X, s.Y)
}

// writePNG encodes the canvas and writes it through the filesystem.
func writePNG(fsys fsutil.FileSystem, img *vgimg.Canvas, filename string) error {
	w, err := fsys.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		w.Close()
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filename, err)
	}
	return nil
}
