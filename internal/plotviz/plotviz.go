// Package plotviz renders telemetry series into the static analysis
// images: a six-panel dashboard and a single-panel simple path plot.
// All drawing goes through gonum/plot onto an in-memory canvas and the
// finished PNG is written through the injected filesystem, so rendering
// is fully testable without touching the working directory.
package plotviz

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/plotter"

	"github.com/banshee-data/odometry.report/internal/telemetry"
)

// Output filenames, written to the current working directory and
// overwritten on every run.
const (
	DashboardFile = "robot_path_analysis.png"
	SimpleFile    = "robot_path_simple.png"
)

// DarkLightThreshold is the light reading below which a sample is treated
// as the robot sitting on the dark line surface.
const DarkLightThreshold = 45

// Colour encoding shared by both renderers.
var (
	pathBlue      = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	pathBlueFaint = color.RGBA{R: 31, G: 119, B: 180, A: 70}
	startGreen    = color.RGBA{G: 160, A: 255}
	endRed        = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	arrowRed      = color.RGBA{R: 214, G: 39, B: 40, A: 150}
	headingPurple = color.RGBA{R: 148, G: 103, B: 189, A: 255}
	lightOrange   = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	distCyan      = color.RGBA{R: 23, G: 190, B: 207, A: 255}
	darkSquare    = color.RGBA{A: 230}
)

// Arrow is one directional marker on the path: position, heading angle in
// radians, and cosmetic shaft length in data units.
type Arrow struct {
	X, Y   float64
	Angle  float64
	Length float64
}

// Arrows samples the series at a stride of max(1, N/maxCount) and builds a
// directional arrow at each sampled pose. The angle comes from the logged
// centidegree heading.
func Arrows(s *telemetry.Series, maxCount int, length float64) []Arrow {
	n := s.Len()
	if n == 0 || maxCount <= 0 {
		return nil
	}

	stride := n / maxCount
	if stride < 1 {
		stride = 1
	}

	var arrows []Arrow
	for i := 0; i < n; i += stride {
		arrows = append(arrows, Arrow{
			X:      s.X[i],
			Y:      s.Y[i],
			Angle:  s.Theta[i].Radians(),
			Length: length,
		})
	}
	return arrows
}

// segments returns the polyline that draws the arrow: shaft, then the two
// head barbs traced tip-out-and-back so a single line plotter can draw it.
func (a Arrow) segments() plotter.XYs {
	tipX := a.X + a.Length*math.Cos(a.Angle)
	tipY := a.Y + a.Length*math.Sin(a.Angle)

	head := a.Length / 2
	leftX := tipX + head*math.Cos(a.Angle+5*math.Pi/6)
	leftY := tipY + head*math.Sin(a.Angle+5*math.Pi/6)
	rightX := tipX + head*math.Cos(a.Angle-5*math.Pi/6)
	rightY := tipY + head*math.Sin(a.Angle-5*math.Pi/6)

	return plotter.XYs{
		{X: a.X, Y: a.Y},
		{X: tipX, Y: tipY},
		{X: leftX, Y: leftY},
		{X: tipX, Y: tipY},
		{X: rightX, Y: rightY},
	}
}

// pathXYs converts the series positions into plotter points.
func pathXYs(s *telemetry.Series) plotter.XYs {
	pts := make(plotter.XYs, s.Len())
	for i := range pts {
		pts[i] = plotter.XY{X: s.X[i], Y: s.Y[i]}
	}
	return pts
}

// squareRanges computes symmetric, padded axis ranges so a path panel
// keeps equal aspect: both axes get the span of the larger one, centred
// on the data.
func squareRanges(xs, ys []float64) (xmin, xmax, ymin, ymax float64) {
	if len(xs) == 0 || len(ys) == 0 {
		return -1, 1, -1, 1
	}

	xlo, xhi := minMax(xs)
	ylo, yhi := minMax(ys)

	span := math.Max(xhi-xlo, yhi-ylo)
	if span == 0 {
		span = 1
	}
	pad := span * 0.05
	half := span/2 + pad

	cx := (xlo + xhi) / 2
	cy := (ylo + yhi) / 2
	return cx - half, cx + half, cy - half, cy + half
}

func minMax(v []float64) (lo, hi float64) {
	lo, hi = v[0], v[0]
	for _, x := range v[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi
}

// mapRange linearly maps v from [srcLo, srcHi] into [dstLo, dstHi]. A
// degenerate source range maps everything to the destination midpoint.
func mapRange(v, srcLo, srcHi, dstLo, dstHi float64) float64 {
	if srcHi == srcLo {
		return (dstLo + dstHi) / 2
	}
	return dstLo + (v-srcLo)/(srcHi-srcLo)*(dstHi-dstLo)
}
