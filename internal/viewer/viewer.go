// Package viewer serves an interactive HTML view of an analyzed run on a
// localhost listener and opens the default browser at it. It replaces a
// blocking plot window: the caller decides when the viewer is done.
package viewer

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/odometry.report/internal/console"
	"github.com/banshee-data/odometry.report/internal/telemetry"
)

// viridis ramp for the light-sensor colour scale.
var lightScale = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// Viewer renders the interactive dashboard for one run.
type Viewer struct {
	series *telemetry.Series
	stats  telemetry.Stats
	source string
}

// New creates a viewer for a loaded series. source names the input file
// for chart subtitles.
func New(s *telemetry.Series, st telemetry.Stats, source string) *Viewer {
	return &Viewer{series: s, stats: st, source: source}
}

// Render writes the dashboard page HTML to w.
func (v *Viewer) Render(w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = "Robot Odometry Analysis"
	page.AddCharts(v.pathChart(), v.headingChart(), v.sensorChart())
	return page.Render(w)
}

// Show serves the rendered page on an ephemeral localhost port, opens the
// browser at it, and blocks until the user presses Enter on the console.
func (v *Viewer) Show(c console.Console) error {
	var buf bytes.Buffer
	if err := v.Render(&buf); err != nil {
		return fmt.Errorf("render dashboard page: %w", err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("start viewer listener: %w", err)
	}
	defer ln.Close()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(buf.Bytes())
	})
	go func() {
		// Serve returns when the listener closes below.
		_ = http.Serve(ln, mux)
	}()

	url := fmt.Sprintf("http://%s", ln.Addr().String())
	c.Printf("Interactive view: %s\n", url)
	openBrowser(url)

	_, err = c.Prompt("Press Enter to close the viewer", "")
	return err
}

// pathChart is the trajectory scatter, coloured by light reading, with
// symmetric axis ranges so the path keeps its shape.
func (v *Viewer) pathChart() *charts.Scatter {
	s := v.series

	maxAbs := 0.0
	data := make([]opts.ScatterData, 0, s.Len())
	minLight, maxLight := s.Light[0], s.Light[0]
	for i := 0; i < s.Len(); i++ {
		if a := abs(s.X[i]); a > maxAbs {
			maxAbs = a
		}
		if a := abs(s.Y[i]); a > maxAbs {
			maxAbs = a
		}
		if s.Light[i] < minLight {
			minLight = s.Light[i]
		}
		if s.Light[i] > maxLight {
			maxLight = s.Light[i]
		}
		data = append(data, opts.ScatterData{Value: []interface{}{s.X[i], s.Y[i], s.Light[i]}})
	}

	// Small padding so edge points stay visible; force square ranges.
	pad := maxAbs * 1.05
	if pad == 0 {
		pad = 1.0
	}
	if maxLight == minLight {
		maxLight = minLight + 1
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "700px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{
			Title: "Robot Path",
			Subtitle: fmt.Sprintf("%s | %.1f cm in %.1f s (%.1f cm/s)",
				v.source, v.stats.PathLengthCm, v.stats.ElapsedSeconds, v.stats.AvgSpeedCmPerS),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "X (cm)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "Y (cm)", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(minLight),
			Max:        float32(maxLight),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: lightScale},
		}),
	)

	sc.AddSeries("path", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
	return sc
}

// headingChart plots heading in degrees against elapsed seconds.
func (v *Viewer) headingChart() *charts.Line {
	s := v.series
	t := s.ElapsedSeconds()

	axis := make([]string, s.Len())
	heading := make([]opts.LineData, s.Len())
	for i := 0; i < s.Len(); i++ {
		axis[i] = fmt.Sprintf("%.1f", t[i])
		heading[i] = opts.LineData{Value: s.Theta[i].Degrees()}
	}

	ln := charts.NewLine()
	ln.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Orientation vs Time"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time (s)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Heading (deg)"}),
	)
	ln.SetXAxis(axis).AddSeries("Heading", heading)
	return ln
}

// sensorChart plots light and distance on two independent Y axes.
func (v *Viewer) sensorChart() *charts.Line {
	s := v.series
	t := s.ElapsedSeconds()

	axis := make([]string, s.Len())
	light := make([]opts.LineData, s.Len())
	dist := make([]opts.LineData, s.Len())
	for i := 0; i < s.Len(); i++ {
		axis[i] = fmt.Sprintf("%.1f", t[i])
		light[i] = opts.LineData{Value: s.Light[i]}
		dist[i] = opts.LineData{Value: s.Dist[i]}
	}

	ln := charts.NewLine()
	ln.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Sensor Readings vs Time"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time (s)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Light"}),
	)
	ln.ExtendYAxis(opts.YAxis{Name: "Distance (cm)", Type: "value"})

	ln.SetXAxis(axis).
		AddSeries("Light Sensor", light).
		AddSeries("Distance Sensor", dist, charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1}))
	return ln
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
