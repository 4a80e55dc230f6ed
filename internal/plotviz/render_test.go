package plotviz

import (
	"bytes"
	"testing"

	"github.com/banshee-data/odometry.report/internal/fsutil"
	"github.com/banshee-data/odometry.report/internal/telemetry"
	"github.com/banshee-data/odometry.report/internal/units"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderDashboardWritesPNG(t *testing.T) {
	fs := fsutil.NewMemoryFileSystem()
	s := testSeries(40)
	st := telemetry.Derive(s)

	if err := RenderDashboard(fs, s, st, DashboardFile); err != nil {
		t.Fatalf("RenderDashboard: %v", err)
	}

	data, ok := fs.Bytes(DashboardFile)
	if !ok {
		t.Fatalf("%s not written", DashboardFile)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Errorf("%s does not start with PNG magic", DashboardFile)
	}
}

func TestRenderDashboardNoDarkSamples(t *testing.T) {
	fs := fsutil.NewMemoryFileSystem()
	s := testSeries(10)
	for i := range s.Light {
		s.Light[i] = 90 // everything above the dark threshold
	}

	if err := RenderDashboard(fs, s, telemetry.Derive(s), "out.png"); err != nil {
		t.Fatalf("RenderDashboard with empty dark subset: %v", err)
	}
	if _, ok := fs.Bytes("out.png"); !ok {
		t.Fatal("out.png not written")
	}
}

func TestRenderDashboardSingleSample(t *testing.T) {
	fs := fsutil.NewMemoryFileSystem()
	s := &telemetry.Series{
		TimeMs: []units.Milliseconds{0},
		X:      []float64{1},
		Y:      []float64{1},
		Theta:  []units.Centidegrees{4500},
		Light:  []int{50},
		Dist:   []int{20},
	}

	if err := RenderDashboard(fs, s, telemetry.Derive(s), "single.png"); err != nil {
		t.Fatalf("RenderDashboard single sample: %v", err)
	}
}

func TestRenderSimplePathWritesPNG(t *testing.T) {
	fs := fsutil.NewMemoryFileSystem()
	s := testSeries(25)

	if err := RenderSimplePath(fs, s, SimpleFile); err != nil {
		t.Fatalf("RenderSimplePath: %v", err)
	}

	data, ok := fs.Bytes(SimpleFile)
	if !ok {
		t.Fatalf("%s not written", SimpleFile)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Errorf("%s does not start with PNG magic", SimpleFile)
	}
}

func TestRenderOverwritesExisting(t *testing.T) {
	fs := fsutil.NewMemoryFileSystem()
	fs.AddFile(SimpleFile, []byte("stale"))

	if err := RenderSimplePath(fs, testSeries(5), SimpleFile); err != nil {
		t.Fatalf("RenderSimplePath: %v", err)
	}
	data, _ := fs.Bytes(SimpleFile)
	if bytes.Equal(data, []byte("stale")) {
		t.Error("existing file was not overwritten")
	}
}
