// Command pathviz reads a robot telemetry log, renders the analysis
// dashboard and optional simple path plot, records the run statistics in
// the local run history, and serves an interactive view of the run.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/banshee-data/odometry.report/internal/console"
	"github.com/banshee-data/odometry.report/internal/fsutil"
	"github.com/banshee-data/odometry.report/internal/plotviz"
	"github.com/banshee-data/odometry.report/internal/rundb"
	"github.com/banshee-data/odometry.report/internal/telemetry"
	"github.com/banshee-data/odometry.report/internal/version"
	"github.com/banshee-data/odometry.report/internal/viewer"
)

const defaultLogFile = "path.txt"

var (
	noShow      = flag.Bool("no-show", false, "Skip the interactive viewer (headless use)")
	dbFile      = flag.String("db", rundb.DefaultFile, "Run history database file")
	history     = flag.Int("history", 0, "Print the N most recent analyzed runs after completion")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

// options carries the per-invocation configuration plus the injectable
// viewer hook so the full flow runs under test.
type options struct {
	noShow  bool
	dbFile  string
	history int
	show    func(c console.Console, s *telemetry.Series, st telemetry.Stats, source string) error
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	opts := options{
		noShow:  *noShow,
		dbFile:  *dbFile,
		history: *history,
		show: func(c console.Console, s *telemetry.Series, st telemetry.Stats, source string) error {
			return viewer.New(s, st, source).Show(c)
		},
	}

	c := console.NewStdio(os.Stdin, os.Stdout)

	// Failures are reported on the console and the process still exits
	// with status 0, matching the tool's historical behaviour.
	run(c, fsutil.OSFileSystem{}, opts)
}

func run(c console.Console, fsys fsutil.FileSystem, opts options) {
	banner := strings.Repeat("=", 60)
	c.Printf("%s\n", banner)
	c.Printf("Robot Path Visualization\n")
	c.Printf("%s\n", banner)

	filename, err := c.Prompt("\nEnter filename (default: path.txt)", defaultLogFile)
	if err != nil {
		c.Printf("\nError occurred: %v\n", err)
		return
	}

	c.Printf("\nReading file: %s\n", filename)
	series, err := telemetry.Load(fsys, filename)
	if err != nil {
		if errors.Is(err, telemetry.ErrNotFound) {
			c.Printf("\nError: File '%s' not found!\n", filename)
			c.Printf("Make sure the file exists in the same directory.\n")
		} else {
			c.Printf("\nError occurred: %v\n", err)
		}
		return
	}
	c.Printf("Read %d data points\n", series.Len())

	stats := telemetry.Derive(series)
	c.Printf("\nBasic Information:\n")
	c.Printf("   - X Range: %.1f to %.1f cm\n", stats.MinX, stats.MaxX)
	c.Printf("   - Y Range: %.1f to %.1f cm\n", stats.MinY, stats.MaxY)
	c.Printf("   - Total Time: %.1f seconds\n", stats.ElapsedSeconds)

	c.Printf("\nGenerating full analysis plot...\n")
	if err := plotviz.RenderDashboard(fsys, series, stats, plotviz.DashboardFile); err != nil {
		c.Printf("\nError occurred: %v\n", err)
		return
	}
	c.Printf("Image saved: %s\n", plotviz.DashboardFile)

	// The run history is best-effort: a broken database must not cost the
	// user their plots.
	db, err := rundb.Open(opts.dbFile)
	if err != nil {
		log.Printf("run history unavailable: %v", err)
	} else {
		defer db.Close()
		if _, err := db.RecordRun(filename, stats); err != nil {
			log.Printf("failed to record run: %v", err)
		}
	}

	if !opts.noShow && opts.show != nil {
		if err := opts.show(c, series, stats, filename); err != nil {
			log.Printf("interactive viewer: %v", err)
		}
	}

	answer, err := c.Prompt("\nDo you want a simple plot too? (y/n)", "n")
	if err != nil {
		c.Printf("\nError occurred: %v\n", err)
		return
	}
	if console.YesNo(answer) {
		c.Printf("\nGenerating simple path plot...\n")
		if err := plotviz.RenderSimplePath(fsys, series, plotviz.SimpleFile); err != nil {
			c.Printf("\nError occurred: %v\n", err)
			return
		}
		c.Printf("Image saved: %s\n", plotviz.SimpleFile)
	}

	c.Printf("\nCompleted successfully!\n")
	c.Printf("%s\n", banner)

	if opts.history > 0 && db != nil {
		printHistory(c, db, opts.history)
	}
}

func printHistory(c console.Console, db *rundb.DB, n int) {
	runs, err := db.RecentRuns(n)
	if err != nil {
		log.Printf("failed to read run history: %v", err)
		return
	}
	if len(runs) == 0 {
		return
	}

	c.Printf("\nRecent runs:\n")
	for _, r := range runs {
		c.Printf("   %s  %-20s %4d pts  %7.1f cm  %6.1f s  %5.1f cm/s\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.SourceFile, r.Points, r.PathLengthCm, r.ElapsedSeconds, r.AvgSpeedCmPerS)
	}
}
