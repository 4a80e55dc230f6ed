package telemetry

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/banshee-data/odometry.report/internal/fsutil"
	"github.com/banshee-data/odometry.report/internal/units"
)

// ErrNotFound reports that the telemetry log path does not exist. Callers
// use errors.Is to distinguish it from malformed-content failures.
var ErrNotFound = errors.New("telemetry log not found")

// ParseError reports malformed log content: a missing header column, a bad
// numeric literal, or a structurally broken row. Row is the 1-based data
// row number; it is 0 for header-level problems.
type ParseError struct {
	Row    int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Row == 0 && e.Column != "":
		return fmt.Sprintf("parse telemetry header: column %q: %v", e.Column, e.Err)
	case e.Column != "":
		return fmt.Sprintf("parse telemetry row %d: column %q: %v", e.Row, e.Column, e.Err)
	default:
		return fmt.Sprintf("parse telemetry row %d: %v", e.Row, e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// Required log columns. Order in the file is not significant.
var requiredColumns = []string{"Time", "X", "Y", "Theta", "Light", "Dist"}

// Load reads the telemetry log at path into a Series. The load is
// all-or-nothing: any missing column, malformed literal or short row fails
// the whole file and no partial series is returned.
func Load(fsys fsutil.FileSystem, path string) (*Series, error) {
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("open telemetry log: %w", err)
	}
	defer f.Close()

	return parse(f)
}

func parse(r io.Reader) (*Series, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &ParseError{Err: errors.New("empty file, expected header row")}
	}
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, &ParseError{Column: name, Err: errors.New("missing from header")}
		}
	}

	s := &Series{}
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, &ParseError{Row: row, Err: err}
		}

		timeMs, err := parseFloat(record, col, "Time", row)
		if err != nil {
			return nil, err
		}
		x, err := parseFloat(record, col, "X", row)
		if err != nil {
			return nil, err
		}
		y, err := parseFloat(record, col, "Y", row)
		if err != nil {
			return nil, err
		}
		theta, err := parseFloat(record, col, "Theta", row)
		if err != nil {
			return nil, err
		}
		light, err := parseInt(record, col, "Light", row)
		if err != nil {
			return nil, err
		}
		dist, err := parseInt(record, col, "Dist", row)
		if err != nil {
			return nil, err
		}

		s.TimeMs = append(s.TimeMs, units.Milliseconds(timeMs))
		s.X = append(s.X, x)
		s.Y = append(s.Y, y)
		s.Theta = append(s.Theta, units.Centidegrees(theta))
		s.Light = append(s.Light, light)
		s.Dist = append(s.Dist, dist)
	}

	if s.Len() == 0 {
		return nil, &ParseError{Err: errors.New("no data rows")}
	}
	return s, nil
}

func parseFloat(record []string, col map[string]int, name string, row int) (float64, error) {
	raw := strings.TrimSpace(record[col[name]])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ParseError{Row: row, Column: name, Err: err}
	}
	return v, nil
}

func parseInt(record []string, col map[string]int, name string, row int) (int, error) {
	raw := strings.TrimSpace(record[col[name]])
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ParseError{Row: row, Column: name, Err: err}
	}
	return v, nil
}
