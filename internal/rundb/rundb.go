// Package rundb keeps a local history of analyzed runs in a sqlite
// database so the derived statistics of past telemetry logs can be
// compared without re-running the analysis.
package rundb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/banshee-data/odometry.report/internal/telemetry"
	"github.com/banshee-data/odometry.report/internal/timeutil"
)

// DefaultFile is the database filename, created in the working directory.
const DefaultFile = "robot_runs.db"

// DB wraps the run-history database handle.
type DB struct {
	*sql.DB
	clock timeutil.Clock
}

// Open opens (creating if necessary) the run-history database at path and
// applies any pending schema migrations.
func Open(path string) (*DB, error) {
	return OpenWithClock(path, timeutil.RealClock{})
}

// OpenWithClock is Open with an injected clock for record timestamps.
func OpenWithClock(path string, clock timeutil.Clock) (*DB, error) {
	raw, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open run database: %w", err)
	}

	db := &DB{DB: raw, clock: clock}
	if err := db.migrateUp(); err != nil {
		raw.Close()
		return nil, fmt.Errorf("migrate run database: %w", err)
	}
	return db, nil
}

// Run is one recorded analysis.
type Run struct {
	ID             string
	SourceFile     string
	Points         int
	PathLengthCm   float64
	ElapsedSeconds float64
	AvgSpeedCmPerS float64
	MeanLight      float64
	FinalDistCm    int
	CreatedAt      time.Time
}

// RecordRun stores the derived statistics of one analyzed log and returns
// the generated run id.
func (db *DB) RecordRun(sourceFile string, st telemetry.Stats) (string, error) {
	id := uuid.New().String()

	_, err := db.Exec(`
		INSERT INTO runs (
			run_id, source_file, points, path_length_cm,
			elapsed_seconds, avg_speed_cmps, mean_light,
			final_dist_cm, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, sourceFile, st.Points, st.PathLengthCm,
		st.ElapsedSeconds, st.AvgSpeedCmPerS, st.MeanLight,
		st.FinalDistCm, db.clock.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	return id, nil
}

// RecentRuns returns up to n runs, newest first.
func (db *DB) RecentRuns(n int) ([]Run, error) {
	rows, err := db.Query(`
		SELECT run_id, source_file, points, path_length_cm,
		       elapsed_seconds, avg_speed_cmps, mean_light,
		       final_dist_cm, created_at
		FROM runs
		ORDER BY created_at DESC, run_id
		LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query recent runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(
			&r.ID, &r.SourceFile, &r.Points, &r.PathLengthCm,
			&r.ElapsedSeconds, &r.AvgSpeedCmPerS, &r.MeanLight,
			&r.FinalDistCm, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
