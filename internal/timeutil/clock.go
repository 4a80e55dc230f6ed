// Package timeutil provides a testable abstraction over the one time
// operation this tool performs: stamping run-history records.
package timeutil

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }

// FixedClock is a Clock pinned to a single instant for tests.
type FixedClock struct {
	Time time.Time
}

// Now returns the pinned instant.
func (c FixedClock) Now() time.Time { return c.Time }
