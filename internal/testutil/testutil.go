// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files and improve test maintainability.
package testutil

import (
	"fmt"
	"strings"
	"testing"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// TelemetryCSV builds a telemetry log fixture with the canonical header and
// one line per row of six values (Time, X, Y, Theta, Light, Dist).
func TelemetryCSV(rows ...[6]float64) string {
	var b strings.Builder
	b.WriteString("Time,X,Y,Theta,Light,Dist\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%g,%g,%g,%g,%d,%d\n", r[0], r[1], r[2], r[3], int(r[4]), int(r[5]))
	}
	return b.String()
}
