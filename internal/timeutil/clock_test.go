package timeutil

import (
	"testing"
	"time"
)

func TestRealClockNow(t *testing.T) {
	before := time.Now()
	got := RealClock{}.Now()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("Now() = %v outside [%v, %v]", got, before, after)
	}
}

func TestFixedClockNow(t *testing.T) {
	instant := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	c := FixedClock{Time: instant}

	if got := c.Now(); !got.Equal(instant) {
		t.Errorf("Now() = %v, want %v", got, instant)
	}
	// A fixed clock never advances.
	if got := c.Now(); !got.Equal(instant) {
		t.Errorf("second Now() = %v, want %v", got, instant)
	}
}
