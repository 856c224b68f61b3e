package storage

import (
	"testing"
	"time"
)

func TestQuotaTrackerAdd(t *testing.T) {
	dir := t.TempDir()

	qt, err := NewQuotaTracker(dir, 10000)
	if err != nil {
		t.Fatalf("NewQuotaTracker failed: %v", err)
	}

	if got := qt.Used(); got != 0 {
		t.Errorf("fresh tracker Used() = %d, want 0", got)
	}

	qt.Add(1)
	qt.Add(100)
	qt.Add(201)
	if got := qt.Used(); got != 302 {
		t.Errorf("Used() = %d, want 302", got)
	}

	if got := qt.Budget(); got != 10000 {
		t.Errorf("Budget() = %d, want 10000", got)
	}
}

func TestQuotaTrackerIgnoresNonPositiveCost(t *testing.T) {
	qt, err := NewQuotaTracker(t.TempDir(), 10000)
	if err != nil {
		t.Fatalf("NewQuotaTracker failed: %v", err)
	}

	qt.Add(5)
	qt.Add(0)
	qt.Add(-3)
	if got := qt.Used(); got != 5 {
		t.Errorf("Used() = %d, want 5", got)
	}
}

func TestQuotaTrackerPersistsAcrossRestart(t *testing.T) {
	dir := t.TempDir()

	qt, err := NewQuotaTracker(dir, 10000)
	if err != nil {
		t.Fatalf("NewQuotaTracker failed: %v", err)
	}
	qt.Add(42)

	reloaded, err := NewQuotaTracker(dir, 10000)
	if err != nil {
		t.Fatalf("NewQuotaTracker (reload) failed: %v", err)
	}
	if got := reloaded.Used(); got != 42 {
		t.Errorf("reloaded Used() = %d, want 42", got)
	}
}

func TestQuotaTrackerDayRollover(t *testing.T) {
	qt, err := NewQuotaTracker(t.TempDir(), 10000)
	if err != nil {
		t.Fatalf("NewQuotaTracker failed: %v", err)
	}

	day1 := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	qt.now = func() time.Time { return day1 }

	qt.Add(500)
	if got := qt.Used(); got != 500 {
		t.Errorf("Used() before rollover = %d, want 500", got)
	}

	// Cross midnight: the first observation on the new day resets the
	// counter exactly once.
	day2 := day1.Add(2 * time.Hour)
	qt.now = func() time.Time { return day2 }

	if got := qt.Used(); got != 0 {
		t.Errorf("Used() after rollover = %d, want 0", got)
	}

	qt.Add(7)
	if got := qt.Used(); got != 7 {
		t.Errorf("Used() after new-day charge = %d, want 7", got)
	}
}

func TestQuotaTrackerRollForcesReset(t *testing.T) {
	qt, err := NewQuotaTracker(t.TempDir(), 10000)
	if err != nil {
		t.Fatalf("NewQuotaTracker failed: %v", err)
	}

	day1 := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	qt.now = func() time.Time { return day1 }
	qt.Add(123)

	qt.now = func() time.Time { return day1.AddDate(0, 0, 1) }
	qt.Roll()

	if got := qt.Used(); got != 0 {
		t.Errorf("Used() after Roll = %d, want 0", got)
	}
}

func TestQuotaTrackerStaleStateResetOnLoad(t *testing.T) {
	dir := t.TempDir()

	qt, err := NewQuotaTracker(dir, 10000)
	if err != nil {
		t.Fatalf("NewQuotaTracker failed: %v", err)
	}
	qt.now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }
	qt.Roll()
	qt.Add(999)

	// A restart on a later day must not resurrect yesterday's count.
	reloaded, err := NewQuotaTracker(dir, 10000)
	if err != nil {
		t.Fatalf("NewQuotaTracker (reload) failed: %v", err)
	}
	if got := reloaded.Used(); got != 0 {
		t.Errorf("reloaded Used() = %d, want 0", got)
	}
}
