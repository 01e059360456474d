package daily

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	ts := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("plus2", 2*3600))
	// 23:30+02:00 is 21:30 UTC, still the 9th.
	if got := DateKey(ts); got != "2024-03-09" {
		t.Errorf("DateKey = %q, want 2024-03-09", got)
	}
}

func TestTargetIndexDeterministic(t *testing.T) {
	date := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	a := TargetIndex(date, "salt", 100)
	b := TargetIndex(date.Add(5*time.Hour), "salt", 100) // same UTC day
	if a != b {
		t.Errorf("same day gave different indexes: %d vs %d", a, b)
	}
}

func TestTargetIndexInRange(t *testing.T) {
	date := time.Now()
	for _, n := range []int{1, 2, 7, 100, 12345} {
		idx := TargetIndex(date, "salt", n)
		if idx < 0 || idx >= n {
			t.Errorf("TargetIndex(len=%d) = %d, out of range", n, idx)
		}
	}
}

func TestTargetIndexEmptyList(t *testing.T) {
	if got := TargetIndex(time.Now(), "salt", 0); got != 0 {
		t.Errorf("TargetIndex(len=0) = %d, want 0", got)
	}
}

func TestTargetIndexVariesAcrossDays(t *testing.T) {
	// With a decent list size, a week of dates should not all collapse to
	// one index.
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for d := 0; d < 7; d++ {
		seen[TargetIndex(base.AddDate(0, 0, d), "salt", 1000)] = true
	}
	if len(seen) < 2 {
		t.Error("a week of dates mapped to a single index")
	}
}
