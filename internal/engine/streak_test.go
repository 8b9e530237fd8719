package engine

import (
	"testing"
	"time"
)

func TestComputeStreakFirstCompletion(t *testing.T) {
	today := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	got, err := ComputeStreak(nil, 0, FrequencyDaily, today)
	if err != nil {
		t.Fatalf("ComputeStreak: %v", err)
	}
	if got != 1 {
		t.Fatalf("first completion streak = %d, want 1", got)
	}
}

func TestComputeStreakDaily(t *testing.T) {
	today := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		last    time.Time
		current int
		want    int
	}{
		{"consecutive day continues", today.AddDate(0, 0, -1), 4, 5},
		{"late-night to early-morning still counts", time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC), 1, 2},
		{"same day resets to 1", today.Add(-2 * time.Hour), 4, 1},
		{"two-day gap resets", today.AddDate(0, 0, -2), 9, 1},
		{"long gap resets", today.AddDate(0, 0, -30), 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last := tt.last
			got, err := ComputeStreak(&last, tt.current, FrequencyDaily, today)
			if err != nil {
				t.Fatalf("ComputeStreak: %v", err)
			}
			if got != tt.want {
				t.Errorf("streak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeStreakMonotoneOverConsecutiveDays(t *testing.T) {
	start := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	streak := 0
	var last *time.Time
	for i := 0; i < 10; i++ {
		today := start.AddDate(0, 0, i)
		got, err := ComputeStreak(last, streak, FrequencyDaily, today)
		if err != nil {
			t.Fatalf("day %d: %v", i, err)
		}
		if got != streak+1 && !(last == nil && got == 1) {
			t.Fatalf("day %d: streak = %d, want %d", i, got, streak+1)
		}
		streak = got
		l := today
		last = &l
	}
	if streak != 10 {
		t.Fatalf("final streak = %d, want 10", streak)
	}
}

func TestComputeStreakRejectsNonDaily(t *testing.T) {
	today := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	for _, f := range []Frequency{FrequencyWeekly, FrequencyMonthly} {
		if _, err := ComputeStreak(nil, 0, f, today); err == nil {
			t.Errorf("ComputeStreak(%s) should fail", f)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2025-03-09", "2025-03-10", 1},
		{"2025-03-10", "2025-03-10", 0},
		{"2025-03-01", "2025-03-10", 9},
		{"2025-03-10", "2025-03-09", -1},
		{"2025-02-28", "2025-03-01", 1},
	}
	for _, tt := range tests {
		a, _ := time.Parse(time.DateOnly, tt.a)
		b, _ := time.Parse(time.DateOnly, tt.b)
		// Offset the clock times to prove only the date matters.
		if got := DaysBetween(a.Add(23*time.Hour), b.Add(1*time.Minute)); got != tt.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
