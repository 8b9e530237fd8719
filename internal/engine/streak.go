package engine

import "time"

// ComputeStreak returns the streak value a completion today would carry.
// It is pure; callers persist the result.
//
// A nil lastCompleted means first-ever completion and always yields 1. For
// daily habits a gap of exactly one day continues the streak, anything else
// resets it to 1. Weekly and monthly windows are undefined and rejected.
func ComputeStreak(lastCompleted *time.Time, currentStreak int, freq Frequency, today time.Time) (int, error) {
	if freq != FrequencyDaily {
		return 0, UnsupportedFrequencyError{Frequency: freq}
	}
	if lastCompleted == nil {
		return 1, nil
	}
	if DaysBetween(*lastCompleted, today) == 1 {
		return currentStreak + 1, nil
	}
	return 1, nil
}

// DaysBetween returns the number of calendar days from a to b, ignoring the
// time-of-day component. Negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	a = truncateToDay(a)
	b = truncateToDay(b)
	return int(b.Sub(a).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateString formats a time as the YYYY-MM-DD key used by the completion
// ledger.
func DateString(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
