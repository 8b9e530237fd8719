package storage

import "time"

type User struct {
	ID           string
	Username     string
	Level        int
	XPTotal      float64
	LifePoints   int
	LastAccessAt *time.Time
	CreatedAt    time.Time
}

type Habit struct {
	ID              string
	UserID          string
	Name            string
	Difficulty      string
	Frequency       string
	CurrentStreak   int
	LongestStreak   int
	LastCompletedAt *time.Time
	TargetStreak    *int
	CreatedAt       time.Time
}

// HabitCompletion is the append-only completion ledger row. CompletedOn is
// a YYYY-MM-DD date string; rows are never updated or deleted.
type HabitCompletion struct {
	ID          string
	HabitID     string
	UserID      string
	CompletedOn string
	Streak      int
	Notes       *string
	CreatedAt   time.Time
}

type EquippedItem struct {
	UserID     string
	Slot       string
	Name       string
	Multiplier float64
	EquippedAt time.Time
}
