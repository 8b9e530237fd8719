package engine

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/mHappah3019/fittracker-sub000/internal/storage"
)

// MaxHabitNameLen bounds habit names.
const MaxHabitNameLen = 100

type CreateHabitInput struct {
	UserID       string
	Name         string
	Difficulty   Difficulty
	Frequency    Frequency
	TargetStreak *int
}

type UpdateHabitInput struct {
	Name         *string
	Difficulty   *Difficulty
	TargetStreak *int
}

func normalizeHabitName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", ValidationError{Field: "name", Reason: "must not be blank"}
	}
	if len(n) > MaxHabitNameLen {
		return "", ValidationError{Field: "name", Reason: "must be at most 100 characters"}
	}
	return n, nil
}

// checkNameFree enforces the unique-name-per-owner rule. excludeID skips
// the habit being renamed.
func (s *Service) checkNameFree(ctx context.Context, userID, name, excludeID string) error {
	existing, err := s.habits.GetByName(ctx, userID, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return DuplicateNameError{Name: name}
	}
	return nil
}

func (s *Service) CreateHabit(ctx context.Context, in CreateHabitInput) (*storage.Habit, error) {
	name, err := normalizeHabitName(in.Name)
	if err != nil {
		return nil, err
	}
	if !in.Difficulty.IsValid() {
		return nil, ValidationError{Field: "difficulty", Reason: "must be easy, medium or hard"}
	}
	freq := in.Frequency
	if freq == "" {
		freq = FrequencyDaily
	}
	if !freq.IsValid() {
		return nil, ValidationError{Field: "frequency", Reason: "must be daily, weekly or monthly"}
	}
	// Streak windows for weekly/monthly habits are undefined; reject them
	// here rather than accept habits that can never be completed.
	if freq != FrequencyDaily {
		return nil, UnsupportedFrequencyError{Frequency: freq}
	}
	if in.TargetStreak != nil && *in.TargetStreak <= 0 {
		return nil, ValidationError{Field: "target streak", Reason: "must be positive"}
	}

	if _, err := s.getUser(ctx, in.UserID); err != nil {
		return nil, err
	}
	if err := s.checkNameFree(ctx, in.UserID, name, ""); err != nil {
		return nil, err
	}

	h := &storage.Habit{
		ID:           uuid.NewString(),
		UserID:       in.UserID,
		Name:         name,
		Difficulty:   string(in.Difficulty),
		Frequency:    string(freq),
		TargetStreak: in.TargetStreak,
	}
	if err := s.habits.Insert(ctx, h); err != nil {
		return nil, err
	}
	return s.getHabit(ctx, h.ID)
}

func (s *Service) UpdateHabit(ctx context.Context, habitID string, in UpdateHabitInput) (*storage.Habit, error) {
	h, err := s.getHabit(ctx, habitID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name, err := normalizeHabitName(*in.Name)
		if err != nil {
			return nil, err
		}
		if err := s.checkNameFree(ctx, h.UserID, name, h.ID); err != nil {
			return nil, err
		}
		h.Name = name
	}
	if in.Difficulty != nil {
		if !in.Difficulty.IsValid() {
			return nil, ValidationError{Field: "difficulty", Reason: "must be easy, medium or hard"}
		}
		h.Difficulty = string(*in.Difficulty)
	}
	if in.TargetStreak != nil {
		if *in.TargetStreak <= 0 {
			return nil, ValidationError{Field: "target streak", Reason: "must be positive"}
		}
		h.TargetStreak = in.TargetStreak
	}

	if err := s.habits.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}
