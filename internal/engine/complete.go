package engine

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mHappah3019/fittracker-sub000/internal/metrics"
	"github.com/mHappah3019/fittracker-sub000/internal/storage"
)

// CompletionResult is the ephemeral outcome of completing a habit. It is
// handed to the presentation layer and never persisted.
type CompletionResult struct {
	Completion *storage.HabitCompletion
	XPGained   float64
	// NewLevel is the level reached by this completion, or 0 when the
	// level did not change.
	NewLevel int
	Streak   int
}

// CompleteHabit records today's completion of a habit and applies its
// rewards to the owner.
//
// Steps run in a fixed order: resolve habit and user, reject a same-day
// duplicate, advance the streak and save the habit, append the immutable
// completion row, award chain XP and save the user, then promote the level
// in a second save when crossed. A failure at any step surfaces unchanged;
// earlier writes are not compensated.
func (s *Service) CompleteHabit(ctx context.Context, habitID, userID string) (*CompletionResult, error) {
	habit, err := s.getHabit(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit.UserID != userID {
		return nil, ErrHabitNotFound
	}
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.now().UTC()
	date := DateString(today)

	done, err := s.completions.ExistsForDate(ctx, userID, habitID, date)
	if err != nil {
		return nil, err
	}
	if done {
		metrics.CompletionConflicts.Inc()
		return nil, ErrAlreadyCompletedToday
	}

	streak, err := ComputeStreak(habit.LastCompletedAt, habit.CurrentStreak, Frequency(habit.Frequency), today)
	if err != nil {
		return nil, err
	}
	habit.CurrentStreak = streak
	if streak > habit.LongestStreak {
		habit.LongestStreak = streak
	}
	habit.LastCompletedAt = &today
	if err := s.habits.Update(ctx, habit); err != nil {
		return nil, err
	}

	completion := &storage.HabitCompletion{
		ID:          uuid.NewString(),
		HabitID:     habitID,
		UserID:      userID,
		CompletedOn: date,
		Streak:      streak,
	}
	if err := s.completions.Insert(ctx, completion); err != nil {
		// The unique index closes the check-then-insert window under
		// concurrent completions.
		if errors.Is(err, storage.ErrDuplicateCompletion) {
			metrics.CompletionConflicts.Inc()
			return nil, ErrAlreadyCompletedToday
		}
		return nil, err
	}

	snap, err := s.gearSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	xp := NewExperienceChain(snap).Calculate(Difficulty(habit.Difficulty).BaseXP(), user.Level)
	if xp < 0 {
		xp = 0
	}
	user.XPTotal += xp
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	newLevel := CheckUpdateUserLevel(user)
	if newLevel > 0 {
		if err := s.users.Update(ctx, user); err != nil {
			return nil, err
		}
		metrics.LevelUps.Inc()
	}

	metrics.Completions.Inc()
	metrics.XPAwarded.Observe(xp)

	return &CompletionResult{
		Completion: completion,
		XPGained:   xp,
		NewLevel:   newLevel,
		Streak:     streak,
	}, nil
}
