package engine

import (
	"context"
	"math"
	"time"

	"github.com/mHappah3019/fittracker-sub000/internal/storage"
)

const (
	// CompletionRateBonus rewards a previous day with >= 75% completion.
	CompletionRateBonus = 10
	// CompletionRateMalus is applied when some habits were done but the
	// rate stayed below the threshold.
	CompletionRateMalus = -5
	// InactivityPenalty is the flat hit for a previous access day with no
	// completions at all.
	InactivityPenalty = -10
	// ExtendedInactivityPenalty is charged per full day beyond the first
	// since the last access.
	ExtendedInactivityPenalty = -10

	GoodCompletionRate = 75.0
)

// LifePointsResult is the ephemeral outcome of the daily reconciliation.
type LifePointsResult struct {
	LevelDecreased bool
	OldLifePoints  int
	NewLifePoints  int
}

// UpdateUserLifePoints runs the daily life-point reconciliation for the
// user: completion-rate bonus/malus over the previous access date, extended
// inactivity penalties, difficulty-weighted scaling, and depletion
// handling. It mutates the user in place; the caller persists.
//
// Invoked once per user per day by the startup workflow.
func (s *Service) UpdateUserLifePoints(ctx context.Context, user *storage.User, today time.Time) (*LifePointsResult, error) {
	old := user.LifePoints

	// First-ever access: nothing to reconcile yet.
	if user.LastAccessAt == nil {
		return &LifePointsResult{OldLifePoints: old, NewLifePoints: old}, nil
	}

	habits, err := s.habits.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	days := DaysBetween(*user.LastAccessAt, today)

	completed, err := s.completions.CountByUserOnDate(ctx, user.ID, DateString(*user.LastAccessAt))
	if err != nil {
		return nil, err
	}

	total := 0
	if completed == 0 {
		total += InactivityPenalty
	} else {
		rate := float64(completed) / float64(len(habits)) * 100
		if rate >= GoodCompletionRate {
			total += CompletionRateBonus
		} else {
			total += CompletionRateMalus
		}
	}

	if days > 1 {
		total += (days - 1) * ExtendedInactivityPenalty
	}

	if total != 0 {
		total = int(math.Round(float64(total) * averagePenaltyMultiplier(habits)))
	}

	AddLifePoints(user, total)
	decreased := false
	if user.LifePoints <= 0 {
		decreased = CheckAndHandleLifePointsDepletion(user)
	}

	return &LifePointsResult{
		LevelDecreased: decreased,
		OldLifePoints:  old,
		NewLifePoints:  user.LifePoints,
	}, nil
}

// averagePenaltyMultiplier averages the difficulty penalty multipliers of
// the user's habits. An empty habit set scales by 1.0.
func averagePenaltyMultiplier(habits []storage.Habit) float64 {
	if len(habits) == 0 {
		return 1.0
	}
	sum := 0.0
	for _, h := range habits {
		sum += Difficulty(h.Difficulty).PenaltyMultiplier()
	}
	return sum / float64(len(habits))
}
