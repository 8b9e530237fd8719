package engine

import (
	"context"
	"time"

	"github.com/mHappah3019/fittracker-sub000/internal/metrics"
	"github.com/mHappah3019/fittracker-sub000/internal/storage"
)

// DefaultRolloverPageSize is how many users one rollover page loads.
const DefaultRolloverPageSize = 100

// IsFirstAccessOfDay reports whether the user has not been seen today:
// last access is unset or strictly before the current date.
func IsFirstAccessOfDay(u *storage.User, today time.Time) bool {
	if u.LastAccessAt == nil {
		return true
	}
	return DaysBetween(*u.LastAccessAt, today) > 0
}

// HandleApplicationStartup runs the once-per-day life-point reconciliation
// for the user. Returns nil when today was already handled, which makes the
// call idempotent per calendar day and safe for the batch rollover to
// re-invoke.
func (s *Service) HandleApplicationStartup(ctx context.Context, userID string) (*LifePointsResult, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.now().UTC()
	if !IsFirstAccessOfDay(user, today) {
		return nil, nil
	}

	res, err := s.UpdateUserLifePoints(ctx, user, today)
	if err != nil {
		return nil, err
	}

	user.LastAccessAt = &today
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	if res.LevelDecreased {
		metrics.Depletions.Inc()
	}
	return res, nil
}

// RunDailyRollover applies the startup workflow to every user with a
// recorded last access, paging through the user table. Returns the number
// of users whose life points were reconciled.
func (s *Service) RunDailyRollover(ctx context.Context) (int, error) {
	size := s.rolloverPageSize
	if size <= 0 {
		size = DefaultRolloverPageSize
	}
	processed := 0
	for offset := 0; ; offset += size {
		page, err := s.users.ListWithAccessPage(ctx, size, offset)
		if err != nil {
			return processed, err
		}
		if len(page) == 0 {
			return processed, nil
		}
		for i := range page {
			res, err := s.HandleApplicationStartup(ctx, page[i].ID)
			if err != nil {
				return processed, err
			}
			if res != nil {
				processed++
				metrics.RolloverUsers.Inc()
			}
		}
	}
}
