package engine

import (
	"github.com/mHappah3019/fittracker-sub000/internal/storage"
)

const (
	// XPPerLevel is the linear level curve step: level = floor(xp/100) + 1.
	XPPerLevel = 100

	MaxLifePoints = 100
	MinLifePoints = 0

	// DepletionRestore is the life-point refund granted when depletion
	// costs a level.
	DepletionRestore = 50
)

// LevelForTotalXP maps a total XP value to a level. Users start at level 1.
func LevelForTotalXP(totalXP float64) int {
	if totalXP < 0 {
		totalXP = 0
	}
	return int(totalXP/XPPerLevel) + 1
}

// CheckUpdateUserLevel promotes the user when their XP total has outgrown
// the current level. Returns the achieved level, or 0 when nothing changed.
// The level is never demoted here; depletion handling owns decrements, so a
// level may temporarily sit above the XP-derived value.
func CheckUpdateUserLevel(u *storage.User) int {
	candidate := LevelForTotalXP(u.XPTotal)
	if candidate > u.Level {
		u.Level = candidate
		return candidate
	}
	return 0
}

// AddLifePoints applies a signed delta, clamping the stored value to
// [0, 100] regardless of magnitude.
func AddLifePoints(u *storage.User, delta int) {
	lp := u.LifePoints + delta
	if lp > MaxLifePoints {
		lp = MaxLifePoints
	}
	if lp < MinLifePoints {
		lp = MinLifePoints
	}
	u.LifePoints = lp
}

// CheckAndHandleLifePointsDepletion costs a level and restores half the
// life-point bar when points are exhausted. At level 1 there is nothing
// left to take: points stay at zero and the call reports false.
func CheckAndHandleLifePointsDepletion(u *storage.User) bool {
	if u.LifePoints > 0 {
		return false
	}
	if u.Level <= 1 {
		return false
	}
	u.Level--
	AddLifePoints(u, DepletionRestore)
	return true
}
