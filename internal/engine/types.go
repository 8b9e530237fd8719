package engine

import (
	"fmt"
	"strings"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// BaseXP returns the experience value intrinsic to the difficulty tier,
// before any chain multipliers.
func (d Difficulty) BaseXP() float64 {
	switch d {
	case DifficultyEasy:
		return 10
	case DifficultyMedium:
		return 15
	case DifficultyHard:
		return 20
	default:
		return 0
	}
}

// PenaltyMultiplier returns the difficulty scaling applied to life-point
// deltas. Harder habits dampen both penalties and bonuses.
func (d Difficulty) PenaltyMultiplier() float64 {
	switch d {
	case DifficultyEasy:
		return 1.2
	case DifficultyMedium:
		return 1.0
	case DifficultyHard:
		return 0.8
	default:
		return 1.0
	}
}

func ParseDifficulty(input string) (Difficulty, error) {
	d := Difficulty(strings.TrimSpace(strings.ToLower(input)))
	if !d.IsValid() {
		return "", fmt.Errorf("invalid difficulty: %q", input)
	}
	return d, nil
}

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

func ParseFrequency(input string) (Frequency, error) {
	f := Frequency(strings.TrimSpace(strings.ToLower(input)))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid frequency: %q", input)
	}
	return f, nil
}

type Slot string

const (
	SlotWeapon    Slot = "weapon"
	SlotArmor     Slot = "armor"
	SlotAccessory Slot = "accessory"
)

func (s Slot) IsValid() bool {
	switch s {
	case SlotWeapon, SlotArmor, SlotAccessory:
		return true
	default:
		return false
	}
}

func ParseSlot(input string) (Slot, error) {
	s := Slot(strings.TrimSpace(strings.ToLower(input)))
	if !s.IsValid() {
		return "", fmt.Errorf("invalid equipment slot: %q", input)
	}
	return s, nil
}
