package engine

import (
	"errors"
	"fmt"
)

var (
	ErrHabitNotFound         = errors.New("habit not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrAlreadyCompletedToday = errors.New("habit already completed today")
)

// ValidationError reports caller-correctable bad input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DuplicateNameError is returned when a habit name collides with another
// habit of the same owner.
type DuplicateNameError struct {
	Name string
}

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("habit %q already exists", e.Name)
}

// UnsupportedFrequencyError is returned for frequencies whose streak
// continuation window is not defined. Only daily habits are supported.
type UnsupportedFrequencyError struct {
	Frequency Frequency
}

func (e UnsupportedFrequencyError) Error() string {
	return fmt.Sprintf("frequency %q is not supported yet (only daily)", e.Frequency)
}
