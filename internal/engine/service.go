package engine

import (
	"context"
	"database/sql"
	"time"

	"github.com/mHappah3019/fittracker-sub000/internal/storage"
)

// EventState is the global XP event flag with its multiplier. It is
// explicit Service state (seeded from config) rather than an ambient
// singleton, so tests and callers control it directly.
type EventState struct {
	Active     bool
	Multiplier float64
}

type Service struct {
	db          *sql.DB
	users       *storage.UserRepo
	habits      *storage.HabitRepo
	completions *storage.CompletionRepo
	equipment   *storage.EquipmentRepo

	event            EventState
	rolloverPageSize int
	now              func() time.Time
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:          db,
		users:       storage.NewUserRepo(db),
		habits:      storage.NewHabitRepo(db),
		completions: storage.NewCompletionRepo(db),
		equipment:   storage.NewEquipmentRepo(db),
		event:       EventState{Multiplier: DefaultEventMultiplier},
		now:         time.Now,
	}
}

func (s *Service) UserRepo() *storage.UserRepo             { return s.users }
func (s *Service) HabitRepo() *storage.HabitRepo           { return s.habits }
func (s *Service) CompletionRepo() *storage.CompletionRepo { return s.completions }
func (s *Service) EquipmentRepo() *storage.EquipmentRepo   { return s.equipment }

// SetEvent toggles the global XP event. Takes effect on the next
// completion; the chain is rebuilt per calculation.
func (s *Service) SetEvent(e EventState) { s.event = e }

func (s *Service) Event() EventState { return s.event }

// SetRolloverPageSize overrides the rollover page size from config.
func (s *Service) SetRolloverPageSize(n int) { s.rolloverPageSize = n }

// SetClock overrides the time source. Tests use this to steer day
// boundaries for streak and rollover behaviour.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// gearSnapshot reads the current equipment multipliers and event state for
// one XP calculation. No caching: a fresh read per completion keeps
// equipment changes immediately visible.
func (s *Service) gearSnapshot(ctx context.Context, userID string) (GearSnapshot, error) {
	mults, err := s.equipment.Multipliers(ctx, userID)
	if err != nil {
		return GearSnapshot{}, err
	}
	slots := make(map[Slot]float64, len(mults))
	for slot, m := range mults {
		slots[Slot(slot)] = m
	}
	return GearSnapshot{
		SlotMultipliers: slots,
		EventActive:     s.event.Active,
		EventMultiplier: s.event.Multiplier,
	}, nil
}

func (s *Service) getUser(ctx context.Context, userID string) (*storage.User, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *Service) getHabit(ctx context.Context, habitID string) (*storage.Habit, error) {
	h, err := s.habits.Get(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrHabitNotFound
	}
	return h, nil
}
