package engine

import (
	"context"
	"testing"
)

// seedYesterday marks yesterday as the user's last access after optionally
// completing some habits on that day.
func seedYesterday(t *testing.T, svc *Service, userID, yesterday string, completeHabits ...string) {
	t.Helper()
	ctx := context.Background()

	setToday(svc, day(t, yesterday))
	for _, habitID := range completeHabits {
		if _, err := svc.CompleteHabit(ctx, habitID, userID); err != nil {
			t.Fatalf("seed completion: %v", err)
		}
	}

	u := reloadUser(t, svc, userID)
	access := day(t, yesterday)
	u.LastAccessAt = &access
	saveUser(t, svc, u)
}

func TestStartupFirstEverAccess(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	u := newTestUser(t, svc)
	setToday(svc, day(t, "2025-03-10"))

	res, err := svc.HandleApplicationStartup(ctx, u.ID)
	if err != nil {
		t.Fatalf("startup: %v", err)
	}
	if res == nil {
		t.Fatal("first access should reconcile")
	}
	if res.OldLifePoints != 100 || res.NewLifePoints != 100 {
		t.Errorf("life %d -> %d, want unchanged 100", res.OldLifePoints, res.NewLifePoints)
	}

	u2 := reloadUser(t, svc, u.ID)
	if u2.LastAccessAt == nil || DateString(*u2.LastAccessAt) != "2025-03-10" {
		t.Errorf("last access not recorded")
	}
}

func TestStartupIdempotentPerDay(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	u := newTestUser(t, svc)
	setToday(svc, day(t, "2025-03-10"))

	if res, err := svc.HandleApplicationStartup(ctx, u.ID); err != nil || res == nil {
		t.Fatalf("first startup: res=%v err=%v", res, err)
	}
	res, err := svc.HandleApplicationStartup(ctx, u.ID)
	if err != nil {
		t.Fatalf("second startup: %v", err)
	}
	if res != nil {
		t.Fatal("second startup on the same day should be a no-op")
	}
}

func TestLifePointsHalfCompletionRate(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	u := newTestUser(t, svc)
	// easy (1.2) + hard (0.8) average to a neutral 1.0 multiplier.
	h1 := newTestHabit(t, svc, u.ID, "Run", DifficultyEasy)
	newTestHabit(t, svc, u.ID, "Study", DifficultyHard)

	seedYesterday(t, svc, u.ID, "2025-03-09", h1.ID)
	setToday(svc, day(t, "2025-03-10"))

	res, err := svc.HandleApplicationStartup(ctx, u.ID)
	if err != nil {
		t.Fatalf("startup: %v", err)
	}
	// 1 of 2 habits done = 50% < 75%: -5, scaled by avg 1.0.
	if res.NewLifePoints != 95 {
		t.Errorf("life = %d, want 95", res.NewLifePoints)
	}
	if res.LevelDecreased {
		t.Error("level should not decrease")
	}
}

func TestLifePointsGoodCompletionRate(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	u := newTestUser(t, svc)
	u.LifePoints = 80
	saveUser(t, svc, u)

	h1 := newTestHabit(t, svc, u.ID, "Run", DifficultyMedium)
	seedYesterday(t, svc, u.ID, "2025-03-09", h1.ID)
	setToday(svc, day(t, "2025-03-10"))

	res, err := svc.HandleApplicationStartup(ctx, u.ID)
	if err != nil {
		t.Fatalf("startup: %v", err)
	}
	// 1 of 1 = 100% >= 75%: +10.
	if res.NewLifePoints != 90 {
		t.Errorf("life = %d, want 90", res.NewLifePoints)
	}
}

func TestLifePointsInactivityPenalty(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	u := newTestUser(t, svc)
	newTestHabit(t, svc, u.ID, "Run", DifficultyMedium)

	seedYesterday(t, svc, u.ID, "2025-03-09")
	setToday(svc, day(t, "2025-03-10"))

	res, err := svc.HandleApplicationStartup(ctx, u.ID)
	if err != nil {
		t.Fatalf("startup: %v", err)
	}
	// Nothing completed yesterday: flat -10.
	if res.NewLifePoints != 90 {
		t.Errorf("life = %d, want 90", res.NewLifePoints)
	}
}

func TestLifePointsExtendedInactivity(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	u := newTestUser(t, svc)
	newTestHabit(t, svc, u.ID, "Run", DifficultyMedium)

	seedYesterday(t, svc, u.ID, "2025-03-06")
	setToday(svc, day(t, "2025-03-10"))

	res, err := svc.HandleApplicationStartup(ctx, u.ID)
	if err != nil {
		t.Fatalf("startup: %v", err)
	}
	// Flat -10 plus (4-1) days * -10 = -40.
	if res.NewLifePoints != 60 {
		t.Errorf("life = %d, want 60", res.NewLifePoints)
	}
}

func TestLifePointsDifficultyScaling(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	u := newTestUser(t, svc)
	h1 := newTestHabit(t, svc, u.ID, "Walk", DifficultyEasy)
	newTestHabit(t, svc, u.ID, "Jog", DifficultyEasy)

	seedYesterday(t, svc, u.ID, "2025-03-09", h1.ID)
	setToday(svc, day(t, "2025-03-10"))

	res, err := svc.HandleApplicationStartup(ctx, u.ID)
	if err != nil {
		t.Fatalf("startup: %v", err)
	}
	// 50% rate: -5, scaled by the all-easy 1.2 average: round(-6) = -6.
	if res.NewLifePoints != 94 {
		t.Errorf("life = %d, want 94", res.NewLifePoints)
	}
}

func TestLifePointsDepletionCostsLevel(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	u := newTestUser(t, svc)
	u.Level = 3
	u.LifePoints = 5
	saveUser(t, svc, u)
	newTestHabit(t, svc, u.ID, "Run", DifficultyMedium)

	seedYesterday(t, svc, u.ID, "2025-03-09")
	setToday(svc, day(t, "2025-03-10"))

	res, err := svc.HandleApplicationStartup(ctx, u.ID)
	if err != nil {
		t.Fatalf("startup: %v", err)
	}
	if !res.LevelDecreased {
		t.Fatal("depletion should cost a level")
	}
	if res.NewLifePoints != DepletionRestore {
		t.Errorf("life = %d, want %d", res.NewLifePoints, DepletionRestore)
	}

	u2 := reloadUser(t, svc, u.ID)
	if u2.Level != 2 {
		t.Errorf("level = %d, want 2", u2.Level)
	}
}

func TestRunDailyRollover(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	a, err := svc.UserRepo().GetOrCreate(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	b, err := svc.UserRepo().GetOrCreate(ctx, "bob")
	if err != nil {
		t.Fatal(err)
	}
	// carol has never accessed; the rollover must skip her.
	if _, err := svc.UserRepo().GetOrCreate(ctx, "carol"); err != nil {
		t.Fatal(err)
	}

	for _, u := range []string{a.ID, b.ID} {
		user := reloadUser(t, svc, u)
		access := day(t, "2025-03-09")
		user.LastAccessAt = &access
		saveUser(t, svc, user)
	}

	setToday(svc, day(t, "2025-03-10"))
	n, err := svc.RunDailyRollover(ctx)
	if err != nil {
		t.Fatalf("rollover: %v", err)
	}
	if n != 2 {
		t.Errorf("reconciled %d users, want 2", n)
	}

	// Re-running the same day is safe and touches nobody.
	n, err = svc.RunDailyRollover(ctx)
	if err != nil {
		t.Fatalf("second rollover: %v", err)
	}
	if n != 0 {
		t.Errorf("second run reconciled %d users, want 0", n)
	}
}
