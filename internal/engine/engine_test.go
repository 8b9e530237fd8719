package engine

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/mHappah3019/fittracker-sub000/internal/storage"
)

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc := NewService(db)
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func newTestUser(t *testing.T, svc *Service) *storage.User {
	t.Helper()
	u, err := svc.UserRepo().GetOrCreate(context.Background(), "tester")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func newTestHabit(t *testing.T, svc *Service, userID, name string, d Difficulty) *storage.Habit {
	t.Helper()
	h, err := svc.CreateHabit(context.Background(), CreateHabitInput{
		UserID:     userID,
		Name:       name,
		Difficulty: d,
	})
	if err != nil {
		t.Fatalf("create habit %q: %v", name, err)
	}
	return h
}

// day parses YYYY-MM-DD into a mid-day UTC timestamp, so date truncation is
// actually exercised.
func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		t.Fatalf("parse day %q: %v", s, err)
	}
	return d.Add(12 * time.Hour)
}

func setToday(svc *Service, today time.Time) {
	svc.SetClock(func() time.Time { return today })
}

func saveUser(t *testing.T, svc *Service, u *storage.User) {
	t.Helper()
	if err := svc.UserRepo().Update(context.Background(), u); err != nil {
		t.Fatalf("update user: %v", err)
	}
}

func reloadUser(t *testing.T, svc *Service, id string) *storage.User {
	t.Helper()
	u, err := svc.UserRepo().Get(context.Background(), id)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if u == nil {
		t.Fatalf("user %s vanished", id)
	}
	return u
}
