package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type HabitRepo struct {
	db *sql.DB
}

func NewHabitRepo(db *sql.DB) *HabitRepo {
	return &HabitRepo{db: db}
}

const habitColumns = `id, user_id, name, difficulty, frequency, current_streak, longest_streak, last_completed_at, target_streak, created_at`

func scanHabit(scan func(dest ...any) error) (*Habit, error) {
	var h Habit
	var lastCompleted sql.NullTime
	var target sql.NullInt64
	err := scan(&h.ID, &h.UserID, &h.Name, &h.Difficulty, &h.Frequency,
		&h.CurrentStreak, &h.LongestStreak, &lastCompleted, &target, &h.CreatedAt)
	if err != nil {
		return nil, err
	}
	if lastCompleted.Valid {
		t := lastCompleted.Time
		h.LastCompletedAt = &t
	}
	if target.Valid {
		n := int(target.Int64)
		h.TargetStreak = &n
	}
	return &h, nil
}

func (r *HabitRepo) Get(ctx context.Context, id string) (*Habit, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+habitColumns+` FROM habits WHERE id = ?`, id)
	h, err := scanHabit(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("habit get: %w", err)
	}
	return h, nil
}

// GetByName looks a habit up by owner and exact name. Used for the
// unique-name-per-owner rule.
func (r *HabitRepo) GetByName(ctx context.Context, userID, name string) (*Habit, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+habitColumns+` FROM habits WHERE user_id = ? AND name = ?`, userID, name)
	h, err := scanHabit(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("habit get by name: %w", err)
	}
	return h, nil
}

func (r *HabitRepo) ListByUser(ctx context.Context, userID string) ([]Habit, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+habitColumns+` FROM habits WHERE user_id = ? ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("habit list: %w", err)
	}
	defer rows.Close()

	var out []Habit
	for rows.Next() {
		h, err := scanHabit(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("habit list scan: %w", err)
		}
		out = append(out, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("habit list rows: %w", err)
	}
	return out, nil
}

func (r *HabitRepo) Insert(ctx context.Context, h *Habit) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO habits (id, user_id, name, difficulty, frequency, current_streak, longest_streak, last_completed_at, target_streak)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, h.ID, h.UserID, h.Name, h.Difficulty, h.Frequency, h.CurrentStreak, h.LongestStreak, h.LastCompletedAt, nullableInt(h.TargetStreak))
	if err != nil {
		return fmt.Errorf("habit insert: %w", err)
	}
	return nil
}

func (r *HabitRepo) Update(ctx context.Context, h *Habit) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE habits
		SET name = ?, difficulty = ?, frequency = ?, current_streak = ?, longest_streak = ?, last_completed_at = ?, target_streak = ?
		WHERE id = ?
	`, h.Name, h.Difficulty, h.Frequency, h.CurrentStreak, h.LongestStreak, h.LastCompletedAt, nullableInt(h.TargetStreak), h.ID)
	if err != nil {
		return fmt.Errorf("habit update: %w", err)
	}
	return nil
}

func (r *HabitRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("habit delete: %w", err)
	}
	return nil
}

func nullableInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
