package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// ErrDuplicateCompletion is returned when the (user, habit, date) unique
// index rejects an insert. The engine maps it to its conflict error so the
// check-then-insert race cannot create two completions for one day.
var ErrDuplicateCompletion = fmt.Errorf("completion already recorded for this day")

type CompletionRepo struct {
	db *sql.DB
}

func NewCompletionRepo(db *sql.DB) *CompletionRepo {
	return &CompletionRepo{db: db}
}

func (r *CompletionRepo) Insert(ctx context.Context, c *HabitCompletion) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO habit_completions (id, habit_id, user_id, completed_on, streak, notes)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.ID, c.HabitID, c.UserID, c.CompletedOn, c.Streak, c.Notes)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicateCompletion
		}
		return fmt.Errorf("completion insert: %w", err)
	}
	return nil
}

// ExistsForDate reports whether a completion exists for (user, habit, date).
func (r *CompletionRepo) ExistsForDate(ctx context.Context, userID, habitID, date string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM habit_completions
		WHERE user_id = ? AND habit_id = ? AND completed_on = ?
	`, userID, habitID, date)
	var n int
	if err := row.Scan(&n); err != nil {
		return false, fmt.Errorf("completion exists: %w", err)
	}
	return n > 0, nil
}

// CountByUserOnDate counts distinct habits the user completed on the date.
func (r *CompletionRepo) CountByUserOnDate(ctx context.Context, userID, date string) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT habit_id)
		FROM habit_completions
		WHERE user_id = ? AND completed_on = ?
	`, userID, date)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("completion count by date: %w", err)
	}
	return n, nil
}

func (r *CompletionRepo) ListByHabit(ctx context.Context, habitID string) ([]HabitCompletion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, habit_id, user_id, completed_on, streak, notes, created_at
		FROM habit_completions
		WHERE habit_id = ?
		ORDER BY completed_on
	`, habitID)
	if err != nil {
		return nil, fmt.Errorf("completion list: %w", err)
	}
	defer rows.Close()

	var out []HabitCompletion
	for rows.Next() {
		var c HabitCompletion
		var notes sql.NullString
		if err := rows.Scan(&c.ID, &c.HabitID, &c.UserID, &c.CompletedOn, &c.Streak, &notes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("completion list scan: %w", err)
		}
		if notes.Valid {
			s := notes.String
			c.Notes = &s
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("completion list rows: %w", err)
	}
	return out, nil
}
