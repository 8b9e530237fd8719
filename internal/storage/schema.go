package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			level INTEGER NOT NULL DEFAULT 1,
			xp_total REAL NOT NULL DEFAULT 0,
			life_points INTEGER NOT NULL DEFAULT 100,
			last_access_at DATETIME,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS habits (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			frequency TEXT NOT NULL DEFAULT 'daily',
			current_streak INTEGER NOT NULL DEFAULT 0,
			longest_streak INTEGER NOT NULL DEFAULT 0,
			last_completed_at DATETIME,
			target_streak INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,

			FOREIGN KEY(user_id) REFERENCES users(id),
			UNIQUE(user_id, name)
		);`,
		// completed_on is a YYYY-MM-DD date string. The unique index is the
		// authoritative once-per-day guard; the workflow's existence check
		// alone cannot hold under concurrent completions.
		`CREATE TABLE IF NOT EXISTS habit_completions (
			id TEXT PRIMARY KEY,
			habit_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			completed_on TEXT NOT NULL,
			streak INTEGER NOT NULL,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,

			FOREIGN KEY(habit_id) REFERENCES habits(id),
			FOREIGN KEY(user_id) REFERENCES users(id),
			UNIQUE(user_id, habit_id, completed_on)
		);`,
		`CREATE TABLE IF NOT EXISTS equipment (
			user_id TEXT NOT NULL,
			slot TEXT NOT NULL,
			name TEXT NOT NULL,
			multiplier REAL NOT NULL DEFAULT 1.0,
			equipped_at DATETIME DEFAULT CURRENT_TIMESTAMP,

			PRIMARY KEY(user_id, slot),
			FOREIGN KEY(user_id) REFERENCES users(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_habits_user_id ON habits(user_id);`,
		`CREATE INDEX IF NOT EXISTS idx_completions_user_date ON habit_completions(user_id, completed_on);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
