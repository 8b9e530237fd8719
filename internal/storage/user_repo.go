package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func scanUser(row *sql.Row) (*User, error) {
	var u User
	var lastAccess sql.NullTime
	if err := row.Scan(&u.ID, &u.Username, &u.Level, &u.XPTotal, &u.LifePoints, &lastAccess, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("user scan: %w", err)
	}
	if lastAccess.Valid {
		t := lastAccess.Time
		u.LastAccessAt = &t
	}
	return &u, nil
}

const userColumns = `id, username, level, xp_total, life_points, last_access_at, created_at`

func (r *UserRepo) Get(ctx context.Context, id string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *UserRepo) Insert(ctx context.Context, u *User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, level, xp_total, life_points, last_access_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.ID, u.Username, u.Level, u.XPTotal, u.LifePoints, u.LastAccessAt)
	if err != nil {
		return fmt.Errorf("user insert: %w", err)
	}
	return nil
}

// GetOrCreate returns the user with the given username, creating a fresh
// level-1 user with full life points when none exists.
func (r *UserRepo) GetOrCreate(ctx context.Context, username string) (*User, error) {
	u, err := r.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	u = &User{
		ID:         uuid.NewString(),
		Username:   username,
		Level:      1,
		LifePoints: 100,
	}
	if err := r.Insert(ctx, u); err != nil {
		return nil, err
	}
	return r.GetByUsername(ctx, username)
}

func (r *UserRepo) Update(ctx context.Context, u *User) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET level = ?, xp_total = ?, life_points = ?, last_access_at = ?
		WHERE id = ?
	`, u.Level, u.XPTotal, u.LifePoints, u.LastAccessAt, u.ID)
	if err != nil {
		return fmt.Errorf("user update: %w", err)
	}
	return nil
}

// ListWithAccessPage pages through users that have a recorded last access.
// Ordering by id keeps pagination stable for the daily rollover.
func (r *UserRepo) ListWithAccessPage(ctx context.Context, limit, offset int) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE last_access_at IS NOT NULL
		ORDER BY id
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("user list page: %w", err)
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var u User
		var lastAccess sql.NullTime
		if err := rows.Scan(&u.ID, &u.Username, &u.Level, &u.XPTotal, &u.LifePoints, &lastAccess, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("user list scan: %w", err)
		}
		if lastAccess.Valid {
			t := lastAccess.Time
			u.LastAccessAt = &t
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("user list rows: %w", err)
	}
	return out, nil
}
