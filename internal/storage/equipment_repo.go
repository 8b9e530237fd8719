package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type EquipmentRepo struct {
	db *sql.DB
}

func NewEquipmentRepo(db *sql.DB) *EquipmentRepo {
	return &EquipmentRepo{db: db}
}

// Equip sets the item occupying a slot, replacing any previous occupant.
func (r *EquipmentRepo) Equip(ctx context.Context, item *EquippedItem) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO equipment (user_id, slot, name, multiplier)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, slot) DO UPDATE SET name = excluded.name, multiplier = excluded.multiplier, equipped_at = CURRENT_TIMESTAMP
	`, item.UserID, item.Slot, item.Name, item.Multiplier)
	if err != nil {
		return fmt.Errorf("equipment equip: %w", err)
	}
	return nil
}

func (r *EquipmentRepo) Unequip(ctx context.Context, userID, slot string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE user_id = ? AND slot = ?`, userID, slot)
	if err != nil {
		return fmt.Errorf("equipment unequip: %w", err)
	}
	return nil
}

func (r *EquipmentRepo) ListByUser(ctx context.Context, userID string) ([]EquippedItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, slot, name, multiplier, equipped_at
		FROM equipment
		WHERE user_id = ?
		ORDER BY slot
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("equipment list: %w", err)
	}
	defer rows.Close()

	var out []EquippedItem
	for rows.Next() {
		var it EquippedItem
		if err := rows.Scan(&it.UserID, &it.Slot, &it.Name, &it.Multiplier, &it.EquippedAt); err != nil {
			return nil, fmt.Errorf("equipment list scan: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("equipment list rows: %w", err)
	}
	return out, nil
}

// Multipliers returns the per-slot XP multipliers currently equipped.
// Slots without equipment are simply absent; callers treat absence as 1.0.
func (r *EquipmentRepo) Multipliers(ctx context.Context, userID string) (map[string]float64, error) {
	items, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	m := make(map[string]float64, len(items))
	for _, it := range items {
		m[it.Slot] = it.Multiplier
	}
	return m, nil
}
