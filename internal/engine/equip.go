package engine

import (
	"context"

	"github.com/mHappah3019/fittracker-sub000/internal/storage"
)

type EquipInput struct {
	UserID     string
	Slot       Slot
	Name       string
	Multiplier float64
}

// Equip places an item in one of the user's slots. Only the slot's XP
// multiplier matters to the engine; inventory and acquisition live
// elsewhere.
func (s *Service) Equip(ctx context.Context, in EquipInput) error {
	if !in.Slot.IsValid() {
		return ValidationError{Field: "slot", Reason: "must be weapon, armor or accessory"}
	}
	if in.Name == "" {
		return ValidationError{Field: "item name", Reason: "must not be blank"}
	}
	if in.Multiplier < 0 {
		return ValidationError{Field: "multiplier", Reason: "must not be negative"}
	}
	if _, err := s.getUser(ctx, in.UserID); err != nil {
		return err
	}
	return s.equipment.Equip(ctx, &storage.EquippedItem{
		UserID:     in.UserID,
		Slot:       string(in.Slot),
		Name:       in.Name,
		Multiplier: in.Multiplier,
	})
}

func (s *Service) Unequip(ctx context.Context, userID string, slot Slot) error {
	if !slot.IsValid() {
		return ValidationError{Field: "slot", Reason: "must be weapon, armor or accessory"}
	}
	return s.equipment.Unequip(ctx, userID, string(slot))
}
