package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mHappah3019/fittracker-sub000/internal/engine"
	"github.com/mHappah3019/fittracker-sub000/internal/ui"
)

func newEquipCmd() *cobra.Command {
	var mult float64
	var remove bool

	cmd := &cobra.Command{
		Use:   "equip <slot> [item name]",
		Short: "Equip an XP-boosting item (weapon|armor|accessory)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("slot is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			u, err := svc.UserRepo().GetOrCreate(ctx, flagUser)
			if err != nil {
				return err
			}

			slot, err := engine.ParseSlot(args[0])
			if err != nil {
				return err
			}

			if remove {
				if err := svc.Unequip(ctx, u.ID, slot); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s cleared %s slot\n", ui.Good.Render(ui.IconDone), slot)
				return nil
			}

			if len(args) < 2 {
				return errors.New("item name is required (or pass --remove)")
			}
			if err := svc.Equip(ctx, engine.EquipInput{
				UserID:     u.ID,
				Slot:       slot,
				Name:       args[1],
				Multiplier: mult,
			}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s equipped %s in %s (%s ×%.2f)\n",
				ui.Good.Render(ui.IconGear), ui.Title.Render(args[1]), slot, ui.IconBolt, mult)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&mult, "multiplier", "m", 1.0, "XP multiplier granted by the item")
	cmd.Flags().BoolVar(&remove, "remove", false, "Clear the slot instead of equipping")

	return cmd
}
