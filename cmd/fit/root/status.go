package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mHappah3019/fittracker-sub000/internal/engine"
	"github.com/mHappah3019/fittracker-sub000/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show user stats, life points and equipment",
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

			// Run the daily check-in first so the numbers shown are current.
			res, err := svc.HandleApplicationStartup(ctx, u.ID)
			if err != nil {
				return err
			}
			u, err = svc.UserRepo().Get(ctx, u.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, u.Username))

			nextAt := float64(u.Level * engine.XPPerLevel)
			toNext := nextAt - u.XPTotal
			if toNext < 0 {
				toNext = 0
			}
			fmt.Fprintln(out, ui.LabelValue("Level", u.Level))
			fmt.Fprintln(out, ui.LabelValue("Total XP", fmt.Sprintf("%.1f (next level at %.0f, %.1f to go)", u.XPTotal, nextAt, toNext)))
			fmt.Fprintln(out, ui.LabelValue("Life", ui.LifeBar(u.LifePoints)))

			if res != nil && res.NewLifePoints != res.OldLifePoints {
				fmt.Fprintf(out, "%s life %d → %d today\n", ui.Muted.Render("Daily check-in:"), res.OldLifePoints, res.NewLifePoints)
			}
			if res != nil && res.LevelDecreased {
				fmt.Fprintln(out, ui.BadgeLevelDown+" "+ui.Bad.Render("life points depleted"))
			}

			if svc.Event().Active {
				fmt.Fprintln(out, ui.Gold.Render(fmt.Sprintf("%s XP event active (×%.1f)", ui.IconEvent, svc.Event().Multiplier)))
			}

			items, err := svc.EquipmentRepo().ListByUser(ctx, u.ID)
			if err != nil {
				return err
			}
			if len(items) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(ui.IconGear+" Equipment"))
				for _, it := range items {
					fmt.Fprintf(out, "- %s %-10s %s ×%.2f\n", ui.Key.Render(it.Slot+":"), it.Name, ui.IconBolt, it.Multiplier)
				}
			}
			return nil
		},
	}

	return cmd
}
