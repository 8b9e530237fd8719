package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mHappah3019/fittracker-sub000/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits",
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
			habits, err := svc.HabitRepo().ListByUser(ctx, u.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(habits) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No habits yet. Add one with: fit add \"Drink water\" -d easy"))
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconHabit, "Habits"))
			for _, h := range habits {
				line := fmt.Sprintf("- %-30s %-8s %s", h.Name, ui.DifficultyText(h.Difficulty), ui.StreakText(h.CurrentStreak))
				if h.TargetStreak != nil {
					line += ui.Muted.Render(fmt.Sprintf(" (target %d)", *h.TargetStreak))
				}
				if h.LongestStreak > h.CurrentStreak {
					line += ui.Muted.Render(fmt.Sprintf(" best %d", h.LongestStreak))
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	return cmd
}
