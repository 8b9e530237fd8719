package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mHappah3019/fittracker-sub000/internal/engine"
	"github.com/mHappah3019/fittracker-sub000/internal/ui"
)

func newAddCmd() *cobra.Command {
	var diff string
	var freq string
	var target int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
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

			difficulty, err := engine.ParseDifficulty(diff)
			if err != nil {
				return err
			}
			frequency, err := engine.ParseFrequency(freq)
			if err != nil {
				return err
			}

			in := engine.CreateHabitInput{
				UserID:     u.ID,
				Name:       args[0],
				Difficulty: difficulty,
				Frequency:  frequency,
			}
			if target > 0 {
				in.TargetStreak = &target
			}

			h, err := svc.CreateHabit(ctx, in)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconPlus+" Added habit ")+ui.Title.Render(h.Name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("id: "+h.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&diff, "difficulty", "d", "medium", "Difficulty (easy|medium|hard)")
	cmd.Flags().StringVarP(&freq, "frequency", "f", "daily", "Frequency (only daily is supported)")
	cmd.Flags().IntVarP(&target, "target", "t", 0, "Target streak (optional)")

	return cmd
}
