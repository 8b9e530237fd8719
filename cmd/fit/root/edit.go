package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mHappah3019/fittracker-sub000/internal/engine"
	"github.com/mHappah3019/fittracker-sub000/internal/ui"
)

func newEditCmd() *cobra.Command {
	var name string
	var diff string
	var target int

	cmd := &cobra.Command{
		Use:   "edit <habit name or id>",
		Short: "Edit a habit's name, difficulty or target streak",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("habit name or id is required")
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
			habitID, err := resolveHabitID(ctx, svc, u.ID, args[0])
			if err != nil {
				return err
			}

			var in engine.UpdateHabitInput
			if cmd.Flags().Changed("name") {
				in.Name = &name
			}
			if cmd.Flags().Changed("difficulty") {
				d, err := engine.ParseDifficulty(diff)
				if err != nil {
					return err
				}
				in.Difficulty = &d
			}
			if cmd.Flags().Changed("target") {
				in.TargetStreak = &target
			}
			if in.Name == nil && in.Difficulty == nil && in.TargetStreak == nil {
				return errors.New("nothing to change; pass --name, --difficulty or --target")
			}

			h, err := svc.UpdateHabit(ctx, habitID, in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n",
				ui.Good.Render(ui.IconDone+" Updated"), ui.Title.Render(h.Name), ui.DifficultyText(h.Difficulty))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New habit name")
	cmd.Flags().StringVarP(&diff, "difficulty", "d", "", "New difficulty (easy|medium|hard)")
	cmd.Flags().IntVarP(&target, "target", "t", 0, "New target streak")

	return cmd
}
