package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mHappah3019/fittracker-sub000/internal/engine"
	"github.com/mHappah3019/fittracker-sub000/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <habit name or id>",
		Short: "Complete a habit for today",
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

			res, err := svc.CompleteHabit(ctx, habitID, u.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s +%.1f XP  %s\n",
				ui.Good.Render(ui.IconDone+" Done!"), res.XPGained, ui.StreakText(res.Streak))
			if res.NewLevel > 0 {
				fmt.Fprintf(out, "%s %s reached level %d\n", ui.BadgeLevelUp, flagUser, res.NewLevel)
			}
			return nil
		},
	}

	return cmd
}

// resolveHabitID accepts either a habit id or an exact habit name.
func resolveHabitID(ctx context.Context, svc *engine.Service, userID, ref string) (string, error) {
	h, err := svc.HabitRepo().Get(ctx, ref)
	if err != nil {
		return "", err
	}
	if h != nil && h.UserID == userID {
		return h.ID, nil
	}
	h, err = svc.HabitRepo().GetByName(ctx, userID, ref)
	if err != nil {
		return "", err
	}
	if h == nil {
		return "", engine.ErrHabitNotFound
	}
	return h.ID, nil
}
