package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mHappah3019/fittracker-sub000/internal/ui"
)

func newDailyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Run the daily life-point rollover for all users",
		Long:  "Reconciles life points for every user with recorded activity. Safe to run more than once per day; already-handled users are skipped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			n, err := svc.RunDailyRollover(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s reconciled %d user(s)\n", ui.Good.Render(ui.IconDone), n)
			return nil
		},
	}

	return cmd
}
