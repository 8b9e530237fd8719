package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mHappah3019/fittracker-sub000/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive habit board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, svc, flagUser, cmd.OutOrStdout())
		},
	}

	return cmd
}
