package root

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/mHappah3019/fittracker-sub000/internal/api"
	"github.com/mHappah3019/fittracker-sub000/internal/ui"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if addr == "" {
				addr = cfg.API.Addr()
			}

			srv := api.NewServer(svc)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBolt, "FitTracker API listening on "+addr))
			return http.ListenAndServe(addr, srv.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to config [api])")

	return cmd
}
