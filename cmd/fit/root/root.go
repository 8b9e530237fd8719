package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mHappah3019/fittracker-sub000/internal/ui"
)

const Version = "0.1.0"

var flagUser string

var rootCmd = &cobra.Command{
	Use:           "fit",
	Short:         "FitTracker: habit tracking with RPG scoring",
	Long:          "FitTracker is a local-first habit tracker: complete habits to earn XP, keep streaks alive and defend your life points.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "main", "Username to act as")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoneCmd(),
		newEditCmd(),
		newListCmd(),
		newStatusCmd(),
		newEquipCmd(),
		newDailyCmd(),
		newBoardCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
