package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kakimtched/cs50p-final-project/internal/pipeline"
	"github.com/kakimtched/cs50p-final-project/internal/render"
	"github.com/kakimtched/cs50p-final-project/internal/update"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagList    bool
	flagWeek    int
	flagRefresh bool
	flagOpen    bool
	flagConfig  string
	flagCheck   bool
)

var rootCmd = &cobra.Command{
	Use:   "cs50p",
	Short: "CS50P syllabus in your terminal",
	Long: `cs50p lists the weeks of CS50's Introduction to Programming with Python.

Usage:
  - list all weeks:        cs50p --list
  - show a specific week:  cs50p --week <WEEK_NUM>`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagList, "list", "l", false, "list all weeks")
	rootCmd.Flags().IntVarP(&flagWeek, "week", "w", 0, "show details for a specific week")
	rootCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "ignore the cached page and fetch it again")
	rootCmd.Flags().BoolVar(&flagOpen, "open", false, "open the selected week in the browser (with --week)")
	rootCmd.MarkFlagsMutuallyExclusive("list", "week")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")

	versionCmd.Flags().BoolVar(&flagCheck, "check", false, "check for a newer release")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(cacheCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cs50p %s (commit: %s, built: %s)\n", version, commit, date)
		if flagCheck {
			if res := update.Check(cmd.Context(), version); res != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Update available: v%s\n", res.LatestVersion)
			}
		}
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		render.New(os.Stderr, false).Error(errorMessage(err))
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// errorMessage turns a command error into the single line shown to the user.
func errorMessage(err error) string {
	var invalid *pipeline.InvalidWeekError
	switch {
	case errors.Is(err, pipeline.ErrFetchUnavailable):
		return "Failed to fetch syllabus"
	case errors.Is(err, pipeline.ErrNoData):
		return "No weeks found. Exiting."
	case errors.As(err, &invalid):
		return invalid.Error()
	default:
		return "Try to fix this -> : " + err.Error()
	}
}
