package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/kakimtched/cs50p-final-project/internal/browser"
	"github.com/kakimtched/cs50p-final-project/internal/pipeline"
	"github.com/kakimtched/cs50p-final-project/internal/syllabus"
	"github.com/kakimtched/cs50p-final-project/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Pick a week interactively",
	Long:  "Open an interactive list of the course weeks. Press enter to open a week in the browser.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		return tui.Run(tui.RunOpts{
			Load: func(ctx context.Context, refresh bool) (pipeline.Result, error) {
				// The spinner replaces the status line while the picker owns the screen.
				return s.coordinator(refresh || flagRefresh, io.Discard).Load(ctx)
			},
			Open: browser.Open,
			Base: syllabus.URL,
		})
	},
}

func init() {
	browseCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "ignore the cached page and fetch it again")
}
