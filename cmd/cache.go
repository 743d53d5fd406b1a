package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kakimtched/cs50p-final-project/internal/cache"
	"github.com/kakimtched/cs50p-final-project/internal/config"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the cached syllabus page",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show what is cached",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCache(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		out := cmd.OutOrStdout()
		info, err := store.Info(cmd.Context())
		if errors.Is(err, cache.ErrMiss) {
			fmt.Fprintln(out, "Cache is empty.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading cache: %w", err)
		}

		state := "fresh"
		if info.Expired {
			state = "expired"
		}
		fmt.Fprintf(out, "Backend: %s\n", info.Backend)
		fmt.Fprintf(out, "Location: %s\n", info.Location)
		fmt.Fprintf(out, "Stored: %s (%s ago, %s)\n", info.StoredAt.Local().Format(time.DateTime), formatDuration(time.Since(info.StoredAt)), state)
		fmt.Fprintf(out, "Size: %s\n", formatBytes(info.Size))
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the cached page",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCache(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clearing cache: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared.")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

// openCache opens the configured backend. Unlike the syllabus commands, a
// backend that cannot be opened is reported.
func openCache(cmd *cobra.Command) (cache.Backend, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	store, err := cache.Open(cmd.Context(), cacheOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	return store, nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= 24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	case d >= time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
