package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kakimtched/cs50p-final-project/internal/browser"
	"github.com/kakimtched/cs50p-final-project/internal/cache"
	"github.com/kakimtched/cs50p-final-project/internal/config"
	"github.com/kakimtched/cs50p-final-project/internal/fetch"
	"github.com/kakimtched/cs50p-final-project/internal/logging"
	"github.com/kakimtched/cs50p-final-project/internal/pipeline"
	"github.com/kakimtched/cs50p-final-project/internal/render"
	"github.com/kakimtched/cs50p-final-project/internal/syllabus"
)

// session bundles what every syllabus command needs.
type session struct {
	cfg      *config.Config
	log      *zap.Logger
	store    cache.Backend
	closeLog func() error
}

// openSession loads the config and opens the logger and cache. A cache or
// log file that cannot be opened degrades silently; only a bad config fails.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log, closeLog, err := logging.New(logging.Config{Level: cfg.Log.Level, File: cfg.LogPath()})
	if err != nil {
		log = logging.Nop()
		closeLog = func() error { return nil }
	}

	store, err := cache.Open(ctx, cacheOptions(cfg))
	if err != nil {
		log.Warn("cache unavailable", zap.String("backend", cfg.Cache.Backend), zap.Error(err))
		store = cache.Unavailable(err)
	}

	return &session{cfg: cfg, log: log, store: store, closeLog: closeLog}, nil
}

func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		s.log.Warn("closing cache", zap.Error(err))
	}
	s.closeLog()
}

// coordinator builds a pipeline over the session's cache. Fetch progress is
// reported on status.
func (s *session) coordinator(refresh bool, status io.Writer) *pipeline.Coordinator {
	return &pipeline.Coordinator{
		Store:   s.store,
		Fetcher: fetch.NewHTTPFetcher(s.cfg.TimeoutDuration(), "cs50p/"+version),
		URL:     syllabus.URL,
		Logger:  s.log,
		Refresh: refresh,
		OnFetch: func() {
			render.New(status, false).Status("Loading syllabus...")
		},
	}
}

func cacheOptions(cfg *config.Config) cache.Options {
	return cache.Options{
		Backend:     cfg.Cache.Backend,
		Path:        cfg.CachePath(),
		RedisURL:    cfg.Cache.RedisURL,
		RedisPrefix: cfg.RedisPrefix(),
		Expiry:      cache.DefaultExpiry,
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !flagList && !cmd.Flags().Changed("week") {
		fmt.Fprintln(cmd.OutOrStdout())
		if err := cmd.Help(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	}

	ctx := cmd.Context()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	req := request{list: flagList, week: flagWeek, open: flagOpen}
	p := render.New(cmd.OutOrStdout(), s.cfg.Hyperlinks)
	return showSyllabus(ctx, s.coordinator(flagRefresh, cmd.ErrOrStderr()), p, req, browser.Open)
}

type request struct {
	list bool
	week int
	open bool
}

// showSyllabus prints the header, loads the weeks and renders either the
// full list or the requested week.
func showSyllabus(ctx context.Context, coord *pipeline.Coordinator, p *render.Printer, req request, open func(string) error) error {
	p.Header()

	res, err := coord.Load(ctx)
	if err != nil {
		return err
	}

	if req.list {
		p.Weeks(res.Weeks, syllabus.URL)
		return nil
	}

	w, err := pipeline.Select(res.Weeks, req.week)
	if err != nil {
		return err
	}
	p.Week(w, syllabus.URL)

	if req.open {
		if err := open(w.URL(syllabus.URL)); err != nil {
			return fmt.Errorf("opening browser: %w", err)
		}
	}
	return nil
}
