// Package pipeline loads the syllabus: cached page if still valid, otherwise a
// fresh fetch that is then stored, followed by extraction.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kakimtched/cs50p-final-project/internal/cache"
	"github.com/kakimtched/cs50p-final-project/internal/fetch"
	"github.com/kakimtched/cs50p-final-project/internal/syllabus"
)

var (
	// ErrFetchUnavailable means there was no valid cache and the fetch failed.
	ErrFetchUnavailable = errors.New("failed to fetch syllabus")
	// ErrNoData means a document was available but yielded no weeks.
	ErrNoData = errors.New("no weeks found")
)

// InvalidWeekError reports a week number outside [0, Max].
type InvalidWeekError struct {
	Week int
	Max  int
}

func (e *InvalidWeekError) Error() string {
	return fmt.Sprintf("invalid_week_number: expected 0 <= week <= %d", e.Max)
}

// Source says where the document came from.
type Source string

const (
	SourceCache   Source = "cache"
	SourceNetwork Source = "network"
)

type Result struct {
	Weeks  []syllabus.Week
	Source Source
}

type Coordinator struct {
	Store   cache.Store
	Fetcher fetch.Fetcher
	URL     string
	Logger  *zap.Logger
	// Refresh skips the cache read; a successful fetch is still stored.
	Refresh bool
	// OnFetch, when set, is called right before the network fetch starts.
	OnFetch func()
}

func (c *Coordinator) Load(ctx context.Context) (Result, error) {
	log := c.Logger
	if log == nil {
		log = zap.NewNop()
	}
	url := c.URL
	if url == "" {
		url = syllabus.URL
	}

	var (
		html   string
		source Source
	)

	if !c.Refresh {
		doc, err := c.Store.Load(ctx)
		if err != nil {
			log.Debug("cache miss", zap.Error(err))
		} else {
			log.Debug("cache hit", zap.Int("bytes", len(doc)))
			html, source = doc, SourceCache
		}
	}

	if html == "" {
		if c.OnFetch != nil {
			c.OnFetch()
		}
		doc, err := c.Fetcher.Fetch(ctx, url)
		if err != nil {
			log.Warn("fetch failed", zap.String("url", url), zap.Error(err))
			return Result{}, ErrFetchUnavailable
		}
		log.Info("fetched syllabus", zap.String("url", url), zap.Int("bytes", len(doc)))

		if err := c.Store.Save(ctx, doc); err != nil {
			log.Warn("cache save failed", zap.Error(err))
		}
		html, source = doc, SourceNetwork
	}

	weeks, err := syllabus.Extract(html)
	if err != nil {
		log.Warn("extract failed", zap.String("source", string(source)), zap.Error(err))
		return Result{}, ErrNoData
	}
	if len(weeks) == 0 {
		log.Warn("syllabus has no weeks", zap.String("source", string(source)))
		return Result{}, ErrNoData
	}

	log.Debug("extracted weeks", zap.Int("count", len(weeks)), zap.String("source", string(source)))
	return Result{Weeks: weeks, Source: source}, nil
}

// Select returns week n, or an *InvalidWeekError when n is out of range.
func Select(weeks []syllabus.Week, n int) (syllabus.Week, error) {
	if n < 0 || n >= len(weeks) {
		return syllabus.Week{}, &InvalidWeekError{Week: n, Max: len(weeks) - 1}
	}
	return weeks[n], nil
}
