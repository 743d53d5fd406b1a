package cache

import (
	"context"
	"fmt"
)

type unavailable struct {
	err error
}

// Unavailable returns a Backend that always misses and refuses to store.
// It stands in for a backend that could not be opened.
func Unavailable(err error) Backend {
	return unavailable{err: err}
}

func (u unavailable) Load(ctx context.Context) (string, error) {
	return "", fmt.Errorf("%w: %v", ErrMiss, u.err)
}

func (u unavailable) Save(ctx context.Context, doc string) error { return u.err }

func (u unavailable) Info(ctx context.Context) (Info, error) { return Info{}, u.err }

func (u unavailable) Clear(ctx context.Context) error { return u.err }

func (u unavailable) Close() error { return nil }
