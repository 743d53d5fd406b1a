// Package cache keeps the single most recent copy of the syllabus page.
//
// Every backend holds exactly one document. A document older than the
// configured expiry is reported as a miss, whatever its content.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DefaultExpiry is how long a stored document stays valid.
const DefaultExpiry = 6 * time.Hour

// ErrMiss is wrapped by every failed Load: nothing stored, expired, or the
// medium could not be read.
var ErrMiss = errors.New("cache miss")

// Store is what the fetch pipeline needs from a cache.
type Store interface {
	// Load returns the stored document. Any error means there is no usable document.
	Load(ctx context.Context) (string, error)
	// Save replaces the stored document.
	Save(ctx context.Context, doc string) error
}

// Backend is a Store that can also be inspected and emptied.
type Backend interface {
	Store
	Info(ctx context.Context) (Info, error)
	Clear(ctx context.Context) error
	Close() error
}

// Open builds the backend named in opts.
func Open(ctx context.Context, opts Options) (Backend, error) {
	expiry := opts.Expiry
	if expiry <= 0 {
		expiry = DefaultExpiry
	}

	switch opts.Backend {
	case "", BackendFile:
		return NewFile(opts.Path, expiry), nil
	case BackendSQLite:
		db, err := OpenSQLite(opts.Path, expiry)
		if err != nil {
			return nil, err
		}
		return db, nil
	case BackendRedis:
		r, err := NewRedis(ctx, opts.RedisURL, opts.RedisPrefix, expiry)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q (valid: file, sqlite, redis)", opts.Backend)
	}
}

func expired(storedAt, now time.Time, expiry time.Duration) bool {
	return now.Sub(storedAt) > expiry
}
