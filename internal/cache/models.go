package cache

import "time"

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

type Options struct {
	Backend     string
	Path        string
	RedisURL    string
	RedisPrefix string
	Expiry      time.Duration
}

// Info describes the stored document for the cache commands.
type Info struct {
	Backend  string
	Location string
	StoredAt time.Time
	Size     int64
	Expired  bool
}
