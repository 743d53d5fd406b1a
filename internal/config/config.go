package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const appName = "cs50p"

type CacheConfig struct {
	Backend     string `yaml:"backend"` // "file", "sqlite" or "redis"
	Path        string `yaml:"path,omitempty"`
	RedisURL    string `yaml:"redis_url,omitempty"`
	RedisPrefix string `yaml:"redis_prefix,omitempty"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

type Config struct {
	Timeout    string      `yaml:"timeout"`
	Hyperlinks bool        `yaml:"hyperlinks"`
	Cache      CacheConfig `yaml:"cache"`
	Log        LogConfig   `yaml:"log"`
}

// TimeoutDuration returns the fetch timeout, defaulting to 10s.
func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// CachePath returns the configured cache location or the backend's default
// file under the XDG cache directory.
func (c *Config) CachePath() string {
	if c.Cache.Path != "" {
		return c.Cache.Path
	}
	name := "cs50p_cache.html"
	if c.Cache.Backend == "sqlite" {
		name = "cs50p_cache.db"
	}
	return filepath.Join(xdg.CacheHome, appName, name)
}

func (c *Config) RedisPrefix() string {
	if c.Cache.RedisPrefix == "" {
		return appName
	}
	return c.Cache.RedisPrefix
}

func (c *Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path (or the default location). Fields missing
// from the file keep their default values. A missing file is created from
// the embedded defaults when possible.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Non-fatal: embedded defaults still apply
			_ = writeDefaults(path)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if cfg.Timeout != "" {
		if d, err := time.ParseDuration(cfg.Timeout); err != nil || d <= 0 {
			return fmt.Errorf("timeout: invalid duration %q", cfg.Timeout)
		}
	}

	switch cfg.Cache.Backend {
	case "", "file", "sqlite":
	case "redis":
		if cfg.Cache.RedisURL == "" {
			return fmt.Errorf("cache: redis_url is required for the redis backend")
		}
		u, err := url.Parse(cfg.Cache.RedisURL)
		if err != nil {
			return fmt.Errorf("cache: invalid redis_url: %w", err)
		}
		if u.Scheme != "redis" && u.Scheme != "rediss" {
			return fmt.Errorf("cache: redis_url scheme must be redis or rediss, got %q", u.Scheme)
		}
	default:
		return fmt.Errorf("cache: unknown backend %q (valid: file, sqlite, redis)", cfg.Cache.Backend)
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log: unknown level %q", cfg.Log.Level)
	}
	return nil
}
