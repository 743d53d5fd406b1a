// Package logging writes structured JSON logs to a rotating file so the
// terminal output stays reserved for the syllabus itself.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level string
	File  string
	// MaxSizeMB, MaxBackups and MaxAgeDays control rotation; zero values use defaults.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func (c *Config) setDefaults() {
	if c.MaxSizeMB <= 0 {
		c.MaxSizeMB = 5
	}
	if c.MaxBackups <= 0 {
		c.MaxBackups = 3
	}
	if c.MaxAgeDays <= 0 {
		c.MaxAgeDays = 28
	}
}

// New builds a logger writing to cfg.File. The returned func flushes and
// closes the file.
func New(cfg Config) (*zap.Logger, func() error, error) {
	cfg.setDefaults()
	if cfg.File == "" {
		return nil, nil, fmt.Errorf("log file path is required")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log dir: %w", err)
	}

	sink := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}

	logger := NewWithWriter(cfg.Level, sink)
	closeFn := func() error {
		_ = logger.Sync()
		return sink.Close()
	}
	return logger, closeFn, nil
}

// NewWithWriter builds a JSON logger on an arbitrary writer.
func NewWithWriter(level string, w io.Writer) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(parseLevel(level)),
	)
	return zap.New(core)
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
