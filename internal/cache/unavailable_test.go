package cache

import (
	"context"
	"errors"
	"testing"
)

func TestUnavailable(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	b := Unavailable(cause)
	ctx := context.Background()

	if _, err := b.Load(ctx); !errors.Is(err, ErrMiss) {
		t.Errorf("Load: expected ErrMiss, got %v", err)
	}
	if err := b.Save(ctx, "<html></html>"); !errors.Is(err, cause) {
		t.Errorf("Save: expected cause, got %v", err)
	}
	if _, err := b.Info(ctx); !errors.Is(err, cause) {
		t.Errorf("Info: expected cause, got %v", err)
	}
	if err := b.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
