package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// File stores the document as a plain file; its modification time is the
// time the document was stored.
type File struct {
	path   string
	expiry time.Duration
	now    func() time.Time
}

func NewFile(path string, expiry time.Duration) *File {
	return &File{path: path, expiry: expiry, now: time.Now}
}

func (f *File) Load(ctx context.Context) (string, error) {
	fi, err := os.Stat(f.path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMiss, err)
	}
	if expired(fi.ModTime(), f.now(), f.expiry) {
		return "", fmt.Errorf("%w: stored %s ago", ErrMiss, f.now().Sub(fi.ModTime()).Round(time.Second))
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMiss, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty document", ErrMiss)
	}
	return string(data), nil
}

// Save writes to a temporary file next to the target and renames it into
// place, so readers see either the old document or the new one.
func (f *File) Save(ctx context.Context, doc string) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(doc); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing cache: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod cache: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing cache: %w", err)
	}
	return nil
}

func (f *File) Info(ctx context.Context) (Info, error) {
	fi, err := os.Stat(f.path)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrMiss, err)
	}
	return Info{
		Backend:  BackendFile,
		Location: f.path,
		StoredAt: fi.ModTime(),
		Size:     fi.Size(),
		Expired:  expired(fi.ModTime(), f.now(), f.expiry),
	}, nil
}

func (f *File) Clear(ctx context.Context) error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing cache: %w", err)
	}
	return nil
}

func (f *File) Close() error { return nil }
