// Package localfs stores uploaded files in a directory on the local disk.
package localfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// Store saves and serves files under a root directory.
type Store struct {
	root string
}

// New creates the root directory if needed and returns a Store.
func New(root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{root: abs}, nil
}

// Root returns the absolute storage directory.
func (s *Store) Root() string { return s.root }

// Save writes r to a file called name under the root and returns its path and size.
// A partially written file is removed on error.
func (s *Store) Save(ctx context.Context, name string, r io.Reader) (string, int64, error) {
	path, err := s.resolve(name)
	if err != nil {
		return "", 0, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("create %s: %w", name, err)
	}

	n, err := io.Copy(f, ctxReader{ctx: ctx, r: r})
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("write %s: %w", name, err)
	}
	return path, n, nil
}

// Open opens a stored file for reading.
func (s *Store) Open(path string) (io.ReadCloser, error) {
	if err := s.contains(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("file %s: %w", filepath.Base(path), domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	return f, nil
}

// Delete removes a stored file. A missing file yields domain.ErrNotFound.
func (s *Store) Delete(path string) error {
	if err := s.contains(path); err != nil {
		return err
	}
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("file %s: %w", filepath.Base(path), domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (s *Store) resolve(name string) (string, error) {
	base := filepath.Base(filepath.Clean("/" + name))
	if base == "/" || base == "." || strings.TrimSpace(base) == "" {
		return "", domain.NewValidationError("filename", "Invalid filename")
	}
	return filepath.Join(s.root, base), nil
}

func (s *Store) contains(path string) error {
	rel, err := filepath.Rel(s.root, filepath.Clean(path))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("path %q outside upload dir: %w", path, domain.ErrForbidden)
	}
	return nil
}

// ctxReader stops a copy once the context is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
