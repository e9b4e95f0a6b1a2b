package extract

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

// ArchiveEntry describes one file inside a ZIP upload.
type ArchiveEntry struct {
	Name  string
	Size  int64
	IsDir bool
}

// Hidden reports whether the entry is OS metadata (__MACOSX/ or a dot file).
func (a ArchiveEntry) Hidden() bool {
	if strings.HasPrefix(a.Name, "__MACOSX/") {
		return true
	}
	for _, part := range strings.Split(a.Name, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// Archive is an open ZIP file. Entries may be extracted concurrently.
type Archive struct {
	zr    *zip.ReadCloser
	files map[string]*zip.File
}

// OpenArchive opens the ZIP file at p.
func (e *Extractor) OpenArchive(p string) (*Archive, error) {
	zr, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("open zip: %w: %v", ErrUnreadable, err)
	}
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}
	return &Archive{zr: zr, files: files}, nil
}

// Entries lists the archive in central-directory order.
func (a *Archive) Entries() []ArchiveEntry {
	out := make([]ArchiveEntry, 0, len(a.zr.File))
	for _, f := range a.zr.File {
		out = append(out, ArchiveEntry{
			Name:  f.Name,
			Size:  int64(f.UncompressedSize64),
			IsDir: f.FileInfo().IsDir(),
		})
	}
	return out
}

// ExtractTemp copies an entry into a new temp file under dir that keeps the
// entry's extension, and returns its path. The caller removes the file.
func (a *Archive) ExtractTemp(ctx context.Context, name, dir string) (string, error) {
	f, ok := a.files[name]
	if !ok {
		return "", fmt.Errorf("zip entry %q not found", name)
	}
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("open zip entry %q: %w", name, err)
	}
	defer rc.Close()

	tmp, err := os.CreateTemp(dir, "extracted_*"+strings.ToLower(path.Ext(name)))
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	_, err = io.Copy(tmp, ctxReader{ctx: ctx, r: rc})
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("extract zip entry %q: %w", name, err)
	}
	return tmp.Name(), nil
}

// Close releases the underlying file.
func (a *Archive) Close() error { return a.zr.Close() }

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
