// Package filestore persists uploaded files to a directory. Stored names are
// the upload timestamp in epoch milliseconds plus the original extension, so
// the API only ever records the resulting name and size.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Store saves uploaded content and reports what was written.
type Store interface {
	// Save writes content to the store. originalName is only used for its
	// extension. Returns the stored file name and the byte count written.
	Save(originalName string, content io.Reader) (string, int64, error)
}

// DiskStore is a Store backed by a local directory.
type DiskStore struct {
	dir string
	now func() time.Time
}

// NewDiskStore creates the directory if needed and returns a DiskStore.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, now: time.Now}, nil
}

func (s *DiskStore) Save(originalName string, content io.Reader) (string, int64, error) {
	name := fmt.Sprintf("%d%s", s.now().UnixMilli(), filepath.Ext(originalName))
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, content)
	if err != nil {
		os.Remove(path)
		return "", 0, fmt.Errorf("write file: %w", err)
	}
	return name, n, nil
}

// FormatSize renders a byte count the way records display it: megabytes with
// one decimal place, e.g. "2.5 MB".
func FormatSize(bytes int64) string {
	return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
}
