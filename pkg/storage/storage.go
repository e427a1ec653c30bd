// Package storage is the object-storage boundary for asset photos: a binary
// plus filename goes in, a public URL comes out. One production
// implementation (local disk served by the HTTP layer); swap behind the
// interface for anything else.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Storage interface {
	// Save writes the file and returns its public URL. Failures propagate
	// as errors, never silently ignored.
	Save(filename string, r io.Reader) (string, error)
}

// DiskStorage stores uploads under Dir and serves them at BaseURL/<name>
type DiskStorage struct {
	Dir     string
	BaseURL string
}

func NewDiskStorage(dir, baseURL string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStorage{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *DiskStorage) Save(filename string, r io.Reader) (string, error) {
	// Strip any path components from the client-supplied name
	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid filename %q", filename)
	}

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return s.BaseURL + "/" + name, nil
}

// PhotoFilename builds the stored name for an asset photo from the asset
// code and the original upload name, e.g. "LP-099-1717000000000.jpg".
func PhotoFilename(assetCode, original string) string {
	ext := strings.TrimPrefix(filepath.Ext(original), ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%s-%d.%s", assetCode, time.Now().UnixMilli(), ext)
}
