package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPhotoFilename(t *testing.T) {
	got := PhotoFilename("LP-099", "foto laptop.jpg")
	if !strings.HasPrefix(got, "LP-099-") || !strings.HasSuffix(got, ".jpg") {
		t.Errorf("PhotoFilename=%q, want LP-099-<stamp>.jpg", got)
	}

	got = PhotoFilename("MJ-001", "upload")
	if !strings.HasSuffix(got, ".bin") {
		t.Errorf("PhotoFilename without extension=%q, want .bin suffix", got)
	}
}

func TestDiskStorageSaveReturnsPublicURL(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskStorage(dir, "http://localhost:3000/uploads/")
	if err != nil {
		t.Fatalf("NewDiskStorage: %v", err)
	}

	url, err := s.Save("LP-099-123.jpg", strings.NewReader("jpegdata"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if url != "http://localhost:3000/uploads/LP-099-123.jpg" {
		t.Errorf("url=%q", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "LP-099-123.jpg"))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "jpegdata" {
		t.Errorf("saved content=%q", data)
	}
}

func TestDiskStorageSaveStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskStorage(dir, "http://localhost:3000/uploads")
	if err != nil {
		t.Fatalf("NewDiskStorage: %v", err)
	}

	url, err := s.Save("../escape.jpg", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if url != "http://localhost:3000/uploads/escape.jpg" {
		t.Errorf("url=%q", url)
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.jpg")); err != nil {
		t.Errorf("file not written inside the upload dir: %v", err)
	}
}
