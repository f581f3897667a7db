package output

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDirectoryIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs", "screenshots")
	for i := 0; i < 2; i++ {
		if err := EnsureDirectory(dir); err != nil {
			t.Fatalf("EnsureDirectory #%d: %v", i, err)
		}
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s: %v", dir, err)
	}
}

func TestEnsureDirectorySurfacesIOError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	err := EnsureDirectory(filepath.Join(blocker, "sub"))
	if err == nil {
		t.Fatalf("expected error when a parent is a regular file")
	}
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("expected wrapped *fs.PathError, got %T: %v", err, err)
	}
}

func TestSaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	small := image.NewRGBA(image.Rect(0, 0, 2, 2))
	big := image.NewRGBA(image.Rect(0, 0, 8, 4))
	big.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})

	if _, err := Save(dir, "welcome.png", small); err != nil {
		t.Fatalf("first save: %v", err)
	}
	path, err := Save(dir, "welcome.png", big)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if path != filepath.Join(dir, "welcome.png") {
		t.Fatalf("unexpected path %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Fatalf("file was not overwritten, size %dx%d", b.Dx(), b.Dy())
	}
}

func TestSaveIntoMissingDirectoryFails(t *testing.T) {
	_, err := Save(filepath.Join(t.TempDir(), "missing"), "x.png", image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
