// Package output persists rendered screens as PNG files.
package output

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// EnsureDirectory creates dir and its parents. An existing directory is fine.
func EnsureDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	return nil
}

// Save encodes img as PNG to dir/filename, replacing any existing file.
// The write is not atomic: a crash may leave a truncated file behind.
func Save(dir, filename string, img image.Image) (string, error) {
	path := filepath.Join(dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("写入 PNG 文件失败: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("编码 PNG %s 失败: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("写入 PNG 文件失败: %w", err)
	}
	return path, nil
}
