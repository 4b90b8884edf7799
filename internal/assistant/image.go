package assistant

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/sahayak/internal/llm"
)

// ErrNotImage is returned when a file does not hold a supported image.
var ErrNotImage = errors.New("not a PNG, JPEG, GIF or WebP image")

// LoadImage reads an image file for editing.
func LoadImage(path string) (*llm.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	mime := http.DetectContentType(data)
	switch mime {
	case "image/png", "image/jpeg", "image/gif", "image/webp":
	default:
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrNotImage)
	}
	return &llm.Image{MIMEType: mime, Data: data}, nil
}

// SaveImage writes img to path, creating parent directories.
func SaveImage(path string, img *llm.Image) error {
	if img == nil || len(img.Data) == 0 {
		return errors.New("no image to save")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create image dir: %w", err)
		}
	}
	if err := os.WriteFile(path, img.Data, 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}

// Extension returns the file extension matching img's MIME type.
func Extension(img *llm.Image) string {
	if img == nil {
		return ".png"
	}
	switch strings.ToLower(img.MIMEType) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	return ".png"
}
