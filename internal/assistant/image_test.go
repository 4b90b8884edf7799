package assistant

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sahayak/internal/llm"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestLoadAndSaveImage(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "board.png")
	require.NoError(t, os.WriteFile(src, pngHeader, 0o644))

	img, err := LoadImage(src)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MIMEType)

	out := filepath.Join(dir, "out", "copy.png")
	require.NoError(t, SaveImage(out, img))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
}

func TestLoadImageRejectsText(t *testing.T) {
	src := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0o644))

	_, err := LoadImage(src)
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".jpg", Extension(&llm.Image{MIMEType: "image/jpeg"}))
	assert.Equal(t, ".png", Extension(&llm.Image{MIMEType: ""}))
	assert.Equal(t, ".png", Extension(nil))
}
