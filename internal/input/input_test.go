package input

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal valid PNG header followed by padding; enough for content sniffing.
var pngBytes = append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, make([]byte, 64)...)

func TestReadImage(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/sketch.png", pngBytes, 0o644))

	img, err := ReadImage(fs, "/in/sketch.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MimeType)
	assert.Equal(t, "/in/sketch.png", img.Path)

	decoded, err := base64.StdEncoding.DecodeString(img.Base64)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, decoded)
}

func TestReadImageExtensionFallback(t *testing.T) {
	// WebP payloads short enough to dodge sniffing fall back to the extension.
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/doodle.webp", []byte("RIFFxxxxWEBP"), 0o644))

	img, err := ReadImage(fs, "/in/doodle.webp")
	require.NoError(t, err)
	assert.Equal(t, "image/webp", img.MimeType)
}

func TestReadImageRejectsNonImage(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/notes.txt", []byte("just some text"), 0o644))

	_, err := ReadImage(fs, "/in/notes.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not look like an image")
}

func TestReadImageMissingOrEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := ReadImage(fs, "/in/missing.png")
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "/in/empty.png", nil, 0o644))
	_, err = ReadImage(fs, "/in/empty.png")
	assert.Error(t, err)
}

func TestReadTranscript(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/note.txt", []byte("  I keep thinking about tide pools.\n"), 0o644))

	text, err := ReadTranscript(fs, "/in/note.txt")
	require.NoError(t, err)
	assert.Equal(t, "I keep thinking about tide pools.", text)
}

func TestReadTranscriptRejectsEmptyAndBinary(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/blank.txt", []byte("   \n"), 0o644))
	_, err := ReadTranscript(fs, "/in/blank.txt")
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "/in/audio.m4a", []byte{0xff, 0xfe, 0x00, 0x80, 0x81}, 0o644))
	_, err = ReadTranscript(fs, "/in/audio.m4a")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "UTF-8"))
}
