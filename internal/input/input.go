// Package input loads the raw material a spark can start from: photos,
// drawings, and voice-note transcripts. Files are read through an afero
// filesystem so commands and tests share the same loading code.
package input

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// maxImageBytes bounds what we will inline into a vision request. Provider
// limits sit around 20MB for data URLs; anything near that is a mistake.
const maxImageBytes = 16 << 20

// maxTranscriptBytes bounds a voice-note transcript.
const maxTranscriptBytes = 1 << 20

// Image is an input photo or drawing, base64-encoded for a vision model.
type Image struct {
	Base64   string
	MimeType string
	Path     string
}

var imageMimeByExt = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ReadImage loads an image file and encodes it for a vision request. The MIME
// type comes from the file contents, falling back to the extension for
// formats http.DetectContentType does not know.
func ReadImage(fs afero.Fs, path string) (Image, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Image{}, fmt.Errorf("failed to read image %s: %w", path, err)
	}
	if len(data) == 0 {
		return Image{}, fmt.Errorf("image %s is empty", path)
	}
	if len(data) > maxImageBytes {
		return Image{}, fmt.Errorf("image %s is %d bytes; the limit is %d", path, len(data), maxImageBytes)
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		ext := strings.ToLower(filepath.Ext(path))
		fallback, ok := imageMimeByExt[ext]
		if !ok {
			return Image{}, fmt.Errorf("%s does not look like an image (detected %s)", path, mimeType)
		}
		mimeType = fallback
	}

	return Image{
		Base64:   base64.StdEncoding.EncodeToString(data),
		MimeType: mimeType,
		Path:     path,
	}, nil
}

// ReadTranscript loads a voice-note transcript as plain text.
func ReadTranscript(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read transcript %s: %w", path, err)
	}
	if len(data) > maxTranscriptBytes {
		return "", fmt.Errorf("transcript %s is %d bytes; the limit is %d", path, len(data), maxTranscriptBytes)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("transcript %s is empty", path)
	}
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("transcript %s is not valid UTF-8; transcribe the audio first", path)
	}
	return text, nil
}
