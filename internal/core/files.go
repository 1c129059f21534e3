package core

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var ErrUnsupportedType error = errors.New("unsupported file type")
var ErrFileTooLarge error = errors.New("file too large")
var ErrMissingFile error = errors.New("missing file")
var ErrInvalidName error = errors.New("photo name must be 1-40 characters")

// MaxUploadBytes is the global ceiling for a single upload.
const MaxUploadBytes int64 = 100 << 20

// MaxPhotoNameLen caps the display name in characters, matching the column.
const MaxPhotoNameLen = 40

var allowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"webp": {},
}

var unsafeBaseChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// ValidateUpload checks the original filename against the extension
// allow-list and the byte size against the global ceiling. The size check is
// independent of any transport-level body cap.
func ValidateUpload(filename string, size int64) error {
	if filename == "" {
		return ErrMissingFile
	}

	if size > MaxUploadBytes {
		return ErrFileTooLarge
	}

	ext, ok := splitExtension(filename)
	if !ok {
		return ErrUnsupportedType
	}
	if _, allowed := allowedExtensions[ext]; !allowed {
		return ErrUnsupportedType
	}

	return nil
}

// NewStorageName derives a collision-resistant, filesystem-safe name for the
// upload: a random 128-bit hex token, the sanitized original base name and
// the normalized extension.
func NewStorageName(filename string) (string, error) {
	ext, ok := splitExtension(filename)
	if !ok {
		return "", ErrUnsupportedType
	}

	base := filename[:strings.LastIndex(filename, ".")]
	base = strings.NewReplacer("\\", "/", "\x00", "").Replace(base)
	if idx := strings.LastIndex(base, "/"); idx >= 0 {
		base = base[idx+1:]
	}
	base = strings.Trim(unsafeBaseChars.ReplaceAllString(base, "_"), "_")
	if base == "" {
		base = "photo"
	}

	randToken := strings.ReplaceAll(uuid.NewString(), "-", "")

	return fmt.Sprintf("%s_%s.%s", randToken, base, ext), nil
}

// splitExtension returns the lowercased substring after the last dot.
func splitExtension(filename string) (string, bool) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return "", false
	}
	return strings.ToLower(filename[idx+1:]), true
}
