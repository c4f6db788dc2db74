// Package deviceid normalizes client-supplied device identifiers and derives
// the bucket keys that namespace a guest's uploads.
package deviceid

import (
	"errors"
	"mime"
	"strings"

	"github.com/google/uuid"
)

const (
	// UploadsRoot is the top-level prefix of every stored photo.
	UploadsRoot = "uploads"

	// Anonymous is the namespace used when an upload carries no usable identifier.
	Anonymous = "anonymous"

	// MaxLength caps a sanitized identifier.
	MaxLength = 128

	fallbackExt = "bin"
)

var (
	// ErrEmpty is returned when nothing is left of an identifier after sanitizing.
	ErrEmpty = errors.New("device id is empty")

	// ErrTooLong is returned when a sanitized identifier exceeds MaxLength.
	ErrTooLong = errors.New("device id is too long")
)

// newToken is swapped in tests.
var newToken = func() string { return uuid.NewString() }

// Sanitize keeps only [A-Za-z0-9-] and drops everything else.
func Sanitize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Normalize sanitizes raw and enforces that the result is usable as a namespace.
func Normalize(raw string) (string, error) {
	id := Sanitize(raw)
	if id == "" {
		return "", ErrEmpty
	}
	if len(id) > MaxLength {
		return "", ErrTooLong
	}
	return id, nil
}

// Prefix returns the key prefix owned by the already sanitized id: "uploads/<id>/".
func Prefix(id string) string {
	return UploadsRoot + "/" + id + "/"
}

// Owns reports whether key lives under the namespace of the sanitized id.
// An empty id owns nothing.
func Owns(id, key string) bool {
	if id == "" {
		return false
	}
	return strings.HasPrefix(key, Prefix(id))
}

// ObjectKey builds "uploads/<id>/<uuid>.<ext>" with the extension taken from
// the declared MIME subtype.
func ObjectKey(id, mimeType string) string {
	return Prefix(id) + newToken() + "." + Extension(mimeType)
}

// Extension derives a file extension from a MIME type, e.g. "image/jpeg" -> "jpeg",
// "image/svg+xml" -> "svg". Unparseable input yields "bin".
func Extension(mimeType string) string {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return fallbackExt
	}
	_, sub, ok := strings.Cut(mediaType, "/")
	if !ok {
		return fallbackExt
	}
	sub, _, _ = strings.Cut(sub, "+")
	sub = Sanitize(sub)
	if sub == "" {
		return fallbackExt
	}
	return strings.ToLower(sub)
}
