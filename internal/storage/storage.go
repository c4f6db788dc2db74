// Package storage defines the interface for the photo bucket.
// The MinIO implementation works with any S3-compatible provider (MinIO, Cloudflare R2, AWS S3).
package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"
)

// ErrNotFound is returned when no object exists under the requested key.
var ErrNotFound = errors.New("object not found")

// Object describes a stored object without its content.
type Object struct {
	Key          string
	Size         int64
	ContentType  string
	ETag         string
	LastModified time.Time
	// Metadata holds user metadata; look values up with Meta.
	Metadata map[string]string
}

// Meta returns the user metadata value stored under name. Providers differ in
// how they case and prefix metadata keys, so the lookup ignores both.
func (o Object) Meta(name string) string {
	for k, v := range o.Metadata {
		k = strings.TrimPrefix(strings.ToLower(k), "x-amz-meta-")
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// Storage is the interface for storing, listing and retrieving objects.
type Storage interface {
	// Put streams data to the store under key with the given user metadata.
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string, meta map[string]string) error
	// List returns every object whose key starts with prefix.
	List(ctx context.Context, prefix string) ([]Object, error)
	// Get opens the object at key. The caller closes the returned reader.
	Get(ctx context.Context, key string) (io.ReadCloser, *Object, error)
	// Delete removes the object at key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
