// Package photo implements the device-scoped image upload, listing, deletion
// and retrieval flow on top of the photo bucket.
package photo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/weddingspa/service/internal/deviceid"
	"github.com/weddingspa/service/internal/storage"
)

const (
	// MaxFileSize is the upload ceiling (10 MiB).
	MaxFileSize = 10 << 20

	// DefaultGuestName is stored when the form carries no guest name.
	DefaultGuestName = "Unknown Guest"

	// URLPrefix is where the image proxy serves stored keys.
	URLPrefix = "/api/images/"

	metaGuestName  = "guestName"
	metaUploadedAt = "uploadedAt"

	// timestampLayout matches JavaScript's Date.toISOString.
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

var (
	ErrNotConfigured   = errors.New("photo bucket is not configured")
	ErrFileTooLarge    = errors.New("file exceeds the upload limit")
	ErrUnsupportedType = errors.New("file is not an image")
	ErrInvalidDevice   = errors.New("invalid device id")
	ErrForbidden       = errors.New("key is outside the caller's namespace")
	ErrNotFound        = errors.New("photo not found")
)

// Photo is one entry of a device listing.
type Photo struct {
	Key        string    `json:"key"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// UploadInput carries a validated multipart file plus its form fields.
type UploadInput struct {
	DeviceID    string
	GuestName   string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Service contains the business rules of the image path.
type Service struct {
	store storage.Storage
	now   func() time.Time
}

// NewService creates a photo Service. A nil store yields ErrNotConfigured from
// every operation that needs the bucket.
func NewService(store storage.Storage) *Service {
	return &Service{store: store, now: time.Now}
}

// Upload validates the file and stores it under the caller's namespace,
// returning the new object key.
func (s *Service) Upload(ctx context.Context, in UploadInput) (string, error) {
	if in.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}
	if !strings.HasPrefix(in.ContentType, "image/") {
		return "", ErrUnsupportedType
	}
	if s.store == nil {
		return "", ErrNotConfigured
	}

	id := deviceid.Sanitize(in.DeviceID)
	if id == "" {
		id = deviceid.Anonymous
	}
	if len(id) > deviceid.MaxLength {
		return "", ErrInvalidDevice
	}

	guest := strings.TrimSpace(in.GuestName)
	if guest == "" {
		guest = DefaultGuestName
	}

	key := deviceid.ObjectKey(id, in.ContentType)
	meta := map[string]string{
		metaGuestName:  guest,
		metaUploadedAt: s.now().UTC().Format(timestampLayout),
	}
	if err := s.store.Put(ctx, key, in.Body, in.Size, in.ContentType, meta); err != nil {
		return "", fmt.Errorf("store photo: %w", err)
	}
	return key, nil
}

// List returns every photo stored under the device's namespace, newest first.
func (s *Service) List(ctx context.Context, rawDeviceID string) ([]Photo, error) {
	id, err := deviceid.Normalize(rawDeviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDevice, err)
	}
	if s.store == nil {
		return nil, ErrNotConfigured
	}

	objects, err := s.store.List(ctx, deviceid.Prefix(id))
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}

	photos := make([]Photo, 0, len(objects))
	for _, o := range objects {
		photos = append(photos, Photo{
			Key:        o.Key,
			URL:        URLPrefix + o.Key,
			UploadedAt: uploadedAt(o),
		})
	}
	sort.SliceStable(photos, func(i, j int) bool {
		return photos[i].UploadedAt.After(photos[j].UploadedAt)
	})
	return photos, nil
}

// Delete removes key if it lies under the sanitized device namespace.
func (s *Service) Delete(ctx context.Context, key, rawDeviceID string) error {
	if !deviceid.Owns(deviceid.Sanitize(rawDeviceID), key) {
		return ErrForbidden
	}
	if s.store == nil {
		return ErrNotConfigured
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	return nil
}

// Open returns the content and attributes of a stored photo.
func (s *Service) Open(ctx context.Context, key string) (io.ReadCloser, *storage.Object, error) {
	if s.store == nil {
		return nil, nil, ErrNotConfigured
	}
	body, obj, err := s.store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open photo: %w", err)
	}
	return body, obj, nil
}

// uploadedAt prefers the timestamp recorded at upload over the store's own.
func uploadedAt(o storage.Object) time.Time {
	if v := o.Meta(metaUploadedAt); v != "" {
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t
		}
	}
	return o.LastModified
}
