package photo

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weddingspa/service/internal/storage"
	"github.com/weddingspa/service/internal/storage/storagetest"
)

func TestUploadedAt(t *testing.T) {
	modified := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	o := storage.Object{LastModified: modified, Metadata: map[string]string{"uploadedAt": "not a date"}}
	assert.True(t, modified.Equal(uploadedAt(o)))

	o.Metadata["uploadedAt"] = "2025-06-14T18:30:00.123Z"
	assert.Equal(t, time.Date(2025, 6, 14, 18, 30, 0, 123e6, time.UTC), uploadedAt(o).UTC())
}

func TestService_UploadValidatesBeforeWriting(t *testing.T) {
	store := storagetest.NewMemory(nil)
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.Upload(ctx, UploadInput{ContentType: "image/png", Size: MaxFileSize + 1, Body: strings.NewReader("")})
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = svc.Upload(ctx, UploadInput{ContentType: "text/html", Size: 1, Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = svc.Upload(ctx, UploadInput{DeviceID: strings.Repeat("z", 300), ContentType: "image/png", Size: 1, Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, ErrInvalidDevice)

	assert.Empty(t, store.Puts)
}

func TestService_UploadAtSizeLimit(t *testing.T) {
	store := storagetest.NewMemory(nil)
	key, err := NewService(store).Upload(context.Background(), UploadInput{
		DeviceID:    "edge",
		ContentType: "image/gif",
		Size:        MaxFileSize,
		Body:        strings.NewReader("gif"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".gif"))
}

func TestService_WithoutStore(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	_, err := svc.List(ctx, "a")
	assert.ErrorIs(t, err, ErrNotConfigured)

	assert.ErrorIs(t, svc.Delete(ctx, "uploads/a/x", "a"), ErrNotConfigured)

	_, _, err = svc.Open(ctx, "uploads/a/x")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestService_DeleteWithEmptySanitizedID(t *testing.T) {
	store := storagetest.NewMemory(nil)
	store.Seed(storage.Object{Key: "uploads//x.png"}, []byte("x"))

	err := NewService(store).Delete(context.Background(), "uploads//x.png", "###")

	assert.ErrorIs(t, err, ErrForbidden)
	assert.True(t, store.Has("uploads//x.png"))
}
