package drive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/weddingspa/service/internal/deviceid"
)

const (
	defaultMimeType = "video/mp4"

	propDeviceID  = "deviceId"
	propGuestName = "guestName"
)

var (
	// ErrNotConfigured is returned when no destination folder is configured.
	ErrNotConfigured = errors.New("drive: folder is not configured")

	// ErrForbidden is returned when a file's owner tag differs from the caller.
	ErrForbidden = errors.New("drive: file belongs to another device")
)

// UploadRequest describes a video the guest is about to upload. DeviceID must
// already be sanitized.
type UploadRequest struct {
	GuestName string
	DeviceID  string
	MimeType  string
	FileName  string
}

// Service applies the device-ownership rules on top of the Drive API.
type Service struct {
	tokens   TokenSource
	client   *Client
	folderID string
	now      func() time.Time
}

// NewService creates a Drive Service that stores videos in folderID.
func NewService(tokens TokenSource, client *Client, folderID string) *Service {
	return &Service{tokens: tokens, client: client, folderID: folderID, now: time.Now}
}

// Configured reports whether a destination folder is set.
func (s *Service) Configured() bool {
	return s.folderID != ""
}

// UploadURL opens a resumable session for the video and returns the URL the
// client streams its bytes to.
func (s *Service) UploadURL(ctx context.Context, req UploadRequest) (string, error) {
	if !s.Configured() {
		return "", ErrNotConfigured
	}
	if req.MimeType == "" {
		req.MimeType = defaultMimeType
	}
	if req.FileName == "" {
		req.FileName = fmt.Sprintf("video_%d.mp4", s.now().UnixMilli())
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return "", err
	}
	return s.client.StartResumableUpload(ctx, token, FileMetadata{
		Name:     req.FileName,
		MimeType: req.MimeType,
		Parents:  []string{s.folderID},
		AppProperties: map[string]string{
			propDeviceID:  req.DeviceID,
			propGuestName: req.GuestName,
		},
	})
}

// List returns the device's videos in the configured folder.
func (s *Service) List(ctx context.Context, deviceID string) ([]File, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}
	return s.client.ListByDevice(ctx, token, s.folderID, deviceID)
}

// Delete removes fileID after checking that its deviceId tag matches the
// caller. Both sides are compared in sanitized form.
func (s *Service) Delete(ctx context.Context, fileID, deviceID string) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return err
	}
	props, err := s.client.AppProperties(ctx, token, fileID)
	if err != nil {
		return err
	}
	owner := deviceid.Sanitize(props[propDeviceID])
	if owner == "" || owner != deviceid.Sanitize(deviceID) {
		return ErrForbidden
	}
	return s.client.Delete(ctx, token, fileID)
}
