package drive

import (
	"errors"
	"log"
	"net/http"

	"github.com/weddingspa/service/internal/deviceid"
	"github.com/weddingspa/service/internal/response"
	"github.com/weddingspa/service/internal/upstream"
)

// Handler holds HTTP handlers for the Drive video endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new drive Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type uploadURLData struct {
	Success   bool   `json:"success"   example:"true"`
	UploadURL string `json:"uploadUrl" example:"https://www.googleapis.com/upload/drive/v3/files?uploadType=resumable&upload_id=xa298sd_sdlkj2"`
}

// VideoItem is one entry of a device's Drive video listing.
type VideoItem struct {
	UID       string `json:"uid"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type listData struct {
	Success bool        `json:"success" example:"true"`
	Videos  []VideoItem `json:"videos"`
}

// UploadURL godoc
//
//	@Summary		Get Drive upload URL
//	@Description	Open a resumable Drive upload session tagged with the device identifier and guest name.
//	@Tags			drive
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			guestName	formData	string	true	"Guest display name"
//	@Param			deviceId	formData	string	true	"Client device identifier"
//	@Param			mimeType	formData	string	false	"Video MIME type (default video/mp4)"
//	@Param			fileName	formData	string	false	"File name (default video_<millis>.mp4)"
//	@Success		200			{object}	uploadURLData
//	@Failure		400			{object}	response.Status
//	@Failure		500			{object}	response.Status
//	@Router			/drive/upload-url [post]
func (h *Handler) UploadURL(w http.ResponseWriter, r *http.Request) {
	guestName, rawDevice := r.FormValue("guestName"), r.FormValue("deviceId")
	if guestName == "" || rawDevice == "" {
		response.BadRequest(w, "Missing metadata")
		return
	}
	deviceID, err := deviceid.Normalize(rawDevice)
	if err != nil {
		response.BadRequest(w, "Invalid deviceId")
		return
	}

	uploadURL, err := h.svc.UploadURL(r.Context(), UploadRequest{
		GuestName: guestName,
		DeviceID:  deviceID,
		MimeType:  r.FormValue("mimeType"),
		FileName:  r.FormValue("fileName"),
	})
	if err != nil {
		h.fail(w, "start upload", err, "Failed to initiate Google Drive upload")
		return
	}
	response.OK(w, uploadURLData{Success: true, UploadURL: uploadURL})
}

// List godoc
//
//	@Summary		List my Drive videos
//	@Description	List untrashed videos in the configured Drive folder tagged with the device identifier.
//	@Tags			drive
//	@Produce		json
//	@Param			deviceId	query		string	true	"Client device identifier"
//	@Success		200			{object}	listData
//	@Failure		400			{object}	response.Status
//	@Failure		500			{object}	response.Status
//	@Router			/drive/my-videos [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rawDevice := r.URL.Query().Get("deviceId")
	if rawDevice == "" {
		response.BadRequest(w, "Missing deviceId parameter")
		return
	}
	deviceID, err := deviceid.Normalize(rawDevice)
	if err != nil {
		response.BadRequest(w, "Invalid deviceId")
		return
	}

	files, err := h.svc.List(r.Context(), deviceID)
	if err != nil {
		h.fail(w, "list videos", err, "Failed to fetch videos from Drive")
		return
	}

	videos := make([]VideoItem, 0, len(files))
	for _, f := range files {
		videos = append(videos, VideoItem{UID: f.ID, Name: f.Name, Thumbnail: f.ThumbnailLink})
	}
	response.OK(w, listData{Success: true, Videos: videos})
}

// Delete godoc
//
//	@Summary		Delete Drive video
//	@Description	Delete a video after checking that its deviceId tag matches the caller's.
//	@Tags			drive
//	@Produce		json
//	@Param			id			query		string	true	"Drive file id"
//	@Param			deviceId	query		string	true	"Client device identifier"
//	@Success		200			{object}	response.Status
//	@Failure		400			{object}	response.Status
//	@Failure		403			{object}	response.Status
//	@Failure		500			{object}	response.Status
//	@Router			/drive/delete [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	id, deviceID := q.Get("id"), q.Get("deviceId")
	if id == "" || deviceID == "" {
		response.BadRequest(w, "Missing parameters")
		return
	}

	err := h.svc.Delete(r.Context(), id, deviceID)
	if errors.Is(err, ErrForbidden) {
		response.Forbidden(w, "Unauthorized")
		return
	}
	if err != nil {
		h.fail(w, "delete video", err, "Failed to delete video from Drive")
		return
	}
	response.OK(w, response.Status{Success: true})
}

// fail logs the cause, including any provider body, and answers 500 without it.
func (h *Handler) fail(w http.ResponseWriter, op string, err error, message string) {
	switch {
	case errors.Is(err, ErrNotConfigured), errors.Is(err, ErrNoCredentials):
		log.Printf("drive: %s: %v", op, err)
		response.ConfigError(w)
	default:
		log.Printf("drive: %s: %v %s", op, err, upstream.Detail(err))
		response.Error(w, http.StatusInternalServerError, message)
	}
}
