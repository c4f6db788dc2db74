package stream

import (
	"context"
	"log"
	"net/http"

	"github.com/weddingspa/service/internal/deviceid"
	"github.com/weddingspa/service/internal/response"
	"github.com/weddingspa/service/internal/upstream"
)

// Provider is the part of Client the handlers depend on.
type Provider interface {
	Configured() bool
	CreateDirectUpload(ctx context.Context, creator string, meta map[string]string) (*DirectUpload, error)
	ListByCreator(ctx context.Context, creator string) ([]Video, error)
}

// Handler holds HTTP handlers for the hosted-video endpoints.
type Handler struct {
	provider Provider
}

// NewHandler creates a new stream Handler.
func NewHandler(provider Provider) *Handler {
	return &Handler{provider: provider}
}

type uploadURLData struct {
	Success   bool   `json:"success"   example:"true"`
	UploadURL string `json:"uploadUrl" example:"https://upload.videodelivery.net/f65014bc6ff5419ea86e7972a047ba22"`
	UID       string `json:"uid"       example:"f65014bc6ff5419ea86e7972a047ba22"`
}

// VideoItem is one entry of a device's hosted-video listing.
type VideoItem struct {
	UID          string `json:"uid"`
	Preview      string `json:"preview"`
	Thumbnail    string `json:"thumbnail"`
	PlaybackHLS  string `json:"playbackHls"`
	PlaybackDASH string `json:"playbackDash"`
	Status       string `json:"status"`
}

type listData struct {
	Success bool        `json:"success" example:"true"`
	Videos  []VideoItem `json:"videos"`
}

// UploadURL godoc
//
//	@Summary		Get video upload URL
//	@Description	Obtain a one-time direct upload URL from the video host. Clips are capped at 120 seconds and tagged with the device identifier.
//	@Tags			videos
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			guestName	formData	string	true	"Guest display name"
//	@Param			deviceId	formData	string	true	"Client device identifier"
//	@Success		200			{object}	uploadURLData
//	@Failure		400			{object}	response.Status
//	@Failure		500			{object}	response.Status
//	@Router			/stream-url [post]
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
	if !h.provider.Configured() {
		log.Printf("stream: %v", ErrNotConfigured)
		response.ConfigError(w)
		return
	}

	upload, err := h.provider.CreateDirectUpload(r.Context(), deviceID, map[string]string{
		"guestName": guestName,
		"deviceId":  deviceID,
	})
	if err != nil {
		log.Printf("stream: upload url: %v %s", err, upstream.Detail(err))
		response.Error(w, http.StatusInternalServerError, "Failed to get Stream upload URL")
		return
	}

	response.OK(w, uploadURLData{Success: true, UploadURL: upload.UploadURL, UID: upload.UID})
}

// List godoc
//
//	@Summary		List my hosted videos
//	@Description	List videos on the video host whose creator tag is the device identifier.
//	@Tags			videos
//	@Produce		json
//	@Param			deviceId	query		string	true	"Client device identifier"
//	@Success		200			{object}	listData
//	@Failure		400			{object}	response.Status
//	@Failure		500			{object}	response.Status
//	@Router			/my-videos [get]
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
	if !h.provider.Configured() {
		log.Printf("stream: %v", ErrNotConfigured)
		response.ConfigError(w)
		return
	}

	videos, err := h.provider.ListByCreator(r.Context(), deviceID)
	if err != nil {
		log.Printf("stream: list videos: %v %s", err, upstream.Detail(err))
		response.Error(w, http.StatusInternalServerError, "Failed to fetch videos")
		return
	}

	items := make([]VideoItem, 0, len(videos))
	for _, v := range videos {
		items = append(items, VideoItem{
			UID:          v.UID,
			Preview:      v.Preview,
			Thumbnail:    v.Thumbnail,
			PlaybackHLS:  v.Playback.HLS,
			PlaybackDASH: v.Playback.DASH,
			Status:       v.Status.State,
		})
	}
	response.OK(w, listData{Success: true, Videos: items})
}
