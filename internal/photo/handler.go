package photo

import (
	"errors"
	"io"
	"log"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/weddingspa/service/internal/response"
)

const (
	// multipartOverhead leaves room for form boundaries and the text fields
	// around a file sitting right at MaxFileSize.
	multipartOverhead = 1 << 20
	maxFormMemory     = 1 << 20

	imageCacheControl = "public, max-age=31536000, immutable"
)

// Handler holds HTTP handlers for the image endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new photo Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type uploadData struct {
	Success bool   `json:"success" example:"true"`
	Key     string `json:"key"     example:"uploads/guest1/9b2f6c1e-6a55-4a3f-9d6c-1f3a2b4c5d6e.webp"`
	Message string `json:"message" example:"Upload successful"`
}

type listData struct {
	Success bool    `json:"success" example:"true"`
	Photos  []Photo `json:"photos"`
}

// Upload godoc
//
//	@Summary		Upload photo
//	@Description	Store an image (max 10 MiB) under the guest's device namespace.
//	@Tags			photos
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file		formData	file	true	"Image file"
//	@Param			guestName	formData	string	false	"Guest display name"
//	@Param			deviceId	formData	string	false	"Client device identifier"
//	@Success		200			{object}	uploadData
//	@Failure		400			{object}	response.Status
//	@Failure		413			{object}	response.Status
//	@Failure		415			{object}	response.Status
//	@Failure		500			{object}	response.Status
//	@Router			/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/form-data" {
		response.BadRequest(w, "Invalid Content-Type")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxFileSize+multipartOverhead)
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			// The rest of the body is never read, so the connection cannot be reused.
			w.Header().Set("Connection", "close")
			response.TooLarge(w, "File too large (> 10MB)")
			return
		}
		response.BadRequest(w, "Invalid multipart body")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "No file uploaded")
		return
	}
	defer file.Close()

	key, err := h.svc.Upload(r.Context(), UploadInput{
		DeviceID:    r.FormValue("deviceId"),
		GuestName:   r.FormValue("guestName"),
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	switch {
	case errors.Is(err, ErrFileTooLarge):
		response.TooLarge(w, "File too large (> 10MB)")
	case errors.Is(err, ErrUnsupportedType):
		response.UnsupportedMediaType(w, "Invalid file type")
	case errors.Is(err, ErrInvalidDevice):
		response.BadRequest(w, "Invalid deviceId")
	case errors.Is(err, ErrNotConfigured):
		log.Printf("photo: upload: %v", err)
		response.ConfigError(w)
	case err != nil:
		log.Printf("photo: upload error: %v", err)
		response.InternalError(w)
	default:
		response.OK(w, uploadData{Success: true, Key: key, Message: "Upload successful"})
	}
}

// List godoc
//
//	@Summary		List my photos
//	@Description	List every photo uploaded under the device identifier, newest first.
//	@Tags			photos
//	@Produce		json
//	@Param			deviceId	query		string	true	"Client device identifier"
//	@Success		200			{object}	listData
//	@Failure		400			{object}	response.Status
//	@Failure		500			{object}	response.Status
//	@Router			/my-photos [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("deviceId")
	if deviceID == "" {
		response.BadRequest(w, "Missing deviceId")
		return
	}

	photos, err := h.svc.List(r.Context(), deviceID)
	switch {
	case errors.Is(err, ErrInvalidDevice):
		response.BadRequest(w, "Invalid deviceId")
	case errors.Is(err, ErrNotConfigured):
		log.Printf("photo: list: %v", err)
		response.ConfigError(w)
	case err != nil:
		log.Printf("photo: error listing photos: %v", err)
		response.InternalError(w)
	default:
		response.OK(w, listData{Success: true, Photos: photos})
	}
}

// Delete godoc
//
//	@Summary		Delete photo
//	@Description	Delete a photo. The key must lie under uploads/<sanitized deviceId>/.
//	@Tags			photos
//	@Produce		json
//	@Param			key			query		string	true	"Object key"
//	@Param			deviceId	query		string	true	"Client device identifier"
//	@Success		200			{object}	response.Status
//	@Failure		400			{object}	response.Status
//	@Failure		403			{object}	response.Status
//	@Failure		500			{object}	response.Status
//	@Router			/delete [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	key, deviceID := q.Get("key"), q.Get("deviceId")
	if key == "" || deviceID == "" {
		response.BadRequest(w, "Missing parameters")
		return
	}

	err := h.svc.Delete(r.Context(), key, deviceID)
	switch {
	case errors.Is(err, ErrForbidden):
		response.Forbidden(w, "Unauthorized deletion attempt")
	case errors.Is(err, ErrNotConfigured):
		log.Printf("photo: delete: %v", err)
		response.ConfigError(w)
	case err != nil:
		log.Printf("photo: delete error: %v", err)
		response.InternalError(w)
	default:
		response.OK(w, response.Status{Success: true, Message: "Photo deleted"})
	}
}

// Serve godoc
//
//	@Summary		Get photo
//	@Description	Stream a stored photo. The path after /api/images/ is the object key.
//	@Tags			photos
//	@Produce		octet-stream
//	@Param			key	path		string	true	"Object key"
//	@Success		200	{file}		binary
//	@Success		304	{string}	string	"Not Modified"
//	@Failure		404	{object}	response.Status
//	@Failure		500	{object}	response.Status
//	@Router			/images/{key} [get]
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if key == "" {
		response.NotFound(w, "Not Found")
		return
	}

	body, obj, err := h.svc.Open(r.Context(), key)
	switch {
	case errors.Is(err, ErrNotFound):
		response.NotFound(w, "Image Not Found")
		return
	case errors.Is(err, ErrNotConfigured):
		log.Printf("photo: serve: %v", err)
		response.ConfigError(w)
		return
	case err != nil:
		log.Printf("photo: image proxy error: %v", err)
		response.InternalError(w)
		return
	}
	defer body.Close()

	hdr := w.Header()
	hdr.Set("Cache-Control", imageCacheControl)
	if obj.ETag != "" {
		etag := strconv.Quote(obj.ETag)
		hdr.Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	hdr.Set("Content-Type", contentType)
	hdr.Set("Content-Length", strconv.FormatInt(obj.Size, 10))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		log.Printf("photo: stream %q: %v", key, err)
	}
}
