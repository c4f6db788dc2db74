package rsvp

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/weddingspa/service/internal/response"
	"github.com/weddingspa/service/internal/upstream"
)

// maxBodyBytes bounds the JSON form payload.
const maxBodyBytes = 64 << 10

// Handler holds the HTTP handler for RSVP submissions.
type Handler struct {
	svc *Service
}

// NewHandler creates a new rsvp Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// rsvpRequest accepts guestCount as either a number or a string, the form
// sends whichever the input produced.
type rsvpRequest struct {
	Name       string `json:"name"       example:"Anna Nowak"`
	GuestCount any    `json:"guestCount" example:"2"`
	Comment    string `json:"comment"    example:"Vegetarian menu please"`
}

// errorBody is the historical error shape of this endpoint.
type errorBody struct {
	Error string `json:"error"`
}

// Send godoc
//
//	@Summary		Send RSVP
//	@Description	Relay an RSVP to the couple by email.
//	@Tags			rsvp
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rsvpRequest	true	"RSVP details"
//	@Success		200		{object}	response.Status
//	@Failure		400		{object}	errorBody
//	@Failure		500		{object}	errorBody
//	@Router			/send-rsvp [post]
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	if !h.svc.Configured() {
		log.Printf("rsvp: %v", ErrNotConfigured)
		response.JSON(w, http.StatusInternalServerError, errorBody{Error: "Server configuration error"})
		return
	}

	var req rsvpRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		response.JSON(w, http.StatusBadRequest, errorBody{Error: "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		response.JSON(w, http.StatusBadRequest, errorBody{Error: "Name is required"})
		return
	}

	err := h.svc.Submit(r.Context(), Submission{
		Name:       req.Name,
		GuestCount: formatCount(req.GuestCount),
		Comment:    req.Comment,
	})
	if err != nil {
		log.Printf("rsvp: %v %s", err, upstream.Detail(err))
		if errors.Is(err, ErrNotConfigured) {
			response.JSON(w, http.StatusInternalServerError, errorBody{Error: "Server configuration error"})
			return
		}
		response.JSON(w, http.StatusInternalServerError, errorBody{Error: "Email provider error"})
		return
	}

	response.OK(w, response.Status{Success: true})
}

func formatCount(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case float64:
		return fmt.Sprintf("%g", c)
	default:
		return fmt.Sprint(c)
	}
}
