// Package response provides shared JSON response helpers for HTTP handlers.
package response

import (
	"encoding/json"
	"net/http"
)

// Status is the minimal body shared by every endpoint.
type Status struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ConfigErrorMessage is sent when a required binding or credential is absent.
const ConfigErrorMessage = "Server Configuration Error"

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// OK writes a 200 response with payload.
func OK(w http.ResponseWriter, payload interface{}) {
	JSON(w, http.StatusOK, payload)
}

// Error writes a {success:false,message} response with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Status{Success: false, Message: message})
}

// BadRequest writes a 400 response.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// Forbidden writes a 403 response.
func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, message)
}

// NotFound writes a 404 response.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// TooLarge writes a 413 response.
func TooLarge(w http.ResponseWriter, message string) {
	Error(w, http.StatusRequestEntityTooLarge, message)
}

// UnsupportedMediaType writes a 415 response.
func UnsupportedMediaType(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnsupportedMediaType, message)
}

// ConfigError writes a 500 response for a missing binding or credential.
func ConfigError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, ConfigErrorMessage)
}

// InternalError writes a 500 response with a generic message.
func InternalError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "Internal Server Error")
}
