// Package handler provides HTTP handlers for the Hunter Codex API.
package handler

import (
	"encoding/json"
	"net/http"
)

// messageResponse is the generic `{"message": ...}` body.
type messageResponse struct {
	Message string `json:"message"`
}

// validationResponse enumerates per-field validation failures.
type validationResponse struct {
	Errors map[string]string `json:"errors"`
}

// writeJSON serializes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage writes a `{"message": ...}` body with the given status code.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// writeValidationErrors writes a 400 with per-field failure messages.
func writeValidationErrors(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusBadRequest, validationResponse{Errors: fields})
}
