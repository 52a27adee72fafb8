package handler

import (
	"encoding/json"
	"net/http"
)

// errorResponse represents the standard JSON structure for returning API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON sends a JSON response with a specific HTTP status code and marshals the provided payload.
func writeJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

// writeError sends a standardized JSON error response to the client.
func writeError(w http.ResponseWriter, status int, msg string) error {
	return writeJSON(w, status, errorResponse{Error: msg})
}
