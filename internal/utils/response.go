package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the uniform error response: the HTTP status mirrored in
// the body next to a human-readable message.
type ErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the uniform {status, message} error body.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Status: status, Message: message})
}
